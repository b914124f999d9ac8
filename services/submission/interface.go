package submission

import (
	"context"

	"sportify/models"
)

// Submitter hands a finished payload to the backend. Any non-success outcome,
// transport failures included, is reported as a *SubmissionError.
type Submitter interface {
	Submit(ctx context.Context, operatorID string, payload models.SubmissionPayload) (*models.SubmissionResult, error)
}

// LocationResolver turns the selected directory codes into directory entries.
type LocationResolver interface {
	ResolveProvince(ctx context.Context, provinceCode string) (models.LocationOption, error)
	ResolveWard(ctx context.Context, provinceCode, wardCode string) (models.LocationOption, error)
}
