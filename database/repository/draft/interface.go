package draftRepo

import (
	"context"
	"errors"

	"sportify/models"
)

// ErrNotFound is returned for unknown or expired drafts.
var ErrNotFound = errors.New("draft not found or expired")

// DraftStore holds the single current snapshot of each open draft.
type DraftStore interface {
	Get(ctx context.Context, id string) (*models.Draft, error)
	Save(ctx context.Context, d models.Draft) error
	Delete(ctx context.Context, id string) error
}
