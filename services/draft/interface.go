package draft

import (
	"context"
	"sync"

	"go.uber.org/zap"

	draftRepo "sportify/database/repository/draft"
	"sportify/models"
	"sportify/services/submission"
	"sportify/services/wizard"
)

// DraftView is what the presentation layer renders after every intent.
type DraftView struct {
	Draft   models.Draft        `json:"draft"`
	Check   wizard.Check        `json:"check"`
	Summary models.DraftSummary `json:"summary"`
	// Exit is set when backward navigation left the first step.
	Exit bool `json:"exit,omitempty"`
}

// DraftService exposes every wizard intent for one operator's drafts.
type DraftService interface {
	Create(ctx context.Context, operatorID string) (*DraftView, error)
	Get(ctx context.Context, operatorID, draftID string) (*DraftView, error)
	Discard(ctx context.Context, operatorID, draftID string) error

	UpdateComplex(ctx context.Context, operatorID, draftID string, info models.ComplexInfo) (*DraftView, error)

	AddField(ctx context.Context, operatorID, draftID, name string) (*DraftView, error)
	BulkAddFields(ctx context.Context, operatorID, draftID, pattern string, count int, fieldType models.FieldType) (*DraftView, error)
	UpdateField(ctx context.Context, operatorID, draftID, fieldID string, patch models.FieldPatch) (*DraftView, error)
	RemoveField(ctx context.Context, operatorID, draftID, fieldID string) (*DraftView, error)

	AddSlot(ctx context.Context, operatorID, draftID, fieldID string, in models.SlotInput) (*DraftView, error)
	EditSlot(ctx context.Context, operatorID, draftID, fieldID, slotID string, in models.SlotInput) (*DraftView, error)
	RemoveSlot(ctx context.Context, operatorID, draftID, fieldID, slotID string) (*DraftView, error)
	ApplyToAll(ctx context.Context, operatorID, draftID, sourceFieldID string) (*DraftView, error)

	Next(ctx context.Context, operatorID, draftID string) (*DraftView, error)
	Back(ctx context.Context, operatorID, draftID string) (*DraftView, error)

	Submit(ctx context.Context, operatorID, draftID string) (*models.SubmissionResult, error)
}

// Settings tune the draft service.
type Settings struct {
	DefaultSlotMinutes int
	MaxBulkFields      int
}

// DefaultDraftService implements DraftService.
type DefaultDraftService struct {
	Store     draftRepo.DraftStore
	Locations submission.LocationResolver
	Submitter submission.Submitter
	NewID     func() string
	Settings  Settings
	Logger    *zap.Logger

	locks sync.Map // draft id -> *sync.Mutex
}
