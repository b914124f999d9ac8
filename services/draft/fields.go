package draft

import (
	"context"

	"sportify/models"
	"sportify/services/fields"
)

func (s *DefaultDraftService) AddField(ctx context.Context, operatorID, draftID, name string) (*DraftView, error) {
	return s.mutate(ctx, operatorID, draftID, func(_ *models.Draft, reg *fields.Registry) error {
		reg.AddField(name)
		return nil
	})
}

// BulkAddFields clamps count to the configured maximum before generating fields.
func (s *DefaultDraftService) BulkAddFields(ctx context.Context, operatorID, draftID, pattern string, count int, fieldType models.FieldType) (*DraftView, error) {
	if s.Settings.MaxBulkFields > 0 && count > s.Settings.MaxBulkFields {
		count = s.Settings.MaxBulkFields
	}
	return s.mutate(ctx, operatorID, draftID, func(_ *models.Draft, reg *fields.Registry) error {
		_, err := reg.BulkAdd(pattern, count, fieldType)
		return err
	})
}

func (s *DefaultDraftService) UpdateField(ctx context.Context, operatorID, draftID, fieldID string, patch models.FieldPatch) (*DraftView, error) {
	return s.mutate(ctx, operatorID, draftID, func(_ *models.Draft, reg *fields.Registry) error {
		_, err := reg.UpdateField(fieldID, patch)
		return err
	})
}

func (s *DefaultDraftService) RemoveField(ctx context.Context, operatorID, draftID, fieldID string) (*DraftView, error) {
	return s.mutate(ctx, operatorID, draftID, func(d *models.Draft, reg *fields.Registry) error {
		if err := reg.RemoveField(fieldID); err != nil {
			return err
		}
		delete(d.Suggestions, fieldID)
		return nil
	})
}
