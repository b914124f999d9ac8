package draft

import (
	"context"

	"sportify/models"
	"sportify/services/fields"
	"sportify/services/propagation"
	"sportify/services/slots"
)

func (s *DefaultDraftService) suggest(d *models.Draft, fieldID string, lastEnd models.TimeOfDay) {
	if d.Suggestions == nil {
		d.Suggestions = map[string]models.SlotSuggestion{}
	}
	d.Suggestions[fieldID] = slots.SuggestNext(lastEnd, s.Settings.DefaultSlotMinutes)
}

// resuggest points the field's pre-fill after its latest slot, or drops it
// when the field has no slots left.
func (s *DefaultDraftService) resuggest(d *models.Draft, reg *fields.Registry, fieldID string) {
	current, err := reg.Slots(fieldID)
	if err != nil || len(current) == 0 {
		delete(d.Suggestions, fieldID)
		return
	}
	s.suggest(d, fieldID, current[len(current)-1].End)
}

// AddSlot inserts a slot and records the pre-fill for the field's next entry.
func (s *DefaultDraftService) AddSlot(ctx context.Context, operatorID, draftID, fieldID string, in models.SlotInput) (*DraftView, error) {
	return s.mutate(ctx, operatorID, draftID, func(d *models.Draft, reg *fields.Registry) error {
		added, err := reg.AddSlot(fieldID, in)
		if err != nil {
			return err
		}
		s.suggest(d, fieldID, added.End)
		return nil
	})
}

func (s *DefaultDraftService) EditSlot(ctx context.Context, operatorID, draftID, fieldID, slotID string, in models.SlotInput) (*DraftView, error) {
	return s.mutate(ctx, operatorID, draftID, func(d *models.Draft, reg *fields.Registry) error {
		if err := reg.EditSlot(fieldID, slotID, in); err != nil {
			return err
		}
		s.resuggest(d, reg, fieldID)
		return nil
	})
}

func (s *DefaultDraftService) RemoveSlot(ctx context.Context, operatorID, draftID, fieldID, slotID string) (*DraftView, error) {
	return s.mutate(ctx, operatorID, draftID, func(d *models.Draft, reg *fields.Registry) error {
		if err := reg.RemoveSlot(fieldID, slotID); err != nil {
			return err
		}
		s.resuggest(d, reg, fieldID)
		return nil
	})
}

// ApplyToAll overwrites every sibling's slots with the source field's slots.
// Callers must have the operator's confirmation.
func (s *DefaultDraftService) ApplyToAll(ctx context.Context, operatorID, draftID, sourceFieldID string) (*DraftView, error) {
	return s.mutate(ctx, operatorID, draftID, func(d *models.Draft, reg *fields.Registry) error {
		if _, err := propagation.ApplyToAll(reg, sourceFieldID); err != nil {
			return err
		}
		src, _ := reg.Slots(sourceFieldID)
		last := src[len(src)-1].End
		for _, id := range reg.IDs() {
			s.suggest(d, id, last)
		}
		return nil
	})
}
