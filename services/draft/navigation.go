package draft

import (
	"context"

	"sportify/models"
	"sportify/services/fields"
	"sportify/services/wizard"
)

// Next advances the wizard when the current step is complete.
func (s *DefaultDraftService) Next(ctx context.Context, operatorID, draftID string) (*DraftView, error) {
	return s.mutate(ctx, operatorID, draftID, func(d *models.Draft, reg *fields.Registry) error {
		step, err := wizard.Next(d.Step, wizard.Evaluate(d.Complex, reg))
		if err != nil {
			return err
		}
		d.Step = step
		return nil
	})
}

// Back always moves one step back. From the first step the view reports Exit
// and the draft is left as it was.
func (s *DefaultDraftService) Back(ctx context.Context, operatorID, draftID string) (*DraftView, error) {
	exit := false
	v, err := s.mutate(ctx, operatorID, draftID, func(d *models.Draft, _ *fields.Registry) error {
		d.Step, exit = wizard.Back(d.Step)
		return nil
	})
	if err != nil {
		return nil, err
	}
	v.Exit = exit
	return v, nil
}
