package draft

import (
	"context"
	"time"

	"go.uber.org/zap"

	"sportify/models"
	"sportify/services/fields"
	"sportify/services/submission"
	"sportify/services/wizard"
)

const statusSaveTimeout = 5 * time.Second

// Submit assembles and sends the draft. Only one submission may be pending
// per draft; on failure the draft returns to editing untouched.
func (s *DefaultDraftService) Submit(ctx context.Context, operatorID, draftID string) (*models.SubmissionResult, error) {
	d, err := s.beginSubmit(ctx, operatorID, draftID)
	if err != nil {
		return nil, err
	}

	result, err := s.deliver(ctx, operatorID, *d)

	// The status must be released even when the caller has gone away.
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), statusSaveTimeout)
	defer cancel()

	unlock := s.lock(draftID)
	defer unlock()
	if err != nil {
		d.Status = models.DraftEditing
		if saveErr := s.Store.Save(saveCtx, *d); saveErr != nil {
			s.Logger.Error("Failed to release draft after submission failure", zap.String("draftID", draftID), zap.Error(saveErr))
		}
		s.Logger.Warn("Draft submission failed", zap.String("draftID", draftID), zap.Error(err))
		return nil, err
	}

	d.Status = models.DraftSubmitted
	d.UpdatedAt = time.Now().UTC()
	if err := s.Store.Save(saveCtx, *d); err != nil {
		s.Logger.Error("Failed to mark draft submitted", zap.String("draftID", draftID), zap.Error(err))
	}
	s.locks.Delete(draftID)
	s.Logger.Info("Draft submitted", zap.String("draftID", draftID), zap.String("complexID", result.ID))
	return result, nil
}

func (s *DefaultDraftService) beginSubmit(ctx context.Context, operatorID, draftID string) (*models.Draft, error) {
	unlock := s.lock(draftID)
	defer unlock()

	d, err := s.load(ctx, operatorID, draftID)
	if err != nil {
		return nil, err
	}
	if err := editable(d); err != nil {
		return nil, err
	}
	if d.Step != models.StepConfirmation {
		return nil, models.Reject(models.RejectNotAtConfirmation, "draft is at step %s", d.Step)
	}
	check := wizard.Evaluate(d.Complex, fields.New(d.Fields, s.NewID))
	for step := models.StepComplexInfo; step < models.StepConfirmation; step++ {
		if !check.CanLeave(step) {
			return nil, models.Reject(models.RejectStepIncomplete, "step %s is no longer complete", step)
		}
	}

	d.Status = models.DraftSubmitting
	if err := s.Store.Save(ctx, *d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DefaultDraftService) deliver(ctx context.Context, operatorID string, d models.Draft) (*models.SubmissionResult, error) {
	payload, err := submission.Assemble(ctx, d, s.Locations)
	if err != nil {
		if _, ok := models.AsRejection(err); ok {
			return nil, err
		}
		return nil, &submission.SubmissionError{Message: "could not assemble payload", Err: err}
	}
	return s.Submitter.Submit(ctx, operatorID, payload)
}
