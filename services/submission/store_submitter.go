package submission

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	complexRepo "sportify/database/repository/complex"
	"sportify/models"
)

// StoreSubmitter writes the payload straight into the complex repository.
type StoreSubmitter struct {
	Repo   complexRepo.ComplexRepository
	Logger *zap.Logger
}

func (s *StoreSubmitter) Submit(ctx context.Context, operatorID string, payload models.SubmissionPayload) (*models.SubmissionResult, error) {
	rec := models.ComplexRecord{
		ID:         uuid.New().String(),
		OperatorID: operatorID,
		Payload:    payload,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		s.Logger.Error("Failed to store submitted complex", zap.String("operatorID", operatorID), zap.Error(err))
		return nil, &SubmissionError{Message: "could not store complex", Err: err}
	}
	return &models.SubmissionResult{Success: true, Message: "complex created", ID: rec.ID}, nil
}
