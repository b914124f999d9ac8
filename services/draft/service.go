// Package draft keeps operator drafts and applies wizard intents to them.
// Every intent works on a clone and is stored only when it succeeds, so a
// rejection leaves the previous snapshot in place.
package draft

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	draftRepo "sportify/database/repository/draft"
	"sportify/models"
	"sportify/services/fields"
	"sportify/services/wizard"
)

// ErrDraftNotFound is returned for unknown, expired or foreign drafts.
var ErrDraftNotFound = errors.New("draft not found")

func (s *DefaultDraftService) lock(draftID string) func() {
	m, _ := s.locks.LoadOrStore(draftID, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *DefaultDraftService) load(ctx context.Context, operatorID, draftID string) (*models.Draft, error) {
	d, err := s.Store.Get(ctx, draftID)
	if errors.Is(err, draftRepo.ErrNotFound) {
		// expired or never existed
		s.locks.Delete(draftID)
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}
	if d.OperatorID != operatorID {
		return nil, ErrDraftNotFound
	}
	return d, nil
}

func view(d models.Draft) *DraftView {
	reg := fields.New(d.Fields, func() string { return "" })
	return &DraftView{
		Draft:   d,
		Check:   wizard.Evaluate(d.Complex, reg),
		Summary: d.Summary(),
	}
}

func editable(d *models.Draft) error {
	switch d.Status {
	case models.DraftSubmitting:
		return models.Reject(models.RejectSubmissionInFlight, "draft %s is being submitted", d.ID)
	case models.DraftSubmitted:
		return models.Reject(models.RejectDraftConsumed, "draft %s was already submitted", d.ID)
	}
	return nil
}

// mutate loads the draft, applies fn to a clone and stores the clone when fn succeeds.
func (s *DefaultDraftService) mutate(ctx context.Context, operatorID, draftID string, fn func(d *models.Draft, reg *fields.Registry) error) (*DraftView, error) {
	unlock := s.lock(draftID)
	defer unlock()

	current, err := s.load(ctx, operatorID, draftID)
	if err != nil {
		return nil, err
	}
	if err := editable(current); err != nil {
		return nil, err
	}

	next := current.Clone()
	reg := fields.New(next.Fields, s.NewID)
	if err := fn(&next, reg); err != nil {
		return nil, err
	}
	next.Fields = reg.Fields()
	next.UpdatedAt = time.Now().UTC()

	if err := s.Store.Save(ctx, next); err != nil {
		s.Logger.Error("Failed to save draft", zap.String("draftID", draftID), zap.Error(err))
		return nil, err
	}
	return view(next), nil
}

func (s *DefaultDraftService) Create(ctx context.Context, operatorID string) (*DraftView, error) {
	now := time.Now().UTC()
	d := models.Draft{
		ID:          s.NewID(),
		OperatorID:  operatorID,
		Step:        models.StepComplexInfo,
		Status:      models.DraftEditing,
		Suggestions: map[string]models.SlotSuggestion{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	d.Fields = fields.New(nil, s.NewID).Fields()

	if err := s.Store.Save(ctx, d); err != nil {
		s.Logger.Error("Failed to create draft", zap.String("operatorID", operatorID), zap.Error(err))
		return nil, err
	}
	s.Logger.Info("Draft created", zap.String("draftID", d.ID), zap.String("operatorID", operatorID))
	return view(d), nil
}

func (s *DefaultDraftService) Get(ctx context.Context, operatorID, draftID string) (*DraftView, error) {
	d, err := s.load(ctx, operatorID, draftID)
	if err != nil {
		return nil, err
	}
	return view(*d), nil
}

func (s *DefaultDraftService) Discard(ctx context.Context, operatorID, draftID string) error {
	unlock := s.lock(draftID)
	defer unlock()

	d, err := s.load(ctx, operatorID, draftID)
	if err != nil {
		return err
	}
	if d.Status == models.DraftSubmitting {
		return models.Reject(models.RejectSubmissionInFlight, "draft %s is being submitted", draftID)
	}
	if err := s.Store.Delete(ctx, draftID); err != nil {
		return err
	}
	s.locks.Delete(draftID)
	s.Logger.Info("Draft discarded", zap.String("draftID", draftID))
	return nil
}

func (s *DefaultDraftService) UpdateComplex(ctx context.Context, operatorID, draftID string, info models.ComplexInfo) (*DraftView, error) {
	return s.mutate(ctx, operatorID, draftID, func(d *models.Draft, _ *fields.Registry) error {
		d.Complex = info
		return nil
	})
}
