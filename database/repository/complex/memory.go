package complexRepo

import (
	"context"
	"sort"
	"sync"

	"sportify/models"
)

type memoryComplexRepo struct {
	mu   sync.RWMutex
	recs map[string]models.ComplexRecord
}

// NewMemoryComplexRepo keeps submitted complexes in process memory.
func NewMemoryComplexRepo() ComplexRepository {
	return &memoryComplexRepo{recs: make(map[string]models.ComplexRecord)}
}

func (r *memoryComplexRepo) Create(_ context.Context, rec models.ComplexRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs[rec.ID] = rec
	return nil
}

func (r *memoryComplexRepo) GetByID(_ context.Context, id string) (*models.ComplexRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.recs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (r *memoryComplexRepo) ListByOperator(_ context.Context, operatorID string) ([]models.ComplexRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.ComplexRecord
	for _, rec := range r.recs {
		if rec.OperatorID == operatorID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
