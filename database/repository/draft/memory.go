package draftRepo

import (
	"context"
	"sync"
	"time"

	"sportify/models"
)

type memoryEntry struct {
	draft     models.Draft
	expiresAt time.Time
}

type memoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]memoryEntry
	ttl    time.Duration
	now    func() time.Time
}

// NewMemoryDraftStore keeps drafts in process memory. A zero ttl never expires.
func NewMemoryDraftStore(ttl time.Duration) DraftStore {
	return &memoryDraftStore{
		drafts: make(map[string]memoryEntry),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *memoryDraftStore) Get(_ context.Context, id string) (*models.Draft, error) {
	s.mu.RLock()
	entry, ok := s.drafts[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if s.ttl > 0 && s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.drafts, id)
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	d := entry.draft.Clone()
	return &d, nil
}

func (s *memoryDraftStore) Save(_ context.Context, d models.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[d.ID] = memoryEntry{draft: d.Clone(), expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *memoryDraftStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}
