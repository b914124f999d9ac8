package draftRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"sportify/models"
)

const draftKeyPrefix = "draft:"

type redisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDraftStore caches drafts as JSON under a sliding ttl.
func NewRedisDraftStore(client *redis.Client, ttl time.Duration) DraftStore {
	return &redisDraftStore{client: client, ttl: ttl}
}

func (s *redisDraftStore) Get(ctx context.Context, id string) (*models.Draft, error) {
	data, err := s.client.Get(ctx, draftKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	var d models.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse draft: %w", err)
	}
	return &d, nil
}

func (s *redisDraftStore) Save(ctx context.Context, d models.Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKeyPrefix+d.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache draft: %w", err)
	}
	return nil
}

func (s *redisDraftStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, draftKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
