package draftRepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportify/models"
)

func TestMemoryDraftStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDraftStore(0)

	d := models.Draft{ID: "d1", Fields: []models.Field{{ID: "f1", Name: "A"}}}
	require.NoError(t, store.Save(ctx, d))

	got, err := store.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Fields[0].Name)

	got.Fields[0].Name = "changed"
	again, _ := store.Get(ctx, "d1")
	assert.Equal(t, "A", again.Fields[0].Name)

	require.NoError(t, store.Delete(ctx, "d1"))
	_, err = store.Get(ctx, "d1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDraftStore_Expires(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryDraftStore(time.Minute).(*memoryDraftStore)
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(ctx, models.Draft{ID: "d1"}))
	_, err := s.Get(ctx, "d1")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = s.Get(ctx, "d1")
	assert.ErrorIs(t, err, ErrNotFound)
}
