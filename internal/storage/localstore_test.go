package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirvedev/ilan-backend/internal/models"
)

func newTestLocalStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLocalStoreCreateAndGet(t *testing.T) {
	store := newTestLocalStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, models.Listing{
		Title:       "Test Profili",
		Description: "Açıklama",
		PhoneNumber: "905551234567",
		Height:      "170 cm",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got := store.GetByID(ctx, created.ID)
	require.NotNil(t, got)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.PhoneNumber, got.PhoneNumber)
	assert.Equal(t, created.Height, got.Height)
}

func TestLocalStoreListNewestFirst(t *testing.T) {
	store := newTestLocalStore(t)
	ctx := context.Background()

	first, err := store.Create(ctx, models.Listing{Title: "first", Description: "d", PhoneNumber: "1234567890"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := store.Create(ctx, models.Listing{Title: "second", Description: "d", PhoneNumber: "1234567890"})
	require.NoError(t, err)

	all := store.ListAll(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestLocalStoreUpdatePreservesIDAndCreatedAt(t *testing.T) {
	store := newTestLocalStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, models.Listing{Title: "orig", Description: "d", PhoneNumber: "1234567890"})
	require.NoError(t, err)

	// The payload tries to smuggle its own id and created_at.
	updated, err := store.Update(ctx, created.ID, models.Listing{
		ID:          "spoofed-id",
		CreatedAt:   time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
		Title:       "edited",
		Description: "d2",
		PhoneNumber: "0987654321",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "edited", updated.Title)
}

func TestLocalStoreUpdateMissing(t *testing.T) {
	store := newTestLocalStore(t)
	_, err := store.Update(context.Background(), "no-such-id", models.Listing{Title: "x"})
	assert.Error(t, err)
}

func TestLocalStoreDelete(t *testing.T) {
	store := newTestLocalStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, models.Listing{Title: "t", Description: "d", PhoneNumber: "1234567890"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))
	assert.Nil(t, store.GetByID(ctx, created.ID))
	assert.Error(t, store.Delete(ctx, created.ID))
}
