package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidaze/internal/app/middleware"
	domainauth "holidaze/internal/domain/auth"
	"holidaze/internal/domain/booking"
	domainfavorites "holidaze/internal/domain/favorites"
)

func TestIdempotencyStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewIdempotencyStore(time.Hour)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, middleware.IdempotencyRecord{Key: "booking.create:k1", Payload: []byte(`{}`), OccurredAt: now}))

	rec, ok, err := store.Get(ctx, "booking.create:k1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{}`), rec.Payload)

	now = now.Add(2 * time.Hour)
	_, ok, err = store.Get(ctx, "booking.create:k1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, middleware.IdempotencyRecord{Key: "booking.create:k2", OccurredAt: now}))
	assert.Len(t, store.items, 1)
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore()
	store.now = func() time.Time { return now }

	session, err := domainauth.NewSession(domainauth.CreateSessionParams{Token: "t1", Name: "Kari", TTL: time.Hour, Now: now})
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Kari", got.Name)

	got.Name = "changed"
	again, err := store.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Kari", again.Name)

	now = now.Add(2 * time.Hour)
	_, err = store.Get(ctx, "t1")
	assert.ErrorIs(t, err, domainauth.ErrSessionNotFound)

	require.NoError(t, store.Delete(ctx, "t1"))
	assert.ErrorIs(t, store.Delete(ctx, "t1"), domainauth.ErrSessionNotFound)
	assert.ErrorIs(t, store.Save(ctx, nil), domainauth.ErrTokenRequired)
}

func TestFavoritesRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFavoritesRepository()

	empty, err := repo.Get(ctx, "kari")
	require.NoError(t, err)
	assert.Empty(t, empty.VenueIDs)

	list := domainfavorites.NewList("kari")
	list.VenueIDs = []booking.VenueID{"v1", "v2"}
	require.NoError(t, repo.Save(ctx, list))
	list.VenueIDs[0] = "mutated"

	got, err := repo.Get(ctx, "kari")
	require.NoError(t, err)
	assert.Equal(t, []booking.VenueID{"v1", "v2"}, got.VenueIDs)

	other, err := repo.Get(ctx, "ola")
	require.NoError(t, err)
	assert.Empty(t, other.VenueIDs)
}
