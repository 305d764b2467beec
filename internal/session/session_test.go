package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodecRoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret")

	token, cookie, err := codec.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := codec.Verify(cookie)
	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestTokenCodecRejectsForgedCookie(t *testing.T) {
	codec := NewTokenCodec("secret")
	_, cookie, err := codec.Issue()
	require.NoError(t, err)

	other := NewTokenCodec("different-secret")
	_, err = other.Verify(cookie)
	assert.Error(t, err)

	_, err = codec.Verify("no-signature")
	assert.Error(t, err)

	_, err = codec.Verify(".orphan-signature")
	assert.Error(t, err)
}

func TestMemoryStoreLifecycle(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(func() time.Time { return now })
	ctx := context.Background()

	err := store.Save(ctx, "tok", Data{UserID: "u1", CreatedAt: now}, time.Hour)
	require.NoError(t, err)

	data, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", data.UserID)

	require.NoError(t, store.Destroy(ctx, "tok"))
	_, err = store.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok", Data{UserID: "u1"}, time.Minute))

	now = now.Add(2 * time.Minute)
	_, err := store.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreTTLIsFixed(t *testing.T) {
	// Reading a session must not push its deadline forward.
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok", Data{UserID: "u1"}, time.Minute))

	now = now.Add(45 * time.Second)
	_, err := store.Get(ctx, "tok")
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	_, err = store.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)
}
