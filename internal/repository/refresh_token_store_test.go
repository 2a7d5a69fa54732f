package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (RefreshTokenStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRefreshTokenStore(client), mr
}

func TestRefreshStoreSaveAndVerify(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "alice", "jti-1", time.Hour))
	assert.NoError(t, store.Verify(ctx, "alice", "jti-1"))
	assert.ErrorIs(t, store.Verify(ctx, "alice", "jti-other"), ErrRefreshTokenUnknown)
	assert.ErrorIs(t, store.Verify(ctx, "bob", "jti-1"), ErrRefreshTokenUnknown)
}

func TestRefreshStoreRotationReplacesCurrentID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "alice", "jti-1", time.Hour))
	require.NoError(t, store.Save(ctx, "alice", "jti-2", time.Hour))

	assert.NoError(t, store.Verify(ctx, "alice", "jti-2"))
	assert.ErrorIs(t, store.Verify(ctx, "alice", "jti-1"), ErrRefreshTokenUnknown)
}

func TestRefreshStoreRevoke(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "alice", "jti-1", time.Hour))
	require.NoError(t, store.Revoke(ctx, "alice"))
	assert.ErrorIs(t, store.Verify(ctx, "alice", "jti-1"), ErrRefreshTokenUnknown)
}

func TestRefreshStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "alice", "jti-1", time.Minute))
	assert.NoError(t, store.Verify(ctx, "alice", "jti-1"))

	mr.FastForward(2 * time.Minute)
	assert.ErrorIs(t, store.Verify(ctx, "alice", "jti-1"), ErrRefreshTokenUnknown)
}
