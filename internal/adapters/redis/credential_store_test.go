package redis

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/ticketdesk/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func TestCredentialStore_SaveLoadClear(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store, err := NewCredentialStore(client, "ticketdesk:", "authToken")
	require.NoError(t, err)
	ctx := context.Background()

	// Empty store reads as no credential
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Save(ctx, "tok-123"))

	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", got)

	// Verify it was stored with the prefix
	assert.Equal(t, int64(1), client.Exists(ctx, "ticketdesk:authToken").Val())

	require.NoError(t, store.Clear(ctx))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Clearing twice is fine
	require.NoError(t, store.Clear(ctx))
}

func TestCredentialStore_SaveOverwrites(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store, err := NewCredentialStore(client, "", "token")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "first"))
	require.NoError(t, store.Save(ctx, "second"))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestCredentialStore_SaveEmpty(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store, err := NewCredentialStore(client, "", "token")
	require.NoError(t, err)

	err = store.Save(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credential cannot be empty")
}

func TestNewCredentialStore_Validation(t *testing.T) {
	_, err := NewCredentialStore(nil, "", "token")
	require.Error(t, err)

	_, err = NewCredentialStore(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "p:", " ")
	require.Error(t, err)
}
