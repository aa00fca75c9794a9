package redis

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/activehq/activehq-go/internal/domain/auth"
	"github.com/activehq/activehq-go/internal/domain/model"
	"github.com/activehq/activehq-go/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func testSession() domainauth.Session {
	return domainauth.Session{
		User: &model.User{
			ID:    "user-1",
			Email: "owner@ironworks.example",
			Name:  "Priya Sharma",
			Role:  model.RoleOwner,
		},
		Gym: &model.Gym{
			ID:   "gym-1",
			Name: "Ironworks Fitness",
		},
		AccessToken:   "access-token",
		RefreshToken:  "refresh-token",
		Authenticated: true,
	}
}

func TestSessionStore_SaveAndLoad(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	sess := testSession()
	require.NoError(t, store.Save(ctx, sess))

	loaded, found, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, sess.AccessToken, loaded.AccessToken)
	assert.Equal(t, sess.RefreshToken, loaded.RefreshToken)
	assert.True(t, loaded.Authenticated)
	require.NotNil(t, loaded.User)
	assert.Equal(t, sess.User.Email, loaded.User.Email)
	require.NotNil(t, loaded.Gym)
	assert.Equal(t, sess.Gym.Name, loaded.Gym.Name)
}

func TestSessionStore_LoadMissing(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)

	_, found, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionStore_SaveOverwritesWithClearedState(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession()))
	require.NoError(t, store.Save(ctx, domainauth.Session{}))

	loaded, found, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, loaded.Authenticated)
	assert.Empty(t, loaded.AccessToken)
}

func TestSessionStore_CustomKeyIsolation(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	ctx := context.Background()
	first := NewSessionStoreWithKey(client, "activehq:session:branch-a")
	second := NewSessionStoreWithKey(client, "activehq:session:branch-b")

	require.NoError(t, first.Save(ctx, testSession()))

	_, found, err := second.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found, "stores on different keys must not see each other")
}

func TestSessionStore_EmptyKeyFallsBackToDefault(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStoreWithKey(client, "")
	assert.Equal(t, defaultKey, store.key)
}
