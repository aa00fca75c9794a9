package file

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activehq/activehq-go/internal/domain/auth"
	"github.com/activehq/activehq-go/internal/domain/model"
)

func testSession() auth.Session {
	return auth.Session{
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

func TestSessionStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewSessionStore(path)
	require.NoError(t, err)

	ctx := context.Background()
	sess := testSession()
	require.NoError(t, store.Save(ctx, sess))

	loaded, found, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, sess, loaded)
}

func TestSessionStoreMissingFileIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never-written.json")
	store, err := NewSessionStore(path)
	require.NoError(t, err)

	_, found, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionStoreCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "session.json")
	store, err := NewSessionStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), testSession()))

	_, statErr := os.Stat(path)
	require.NoError(t, statErr)
}

func TestSessionStoreFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}

	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewSessionStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), testSession()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "token file must not be world-readable")
}

func TestSessionStoreRejectsCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewSessionStore(path)
	require.NoError(t, err)

	_, _, loadErr := store.Load(context.Background())
	require.Error(t, loadErr)
}

func TestSessionStoreOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewSessionStore(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, testSession()))
	require.NoError(t, store.Save(ctx, auth.Session{}))

	loaded, found, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, loaded.Authenticated)
	assert.Nil(t, loaded.User)
}

func TestNewSessionStoreRequiresPath(t *testing.T) {
	_, err := NewSessionStore("")
	require.Error(t, err)
}
