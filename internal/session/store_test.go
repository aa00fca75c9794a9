package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/activehq/activehq-go/internal/domain/auth"
	"github.com/activehq/activehq-go/internal/domain/model"
	"github.com/activehq/activehq-go/internal/mocks"
)

func testUser() *model.User {
	return &model.User{
		ID:    "user-1",
		GymID: "gym-1",
		Email: "owner@ironworks.example",
		Name:  "Priya Sharma",
		Role:  model.RoleOwner,
	}
}

func testGym() *model.Gym {
	return &model.Gym{
		ID:   "gym-1",
		Name: "Ironworks Fitness",
		Slug: "ironworks-fitness",
	}
}

func TestLoginSetsEverythingAtOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persister := mocks.NewMockPersister(ctrl)
	store := NewStore(Options{Persister: persister})

	var saved auth.Session
	persister.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sess auth.Session) error {
			saved = sess
			return nil
		})

	store.Login(context.Background(), testUser(), testGym(), "access-1", "refresh-1")

	snap := store.Snapshot()
	require.True(t, snap.Authenticated)
	require.Equal(t, "access-1", snap.AccessToken)
	require.Equal(t, "refresh-1", snap.RefreshToken)
	require.Equal(t, testUser().ID, snap.User.ID)
	require.Equal(t, testGym().ID, snap.Gym.ID)

	assert.Equal(t, snap, saved, "persisted snapshot must match the in-memory session")
}

func TestSetTokensLeavesUserAndGymAlone(t *testing.T) {
	store := NewStore(Options{})
	ctx := context.Background()

	store.Login(ctx, testUser(), testGym(), "access-1", "refresh-1")
	store.SetTokens(ctx, "access-2", "refresh-2")

	snap := store.Snapshot()
	assert.Equal(t, "access-2", snap.AccessToken)
	assert.Equal(t, "refresh-2", snap.RefreshToken)
	assert.True(t, snap.Authenticated)
	require.NotNil(t, snap.User)
	assert.Equal(t, testUser().ID, snap.User.ID)
	require.NotNil(t, snap.Gym)
	assert.Equal(t, testGym().ID, snap.Gym.ID)
}

func TestLogoutClearsAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persister := mocks.NewMockPersister(ctrl)
	store := NewStore(Options{Persister: persister})
	ctx := context.Background()

	persister.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	store.Login(ctx, testUser(), testGym(), "access-1", "refresh-1")

	persister.EXPECT().Save(gomock.Any(), auth.Session{}).Return(nil)
	store.Logout(ctx)

	snap := store.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.Empty(t, snap.AccessToken)
	assert.Empty(t, snap.RefreshToken)
	assert.Nil(t, snap.User)
	assert.Nil(t, snap.Gym)
}

func TestPersistFailureDoesNotLoseTheSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persister := mocks.NewMockPersister(ctrl)
	persister.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	store := NewStore(Options{Persister: persister})
	store.Login(context.Background(), testUser(), testGym(), "access-1", "refresh-1")

	snap := store.Snapshot()
	assert.True(t, snap.Authenticated, "in-memory session must survive a persistence failure")
	assert.Equal(t, "access-1", snap.AccessToken)
}

func TestRestoreLoadsPersistedSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persisted := auth.Session{
		User:          testUser(),
		Gym:           testGym(),
		AccessToken:   "access-1",
		RefreshToken:  "refresh-1",
		Authenticated: true,
	}

	persister := mocks.NewMockPersister(ctrl)
	persister.EXPECT().Load(gomock.Any()).Return(persisted, true, nil)

	store := NewStore(Options{Persister: persister})
	require.NoError(t, store.Restore(context.Background()))

	assert.Equal(t, persisted, store.Snapshot())
}

func TestRestoreWithoutSnapshotStaysSignedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persister := mocks.NewMockPersister(ctrl)
	persister.EXPECT().Load(gomock.Any()).Return(auth.Session{}, false, nil)

	store := NewStore(Options{Persister: persister})
	require.NoError(t, store.Restore(context.Background()))

	assert.False(t, store.Snapshot().Authenticated)
}

func TestRestoreDiscardsInvalidSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Authenticated but missing the access token: the invariant is broken.
	broken := auth.Session{
		User:          testUser(),
		Authenticated: true,
	}

	persister := mocks.NewMockPersister(ctrl)
	persister.EXPECT().Load(gomock.Any()).Return(broken, true, nil)

	store := NewStore(Options{Persister: persister})
	require.NoError(t, store.Restore(context.Background()))

	snap := store.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.Nil(t, snap.User)
}

func TestRestorePropagatesLoadErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persister := mocks.NewMockPersister(ctrl)
	persister.EXPECT().Load(gomock.Any()).Return(auth.Session{}, false, errors.New("backend down"))

	store := NewStore(Options{Persister: persister})
	require.Error(t, store.Restore(context.Background()))
}

func TestConcurrentMutationsKeepTheInvariant(t *testing.T) {
	store := NewStore(Options{})
	ctx := context.Background()

	store.Login(ctx, testUser(), testGym(), "access-0", "refresh-0")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.SetTokens(ctx, "access-n", "refresh-n")
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap := store.Snapshot()
			assert.True(t, snap.Valid())
		}()
	}
	wg.Wait()

	snap := store.Snapshot()
	assert.True(t, snap.Authenticated)
	assert.Equal(t, "access-n", snap.AccessToken)
}
