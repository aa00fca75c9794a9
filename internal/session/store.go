// Package session holds the process-wide authenticated session: who is
// signed in, the tenant gym, and the current token pair. The store is the
// single writer of that state; callers mutate it only through the operations
// below, never by hand.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/activehq/activehq-go/internal/domain/auth"
	"github.com/activehq/activehq-go/internal/domain/model"
)

// Persister stores the session snapshot durably so it survives restarts.
// Implementations live under internal/adapters.
type Persister interface {
	// Load returns the stored snapshot, with found=false when none exists.
	Load(ctx context.Context) (auth.Session, bool, error)
	// Save overwrites the stored snapshot, including the cleared state
	// written by Logout.
	Save(ctx context.Context, sess auth.Session) error
}

// Options groups dependencies for the Store.
type Options struct {
	Persister Persister    // Optional: nil keeps the session in memory only
	Logger    *slog.Logger // Optional: structured logger
}

// Store is a mutex-guarded singleton session holder. Reads are synchronous
// and cheap; every mutation persists the new snapshot best-effort.
type Store struct {
	mu        sync.Mutex
	current   auth.Session
	persister Persister
	logger    *slog.Logger
}

// NewStore constructs a Store. The session starts empty; call Restore to
// load a previously persisted snapshot.
func NewStore(opts Options) *Store {
	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "session_store")
	}
	return &Store{
		persister: opts.Persister,
		logger:    logger,
	}
}

// Restore replaces the in-memory session with the persisted snapshot, if one
// exists. A snapshot that violates the session invariant is discarded rather
// than restored.
func (s *Store) Restore(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}

	sess, found, err := s.persister.Load(ctx)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if !sess.Valid() {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "discarding persisted session with missing access token")
		}
		return nil
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current session. Callers must treat the
// referenced User/Gym records as read-only.
func (s *Store) Snapshot() auth.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Login atomically sets user, gym and both tokens and marks the session
// authenticated. The caller is expected to have validated the credentials
// via a successful login call already.
func (s *Store) Login(ctx context.Context, user *model.User, gym *model.Gym, accessToken, refreshToken string) {
	s.mu.Lock()
	s.current = auth.Session{
		User:          user,
		Gym:           gym,
		AccessToken:   accessToken,
		RefreshToken:  refreshToken,
		Authenticated: true,
	}
	snapshot := s.current
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// SetTokens replaces only the token pair. User, gym and the authenticated
// flag are untouched; the refresh flow uses this after minting new tokens.
func (s *Store) SetTokens(ctx context.Context, accessToken, refreshToken string) {
	s.mu.Lock()
	s.current.AccessToken = accessToken
	s.current.RefreshToken = refreshToken
	snapshot := s.current
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// SetUser replaces the user profile without touching credentials.
func (s *Store) SetUser(ctx context.Context, user *model.User) {
	s.mu.Lock()
	s.current.User = user
	snapshot := s.current
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// SetGym replaces the gym profile without touching credentials.
func (s *Store) SetGym(ctx context.Context, gym *model.Gym) {
	s.mu.Lock()
	s.current.Gym = gym
	snapshot := s.current
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// Logout clears every field and persists the cleared snapshot, overwriting
// the prior durable state.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = auth.Session{}
	snapshot := s.current
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// persist writes the snapshot best-effort. Persistence failures are logged,
// never surfaced: the in-memory session is already updated and remains the
// source of truth for this process.
func (s *Store) persist(ctx context.Context, snapshot auth.Session) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(ctx, snapshot); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "persist session snapshot failed", "error", err)
	}
}
