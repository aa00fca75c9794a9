package redis

// Package redis persists the session snapshot in Redis so several front-desk
// terminals can share one signed-in session.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/activehq/activehq-go/internal/domain/auth"
)

const defaultKey = "activehq:session"

// SessionStore keeps the session snapshot under a single fixed key. There is
// no TTL: token expiry is discovered by the server rejecting a request, not
// tracked client-side.
type SessionStore struct {
	client redis.UniversalClient
	key    string
}

// NewSessionStore creates a Redis-based session store on the default key.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return &SessionStore{
		client: client,
		key:    defaultKey,
	}
}

// NewSessionStoreWithKey creates a Redis session store on a custom key,
// for running several independent installations against one Redis.
func NewSessionStoreWithKey(client redis.UniversalClient, key string) *SessionStore {
	if key == "" {
		key = defaultKey
	}
	return &SessionStore{
		client: client,
		key:    key,
	}
}

// Load returns the stored snapshot, with found=false when the key is absent.
func (s *SessionStore) Load(ctx context.Context) (auth.Session, bool, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return auth.Session{}, false, nil
		}
		return auth.Session{}, false, fmt.Errorf("redis get: %w", err)
	}

	var sess auth.Session
	if unmarshalErr := json.Unmarshal(data, &sess); unmarshalErr != nil {
		return auth.Session{}, false, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}
	return sess, true, nil
}

// Save overwrites the stored snapshot, including the cleared state.
func (s *SessionStore) Save(ctx context.Context, sess auth.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, s.key, data, 0).Err()
}
