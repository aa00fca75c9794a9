package file

// Package file persists the session snapshot as a single JSON file, the
// default backend for a single-terminal installation.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/activehq/activehq-go/internal/domain/auth"
)

// SessionStore writes the session snapshot to one JSON file. Writes go
// through a temp file and rename so a crash never leaves a torn snapshot.
type SessionStore struct {
	path string
}

// NewSessionStore creates a file-backed session store at path.
func NewSessionStore(path string) (*SessionStore, error) {
	if path == "" {
		return nil, errors.New("session file path is required")
	}
	return &SessionStore{path: path}, nil
}

// Load reads the stored snapshot. A missing file is not an error; it just
// means no session has been persisted yet.
func (s *SessionStore) Load(_ context.Context) (auth.Session, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return auth.Session{}, false, nil
		}
		return auth.Session{}, false, fmt.Errorf("read session file: %w", err)
	}

	var sess auth.Session
	if unmarshalErr := json.Unmarshal(data, &sess); unmarshalErr != nil {
		return auth.Session{}, false, fmt.Errorf("unmarshal session file: %w", unmarshalErr)
	}
	return sess, true, nil
}

// Save overwrites the stored snapshot. The file carries tokens, so it is
// written 0600 under a 0700 directory.
func (s *SessionStore) Save(_ context.Context, sess auth.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if mkErr := os.MkdirAll(dir, 0o700); mkErr != nil {
		return fmt.Errorf("create session dir: %w", mkErr)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if err := writeAndClose(tmp, data); err != nil {
		if rmErr := os.Remove(tmpName); rmErr != nil {
			return errors.Join(err, fmt.Errorf("remove temp session file: %w", rmErr))
		}
		return err
	}

	if chErr := os.Chmod(tmpName, 0o600); chErr != nil {
		return fmt.Errorf("chmod session file: %w", chErr)
	}
	if renameErr := os.Rename(tmpName, s.path); renameErr != nil {
		return fmt.Errorf("replace session file: %w", renameErr)
	}
	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		closeErr := f.Close()
		if closeErr != nil {
			return errors.Join(
				fmt.Errorf("write session file: %w", err),
				fmt.Errorf("close temp session file: %w", closeErr),
			)
		}
		return fmt.Errorf("write session file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}
	return nil
}
