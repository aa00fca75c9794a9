package config

import (
	"os"
	"path/filepath"
	"strings"
)

// SessionBackend selects where the session snapshot is persisted.
type SessionBackend string

const (
	// SessionBackendFile keeps the snapshot in a local JSON file.
	SessionBackendFile SessionBackend = "file"
	// SessionBackendRedis shares the snapshot between terminals via Redis.
	SessionBackendRedis SessionBackend = "redis"
)

// SessionConfig contains session persistence configuration.
type SessionConfig struct {
	// Backend is "file" (default) or "redis".
	Backend string `env:"BACKEND" envDefault:"file"`

	// FilePath overrides where the file backend writes the snapshot.
	// Empty means <user config dir>/activehq/session.json.
	FilePath string `env:"FILE" envDefault:""`

	// Redis connection settings for the redis backend.
	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`

	// RedisKey overrides the snapshot key, for several installations
	// sharing one Redis. Empty uses the adapter default.
	RedisKey string `env:"REDIS_KEY" envDefault:""`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	s.Backend = strings.ToLower(strings.TrimSpace(s.Backend))
	if s.Backend != string(SessionBackendRedis) {
		s.Backend = string(SessionBackendFile)
	}

	if s.FilePath == "" {
		s.FilePath = defaultSessionFile()
	}

	if s.RedisDB < 0 {
		s.RedisDB = 0
	}
}

// defaultSessionFile resolves the per-user snapshot location, falling back
// to the working directory when the platform config dir is unavailable.
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".activehq-session.json"
	}
	return filepath.Join(dir, "activehq", "session.json")
}
