package config

import (
	"strings"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfigDefaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != "http://localhost:8000/api/v1" {
		t.Errorf("unexpected default base url: %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("unexpected default timeout: %v", cfg.API.Timeout)
	}
	if cfg.Session.Backend != string(SessionBackendFile) {
		t.Errorf("unexpected default session backend: %q", cfg.Session.Backend)
	}
	if cfg.Session.FilePath == "" {
		t.Error("expected a resolved default session file path")
	}
}

func TestAppConfigFromEnv(t *testing.T) {
	t.Setenv("ACTIVEHQ_API_URL", "https://api.example.test/api/v1/")
	t.Setenv("ACTIVEHQ_HTTP_TIMEOUT", "5s")
	t.Setenv("ACTIVEHQ_SESSION_BACKEND", "Redis")
	t.Setenv("ACTIVEHQ_SESSION_REDIS_ADDR", "redis.example.test:6380")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != "https://api.example.test/api/v1" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.API.Timeout)
	}
	if cfg.Session.Backend != string(SessionBackendRedis) {
		t.Errorf("expected backend normalised to redis, got %q", cfg.Session.Backend)
	}
	if cfg.Session.RedisAddr != "redis.example.test:6380" {
		t.Errorf("unexpected redis addr: %q", cfg.Session.RedisAddr)
	}
}

func TestAPIConfigSanitizeClampsTimeout(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{name: "too small", in: 10 * time.Millisecond, want: time.Second},
		{name: "too large", in: time.Hour, want: 5 * time.Minute},
		{name: "in range", in: 45 * time.Second, want: 45 * time.Second},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := APIConfig{BaseURL: "http://localhost:8000/api/v1", Timeout: tc.in}
			cfg.Sanitize()
			if cfg.Timeout != tc.want {
				t.Errorf("got %v, want %v", cfg.Timeout, tc.want)
			}
		})
	}
}

func TestSessionConfigSanitizeUnknownBackend(t *testing.T) {
	cfg := SessionConfig{Backend: "etcd"}
	cfg.Sanitize()
	if cfg.Backend != string(SessionBackendFile) {
		t.Errorf("unknown backend should fall back to file, got %q", cfg.Backend)
	}
	if !strings.HasSuffix(cfg.FilePath, "session.json") && cfg.FilePath != ".activehq-session.json" {
		t.Errorf("unexpected default session file: %q", cfg.FilePath)
	}
}
