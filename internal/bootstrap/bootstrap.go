// Package bootstrap wires configuration, logging, session persistence and
// the API client together for the CLI entrypoint.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/activehq/activehq-go/config"
	fileadapter "github.com/activehq/activehq-go/internal/adapters/file"
	redisadapter "github.com/activehq/activehq-go/internal/adapters/redis"
	"github.com/activehq/activehq-go/internal/api"
	"github.com/activehq/activehq-go/internal/session"
)

// InitLogger initializes the structured logger. The CLI prints results on
// stdout, so diagnostics go to stderr.
func InitLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (config.AppConfig, error) {
	// Load .env file if it exists (development)
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return config.AppConfig{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg config.AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// OpenSession builds the session store on the configured backend and
// restores the persisted snapshot. The returned closer releases the Redis
// connection when that backend is in use; it is a no-op otherwise.
func OpenSession(ctx context.Context, cfg config.SessionConfig, logger *slog.Logger) (*session.Store, func() error, error) {
	persister, closer, err := openPersister(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	store := session.NewStore(session.Options{
		Persister: persister,
		Logger:    logger,
	})
	if restoreErr := store.Restore(ctx); restoreErr != nil {
		// A corrupt or unreadable snapshot should not brick the CLI;
		// start signed out and let the user log in again.
		if logger != nil {
			logger.WarnContext(ctx, "restore persisted session failed", "error", restoreErr)
		}
	}
	return store, closer, nil
}

func openPersister(ctx context.Context, cfg config.SessionConfig) (session.Persister, func() error, error) {
	noop := func() error { return nil }

	switch config.SessionBackend(cfg.Backend) {
	case config.SessionBackendRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			if closeErr := client.Close(); closeErr != nil {
				return nil, nil, errors.Join(
					fmt.Errorf("connect session redis at %s: %w", cfg.RedisAddr, err),
					fmt.Errorf("close redis client: %w", closeErr),
				)
			}
			return nil, nil, fmt.Errorf("connect session redis at %s: %w", cfg.RedisAddr, err)
		}

		return redisadapter.NewSessionStoreWithKey(client, cfg.RedisKey), client.Close, nil

	default:
		store, err := fileadapter.NewSessionStore(cfg.FilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open session file store: %w", err)
		}
		return store, noop, nil
	}
}

// NewAPIClient builds the authenticated API client on top of the session store.
func NewAPIClient(cfg config.APIConfig, store *session.Store, logger *slog.Logger) (*api.Client, error) {
	client, err := api.NewClient(api.Config{
		BaseURL: cfg.BaseURL,
		Session: store,
		Timeout: cfg.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}
	return client, nil
}
