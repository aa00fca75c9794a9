package config

import (
	"strings"
	"time"
)

// APIConfig contains the ActiveHQ API endpoint configuration.
type APIConfig struct {
	// BaseURL is the API root including the version prefix. The hosted
	// deployment serves the API under /api/v1 next to the dashboard; a
	// terminal client needs the host spelled out.
	BaseURL string `env:"API_URL" envDefault:"http://localhost:8000/api/v1"`

	// Timeout is the budget for one API round-trip.
	Timeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")

	// Clamp the timeout to something that can actually complete a call
	// without hanging the terminal indefinitely.
	if a.Timeout < time.Second {
		a.Timeout = time.Second
	}
	if a.Timeout > 5*time.Minute {
		a.Timeout = 5 * time.Minute
	}
}
