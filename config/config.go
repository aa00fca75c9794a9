package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: API endpoint configuration
//   - session.go: Session persistence configuration
type AppConfig struct {
	// IsDev enables development behaviour (debug logging).
	IsDev bool `env:"DEV" envDefault:"false"`

	// API endpoint configuration
	API APIConfig `envPrefix:"ACTIVEHQ_"`

	// Session persistence configuration
	Session SessionConfig `envPrefix:"ACTIVEHQ_SESSION_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Session.Sanitize()
}
