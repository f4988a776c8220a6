package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Remote ticket API configuration
//   - store.go: Credential store configuration
//   - redis.go: Redis connection configuration
//   - notifications.go: Notification queue configuration
//   - observability.go: Logging and metrics configuration
type AppConfig struct {
	// IsDev controls development mode behavior (text logs, debug level).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Remote API configuration
	API APIConfig `envPrefix:"TICKETDESK_API_"`

	// Credential store configuration
	Store StoreConfig `envPrefix:"TICKETDESK_STORE_"`

	// Redis configuration (used when Store.Mode=redis)
	Redis RedisConfig `envPrefix:"REDIS_"`

	// Notification queue configuration
	Notifications NotificationConfig `envPrefix:"TICKETDESK_NOTIFICATION_"`

	// Observability configuration
	Observability ObservabilityConfig `envPrefix:"TICKETDESK_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Store.Sanitize()
	c.Redis.Sanitize()
	c.Notifications.Sanitize()

	// Check NODE_ENV for dev mode before observability picks its defaults.
	c.detectDevMode()
	c.Observability.Sanitize(c.IsDev)
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// This is called by Sanitize() to ensure IsDev is set correctly.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
