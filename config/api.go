package config

import (
	"strings"
	"time"
)

const defaultAPIBaseURL = "http://localhost:8000"

// APIConfig contains the remote ticket API configuration.
type APIConfig struct {
	// BaseURL is prepended to every endpoint path (e.g. "/api/tickets").
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds a single request. Zero keeps the transport default.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"0s"`

	// UserAgent is sent on every request.
	UserAgent string `env:"USER_AGENT" envDefault:"ticketdesk"`

	// CookieJar enables a public-suffix scoped cookie jar on the HTTP client.
	CookieJar bool `env:"COOKIE_JAR" envDefault:"true"`
}

// Sanitize trims values and restores defaults for blank fields.
func (c *APIConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = defaultAPIBaseURL
	}
	if c.Timeout < 0 {
		c.Timeout = 0
	}
	c.UserAgent = strings.TrimSpace(c.UserAgent)
}
