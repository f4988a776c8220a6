package config

import (
	"fmt"
	"log/slog"
	"strings"
)

const defaultMetricsNamespace = "ticketdesk"

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// UnmarshalText implements encoding.TextUnmarshaler for LogFormat.
func (f *LogFormat) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "", "json", "text":
		*f = LogFormat(v)
		return nil
	default:
		return fmt.Errorf("invalid LogFormat: %q (valid options: json, text)", v)
	}
}

// ObservabilityConfig groups configuration that controls logging and metrics.
type ObservabilityConfig struct {
	LogLevel  string    `env:"LOG_LEVEL"  envDefault:""`
	LogFormat LogFormat `env:"LOG_FORMAT" envDefault:""`

	Metrics ObservabilityMetricsConfig `envPrefix:"METRICS_"`
}

// Sanitize picks dev-friendly defaults when no explicit values were given.
func (c *ObservabilityConfig) Sanitize(isDev bool) {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
		if isDev {
			c.LogLevel = "debug"
		}
	}
	if c.LogFormat == "" {
		c.LogFormat = LogFormatJSON
		if isDev {
			c.LogFormat = LogFormatText
		}
	}
	c.Metrics.Sanitize()
}

// SlogLevel maps LogLevel onto slog levels; unknown values fall back to info.
func (c *ObservabilityConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ObservabilityMetricsConfig controls Prometheus metric registration for API calls.
type ObservabilityMetricsConfig struct {
	Enabled   bool   `env:"ENABLED"   envDefault:"false"`
	Namespace string `env:"NAMESPACE" envDefault:"ticketdesk"`
}

// Sanitize normalises derived fields and enforces safe defaults.
func (c *ObservabilityMetricsConfig) Sanitize() {
	c.Namespace = strings.TrimSpace(c.Namespace)
	if c.Namespace == "" {
		c.Namespace = defaultMetricsNamespace
	}
}
