package config

import "time"

// DefaultNotificationTTL is how long a pushed notification stays visible.
const DefaultNotificationTTL = 5 * time.Second

// NotificationConfig controls the transient notification queue.
type NotificationConfig struct {
	TTL time.Duration `env:"TTL" envDefault:"5s"`
}

// Sanitize restores the default TTL for non-positive values.
func (c *NotificationConfig) Sanitize() {
	if c.TTL <= 0 {
		c.TTL = DefaultNotificationTTL
	}
}
