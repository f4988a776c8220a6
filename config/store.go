package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StoreMode selects the durable credential store backend.
type StoreMode string

const (
	// StoreModeFile keeps the credential in a local YAML file.
	StoreModeFile StoreMode = "file"
	// StoreModeRedis keeps the credential in Redis.
	StoreModeRedis StoreMode = "redis"
	// StoreModeMemory keeps the credential for the lifetime of the process only.
	StoreModeMemory StoreMode = "memory"
)

// DefaultCredentialKey is the well-known key the bearer token is stored under.
const DefaultCredentialKey = "authToken"

// UnmarshalText implements encoding.TextUnmarshaler for StoreMode.
func (m *StoreMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "file", "redis", "memory":
		*m = StoreMode(v)
		return nil
	default:
		return fmt.Errorf("invalid StoreMode: %q (valid options: file, redis, memory)", v)
	}
}

// StoreConfig controls where the credential is persisted across runs.
type StoreConfig struct {
	Mode StoreMode `env:"MODE" envDefault:"file"`

	// Path is the credential file location for Mode=file.
	// Defaults to $XDG_CONFIG_HOME/ticketdesk/credentials.yaml.
	Path string `env:"PATH"`

	// Key is the well-known key the credential is stored under.
	Key string `env:"KEY" envDefault:"authToken"`
}

// Sanitize fills in the default file location and key.
func (c *StoreConfig) Sanitize() {
	if c.Mode == "" {
		c.Mode = StoreModeFile
	}
	c.Key = strings.TrimSpace(c.Key)
	if c.Key == "" {
		c.Key = DefaultCredentialKey
	}
	c.Path = strings.TrimSpace(c.Path)
	if c.Path == "" {
		c.Path = defaultStorePath()
	}
}

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "ticketdesk", "credentials.yaml")
}
