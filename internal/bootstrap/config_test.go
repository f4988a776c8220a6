package bootstrap

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/ticketdesk/config"
)

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("TICKETDESK_API_BASE_URL", "https://tickets.example.com/")
	t.Setenv("TICKETDESK_STORE_MODE", "memory")
	t.Setenv("TICKETDESK_NOTIFICATION_TTL", "2s")
	t.Setenv("TICKETDESK_LOG_LEVEL", "warn")
	t.Setenv("DEV", "false")
	t.Setenv("NODE_ENV", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "https://tickets.example.com", cfg.API.BaseURL)
	assert.Equal(t, config.StoreModeMemory, cfg.Store.Mode)
	assert.Equal(t, 2*time.Second, cfg.Notifications.TTL)
	assert.Equal(t, "warn", cfg.Observability.LogLevel)
	assert.Equal(t, config.LogFormatJSON, cfg.Observability.LogFormat)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TICKETDESK_STORE_KEY=sessionToken\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("TICKETDESK_STORE_KEY") })

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sessionToken", cfg.Store.Key)
}

func TestLoadConfig_InvalidMode(t *testing.T) {
	t.Setenv("TICKETDESK_STORE_MODE", "floppy")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(config.ObservabilityConfig{LogLevel: "warn", LogFormat: config.LogFormatJSON}, &buf)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "v", entry["k"])
}

func TestInitLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(config.ObservabilityConfig{LogLevel: "debug", LogFormat: config.LogFormatText}, &buf)
	logger.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
