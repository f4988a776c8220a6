package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/target/ticketdesk/config"
	"github.com/target/ticketdesk/internal/adapters/credstore"
	redisstore "github.com/target/ticketdesk/internal/adapters/redis"
	"github.com/target/ticketdesk/internal/ports"
)

// NewCredentialStore builds the durable credential store selected by cfg.Store.Mode.
// The returned close func releases backend connections and is never nil.
func NewCredentialStore(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) (ports.CredentialStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Mode {
	case config.StoreModeMemory:
		return credstore.NewMemoryStore(), noop, nil

	case config.StoreModeRedis:
		client, err := ConnectRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, noop, fmt.Errorf("connect credential store: %w", err)
		}
		store, err := redisstore.NewCredentialStore(client, cfg.Redis.Prefix, cfg.Store.Key)
		if err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		return store, client.Close, nil

	case config.StoreModeFile, "":
		store, err := credstore.NewFileStore(cfg.Store.Path, cfg.Store.Key)
		if err != nil {
			return nil, noop, err
		}
		if logger != nil {
			logger.Debug("using file credential store", "path", store.Path())
		}
		return store, noop, nil

	default:
		return nil, noop, fmt.Errorf("unsupported credential store mode %q", cfg.Store.Mode)
	}
}
