package redis

// Package redis provides Redis-based adapters for the ticketdesk client.

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/target/ticketdesk/internal/ports"
)

// CredentialStore keeps the bearer credential in Redis under a single prefixed key.
type CredentialStore struct {
	client redis.UniversalClient
	key    string
}

var _ ports.CredentialStore = (*CredentialStore)(nil)

// NewCredentialStore creates a Redis credential store storing under prefix+key.
func NewCredentialStore(client redis.UniversalClient, prefix, key string) (*CredentialStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errors.New("credential key cannot be empty")
	}
	return &CredentialStore{
		client: client,
		key:    prefix + key,
	}, nil
}

// Key returns the fully qualified Redis key.
func (s *CredentialStore) Key() string { return s.key }

func (s *CredentialStore) Load(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

func (s *CredentialStore) Save(ctx context.Context, credential string) error {
	if credential == "" {
		return errors.New("credential cannot be empty")
	}
	// No TTL: the server decides when the credential stops being valid.
	if err := s.client.Set(ctx, s.key, credential, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *CredentialStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
