package credstore

import (
	"context"
	"errors"
	"sync"

	"github.com/target/ticketdesk/internal/ports"
)

// MemoryStore keeps the credential for the lifetime of the process.
type MemoryStore struct {
	mu         sync.Mutex
	credential string
}

var _ ports.CredentialStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential, nil
}

func (s *MemoryStore) Save(_ context.Context, credential string) error {
	if credential == "" {
		return errors.New("credential cannot be empty")
	}
	s.mu.Lock()
	s.credential = credential
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.credential = ""
	s.mu.Unlock()
	return nil
}
