package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"
	"time"

	domainauth "github.com/target/ticketdesk/internal/domain/auth"
	"github.com/target/ticketdesk/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthAPI         = (*StubAuthAPI)(nil)
	_ ports.CredentialStore = (*MemoryCredentialStore)(nil)
)

// StubAuthAPI simulates the remote auth endpoints and records the token the
// controller hands it.
type StubAuthAPI struct {
	LoginFunc  func(ctx context.Context, in ports.LoginInput) (string, error)
	SignupFunc func(ctx context.Context, in ports.SignupInput) (string, error)
	MeFunc     func(ctx context.Context, token string) (domainauth.User, error)

	// DefaultToken is issued by Login/Signup when no func is set.
	DefaultToken string
	// DefaultUser is returned by Me when no func is set and a token is present.
	DefaultUser domainauth.User

	mu    sync.Mutex
	token string
	calls []string
}

// NewStubAuthAPI creates a StubAuthAPI with sensible defaults.
func NewStubAuthAPI() *StubAuthAPI {
	return &StubAuthAPI{
		DefaultToken: "stub-token",
		DefaultUser: domainauth.User{
			ID:       "user-1",
			Email:    "stub.user@example.com",
			Username: "stub",
			FullName: "Stub User",
			Role:     domainauth.RoleUser,
			Skills:   []string{},
			IsActive: true,
		},
	}
}

// ErrNoToken is returned by Me when called without a credential.
var ErrNoToken = errors.New("stub: no bearer token")

func (s *StubAuthAPI) record(call string) {
	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()
}

// Calls returns the endpoint calls made so far, in order.
func (s *StubAuthAPI) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// Token returns the credential currently attached to requests.
func (s *StubAuthAPI) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *StubAuthAPI) SetToken(token string, _ time.Time) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *StubAuthAPI) ClearToken() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

func (s *StubAuthAPI) Login(ctx context.Context, in ports.LoginInput) (string, error) {
	s.record("login")
	if s.LoginFunc != nil {
		return s.LoginFunc(ctx, in)
	}
	return s.DefaultToken, nil
}

func (s *StubAuthAPI) Signup(ctx context.Context, in ports.SignupInput) (string, error) {
	s.record("signup")
	if s.SignupFunc != nil {
		return s.SignupFunc(ctx, in)
	}
	return s.DefaultToken, nil
}

func (s *StubAuthAPI) Me(ctx context.Context) (domainauth.User, error) {
	s.record("me")
	token := s.Token()
	if s.MeFunc != nil {
		return s.MeFunc(ctx, token)
	}
	if token == "" {
		return domainauth.User{}, ErrNoToken
	}
	return s.DefaultUser, nil
}

// MemoryCredentialStore is an in-memory credential store that counts writes.
type MemoryCredentialStore struct {
	mu         sync.Mutex
	credential string
	saves      int
	clears     int
}

// NewMemoryCredentialStore creates a store pre-populated with credential ("" for empty).
func NewMemoryCredentialStore(credential string) *MemoryCredentialStore {
	return &MemoryCredentialStore{credential: credential}
}

func (m *MemoryCredentialStore) Load(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.credential, nil
}

func (m *MemoryCredentialStore) Save(_ context.Context, credential string) error {
	if credential == "" {
		return errors.New("credential cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = credential
	m.saves++
	return nil
}

func (m *MemoryCredentialStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = ""
	m.clears++
	return nil
}

// Stored returns the persisted credential.
func (m *MemoryCredentialStore) Stored() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.credential
}

// Saves returns how many times Save succeeded.
func (m *MemoryCredentialStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Clears returns how many times Clear was called.
func (m *MemoryCredentialStore) Clears() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clears
}
