package ports

// Package ports defines interfaces (hexagonal ports) for the client controllers.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"time"

	domainauth "github.com/target/ticketdesk/internal/domain/auth"
)

// LoginInput carries credentials for the login endpoint.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupInput carries registration fields for the signup endpoint.
type SignupInput struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenHolder receives the credential the gateway attaches to outgoing requests.
type TokenHolder interface {
	// SetToken makes every following request carry the bearer credential.
	SetToken(token string, expiresAt time.Time)
	// ClearToken stops attaching the Authorization header.
	ClearToken()
}

// AuthAPI is the remote authentication surface.
type AuthAPI interface {
	TokenHolder

	// Login exchanges email/password for a bearer credential.
	Login(ctx context.Context, in LoginInput) (string, error)
	// Signup registers a user and returns a bearer credential.
	Signup(ctx context.Context, in SignupInput) (string, error)
	// Me resolves the identity bound to the current credential.
	Me(ctx context.Context) (domainauth.User, error)
}

// CredentialStore persists the single opaque credential across runs.
type CredentialStore interface {
	// Load returns the stored credential, or "" when none is stored.
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, credential string) error
	// Clear removes the credential. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
