package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"fmt"
	"strings"
	"time"

	"github.com/target/ticketdesk/internal/domain/timestamp"
)

// Role represents an application's authorization role.
// Role is advisory on the client; the remote API enforces access.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Roles lists every valid role in ascending privilege order.
func Roles() []Role {
	return []Role{RoleUser, RoleModerator, RoleAdmin}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole normalises s into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("invalid role %q (valid options: user, moderator, admin)", s)
	}
	return r, nil
}

// User is the identity record returned by the remote API.
type User struct {
	ID        string     `json:"id"                   yaml:"id"`
	Email     string     `json:"email"                yaml:"email"`
	Username  string     `json:"username"             yaml:"username"`
	FullName  string     `json:"full_name,omitempty"  yaml:"full_name,omitempty"`
	Role      Role       `json:"role"                 yaml:"role"`
	Skills    []string   `json:"skills"               yaml:"skills"`
	IsActive  bool       `json:"is_active"            yaml:"is_active"`
	CreatedAt timestamp.Time  `json:"created_at"           yaml:"created_at"`
	UpdatedAt *timestamp.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// IsAdmin returns true if the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// DisplayName prefers the full name and falls back to username, then email.
func (u User) DisplayName() string {
	switch {
	case strings.TrimSpace(u.FullName) != "":
		return u.FullName
	case u.Username != "":
		return u.Username
	default:
		return u.Email
	}
}

// HasSkill reports whether the user lists skill (case-insensitive).
func (u User) HasSkill(skill string) bool {
	for _, s := range u.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}

// State is the lifecycle state of a client session.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateResolving       State = "resolving"
	StateAuthenticated   State = "authenticated"
)

// Session is a point-in-time view of the client session.
// Identity is only set when Credential was validated by the remote API.
type Session struct {
	Credential string
	Identity   *User
	Resolving  bool

	// Invalidated is set when the last stored credential was rejected and cleared.
	Invalidated bool

	// ExpiresAt is the credential expiry when it could be read from the token, zero otherwise.
	ExpiresAt time.Time
}

// State derives the lifecycle state from the snapshot fields.
func (s Session) State() State {
	switch {
	case s.Credential == "":
		return StateUnauthenticated
	case s.Resolving || s.Identity == nil:
		return StateResolving
	default:
		return StateAuthenticated
	}
}

// IsAuthenticated returns true when an identity has been resolved.
func (s Session) IsAuthenticated() bool { return s.State() == StateAuthenticated }

// UserUpdate is the admin request body for changing a user's role and skills.
type UserUpdate struct {
	UserID string   `json:"user_id"`
	Role   Role     `json:"role"`
	Skills []string `json:"skills"`
}
