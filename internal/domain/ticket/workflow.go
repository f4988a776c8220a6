package ticket

import (
	"fmt"
	"strings"

	domainauth "github.com/target/ticketdesk/internal/domain/auth"
)

// Statuses returns every status a ticket may be moved to.
// The workflow imposes no ordering: any status is reachable from any other.
func Statuses() []Status {
	return []Status{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}
}

// IsValidStatus reports whether s is one of the four workflow statuses.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	default:
		return false
	}
}

// ParseStatus normalises s into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !IsValidStatus(st) {
		return "", fmt.Errorf("invalid status %q (valid options: open, in_progress, resolved, closed)", s)
	}
	return st, nil
}

// CanTransition reports whether actor may change the status of t.
// Admins always may; moderators only for tickets assigned to them.
// The ticket's creator gets no special rights.
func CanTransition(actor domainauth.User, t Ticket) bool {
	switch actor.Role {
	case domainauth.RoleAdmin:
		return true
	case domainauth.RoleModerator:
		return actor.ID != "" && t.IsAssignedTo(actor.ID)
	default:
		return false
	}
}

// CanCreate reports whether actor should be offered ticket creation.
// Advisory only; the service decides.
func CanCreate(actor domainauth.User) bool {
	return actor.Role == domainauth.RoleUser
}
