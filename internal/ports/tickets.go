package ports

import (
	"context"

	domainauth "github.com/target/ticketdesk/internal/domain/auth"
	"github.com/target/ticketdesk/internal/domain/notification"
	"github.com/target/ticketdesk/internal/domain/ticket"
)

// TicketAPI is the remote ticket surface.
type TicketAPI interface {
	ListTickets(ctx context.Context) ([]ticket.Ticket, error)
	GetTicket(ctx context.Context, id string) (ticket.Ticket, error)
	CreateTicket(ctx context.Context, in ticket.CreateRequest) (ticket.Ticket, error)
	UpdateTicketStatus(ctx context.Context, id string, status ticket.Status) error
	DashboardStats(ctx context.Context) (ticket.DashboardStats, error)
}

// AdminAPI is the remote admin surface.
type AdminAPI interface {
	ListUsers(ctx context.Context) ([]domainauth.User, error)
	UpdateUser(ctx context.Context, in domainauth.UserUpdate) (domainauth.User, error)
	RerunAI(ctx context.Context) error
}

// Notifier surfaces transient feedback to the user.
type Notifier interface {
	Push(message string, kind notification.Kind) notification.Notification
}

// IdentitySource exposes the currently resolved identity.
type IdentitySource interface {
	Identity() (domainauth.User, bool)
}
