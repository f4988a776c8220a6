package service

import (
	"context"
	"log/slog"

	domainauth "github.com/target/ticketdesk/internal/domain/auth"
	"github.com/target/ticketdesk/internal/domain/ticket"
	"github.com/target/ticketdesk/internal/ports"
	"golang.org/x/sync/errgroup"
)

// Dashboard is the landing view data.
type Dashboard struct {
	Greeting string `json:"greeting" yaml:"greeting"`
	// Stats is only loaded for admins; nil when absent or when loading failed.
	Stats   *ticket.DashboardStats `json:"stats,omitempty" yaml:"stats,omitempty"`
	Tickets []ticket.Ticket        `json:"tickets"         yaml:"tickets"`
	// CanCreate mirrors ticket.CanCreate for the current identity.
	CanCreate bool `json:"can_create" yaml:"can_create"`
}

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	API      ports.TicketAPI
	Identity ports.IdentitySource
	Logger   *slog.Logger
}

// DashboardService assembles the landing view.
type DashboardService struct {
	api      ports.TicketAPI
	identity ports.IdentitySource
	logger   *slog.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		api:      opts.API,
		identity: opts.Identity,
		logger:   logger.With("component", "dashboard"),
	}
}

// Load fetches the dashboard. Admin stats are fetched alongside the ticket list;
// a stats failure is logged and leaves Stats nil.
func (s *DashboardService) Load(ctx context.Context) (Dashboard, error) {
	user, err := RequireIdentity(s.identity)
	if err != nil {
		return Dashboard{}, err
	}
	out := Dashboard{
		Greeting:  "Welcome, " + user.DisplayName() + "!",
		CanCreate: ticket.CanCreate(user),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tickets, err := s.api.ListTickets(gctx)
		if err != nil {
			return err
		}
		out.Tickets = tickets
		return nil
	})
	if user.Role == domainauth.RoleAdmin {
		g.Go(func() error {
			stats, err := s.api.DashboardStats(gctx)
			if err != nil {
				s.logger.ErrorContext(ctx, "failed to load dashboard stats", "error", err)
				return nil
			}
			out.Stats = &stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return out, nil
}
