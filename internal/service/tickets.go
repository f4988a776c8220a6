package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/target/ticketdesk/internal/domain/notification"
	"github.com/target/ticketdesk/internal/domain/ticket"
	apperrors "github.com/target/ticketdesk/internal/errors"
	"github.com/target/ticketdesk/internal/ports"
)

// TicketServiceOptions groups dependencies for TicketService.
type TicketServiceOptions struct {
	API      ports.TicketAPI
	Identity ports.IdentitySource
	Notifier ports.Notifier
	Logger   *slog.Logger
}

// TicketService runs the user-triggered ticket actions against the remote API.
// Tickets returned are read-through copies; nothing is cached.
type TicketService struct {
	api      ports.TicketAPI
	identity ports.IdentitySource
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewTicketService constructs a TicketService.
func NewTicketService(opts TicketServiceOptions) *TicketService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &TicketService{
		api:      opts.API,
		identity: opts.Identity,
		notifier: opts.Notifier,
		logger:   logger.With("component", "tickets"),
	}
}

// List returns the tickets visible to the current identity.
func (s *TicketService) List(ctx context.Context) ([]ticket.Ticket, error) {
	return s.api.ListTickets(ctx)
}

// Get returns a single ticket.
func (s *TicketService) Get(ctx context.Context, id string) (ticket.Ticket, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ticket.Ticket{}, apperrors.ValidationField("id", "ticket id is required")
	}
	return s.api.GetTicket(ctx, id)
}

// Create submits a new ticket and announces success.
func (s *TicketService) Create(ctx context.Context, title, description string) (ticket.Ticket, error) {
	req := ticket.CreateRequest{Title: strings.TrimSpace(title), Description: strings.TrimSpace(description)}
	if err := req.Validate(); err != nil {
		return ticket.Ticket{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}
	created, err := s.api.CreateTicket(ctx, req)
	if err != nil {
		return ticket.Ticket{}, err
	}
	s.push("Ticket created successfully!", notification.KindSuccess)
	s.logger.InfoContext(ctx, "ticket created", "ticket_id", created.ID)
	return created, nil
}

// UpdateStatus moves t to status and returns the refetched ticket.
//
// The caller's identity must pass ticket.CanTransition; the check runs before
// any request is issued. Outcomes of the request itself are announced through
// the notifier.
func (s *TicketService) UpdateStatus(ctx context.Context, t ticket.Ticket, status ticket.Status) (ticket.Ticket, error) {
	actor, err := RequireIdentity(s.identity)
	if err != nil {
		return ticket.Ticket{}, err
	}
	if !ticket.IsValidStatus(status) {
		return ticket.Ticket{}, apperrors.ValidationField("status",
			fmt.Sprintf("invalid status %q (valid options: open, in_progress, resolved, closed)", status))
	}
	if !ticket.CanTransition(actor, t) {
		return ticket.Ticket{}, apperrors.Forbidden("you may not change the status of this ticket")
	}

	if err := s.api.UpdateTicketStatus(ctx, t.ID, status); err != nil {
		s.push("Failed to update status: "+apperrors.Detail(err), notification.KindError)
		return ticket.Ticket{}, err
	}
	s.push("Ticket status updated successfully!", notification.KindSuccess)
	s.logger.InfoContext(ctx, "ticket status updated", "ticket_id", t.ID, "status", string(status), "actor", actor.ID)

	fresh, err := s.api.GetTicket(ctx, t.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "refetch after status update failed", "ticket_id", t.ID, "error", err)
		t.Status = status
		return t, nil
	}
	return fresh, nil
}

// UpdateStatusByID fetches the ticket first, then applies UpdateStatus.
func (s *TicketService) UpdateStatusByID(ctx context.Context, id string, status ticket.Status) (ticket.Ticket, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return ticket.Ticket{}, err
	}
	return s.UpdateStatus(ctx, t, status)
}

func (s *TicketService) push(message string, kind notification.Kind) {
	if s.notifier != nil {
		s.notifier.Push(message, kind)
	}
}
