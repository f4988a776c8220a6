package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/target/ticketdesk/internal/domain/ticket"
)

// ListTickets implements ports.TicketAPI.
func (c *Client) ListTickets(ctx context.Context) ([]ticket.Ticket, error) {
	var out []ticket.Ticket
	if err := c.Send(ctx, http.MethodGet, "/api/tickets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTicket implements ports.TicketAPI.
func (c *Client) GetTicket(ctx context.Context, id string) (ticket.Ticket, error) {
	var out ticket.Ticket
	if err := c.Send(ctx, http.MethodGet, "/api/tickets/"+url.PathEscape(id), nil, &out); err != nil {
		return ticket.Ticket{}, err
	}
	return out, nil
}

// CreateTicket implements ports.TicketAPI.
func (c *Client) CreateTicket(ctx context.Context, in ticket.CreateRequest) (ticket.Ticket, error) {
	var out ticket.Ticket
	if err := c.Send(ctx, http.MethodPost, "/api/tickets", in, &out); err != nil {
		return ticket.Ticket{}, err
	}
	return out, nil
}

type statusUpdate struct {
	Status ticket.Status `json:"status"`
}

// UpdateTicketStatus implements ports.TicketAPI. The response payload is ignored;
// callers refetch the ticket.
func (c *Client) UpdateTicketStatus(ctx context.Context, id string, status ticket.Status) error {
	endpoint := "/api/tickets/" + url.PathEscape(id) + "/status"
	return c.Send(ctx, http.MethodPatch, endpoint, statusUpdate{Status: status}, nil)
}

// DashboardStats implements ports.TicketAPI.
func (c *Client) DashboardStats(ctx context.Context) (ticket.DashboardStats, error) {
	var out ticket.DashboardStats
	if err := c.Send(ctx, http.MethodGet, "/api/tickets/stats/dashboard", nil, &out); err != nil {
		return ticket.DashboardStats{}, err
	}
	return out, nil
}
