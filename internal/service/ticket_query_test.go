package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/ticketdesk/internal/domain/ticket"
	apperrors "github.com/target/ticketdesk/internal/errors"
	"github.com/target/ticketdesk/internal/testutil"
)

func TestQueryTickets(t *testing.T) {
	tickets := []ticket.Ticket{
		testutil.NewTicket("t-1").WithTitle("VPN down").Build(),
		testutil.NewTicket("t-2").WithTitle("New laptop").WithStatus(ticket.StatusClosed).Build(),
		testutil.NewTicket("t-3").WithTitle("Printer").WithPriority(ticket.PriorityUrgent).Build(),
	}

	got, err := QueryTickets(tickets, "[?status=='open'].title")
	require.NoError(t, err)
	assert.Equal(t, []any{"VPN down", "Printer"}, got)

	got, err = QueryTickets(tickets, "length(@)")
	require.NoError(t, err)
	assert.Equal(t, float64(3), got)

	got, err = QueryTickets(nil, "")
	require.NoError(t, err)
	assert.Equal(t, []any{}, got)
}

func TestQueryTickets_InvalidExpression(t *testing.T) {
	_, err := QueryTickets(nil, "[?status==")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	assert.NoError(t, ValidateTicketQuery("  "))
}
