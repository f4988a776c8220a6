package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/target/ticketdesk/internal/domain/auth"
	"github.com/target/ticketdesk/internal/domain/notification"
	"github.com/target/ticketdesk/internal/domain/ticket"
	apperrors "github.com/target/ticketdesk/internal/errors"
	"github.com/target/ticketdesk/internal/mocks"
	"github.com/target/ticketdesk/internal/testutil"
	"go.uber.org/mock/gomock"
)

type staticIdentity struct {
	user domainauth.User
	ok   bool
}

func (s staticIdentity) Identity() (domainauth.User, bool) { return s.user, s.ok }

func TestTicketService_UpdateStatus_ModeratorNotAssignedMakesNoRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockTicketAPI(ctrl)
	// No EXPECT: any call on the API fails the test.

	mod := testutil.NewUser("mod-1").WithRole(domainauth.RoleModerator).Build()
	tk := testutil.NewTicket("t-1").CreatedBy("mod-1").AssignedTo("mod-2").Build()

	queue := NewNotificationQueue(0, WithClock(newFakeClock()))
	svc := NewTicketService(TicketServiceOptions{
		API:      api,
		Identity: staticIdentity{user: mod, ok: true},
		Notifier: queue,
	})

	_, err := svc.UpdateStatus(context.Background(), tk, ticket.StatusResolved)
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
	assert.Empty(t, queue.List())
}

func TestTicketService_UpdateStatus_RequiresIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockTicketAPI(ctrl)
	svc := NewTicketService(TicketServiceOptions{API: api, Identity: staticIdentity{}})

	_, err := svc.UpdateStatus(context.Background(), testutil.NewTicket("t-1").Build(), ticket.StatusClosed)
	assert.True(t, apperrors.IsUnauthenticated(err))
}

func TestTicketService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockTicketAPI(ctrl)
	admin := testutil.NewUser("admin").WithRole(domainauth.RoleAdmin).Build()
	svc := NewTicketService(TicketServiceOptions{API: api, Identity: staticIdentity{user: admin, ok: true}})

	_, err := svc.UpdateStatus(context.Background(), testutil.NewTicket("t-1").Build(), ticket.Status("reopened"))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "status", apperrors.GetField(err))
}

func TestTicketService_UpdateStatus_AssignedModerator(t *testing.T) {
	mod := testutil.NewUser("mod-1").WithRole(domainauth.RoleModerator).Build()
	f := newFlowFixture(t, mod)
	f.fake.AddTicket(testutil.NewTicket("t-1").AssignedTo("mod-1").Build())

	svc := f.tickets()
	tk, err := svc.Get(context.Background(), "t-1")
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), tk, ticket.StatusInProgress)
	require.NoError(t, err)

	assert.Equal(t, ticket.StatusInProgress, updated.Status)
	stored, _ := f.fake.Ticket("t-1")
	assert.Equal(t, ticket.StatusInProgress, stored.Status)
	assert.Equal(t, []pushed{{"Ticket status updated successfully!", notification.KindSuccess}}, f.pushed())
	assert.Contains(t, f.fake.Requests(), "PATCH /api/tickets/t-1/status")
}

func TestTicketService_UpdateStatus_ServerRejectionIsAnnounced(t *testing.T) {
	admin := testutil.NewUser("admin").WithRole(domainauth.RoleAdmin).Build()
	f := newFlowFixture(t, admin)

	// The ticket is not known to the server.
	_, err := f.tickets().UpdateStatus(context.Background(), testutil.NewTicket("ghost").Build(), ticket.StatusClosed)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.GetStatus(err))
	assert.Equal(t, []pushed{{"Failed to update status: Ticket not found", notification.KindError}}, f.pushed())
}

func TestTicketService_UpdateStatusByID(t *testing.T) {
	admin := testutil.NewUser("admin").WithRole(domainauth.RoleAdmin).Build()
	f := newFlowFixture(t, admin)
	f.fake.AddTicket(testutil.NewTicket("t-9").Build())

	updated, err := f.tickets().UpdateStatusByID(context.Background(), "t-9", ticket.StatusClosed)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusClosed, updated.Status)
}

func TestTicketService_CreateAndList(t *testing.T) {
	user := testutil.NewUser("u-1").Build()
	f := newFlowFixture(t, user)
	f.fake.AddTicket(testutil.NewTicket("other").CreatedBy("someone-else").Build())

	svc := f.tickets()
	created, err := svc.Create(context.Background(), "  Printer on fire ", "Third floor")
	require.NoError(t, err)
	assert.Equal(t, "Printer on fire", created.Title)
	assert.Equal(t, "u-1", created.CreatedBy)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, []pushed{{"Ticket created successfully!", notification.KindSuccess}}, f.pushed())
}

func TestTicketService_CreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockTicketAPI(ctrl)
	svc := NewTicketService(TicketServiceOptions{API: api})

	_, err := svc.Create(context.Background(), "   ", "body")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Get(context.Background(), "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestTicketService_CreateFailureIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockTicketAPI(ctrl)
	api.EXPECT().CreateTicket(gomock.Any(), ticket.CreateRequest{Title: "a", Description: "b"}).
		Return(ticket.Ticket{}, apperrors.API(500, "db down"))

	queue := NewNotificationQueue(0, WithClock(newFakeClock()))
	svc := NewTicketService(TicketServiceOptions{API: api, Notifier: queue})

	_, err := svc.Create(context.Background(), "a", "b")
	require.Error(t, err)
	assert.Equal(t, "db down", apperrors.Detail(err))
	assert.Empty(t, queue.List())
}
