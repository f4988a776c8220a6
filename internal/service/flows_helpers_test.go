package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/target/ticketdesk/internal/adapters/apiclient"
	domainauth "github.com/target/ticketdesk/internal/domain/auth"
	"github.com/target/ticketdesk/internal/domain/notification"
	mocksauth "github.com/target/ticketdesk/internal/mocks/auth"
	"github.com/target/ticketdesk/internal/testutil"
)

// flowFixture is a signed-in client wired against the fake API.
type flowFixture struct {
	fake    *testutil.FakeAPI
	client  *apiclient.Client
	session *SessionController
	queue   *NotificationQueue
	clock   *fakeClock
}

func newFlowFixture(t *testing.T, user domainauth.User) *flowFixture {
	t.Helper()
	fake := testutil.NewFakeAPI(t)
	token := fake.AddUser(user, "secret")

	client, err := apiclient.New(apiclient.Options{BaseURL: fake.URL(), Timeout: 5 * time.Second})
	require.NoError(t, err)

	session := newTestSession(client, mocksauth.NewMemoryCredentialStore(token))
	require.NoError(t, session.Init(context.Background()))
	require.Equal(t, domainauth.StateAuthenticated, session.State())

	clock := newFakeClock()
	queue := NewNotificationQueue(5*time.Second, WithClock(clock))
	t.Cleanup(queue.Close)

	return &flowFixture{fake: fake, client: client, session: session, queue: queue, clock: clock}
}

func (f *flowFixture) tickets() *TicketService {
	return NewTicketService(TicketServiceOptions{API: f.client, Identity: f.session, Notifier: f.queue})
}

func (f *flowFixture) admin() *AdminService {
	return NewAdminService(AdminServiceOptions{API: f.client, Notifier: f.queue})
}

func (f *flowFixture) dashboard() *DashboardService {
	return NewDashboardService(DashboardServiceOptions{API: f.client, Identity: f.session})
}

type pushed struct {
	Message string
	Kind    notification.Kind
}

func (f *flowFixture) pushed() []pushed {
	var out []pushed
	for _, n := range f.queue.List() {
		out = append(out, pushed{Message: n.Message, Kind: n.Kind})
	}
	return out
}
