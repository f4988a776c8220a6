package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/target/ticketdesk/config"
	"github.com/target/ticketdesk/internal/adapters/apiclient"
	"github.com/target/ticketdesk/internal/observability/metrics"
	"github.com/target/ticketdesk/internal/ports"
	"github.com/target/ticketdesk/internal/service"
)

// AppOptions groups the inputs for NewApp.
type AppOptions struct {
	Config config.AppConfig
	Logger *slog.Logger

	// Store overrides the configured credential store.
	Store ports.CredentialStore
	// HTTPClient overrides the gateway's HTTP client.
	HTTPClient *http.Client
	// Registerer receives API metrics when metrics are enabled. A private
	// registry is created when nil.
	Registerer prometheus.Registerer
}

// App is the wired client: one gateway, one session, and the controllers and
// flows built on top of them.
type App struct {
	Config        config.AppConfig
	Logger        *slog.Logger
	Client        *apiclient.Client
	Session       *service.SessionController
	Router        *service.Router
	Notifications *service.NotificationQueue
	Tickets       *service.TicketService
	Admin         *service.AdminService
	Dashboard     *service.DashboardService

	// Registry is set when metrics are enabled and no Registerer was supplied.
	Registry *prometheus.Registry

	closers []func() error
}

// NewApp wires the client. It does not touch the network; call Init to
// restore a stored session.
func NewApp(ctx context.Context, opts AppOptions) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := opts.Config

	app := &App{Config: cfg, Logger: logger}

	var recorder metrics.Recorder
	if cfg.Observability.Metrics.Enabled {
		reg := opts.Registerer
		if reg == nil {
			app.Registry = prometheus.NewRegistry()
			reg = app.Registry
		}
		recorder = metrics.NewPrometheus(reg, cfg.Observability.Metrics.Namespace)
	}

	client, err := apiclient.New(apiclient.Options{
		BaseURL:    cfg.API.BaseURL,
		UserAgent:  cfg.API.UserAgent,
		Timeout:    cfg.API.Timeout,
		CookieJar:  cfg.API.CookieJar,
		HTTPClient: opts.HTTPClient,
		Metrics:    recorder,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}
	app.Client = client

	store := opts.Store
	if store == nil {
		s, closeStore, storeErr := NewCredentialStore(ctx, cfg, logger)
		if storeErr != nil {
			return nil, storeErr
		}
		store = s
		app.closers = append(app.closers, closeStore)
	}

	app.Session = service.NewSessionController(service.SessionOptions{
		API:    client,
		Store:  store,
		Logger: logger,
	})
	app.Router = service.NewRouter(app.Session)
	app.closers = append(app.closers, func() error { app.Router.Close(); return nil })

	app.Notifications = service.NewNotificationQueue(cfg.Notifications.TTL,
		service.WithNotificationLogger(logger))
	app.closers = append(app.closers, func() error { app.Notifications.Close(); return nil })

	app.Tickets = service.NewTicketService(service.TicketServiceOptions{
		API:      client,
		Identity: app.Session,
		Notifier: app.Notifications,
		Logger:   logger,
	})
	app.Admin = service.NewAdminService(service.AdminServiceOptions{
		API:      client,
		Notifier: app.Notifications,
		Logger:   logger,
	})
	app.Dashboard = service.NewDashboardService(service.DashboardServiceOptions{
		API:      client,
		Identity: app.Session,
		Logger:   logger,
	})
	return app, nil
}

// Init restores the stored session, the same way a fresh page load would.
func (a *App) Init(ctx context.Context) error {
	return a.Session.Init(ctx)
}

// Close releases every resource NewApp acquired, in reverse order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
