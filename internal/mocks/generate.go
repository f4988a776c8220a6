// Package mocks provides mock implementations for testing the ticketdesk client.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	store := mocks.NewMockCredentialStore(ctrl)
//	store.EXPECT().Load(gomock.Any()).Return("", errors.New("disk on fire"))
package mocks

// Generate mock for CredentialStore interface from internal/ports package.
// This creates MockCredentialStore with methods for all CredentialStore interface methods:
// Load, Save, Clear
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=credential_store_mock.go github.com/target/ticketdesk/internal/ports CredentialStore

// Generate mock for TicketAPI interface from internal/ports package.
// This creates MockTicketAPI with methods for all TicketAPI interface methods:
// ListTickets, GetTicket, CreateTicket, UpdateTicketStatus, DashboardStats
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=ticket_api_mock.go github.com/target/ticketdesk/internal/ports TicketAPI
