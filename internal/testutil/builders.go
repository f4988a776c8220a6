package testutil

import (
	"time"

	domainauth "github.com/target/ticketdesk/internal/domain/auth"
	"github.com/target/ticketdesk/internal/domain/ticket"
	"github.com/target/ticketdesk/internal/domain/timestamp"
)

// UserBuilder provides a fluent interface for building users in tests.
type UserBuilder struct {
	user domainauth.User
}

// NewUser creates a UserBuilder for an active user with role "user".
func NewUser(id string) *UserBuilder {
	return &UserBuilder{user: domainauth.User{
		ID:        id,
		Email:     id + "@example.com",
		Username:  id,
		FullName:  "Test " + id,
		Role:      domainauth.RoleUser,
		Skills:    []string{},
		IsActive:  true,
		CreatedAt: timestamp.New(TestTime()),
	}}
}

// WithRole sets the role.
func (b *UserBuilder) WithRole(role domainauth.Role) *UserBuilder {
	b.user.Role = role
	return b
}

// WithSkills sets the skills.
func (b *UserBuilder) WithSkills(skills ...string) *UserBuilder {
	b.user.Skills = append([]string{}, skills...)
	return b
}

// Build returns the user.
func (b *UserBuilder) Build() domainauth.User {
	return b.user
}

// TicketBuilder provides a fluent interface for building tickets in tests.
type TicketBuilder struct {
	t ticket.Ticket
}

// NewTicket creates an open, medium priority, unassigned ticket.
func NewTicket(id string) *TicketBuilder {
	return &TicketBuilder{t: ticket.Ticket{
		ID:             id,
		Title:          "Ticket " + id,
		Description:    "Description of " + id,
		Status:         ticket.StatusOpen,
		Priority:       ticket.PriorityMedium,
		CreatedBy:      "creator",
		RequiredSkills: []string{},
		CreatedAt:      timestamp.New(TestTime()),
	}}
}

// WithStatus sets the status.
func (b *TicketBuilder) WithStatus(s ticket.Status) *TicketBuilder {
	b.t.Status = s
	return b
}

// WithPriority sets the priority.
func (b *TicketBuilder) WithPriority(p ticket.Priority) *TicketBuilder {
	b.t.Priority = p
	return b
}

// CreatedBy sets the creator.
func (b *TicketBuilder) CreatedBy(userID string) *TicketBuilder {
	b.t.CreatedBy = userID
	return b
}

// AssignedTo sets the assignee.
func (b *TicketBuilder) AssignedTo(userID string) *TicketBuilder {
	b.t.AssignedTo = StringPtr(userID)
	return b
}

// WithTitle sets the title.
func (b *TicketBuilder) WithTitle(title string) *TicketBuilder {
	b.t.Title = title
	return b
}

// UpdatedAt sets the update time.
func (b *TicketBuilder) UpdatedAt(at time.Time) *TicketBuilder {
	b.t.UpdatedAt = timestamp.Ptr(at)
	return b
}

// Build returns the ticket.
func (b *TicketBuilder) Build() ticket.Ticket {
	return b.t
}
