// Package ticket holds the ticket read model and the status workflow rules.
package ticket

import (
	"fmt"
	"strings"

	"github.com/target/ticketdesk/internal/domain/timestamp"
)

// Status is a ticket workflow status.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// Priority is the triage priority assigned by the service.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Ticket is a read-through copy of a ticket owned by the remote service.
type Ticket struct {
	ID             string     `json:"id"                   yaml:"id"`
	Title          string     `json:"title"                yaml:"title"`
	Description    string     `json:"description"          yaml:"description"`
	Status         Status     `json:"status"               yaml:"status"`
	Priority       Priority   `json:"priority"             yaml:"priority"`
	TicketType     *string    `json:"ticket_type,omitempty" yaml:"ticket_type,omitempty"`
	CreatedBy      string     `json:"created_by"           yaml:"created_by"`
	AssignedTo     *string    `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
	RequiredSkills []string   `json:"required_skills"      yaml:"required_skills"`
	AINotes        *string    `json:"ai_notes,omitempty"   yaml:"ai_notes,omitempty"`
	CreatedAt      timestamp.Time  `json:"created_at"           yaml:"created_at"`
	UpdatedAt      *timestamp.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Assignee returns the assigned user id, or "" when unassigned.
func (t Ticket) Assignee() string {
	if t.AssignedTo == nil {
		return ""
	}
	return *t.AssignedTo
}

// IsAssignedTo reports whether the ticket is assigned to userID.
func (t Ticket) IsAssignedTo(userID string) bool {
	a := t.Assignee()
	return a != "" && a == userID
}

// CreateRequest is the body for creating a ticket.
type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks required fields.
func (r CreateRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}

// DashboardStats is the admin dashboard aggregate.
type DashboardStats struct {
	Total    int `json:"total"    yaml:"total"`
	Open     int `json:"open"     yaml:"open"`
	Resolved int `json:"resolved" yaml:"resolved"`
	Urgent   int `json:"urgent"   yaml:"urgent"`
}
