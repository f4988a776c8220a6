package service

import (
	"context"
	"log/slog"
	"strings"

	domainauth "github.com/target/ticketdesk/internal/domain/auth"
	"github.com/target/ticketdesk/internal/domain/notification"
	apperrors "github.com/target/ticketdesk/internal/errors"
	"github.com/target/ticketdesk/internal/ports"
)

// AdminServiceOptions groups dependencies for AdminService.
type AdminServiceOptions struct {
	API      ports.AdminAPI
	Notifier ports.Notifier
	Logger   *slog.Logger
}

// AdminService runs the admin panel actions. Authorization is left to the
// remote API.
type AdminService struct {
	api      ports.AdminAPI
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewAdminService constructs an AdminService.
func NewAdminService(opts AdminServiceOptions) *AdminService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminService{
		api:      opts.API,
		notifier: opts.Notifier,
		logger:   logger.With("component", "admin"),
	}
}

// ListUsers returns every user account.
func (s *AdminService) ListUsers(ctx context.Context) ([]domainauth.User, error) {
	return s.api.ListUsers(ctx)
}

// UpdateUser changes a user's role and skills. skillsCSV is split on commas;
// entries are trimmed and blanks dropped.
func (s *AdminService) UpdateUser(ctx context.Context, userID string, role string, skillsCSV string) (domainauth.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domainauth.User{}, apperrors.ValidationField("user_id", "user id is required")
	}
	r, err := domainauth.ParseRole(role)
	if err != nil {
		return domainauth.User{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}

	updated, err := s.api.UpdateUser(ctx, domainauth.UserUpdate{
		UserID: userID,
		Role:   r,
		Skills: SplitSkills(skillsCSV),
	})
	if err != nil {
		s.push("Failed to update user: "+apperrors.Detail(err), notification.KindError)
		return domainauth.User{}, err
	}
	s.push("User updated successfully!", notification.KindSuccess)
	s.logger.InfoContext(ctx, "user updated", "user_id", userID, "role", string(r))
	return updated, nil
}

// RerunAI asks the service to re-run AI triage on every ticket.
func (s *AdminService) RerunAI(ctx context.Context) error {
	if err := s.api.RerunAI(ctx); err != nil {
		s.push("Failed to trigger AI analysis: "+apperrors.Detail(err), notification.KindError)
		return err
	}
	s.push("AI re-analysis triggered for all tickets.", notification.KindSuccess)
	return nil
}

// SplitSkills turns "a, b,,c" into [a b c]. The result is never nil.
func SplitSkills(csv string) []string {
	out := []string{}
	for _, part := range strings.Split(csv, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (s *AdminService) push(message string, kind notification.Kind) {
	if s.notifier != nil {
		s.notifier.Push(message, kind)
	}
}
