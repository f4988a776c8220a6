package apiclient

import (
	"context"
	"net/http"
	"net/url"

	domainauth "github.com/target/ticketdesk/internal/domain/auth"
)

// ListUsers implements ports.AdminAPI.
func (c *Client) ListUsers(ctx context.Context) ([]domainauth.User, error) {
	var out []domainauth.User
	if err := c.Send(ctx, http.MethodGet, "/api/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateUser implements ports.AdminAPI.
func (c *Client) UpdateUser(ctx context.Context, in domainauth.UserUpdate) (domainauth.User, error) {
	if in.Skills == nil {
		in.Skills = []string{}
	}
	var out domainauth.User
	if err := c.Send(ctx, http.MethodPatch, "/api/admin/users/"+url.PathEscape(in.UserID), in, &out); err != nil {
		return domainauth.User{}, err
	}
	return out, nil
}

// RerunAI implements ports.AdminAPI.
func (c *Client) RerunAI(ctx context.Context) error {
	return c.Send(ctx, http.MethodPost, "/api/admin/rerun-ai", nil, nil)
}
