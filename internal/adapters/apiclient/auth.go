package apiclient

import (
	"context"
	"net/http"

	domainauth "github.com/target/ticketdesk/internal/domain/auth"
	apperrors "github.com/target/ticketdesk/internal/errors"
	"github.com/target/ticketdesk/internal/ports"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login implements ports.AuthAPI.
func (c *Client) Login(ctx context.Context, in ports.LoginInput) (string, error) {
	return c.issueToken(ctx, "/api/auth/login", in)
}

// Signup implements ports.AuthAPI.
func (c *Client) Signup(ctx context.Context, in ports.SignupInput) (string, error) {
	return c.issueToken(ctx, "/api/auth/signup", in)
}

func (c *Client) issueToken(ctx context.Context, endpoint string, body any) (string, error) {
	var tr tokenResponse
	if err := c.Send(ctx, http.MethodPost, endpoint, body, &tr); err != nil {
		return "", err
	}
	if tr.AccessToken == "" {
		return "", apperrors.Network(nil, "response is missing access_token")
	}
	return tr.AccessToken, nil
}

// Me implements ports.AuthAPI.
func (c *Client) Me(ctx context.Context) (domainauth.User, error) {
	var u domainauth.User
	if err := c.Send(ctx, http.MethodGet, "/api/auth/me", nil, &u); err != nil {
		return domainauth.User{}, err
	}
	if u.ID == "" {
		return domainauth.User{}, apperrors.Network(nil, "identity response is missing id")
	}
	return u, nil
}
