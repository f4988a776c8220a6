// Package apiclient is the single gateway to the remote ticket API.
// Every request carries JSON headers and, once a credential is set, a bearer
// Authorization header. All failures surface as *errors.AppError.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	apperrors "github.com/target/ticketdesk/internal/errors"
	"github.com/target/ticketdesk/internal/observability/metrics"
	"github.com/target/ticketdesk/internal/ports"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/oauth2"
)

const maxErrorBody = 1 << 20

// Options configures a Client.
type Options struct {
	BaseURL   string
	UserAgent string
	// Timeout bounds a single request when no HTTPClient is supplied. Zero keeps the transport default.
	Timeout time.Duration
	// CookieJar attaches a public-suffix scoped cookie jar when no HTTPClient is supplied.
	CookieJar  bool
	HTTPClient *http.Client
	Metrics    metrics.Recorder
	Logger     *slog.Logger
}

// Client sends requests to the ticket API. It is safe for concurrent use.
type Client struct {
	baseURL   string
	userAgent string
	hc        *http.Client
	metrics   metrics.Recorder
	logger    *slog.Logger

	mu    sync.RWMutex
	token *oauth2.Token
}

var (
	_ ports.AuthAPI   = (*Client)(nil)
	_ ports.TicketAPI = (*Client)(nil)
	_ ports.AdminAPI  = (*Client)(nil)
)

// New builds a Client for the API rooted at opts.BaseURL.
func New(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, apperrors.Validation("api base url is required")
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
		if opts.CookieJar {
			jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
			if err != nil {
				return nil, fmt.Errorf("create cookie jar: %w", err)
			}
			hc.Jar = jar
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:   baseURL,
		userAgent: strings.TrimSpace(opts.UserAgent),
		hc:        hc,
		metrics:   opts.Metrics,
		logger:    logger,
	}, nil
}

// SetToken implements ports.TokenHolder.
func (c *Client) SetToken(token string, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token == "" {
		c.token = nil
		return
	}
	c.token = &oauth2.Token{AccessToken: token, TokenType: "Bearer", Expiry: expiresAt}
}

// ClearToken implements ports.TokenHolder.
func (c *Client) ClearToken() {
	c.mu.Lock()
	c.token = nil
	c.mu.Unlock()
}

// HasToken reports whether requests currently carry a credential.
func (c *Client) HasToken() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != nil
}

// Send issues method against endpoint (a path such as "/api/tickets").
// A non-nil body is JSON encoded. When out is non-nil and the response has a
// payload, it is decoded into out; 204 and empty bodies leave out untouched.
func (c *Client) Send(ctx context.Context, method, endpoint string, body, out any) (err error) {
	start := time.Now()
	status := 0
	defer func() {
		c.observe(ctx, method, endpoint, status, time.Since(start), err)
	}()

	req, err := c.newRequest(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return apperrors.Network(err, "request failed")
	}
	status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFromResponse(resp)
	}
	return decodeSuccess(resp, out)
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, apperrors.Network(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.mu.RLock()
	tok := c.token
	c.mu.RUnlock()
	if tok != nil {
		tok.SetAuthHeader(req)
	}
	return req, nil
}

func (c *Client) observe(ctx context.Context, method, endpoint string, status int, d time.Duration, err error) {
	if c.metrics != nil {
		c.metrics.ObserveAPIRequest(metrics.APIRequest{
			Method:   method,
			Path:     endpoint,
			Status:   status,
			Duration: d,
			Err:      err,
		})
	}
	attrs := []any{"method", method, "endpoint", endpoint, "status", status, "duration", d}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	c.logger.DebugContext(ctx, "api request", attrs...)
}

func decodeSuccess(resp *http.Response, out any) error {
	defer closeBody(resp)

	if resp.StatusCode == http.StatusNoContent || resp.ContentLength == 0 {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Network(err, "read response body")
	}
	if len(bytes.TrimSpace(data)) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.Network(err, "decode response body")
	}
	return nil
}

// errorBody mirrors the service's error contract. Detail is usually a string but
// request validation failures carry a list of {loc, msg, type} objects.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationIssue struct {
	Msg string `json:"msg"`
}

func errorFromResponse(resp *http.Response) error {
	defer closeBody(resp)

	fallback := fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apperrors.API(resp.StatusCode, fallback)
	}

	var eb errorBody
	if err := json.Unmarshal(data, &eb); err != nil || len(eb.Detail) == 0 {
		return apperrors.API(resp.StatusCode, fallback)
	}
	if msg := detailMessage(eb.Detail); msg != "" {
		return apperrors.API(resp.StatusCode, msg)
	}
	return apperrors.API(resp.StatusCode, fallback)
}

func detailMessage(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var issues []validationIssue
	if err := json.Unmarshal(raw, &issues); err == nil {
		msgs := make([]string, 0, len(issues))
		for _, is := range issues {
			if m := strings.TrimSpace(is.Msg); m != "" {
				msgs = append(msgs, m)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
}
