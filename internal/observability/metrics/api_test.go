package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	apperrors "github.com/target/ticketdesk/internal/errors"
)

func TestNormalizeEndpoint(t *testing.T) {
	tests := map[string]string{
		"/api/tickets":                          "/api/tickets",
		"/api/tickets/64f0c0ffee/status":        "/api/tickets/{id}/status",
		"/api/tickets/stats/dashboard":          "/api/tickets/stats/dashboard",
		"/api/admin/users/abc123?expand=skills": "/api/admin/users/{id}",
		"":                                      "/",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeEndpoint(in), in)
	}
}

func TestPrometheus_ObserveAPIRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewPrometheus(reg, "ticketdesk")

	rec.ObserveAPIRequest(APIRequest{Method: http.MethodGet, Path: "/api/tickets/1", Status: 200, Duration: 10 * time.Millisecond})
	rec.ObserveAPIRequest(APIRequest{Method: http.MethodGet, Path: "/api/tickets/2", Status: 200, Duration: 5 * time.Millisecond})
	rec.ObserveAPIRequest(APIRequest{
		Method: http.MethodGet,
		Path:   "/api/tickets/3",
		Status: http.StatusNotFound,
		Err:    apperrors.API(http.StatusNotFound, "Ticket not found"),
	})

	ok := rec.requests.WithLabelValues(http.MethodGet, "/api/tickets/{id}", "200", ResultSuccess, "")
	assert.InDelta(t, 2, testutil.ToFloat64(ok), 0)
	failed := rec.requests.WithLabelValues(http.MethodGet, "/api/tickets/{id}", "404", ResultError, "api")
	assert.InDelta(t, 1, testutil.ToFloat64(failed), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(rec.duration))
}

func TestPrometheus_NoStatusOnTransportFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewPrometheus(reg, "ticketdesk")

	rec.ObserveAPIRequest(APIRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/login",
		Err:    apperrors.Network(errors.New("dial tcp: refused"), "request failed"),
	})

	c := rec.requests.WithLabelValues(http.MethodPost, "/api/auth/login", "none", ResultError, "errors_errorstring")
	assert.InDelta(t, 1, testutil.ToFloat64(c), 0)
}

func TestRecorderFunc_Nil(t *testing.T) {
	var f RecorderFunc
	assert.NotPanics(t, func() { f.ObserveAPIRequest(APIRequest{}) })
	var p *Prometheus
	assert.NotPanics(t, func() { p.ObserveAPIRequest(APIRequest{}) })
}
