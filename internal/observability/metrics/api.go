package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	obserrors "github.com/target/ticketdesk/internal/observability/errors"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// APIRequest captures one completed gateway call.
type APIRequest struct {
	Method   string
	Path     string
	Status   int
	Duration time.Duration
	Err      error
}

// Recorder observes gateway calls.
type Recorder interface {
	ObserveAPIRequest(in APIRequest)
}

// RecorderFunc adapts a function to the Recorder interface (useful for tests).
type RecorderFunc func(in APIRequest)

// ObserveAPIRequest implements Recorder.
func (f RecorderFunc) ObserveAPIRequest(in APIRequest) {
	if f != nil {
		f(in)
	}
}

// Prometheus records gateway calls as Prometheus series.
type Prometheus struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ Recorder = (*Prometheus)(nil)

// NewPrometheus registers the gateway series on reg.
// Registering twice on the same registry panics, as with promauto.
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	factory := promauto.With(reg)
	return &Prometheus{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Requests issued to the ticket API.",
			},
			[]string{"method", "endpoint", "status", "result", "error_class"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "Latency of requests issued to the ticket API.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
	}
}

// ObserveAPIRequest implements Recorder.
func (p *Prometheus) ObserveAPIRequest(in APIRequest) {
	if p == nil {
		return
	}
	endpoint := NormalizeEndpoint(in.Path)
	result := ResultSuccess
	class := ""
	if in.Err != nil {
		result = ResultError
		class = obserrors.Classify(in.Err)
	}
	status := "none"
	if in.Status > 0 {
		status = strconv.Itoa(in.Status)
	}

	p.requests.WithLabelValues(in.Method, endpoint, status, result, class).Inc()
	p.duration.WithLabelValues(in.Method, endpoint).Observe(in.Duration.Seconds())
}

var staticSegments = map[string]struct{}{
	"api": {}, "auth": {}, "login": {}, "signup": {}, "me": {},
	"tickets": {}, "status": {}, "stats": {}, "dashboard": {},
	"admin": {}, "users": {}, "rerun-ai": {},
}

// NormalizeEndpoint replaces identifier segments with {id} to bound label cardinality.
func NormalizeEndpoint(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "/"
	}
	parts := strings.Split(trimmed, "/")
	for i, p := range parts {
		if _, ok := staticSegments[p]; !ok {
			parts[i] = "{id}"
		}
	}
	return "/" + strings.Join(parts, "/")
}
