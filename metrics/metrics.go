// Package metrics provides Prometheus metrics for provider requests and transfers.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/phlak/clouddrop"
)

// Request outcomes used for the outcome label.
const (
	OutcomeSuccess        = "success"
	OutcomeNotFound       = "not_found"
	OutcomeAPIError       = "api_error"
	OutcomeTransportError = "transport_error"
	OutcomeCancelled      = "cancelled"
	OutcomeTimeout        = "timeout"
	OutcomeError          = "error"
)

// Collector records provider request and transfer metrics. A nil *Collector is valid and records
// nothing.
type Collector struct {
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	uploaded   *prometheus.CounterVec
	downloaded *prometheus.CounterVec
}

// New registers the clouddrop collectors with reg, or with prometheus.DefaultRegisterer when reg is
// nil. Collectors that are already registered are reused, so several providers may share one
// registerer.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &Collector{
		requests: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clouddrop_requests_total",
				Help: "Total number of provider API requests",
			},
			[]string{"provider", "route", "outcome"},
		)),
		duration: register(reg, prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "clouddrop_request_duration_seconds",
				Help:    "Provider API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider", "route"},
		)),
		uploaded: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clouddrop_bytes_uploaded_total",
				Help: "Total bytes sent to provider content endpoints",
			},
			[]string{"provider"},
		)),
		downloaded: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clouddrop_bytes_downloaded_total",
				Help: "Total bytes received from provider content endpoints",
			},
			[]string{"provider"},
		)),
	}
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// ObserveRequest records one API request.
func (c *Collector) ObserveRequest(provider, route, outcome string, d time.Duration) {
	if c == nil {
		return
	}
	c.requests.WithLabelValues(provider, route, outcome).Inc()
	c.duration.WithLabelValues(provider, route).Observe(d.Seconds())
}

// AddUploaded records n bytes sent to the provider.
func (c *Collector) AddUploaded(provider string, n int64) {
	if c == nil || n <= 0 {
		return
	}
	c.uploaded.WithLabelValues(provider).Add(float64(n))
}

// AddDownloaded records n bytes received from the provider.
func (c *Collector) AddDownloaded(provider string, n int64) {
	if c == nil || n <= 0 {
		return
	}
	c.downloaded.WithLabelValues(provider).Add(float64(n))
}

// Outcome maps an operation error to its outcome label.
func Outcome(err error) string {
	var (
		remote    *clouddrop.RemoteAPIError
		transport *clouddrop.TransportError
	)
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, clouddrop.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, clouddrop.ErrCancelled):
		return OutcomeCancelled
	case errors.Is(err, clouddrop.ErrTimeout):
		return OutcomeTimeout
	case errors.As(err, &remote):
		return OutcomeAPIError
	case errors.As(err, &transport):
		return OutcomeTransportError
	default:
		return OutcomeError
	}
}
