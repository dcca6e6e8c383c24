package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aventra_http_requests_total",
		Help: "HTTP requests by route template, method and status code.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aventra_http_request_duration_seconds",
		Help:    "HTTP request latency by route template and method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	ProviderFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aventra_provider_fallbacks_total",
		Help: "Proxy responses served from canned data, by provider and reason.",
	}, []string{"provider", "reason"})

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aventra_rate_limited_total",
		Help: "Requests rejected by the proxy rate limiter.",
	})
)

// Fallback reasons.
const (
	ReasonNotConfigured = "not_configured"
	ReasonUpstreamError = "upstream_error"
	ReasonEmpty         = "empty"
)

func RecordFallback(provider, reason string) {
	ProviderFallbacks.WithLabelValues(provider, reason).Inc()
}
