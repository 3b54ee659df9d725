package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// UpstreamRequests counts upstream calls by integration and outcome
// (ok, upstream_error, transport_error, contract_violation)
var UpstreamRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "eyewear_proxy_upstream_requests_total",
		Help: "Total number of upstream AI API calls",
	},
	[]string{"handler", "outcome"},
)

// UpstreamLatency records the duration of upstream calls
var UpstreamLatency = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "eyewear_proxy_upstream_latency_seconds",
		Help:    "Latency in seconds of upstream AI API calls",
		Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
	},
	[]string{"handler"},
)

// Responses counts responses returned to clients by handler and status code
var Responses = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "eyewear_proxy_responses_total",
		Help: "Total number of responses returned to clients",
	},
	[]string{"handler", "status"},
)

func init() {
	prometheus.MustRegister(UpstreamRequests, UpstreamLatency, Responses)
}

// ObserveUpstream records one upstream call
func ObserveUpstream(handler, outcome string, latency time.Duration) {
	UpstreamRequests.WithLabelValues(handler, outcome).Inc()
	if latency > 0 {
		UpstreamLatency.WithLabelValues(handler).Observe(latency.Seconds())
	}
}

// ObserveResponse records one client response
func ObserveResponse(handler string, status int) {
	Responses.WithLabelValues(handler, strconv.Itoa(status)).Inc()
}
