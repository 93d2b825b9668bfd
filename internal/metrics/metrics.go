// Package metrics exposes Prometheus collectors for the analyzer service.
package metrics

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	analysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_analyses_total",
			Help: "Total number of pipeline runs, labeled by outcome.",
		},
		[]string{"outcome"},
	)

	analysisDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analyzer_analysis_duration_seconds",
			Help:    "Histogram of end-to-end pipeline latencies.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30},
		},
	)

	discoveryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_discovery_total",
			Help: "Total number of discovery runs, labeled by the tier that produced the hits.",
		},
		[]string{"source"},
	)

	acquisitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_acquisitions_total",
			Help: "Total number of page acquisitions, labeled by result.",
		},
		[]string{"result"},
	)

	fetchedBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_fetched_bytes_total",
			Help: "Total number of bytes fetched, labeled by site.",
		},
		[]string{"site"},
	)

	headlessPromotionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analyzer_headless_promotions_total",
			Help: "Total number of acquisitions promoted to a headless browser fetch.",
		},
	)

	throttleDelaySeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analyzer_throttle_delay_seconds",
			Help:    "Histogram of outbound per-host throttle waits.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"domain"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests, labeled by method and code.",
		},
		[]string{"method", "code"},
	)

	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, labeled by method and route.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "route"},
	)
)

// SanitizeSite sanitizes a URL to extract a lowercase hostname.
// It returns "unknown" if the URL is invalid.
func SanitizeSite(rawURL string) string {
	if !strings.HasPrefix(rawURL, "http") {
		rawURL = "http://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return strings.ToLower(u.Hostname())
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveAnalysis records a finished pipeline run.
func ObserveAnalysis(outcome string, duration time.Duration) {
	analysesTotal.WithLabelValues(outcome).Inc()
	analysisDurationSeconds.Observe(duration.Seconds())
}

// ObserveDiscovery records which discovery tier answered.
func ObserveDiscovery(source string) {
	discoveryTotal.WithLabelValues(source).Inc()
}

// ObserveAcquisition records an acquisition result and the bytes fetched.
func ObserveAcquisition(site string, result string, bytesFetched int) {
	acquisitionsTotal.WithLabelValues(result).Inc()
	if bytesFetched > 0 {
		fetchedBytesTotal.WithLabelValues(SanitizeSite(site)).Add(float64(bytesFetched))
	}
}

// ObserveHeadlessPromotion increments the headless promotion counter.
func ObserveHeadlessPromotion() {
	headlessPromotionsTotal.Inc()
}

// ObserveThrottleDelay records the duration of a throttle wait.
func ObserveThrottleDelay(domain string, duration time.Duration) {
	throttleDelaySeconds.WithLabelValues(domain).Observe(duration.Seconds())
}

// ObserveHTTPRequest increments the HTTP request metrics.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}
