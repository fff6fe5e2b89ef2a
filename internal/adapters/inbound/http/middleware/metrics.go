package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/architeacher/datatable/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
)

const (
	httpMethodKey     = "http.method"
	httpPathKey       = "http.path"
	httpStatusCodeKey = "http.status_code"

	MetricHTTPRequestTotal    = "http_requests_total"
	MetricHTTPRequestDuration = "http_request_duration_seconds"
	MetricHTTPRequestSize     = "http_request_size_bytes"
	MetricHTTPResponseSize    = "http_response_size_bytes"
)

// Descriptors lists the instruments the HTTP middleware reports to.
func Descriptors() []metrics.Descriptor {
	labels := []string{
		metrics.LabelName(httpMethodKey),
		metrics.LabelName(httpPathKey),
		metrics.LabelName(httpStatusCodeKey),
	}

	return []metrics.Descriptor{
		{Name: MetricHTTPRequestTotal, Description: "Number of HTTP requests.", Labels: labels},
		{Name: MetricHTTPRequestDuration, Description: "HTTP request latency.", Kind: metrics.KindHistogram, Labels: labels},
		{
			Name:        MetricHTTPRequestSize,
			Description: "HTTP request body size.",
			Kind:        metrics.KindHistogram,
			Labels:      labels[:2],
			Buckets:     []float64{64, 256, 1024, 4096, 16384, 65536},
		},
		{
			Name:        MetricHTTPResponseSize,
			Description: "HTTP response body size.",
			Kind:        metrics.KindHistogram,
			Labels:      labels,
			Buckets:     []float64{256, 1024, 4096, 16384, 65536, 262144, 1048576},
		},
		{
			Name:        MetricCompressionTotal,
			Description: "Number of compressed responses.",
			Labels:      []string{metrics.LabelName(compressionAlgorithmKey)},
		},
		{
			Name:        MetricCompressionSkippedTotal,
			Description: "Number of responses sent uncompressed.",
			Labels:      []string{metrics.LabelName(compressionSkipReasonKey)},
		},
	}
}

type MetricsMiddleware struct {
	metricsClient metrics.Client
}

func NewMetricsMiddleware(metricsClient metrics.Client) *MetricsMiddleware {
	return &MetricsMiddleware{metricsClient: metricsClient}
}

func (m *MetricsMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := NewFlushableResponseWriter(w)

		next.ServeHTTP(wrapped, r)

		m.record(r.Context(), r.Method, routePattern(r), wrapped.StatusCode(), time.Since(start),
			max(r.ContentLength, 0), wrapped.BytesWritten())
	})
}

func (m *MetricsMiddleware) record(
	ctx context.Context,
	method, path string,
	statusCode int,
	duration time.Duration,
	requestSize int64,
	responseSize uint64,
) {
	attrs := []attribute.KeyValue{
		attribute.String(httpMethodKey, method),
		attribute.String(httpPathKey, path),
		attribute.String(httpStatusCodeKey, strconv.Itoa(statusCode)),
	}

	m.metricsClient.Inc(ctx, MetricHTTPRequestTotal, int64(1), attrs...)
	m.metricsClient.Inc(ctx, MetricHTTPRequestDuration, duration.Seconds(), attrs...)
	m.metricsClient.Inc(ctx, MetricHTTPRequestSize, requestSize, attrs[:2]...)
	m.metricsClient.Inc(ctx, MetricHTTPResponseSize, responseSize, attrs...)
}

// routePattern keeps the path label bounded by reporting the chi route
// template instead of the raw path.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}

	return "unmatched"
}
