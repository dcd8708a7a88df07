package observability

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registerOnce sync.Once

	renderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "resume_engine",
			Subsystem: "render",
			Name:      "duration_seconds",
			Help:      "Time spent producing a rendered document.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"status"},
	)

	renderTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resume_engine",
			Subsystem: "render",
			Name:      "requests_total",
			Help:      "Total render requests by outcome.",
		},
		[]string{"status"},
	)

	optimizeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "resume_engine",
			Subsystem: "optimize",
			Name:      "duration_seconds",
			Help:      "Time spent on batch ATS optimization.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"status"},
	)

	optimizeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resume_engine",
			Subsystem: "optimize",
			Name:      "requests_total",
			Help:      "Total optimization requests by outcome.",
		},
		[]string{"status"},
	)

	cacheHitRate = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "resume_engine",
			Subsystem: "cache",
			Name:      "hit_rate",
			Help:      "Template cache hit rate in [0,1].",
		},
	)

	cacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "resume_engine",
			Subsystem: "cache",
			Name:      "entries",
			Help:      "Current number of cached templates.",
		},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "resume_engine",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	requestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resume_engine",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
)

func register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			renderDuration, renderTotal,
			optimizeDuration, optimizeTotal,
			cacheHitRate, cacheSize,
			requestDuration, requestTotal,
		)
	})
}

// ObserveRender records one render call's outcome and latency
func ObserveRender(duration time.Duration, status string) {
	register()
	renderDuration.WithLabelValues(status).Observe(duration.Seconds())
	renderTotal.WithLabelValues(status).Inc()
}

// ObserveOptimize records one batch optimization call's outcome and latency
func ObserveOptimize(duration time.Duration, status string) {
	register()
	optimizeDuration.WithLabelValues(status).Observe(duration.Seconds())
	optimizeTotal.WithLabelValues(status).Inc()
}

// SetCacheStats publishes the template cache's current hit rate and size
func SetCacheStats(hitRate float64, size int) {
	register()
	cacheHitRate.Set(hitRate)
	cacheSize.Set(float64(size))
}

// MetricsHandler exposes the Prometheus scrape endpoint
func MetricsHandler() http.Handler {
	register()
	return promhttp.Handler()
}

// statusRecorder captures the response code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware wraps a handler with request counting and latency collection.
// The path label is the registered route pattern, not the raw URL, to keep
// cardinality bounded.
func Middleware(pattern string, next http.Handler) http.Handler {
	register()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		labels := prometheus.Labels{
			"method": r.Method,
			"path":   pattern,
			"status": strconv.Itoa(recorder.status),
		}
		requestDuration.With(labels).Observe(time.Since(start).Seconds())
		requestTotal.With(labels).Inc()
	})
}
