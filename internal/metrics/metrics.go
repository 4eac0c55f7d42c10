package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"teamsync-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "teamsync",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "teamsync",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "teamsync",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	aiCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "teamsync",
			Subsystem: "ai",
			Name:      "calls_total",
			Help:      "Total number of AI provider calls.",
		},
		[]string{"operation", "outcome"},
	)

	aiDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "teamsync",
			Subsystem: "ai",
			Name:      "call_duration_seconds",
			Help:      "Duration of AI provider calls.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~50s
		},
		[]string{"operation"},
	)

	mediaOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "teamsync",
			Subsystem: "media",
			Name:      "operations_total",
			Help:      "Total number of media host operations.",
		},
		[]string{"operation", "outcome"},
	)

	mailsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "teamsync",
			Subsystem: "mail",
			Name:      "deliveries_total",
			Help:      "Total number of verification mail deliveries attempted.",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		aiCalls,
		aiDuration,
		mediaOps,
		mailsSent,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per matched route.
func Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if ctx.Path() == "/metrics" {
			return ctx.Next()
		}

		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			status = errorStatus(err)
		}
		route := ctx.Route().Path
		method := ctx.Method()

		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

// errorStatus predicts the code the error handler will write.
func errorStatus(err error) int {
	if appErr, ok := apperror.As(err); ok {
		return appErr.Code
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// AIObserver satisfies llm.Observer.
type AIObserver struct{}

func (AIObserver) ObserveAI(operation string, duration time.Duration, err error) {
	aiCalls.WithLabelValues(operation, outcome(err)).Inc()
	aiDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func RecordMedia(operation string, err error) {
	mediaOps.WithLabelValues(operation, outcome(err)).Inc()
}

func RecordMail(err error) {
	mailsSent.WithLabelValues(outcome(err)).Inc()
}
