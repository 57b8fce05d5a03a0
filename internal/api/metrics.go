package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/terraincognita07/cyclesense/internal/services"
)

const metricsNamespace = "cyclesense"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	riskAssessmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "risk_assessments_total",
			Help:      "Risk screenings by condition and resulting level.",
		},
		[]string{"condition", "level"},
	)

	nutritionAlertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "nutrition_alerts_total",
			Help:      "Nutrition alerts emitted by alert type.",
		},
		[]string{"type"},
	)

	trendAnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "trend_analyses_total",
			Help:      "Thyroid trend analyses by log source and resulting status.",
		},
		[]string{"source", "status"},
	)
)

// MetricsMiddleware records request counts and latency keyed by the matched
// route pattern, which keeps label cardinality bounded.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}

		route := "unmatched"
		if matched := c.Route(); matched != nil && matched.Path != "" && status != fiber.StatusNotFound {
			route = matched.Path
		}
		method := c.Method()

		httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

func recordRiskAssessment(condition string, level services.RiskLevel) {
	riskAssessmentsTotal.WithLabelValues(condition, string(level)).Inc()
}

func recordNutritionAlerts(alerts []services.NutritionAlert) {
	for _, alert := range alerts {
		nutritionAlertsTotal.WithLabelValues(string(alert.Type)).Inc()
	}
}

func recordTrendAnalysis(source string, status services.TrendStatus) {
	trendAnalysesTotal.WithLabelValues(source, string(status)).Inc()
}
