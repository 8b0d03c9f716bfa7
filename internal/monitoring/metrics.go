// Package monitoring exposes the Prometheus metrics of the calculator service.
package monitoring

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
)

// Status label values.
const (
	StatusOK           = "ok"
	StatusInvalidInput = "invalid_input"
	StatusConfigError  = "config_error"
	StatusError        = "error"
)

var (
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "herdmethane_calculations_total",
			Help: "Total number of calculations by operation, channel and outcome",
		},
		[]string{"operation", "channel", "status"},
	)

	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "herdmethane_calculation_duration_seconds",
			Help:    "Calculation duration in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
		[]string{"operation"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "herdmethane_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "code"},
	)

	RateLimitExceeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "herdmethane_rate_limit_exceeded_total",
			Help: "Requests rejected by the per-IP rate limiter",
		},
	)

	ChatCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "herdmethane_chat_commands_total",
			Help: "Chat commands received, by command type",
		},
		[]string{"command"},
	)

	WebhookPayloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "herdmethane_webhook_payloads_total",
			Help: "WhatsApp webhook callbacks, by outcome",
		},
		[]string{"status"},
	)
)

// ObserveCalculation records the outcome and latency of one calculator call.
func ObserveCalculation(operation, channel, status string, elapsed time.Duration) {
	CalculationsTotal.WithLabelValues(operation, channel, status).Inc()
	CalculationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// StatusFor maps a calculator error to its status label.
func StatusFor(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, models.ErrInvalidInput):
		return StatusInvalidInput
	case errors.Is(err, models.ErrConfiguration):
		return StatusConfigError
	default:
		return StatusError
	}
}
