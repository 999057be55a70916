package services

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	authEventsTotal     *prometheus.CounterVec
	authGateDecisions   *prometheus.CounterVec
	ordersPlacedTotal   prometheus.Counter
	orderStatusTotal    *prometheus.CounterVec
	orderAmount         prometheus.Histogram
	remindersFiredTotal prometheus.Counter
	pushDeliveries      *prometheus.CounterVec
	aiScanTotal         *prometheus.CounterVec
	aiScanDuration      prometheus.Histogram
	circuitBreakerState *prometheus.GaugeVec
	activeUsersTotal    prometheus.Gauge
}

var (
	metricsOnce     sync.Once
	metricsInstance *PrometheusMetrics
)

// NewPrometheusMetrics returns the process-wide metrics recorder. Collectors
// register with the default registry exactly once.
func NewPrometheusMetrics() MetricsRecorderInterface {
	metricsOnce.Do(func() {
		metricsInstance = &PrometheusMetrics{
			authEventsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "authentication_events_total",
					Help: "Total number of authentication events",
				},
				[]string{"event_type"},
			),
			authGateDecisions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "auth_gate_decisions_total",
					Help: "Total number of authentication gate decisions",
				},
				[]string{"outcome"},
			),
			ordersPlacedTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "orders_placed_total",
					Help: "Total number of orders placed",
				},
			),
			orderStatusTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "order_status_changes_total",
					Help: "Total number of order status changes",
				},
				[]string{"status"},
			),
			orderAmount: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "order_amount",
					Help:    "Order total in base currency units",
					Buckets: prometheus.ExponentialBuckets(1, 10, 6),
				},
			),
			remindersFiredTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "reminders_fired_total",
					Help: "Total number of care reminders fired",
				},
			),
			pushDeliveries: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "push_deliveries_total",
					Help: "Total number of push notification deliveries",
				},
				[]string{"status"},
			),
			aiScanTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "ai_scans_total",
					Help: "Total number of plant disease scans",
				},
				[]string{"status"},
			),
			aiScanDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "ai_scan_duration_milliseconds",
					Help:    "Plant disease scan duration in milliseconds",
					Buckets: prometheus.ExponentialBuckets(1, 2, 14),
				},
			),
			circuitBreakerState: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "circuit_breaker_state",
					Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
				},
				[]string{"service"},
			),
			activeUsersTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "active_users_total",
					Help: "Current number of active user accounts",
				},
			),
		}
	})

	return metricsInstance
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authEventsTotal.WithLabelValues(eventType).Inc()
		}
	case "auth_gate_decision":
		if outcome := tags["outcome"]; outcome != "" {
			m.authGateDecisions.WithLabelValues(outcome).Inc()
		}
	case "order_placed":
		m.ordersPlacedTotal.Inc()
	case "order_status_changed":
		if status := tags["status"]; status != "" {
			m.orderStatusTotal.WithLabelValues(status).Inc()
		}
	case "reminder_fired":
		m.remindersFiredTotal.Inc()
	case "push_delivered":
		m.pushDeliveries.WithLabelValues("delivered").Inc()
	case "push_failed":
		m.pushDeliveries.WithLabelValues("failed").Inc()
	case "ai_scan_completed":
		m.aiScanTotal.WithLabelValues("completed").Inc()
	case "ai_scan_failed":
		m.aiScanTotal.WithLabelValues("failed_" + tags["reason"]).Inc()
	case "ai_scan_rejected":
		m.aiScanTotal.WithLabelValues("rejected").Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "ai_scan":
		m.aiScanDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "order_amount":
		m.orderAmount.Observe(value)
	case "active_users":
		m.activeUsersTotal.Set(value)
	case "circuit_breaker_state":
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}
