package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reserva_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reserva_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reserva_bookings_total",
			Help: "Total number of submitted bookings",
		},
		[]string{"kind", "payment_method"},
	)

	BookingTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reserva_booking_transitions_total",
			Help: "Total number of booking status changes",
		},
		[]string{"kind", "status"},
	)

	PaymentHoldsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reserva_payment_holds_total",
			Help: "Payment holds by outcome",
		},
		[]string{"outcome"},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reserva_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(kind, paymentMethod string) {
	BookingsTotal.WithLabelValues(kind, paymentMethod).Inc()
}

func RecordTransition(kind, status string) {
	BookingTransitionsTotal.WithLabelValues(kind, status).Inc()
}

// RecordHold counts payment hold outcomes: created, confirmed, abandoned, expired.
func RecordHold(outcome string) {
	PaymentHoldsTotal.WithLabelValues(outcome).Inc()
}

func RecordRateLimited() {
	RateLimitedTotal.Inc()
}

// RecordExpired counts bookings expired by the scheduler, which does not know their kind.
func RecordExpired(n int) {
	BookingTransitionsTotal.WithLabelValues("any", "expired").Add(float64(n))
}
