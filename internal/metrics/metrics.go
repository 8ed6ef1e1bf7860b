package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// rateLimitExceeded counts HTTP 429 events from the rate limit middleware.
	// Labels:
	// - endpoint: short name like "notify:email", "notify:confirm", ...
	// - source:   "user" or "ip"
	rateLimitExceeded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "courtside",
			Subsystem: "http",
			Name:      "rate_limit_exceeded_total",
			Help:      "Number of requests rejected due to rate limiting (HTTP 429)",
		},
		[]string{"endpoint", "source"},
	)

	// emailsSent counts outbound email attempts by provider and outcome.
	// Labels:
	// - provider: "brevo" or "smtp"
	// - outcome:  "success", "failure" (provider rejected), or "error" (transport)
	emailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "courtside",
			Subsystem: "mail",
			Name:      "emails_sent_total",
			Help:      "Total number of outbound email send attempts",
		},
		[]string{"provider", "outcome"},
	)

	// bookingConfirmations counts confirmation dispatch attempts.
	// Labels:
	// - outcome: "sent", "denied", or "error"
	bookingConfirmations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "courtside",
			Subsystem: "notify",
			Name:      "booking_confirmations_total",
			Help:      "Total number of booking confirmation dispatch attempts",
		},
		[]string{"outcome"},
	)
)

// IncRateLimitExceeded increments the 429 counter for the given endpoint and source.
func IncRateLimitExceeded(endpoint, source string) {
	if endpoint == "" {
		endpoint = "unknown"
	}
	if source == "" {
		source = "unknown"
	}
	rateLimitExceeded.WithLabelValues(endpoint, source).Inc()
}

// IncEmailSent increments the outbound email counter.
func IncEmailSent(provider, outcome string) {
	if provider == "" {
		provider = "unknown"
	}
	if outcome == "" {
		outcome = "unknown"
	}
	emailsSent.WithLabelValues(provider, outcome).Inc()
}

// IncBookingConfirmation increments the confirmation dispatch counter.
func IncBookingConfirmation(outcome string) {
	if outcome == "" {
		outcome = "unknown"
	}
	bookingConfirmations.WithLabelValues(outcome).Inc()
}
