package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// loginsTotal counts login attempts by outcome.
	// Labels:
	// - outcome: "success" or "failure"
	loginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "courtside",
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Total number of login attempts",
		},
		[]string{"outcome"},
	)
)

// IncLogin increments the login counter for the given outcome.
func IncLogin(outcome string) {
	if outcome == "" {
		outcome = "unknown"
	}
	loginsTotal.WithLabelValues(outcome).Inc()
}
