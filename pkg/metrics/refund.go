package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RefundTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "refund",
			Subsystem: "lifecycle",
			Name:      "transitions_total",
			Help:      "Total number of refund status transitions",
		},
		[]string{"from", "to"},
	)

	// GatewayAnomaliesTotal counts gateway callbacks that contradict an
	// already-applied terminal refund status. These are ignored but must
	// stay observable: a non-zero rate points at a gateway-side bug.
	GatewayAnomaliesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "refund",
			Subsystem: "gateway",
			Name:      "anomalies_total",
			Help:      "Total number of contradictory gateway callbacks ignored",
		},
		[]string{"applied_status", "reported_outcome"},
	)

	GatewaySubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "refund",
			Subsystem: "gateway",
			Name:      "submissions_total",
			Help:      "Total number of refund submissions to the payment gateway",
		},
		[]string{"status"},
	)
)

func init() {
	Registry.MustRegister(RefundTransitionsTotal, GatewayAnomaliesTotal, GatewaySubmissionsTotal)
}
