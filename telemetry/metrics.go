package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentMetrics counts the outcomes of the payment verification workflow.
type PaymentMetrics struct {
	OrdersCommitted      prometheus.Counter
	IdempotentReplays    prometheus.Counter
	VerificationFailures prometheus.Counter
}

func NewPaymentMetrics(reg prometheus.Registerer) *PaymentMetrics {
	factory := promauto.With(reg)
	return &PaymentMetrics{
		OrdersCommitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "megashopping",
			Subsystem: "payment",
			Name:      "orders_committed_total",
			Help:      "Orders created from verified payments.",
		}),
		IdempotentReplays: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "megashopping",
			Subsystem: "payment",
			Name:      "idempotent_replays_total",
			Help:      "Verify calls that matched an existing order for the same gateway reference.",
		}),
		VerificationFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "megashopping",
			Subsystem: "payment",
			Name:      "verification_failures_total",
			Help:      "Payment callbacks rejected due to signature mismatch.",
		}),
	}
}
