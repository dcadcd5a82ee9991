package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CheckoutMetrics covers the checkout pipeline end to end.
type CheckoutMetrics struct {
	OrdersCreatedTotal       prometheus.CounterVec
	OrdersCreatedAmountTotal prometheus.CounterVec

	OrdersSettledTotal       prometheus.CounterVec
	OrdersSettledAmountTotal prometheus.CounterVec
	OrdersFailedTotal        prometheus.CounterVec

	WebhookDeliveriesTotal prometheus.CounterVec
	SettlementDuration     prometheus.HistogramVec

	CheckoutValidationErrorsTotal prometheus.CounterVec
}

func NewCheckoutMetrics() *CheckoutMetrics {
	return &CheckoutMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_orders_created_total",
				Help: "Orders created in pending state",
			},
			[]string{"gateway", "currency"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_orders_created_amount_total",
				Help: "Total amount of created orders in display currency",
			},
			[]string{"gateway", "currency"},
		),

		OrdersSettledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_orders_settled_total",
				Help: "Orders transitioned pending -> paid",
			},
			[]string{"gateway", "currency"},
		),

		OrdersSettledAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_orders_settled_amount_total",
				Help: "Total settled amount in display currency",
			},
			[]string{"gateway", "currency"},
		),

		OrdersFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_orders_failed_total",
				Help: "Orders transitioned pending -> failed by admin action",
			},
			[]string{"gateway"},
		),

		WebhookDeliveriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_webhook_deliveries_total",
				Help: "Inbound webhook deliveries by gateway and outcome",
			},
			[]string{"gateway", "outcome"},
		),

		SettlementDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "checkout_settlement_duration_seconds",
				Help:    "Time spent in the settlement write path",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"gateway"},
		),

		CheckoutValidationErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_validation_errors_total",
				Help: "Order initialization rejections by reason",
			},
			[]string{"reason"},
		),
	}
}
