package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersRefunded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ticketing_orders_refunded_total",
		Help: "Orders fully refunded through the payment provider.",
	})

	OrdersRefundFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ticketing_orders_refund_failed_total",
		Help: "Orders whose provider refund call was rejected or errored.",
	})

	OrdersRefundSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ticketing_orders_refund_skipped_total",
		Help: "Orders skipped by the idempotency guard on re-invocation.",
	})

	OrdersNeedingReconciliation = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ticketing_orders_reconciliation_required_total",
		Help: "Provider refund succeeded but the ledger write failed; fix by hand.",
	})

	NotificationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ticketing_notifications_sent_total",
		Help: "Refund notices delivered.",
	})

	NotificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ticketing_notifications_failed_total",
		Help: "Refund notices that could not be delivered.",
	})
)
