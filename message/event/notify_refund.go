package event

import (
	"context"

	"ticketing/entities"
	"ticketing/pkg/log"
	"ticketing/pkg/metrics"
)

// NotifyOrderRefunded emails the buyer. Notification is best effort:
// errors are logged and swallowed so dispatch can never fail or retry
// the refund itself.
func (h Handler) NotifyOrderRefunded(ctx context.Context, event *entities.OrderRefunded_v1) error {
	err := h.notifier.NotifyOrderRefunded(ctx, entities.RefundNotice{
		Recipient:  event.BuyerEmail,
		EventTitle: event.EventTitle,
		OrderID:    event.OrderID,
		Amount:     event.Amount,
		Reason:     event.Reason,
	})
	if err != nil {
		metrics.NotificationsFailed.Inc()
		log.FromContext(ctx).
			WithError(err).
			WithField("order_id", event.OrderID).
			Warn("Could not send refund notice")
		return nil
	}

	metrics.NotificationsSent.Inc()
	return nil
}

// NotifyOrderRefundFailed tells the operations inbox about a provider
// failure so the order can be retried by hand. Best effort as well.
func (h Handler) NotifyOrderRefundFailed(ctx context.Context, event *entities.OrderRefundFailed_v1) error {
	err := h.notifier.NotifyRefundFailed(ctx, entities.RefundFailureNotice{
		Recipient:   h.opsEmail,
		EventTitle:  event.EventTitle,
		OrderID:     event.OrderID,
		Amount:      event.Amount,
		ErrorDetail: event.ErrorDetail,
	})
	if err != nil {
		metrics.NotificationsFailed.Inc()
		log.FromContext(ctx).
			WithError(err).
			WithField("order_id", event.OrderID).
			Warn("Could not send refund failure notice")
		return nil
	}

	metrics.NotificationsSent.Inc()
	return nil
}
