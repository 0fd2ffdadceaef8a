package event

import (
	"context"
	"fmt"

	"ticketing/entities"
	"ticketing/pkg/log"
)

// OnEventCancelled starts the auto-refund workflow for the cancelled
// event. The command is retried by the router middleware on failure.
func (h Handler) OnEventCancelled(ctx context.Context, event *entities.EventCancelled_v1) error {
	log.FromContext(ctx).
		WithField("event_id", event.EventID).
		Info("Event cancelled, requesting refunds")

	cmd := entities.RefundEventOrders{
		Header:      entities.NewEventHeaderWithIdempotencyKey(event.Header.IdempotencyKey),
		EventID:     event.EventID,
		OrganizerID: event.OrganizerID,
		Reason:      event.Reason,
	}

	if err := h.commandSender.Send(ctx, cmd); err != nil {
		return fmt.Errorf("failed to send RefundEventOrders command: %w", err)
	}

	return nil
}
