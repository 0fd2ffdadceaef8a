package command

import (
	"context"
	"fmt"

	"ticketing/entities"
	"ticketing/pkg/log"
)

func (h Handler) RefundEventOrders(ctx context.Context, cmd *entities.RefundEventOrders) error {
	summary, err := h.orchestrator.Process(ctx, *cmd)
	if err != nil {
		return fmt.Errorf("refunding orders for event %s: %w", cmd.EventID, err)
	}

	log.FromContext(ctx).
		WithField("event_id", cmd.EventID).
		WithField("refunded_count", summary.RefundedCount).
		WithField("failed_count", summary.FailedCount).
		Info("Event refund run finished")

	return nil
}
