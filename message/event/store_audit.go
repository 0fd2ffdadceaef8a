package event

import (
	"context"
	"encoding/json"
	"fmt"

	"ticketing/entities"
)

func (h Handler) StoreEventCancelled(ctx context.Context, event *entities.EventCancelled_v1) error {
	return h.storeAudit(ctx, event.Header, "EventCancelled_v1", event)
}

func (h Handler) StoreOrderRefunded(ctx context.Context, event *entities.OrderRefunded_v1) error {
	return h.storeAudit(ctx, event.Header, "OrderRefunded_v1", event)
}

func (h Handler) StoreOrderRefundFailed(ctx context.Context, event *entities.OrderRefundFailed_v1) error {
	return h.storeAudit(ctx, event.Header, "OrderRefundFailed_v1", event)
}

func (h Handler) storeAudit(ctx context.Context, header entities.EventHeader, name string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("could not marshal %s: %w", name, err)
	}

	return h.auditRepo.Store(ctx, entities.AuditEvent{
		AuditEventID: header.ID,
		PublishedAt:  header.PublishedAt,
		EventName:    name,
		EventPayload: body,
	})
}
