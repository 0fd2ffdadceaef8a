package http

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ticketing/entities"
	"ticketing/refunds"
)

type Handler struct {
	eventBus     EventPublisher
	orchestrator RefundOrchestrator
	eventRepo    EventRepository
	refundRepo   RefundRequestRepository
	ticketRepo   TicketRepository
}

type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

type RefundOrchestrator interface {
	Process(ctx context.Context, cmd entities.RefundEventOrders) (refunds.Summary, error)
}

type EventRepository interface {
	ByID(ctx context.Context, eventID uuid.UUID) (entities.Event, error)
	Cancel(ctx context.Context, eventID uuid.UUID, reason string, at time.Time) error
}

type RefundRequestRepository interface {
	ByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.RefundRequest, error)
}

type TicketRepository interface {
	ByOrder(ctx context.Context, orderID uuid.UUID) ([]entities.Ticket, error)
}
