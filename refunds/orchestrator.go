package refunds

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ticketing/db"
	"ticketing/entities"
	"ticketing/pkg/log"
	"ticketing/pkg/metrics"
)

type EventRepository interface {
	ByID(ctx context.Context, eventID uuid.UUID) (entities.Event, error)
	Children(ctx context.Context, parentID uuid.UUID) ([]entities.Event, error)
}

type OrderRepository interface {
	CompletedByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.Order, error)
	MarkRefunded(ctx context.Context, orderID uuid.UUID, reason string, refundedAt time.Time, refundedEvent entities.OrderRefunded_v1) error
}

type RefundRequestRepository interface {
	Create(ctx context.Context, request entities.RefundRequest) error
	ProcessedExists(ctx context.Context, orderID uuid.UUID) (bool, error)
}

type PaymentProvider interface {
	RefundPayment(ctx context.Context, request entities.PaymentRefund) (string, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

// Orchestrator refunds every completed order of a cancelled event. The
// loop is sequential and fault isolated per order: one provider failure
// is recorded and the remaining orders still get their refund.
type Orchestrator struct {
	eventRepo  EventRepository
	orderRepo  OrderRepository
	refundRepo RefundRequestRepository
	payments   PaymentProvider
	eventBus   EventPublisher
}

func NewOrchestrator(
	eventRepo EventRepository,
	orderRepo OrderRepository,
	refundRepo RefundRequestRepository,
	payments PaymentProvider,
	eventBus EventPublisher,
) *Orchestrator {
	if eventRepo == nil {
		panic("eventRepo is required")
	}
	if orderRepo == nil {
		panic("orderRepo is required")
	}
	if refundRepo == nil {
		panic("refundRepo is required")
	}
	if payments == nil {
		panic("payments is required")
	}
	if eventBus == nil {
		panic("eventBus is required")
	}

	return &Orchestrator{
		eventRepo:  eventRepo,
		orderRepo:  orderRepo,
		refundRepo: refundRepo,
		payments:   payments,
		eventBus:   eventBus,
	}
}

func (o *Orchestrator) Process(ctx context.Context, cmd entities.RefundEventOrders) (Summary, error) {
	event, err := o.eventRepo.ByID(ctx, cmd.EventID)
	if err != nil {
		return Summary{}, err
	}

	reason := cmd.Reason
	if reason == "" {
		reason = "event cancelled"
	}

	events := []entities.Event{event}
	children, err := o.eventRepo.Children(ctx, event.EventID)
	if err != nil {
		return Summary{}, err
	}
	events = append(events, children...)

	summary := Summary{}
	for _, ev := range events {
		orders, err := o.orderRepo.CompletedByEvent(ctx, ev.EventID)
		if err != nil {
			// nothing to iterate, fatal for the whole invocation
			return Summary{}, fmt.Errorf("loading completed orders for event %s: %w", ev.EventID, err)
		}

		for _, order := range orders {
			summary.add(o.refundOrder(ctx, ev, order, reason, cmd.OrganizerID))
		}
	}

	summary.Success = summary.FailedCount == 0
	return summary, nil
}

func (o *Orchestrator) refundOrder(
	ctx context.Context,
	event entities.Event,
	order entities.Order,
	reason string,
	requestedBy uuid.UUID,
) Detail {
	logger := log.FromContext(ctx).
		WithField("event_id", event.EventID).
		WithField("order_id", order.OrderID)

	processed, err := o.refundRepo.ProcessedExists(ctx, order.OrderID)
	if err != nil {
		logger.WithError(err).Error("Could not check refund request history")
		metrics.OrdersRefundFailed.Inc()
		return Detail{OrderID: order.OrderID, Amount: order.Total, Status: StatusFailed, Error: err.Error()}
	}
	if processed {
		logger.Info("Order already refunded, skipping")
		metrics.OrdersRefundSkipped.Inc()
		return Detail{OrderID: order.OrderID, Amount: order.Total, Status: StatusSkipped}
	}

	providerRefundID, err := o.payments.RefundPayment(ctx, entities.PaymentRefund{
		PaymentReference: order.PaymentReference,
		Amount:           order.Total,
		Reason:           reason,
		IdempotencyKey:   "refund-" + order.OrderID.String(),
	})
	if err != nil {
		logger.WithError(err).Error("Provider refund failed")
		o.recordFailure(ctx, event, order, reason, requestedBy, err)
		metrics.OrdersRefundFailed.Inc()
		return Detail{OrderID: order.OrderID, Amount: order.Total, Status: StatusFailed, Error: err.Error()}
	}

	refundedAt := time.Now().UTC()
	request := entities.RefundRequest{
		RefundRequestID:  uuid.New(),
		OrderID:          order.OrderID,
		EventID:          event.EventID,
		Amount:           order.Total,
		Status:           entities.RefundRequestProcessed,
		ProviderRefundID: &providerRefundID,
		RequestedBy:      &requestedBy,
	}
	if err := o.refundRepo.Create(ctx, request); err != nil {
		// money already moved at the provider, only the audit row is missing
		logger.WithError(err).
			WithField("provider_refund_id", providerRefundID).
			WithField("reconciliation_required", true).
			Error("Could not record processed refund request")
	}

	refundedEvent := entities.OrderRefunded_v1{
		Header:           entities.NewEventHeaderWithIdempotencyKey("refund-" + order.OrderID.String()),
		OrderID:          order.OrderID,
		EventID:          event.EventID,
		EventTitle:       event.Title,
		BuyerEmail:       order.BuyerEmail,
		Amount:           order.Total,
		ProviderRefundID: providerRefundID,
		Reason:           reason,
	}
	err = o.orderRepo.MarkRefunded(ctx, order.OrderID, reason, refundedAt, refundedEvent)
	if errors.Is(err, db.ErrOrderNotRefundable) {
		// a concurrent invocation won the ledger write; the provider
		// call was deduplicated by the idempotency key
		logger.Warn("Order was refunded concurrently, skipping ledger write")
		metrics.OrdersRefundSkipped.Inc()
		return Detail{OrderID: order.OrderID, Amount: order.Total, Status: StatusSkipped}
	}
	if err != nil {
		logger.WithError(err).
			WithField("provider_refund_id", providerRefundID).
			WithField("reconciliation_required", true).
			Error("Provider refund succeeded but the ledger write failed")
		metrics.OrdersNeedingReconciliation.Inc()
		return Detail{OrderID: order.OrderID, Amount: order.Total, Status: StatusNeedsReconciliation, Error: err.Error()}
	}

	logger.WithField("provider_refund_id", providerRefundID).Info("Order refunded")
	metrics.OrdersRefunded.Inc()
	return Detail{OrderID: order.OrderID, Amount: order.Total, Status: StatusRefunded}
}

// recordFailure writes the failed audit row and tells operations; both
// are best effort, the loop continues either way.
func (o *Orchestrator) recordFailure(
	ctx context.Context,
	event entities.Event,
	order entities.Order,
	reason string,
	requestedBy uuid.UUID,
	refundErr error,
) {
	logger := log.FromContext(ctx).WithField("order_id", order.OrderID)

	errDetail := refundErr.Error()
	request := entities.RefundRequest{
		RefundRequestID: uuid.New(),
		OrderID:         order.OrderID,
		EventID:         event.EventID,
		Amount:          order.Total,
		Status:          entities.RefundRequestFailed,
		ErrorDetail:     &errDetail,
		RequestedBy:     &requestedBy,
	}
	if err := o.refundRepo.Create(ctx, request); err != nil {
		logger.WithError(err).Error("Could not record failed refund request")
	}

	failedEvent := entities.OrderRefundFailed_v1{
		Header:      entities.NewEventHeader(),
		OrderID:     order.OrderID,
		EventID:     event.EventID,
		EventTitle:  event.Title,
		Amount:      order.Total,
		ErrorDetail: errDetail,
		Reason:      reason,
	}
	if err := o.eventBus.Publish(ctx, failedEvent); err != nil {
		logger.WithError(err).Error("Could not publish OrderRefundFailed_v1")
	}
}
