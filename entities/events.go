package entities

import (
	"time"

	"github.com/google/uuid"
)

type EventHeader struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func NewEventHeader() EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: uuid.NewString(),
	}
}

func NewEventHeaderWithIdempotencyKey(idempotencyKey string) EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
	}
}

type IEvent interface {
	IsInternal() bool
}

// EventCancelled_v1 is published when an organizer or admin cancels an
// event. It triggers the auto-refund workflow.
type EventCancelled_v1 struct {
	Header EventHeader `json:"header"`

	EventID     uuid.UUID `json:"event_id"`
	OrganizerID uuid.UUID `json:"organizer_id"`
	Reason      string    `json:"reason"`
}

func (e EventCancelled_v1) IsInternal() bool { return false }

// OrderRefunded_v1 is published inside the ledger transaction once the
// order and all its tickets moved to the refunded state.
type OrderRefunded_v1 struct {
	Header EventHeader `json:"header"`

	OrderID          uuid.UUID `json:"order_id"`
	EventID          uuid.UUID `json:"event_id"`
	EventTitle       string    `json:"event_title"`
	BuyerEmail       string    `json:"buyer_email"`
	Amount           Money     `json:"amount"`
	ProviderRefundID string    `json:"provider_refund_id"`
	Reason           string    `json:"reason"`
}

func (e OrderRefunded_v1) IsInternal() bool { return false }

// OrderRefundFailed_v1 is published when the payment provider rejected
// or errored on an order's refund. The order stays completed for a
// manual retry.
type OrderRefundFailed_v1 struct {
	Header EventHeader `json:"header"`

	OrderID     uuid.UUID `json:"order_id"`
	EventID     uuid.UUID `json:"event_id"`
	EventTitle  string    `json:"event_title"`
	Amount      Money     `json:"amount"`
	ErrorDetail string    `json:"error_detail"`
	Reason      string    `json:"reason"`
}

func (e OrderRefundFailed_v1) IsInternal() bool { return false }

// RefundEventOrders commands the orchestrator to refund every completed
// order of the given event (and its child occurrences).
type RefundEventOrders struct {
	Header EventHeader `json:"header"`

	EventID     uuid.UUID `json:"event_id"`
	OrganizerID uuid.UUID `json:"organizer_id"`
	Reason      string    `json:"reason"`
}

// AuditEvent is one append-only row in the refund event trail.
type AuditEvent struct {
	AuditEventID string    `json:"audit_event_id" db:"audit_event_id"`
	PublishedAt  time.Time `json:"published_at" db:"published_at"`
	EventName    string    `json:"event_name" db:"event_name"`
	EventPayload []byte    `json:"event_payload" db:"event_payload"`
}
