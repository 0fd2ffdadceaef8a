package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	RefundRequestPending   = "pending"
	RefundRequestProcessed = "processed"
	RefundRequestFailed    = "failed"
)

// RefundRequest is the audit record of one refund attempt against one
// order. Terminal once processed or failed.
type RefundRequest struct {
	RefundRequestID  uuid.UUID  `json:"refund_request_id" db:"refund_request_id"`
	OrderID          uuid.UUID  `json:"order_id" db:"order_id"`
	EventID          uuid.UUID  `json:"event_id" db:"event_id"`
	Amount           Money      `json:"amount" db:"amount"`
	Status           string     `json:"status" db:"status"`
	ProviderRefundID *string    `json:"provider_refund_id,omitempty" db:"provider_refund_id"`
	ErrorDetail      *string    `json:"error_detail,omitempty" db:"error_detail"`
	RequestedBy      *uuid.UUID `json:"requested_by,omitempty" db:"requested_by"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}

// PaymentRefund is the request the payment provider receives. The
// idempotency key is stable per order so retries cannot double-charge.
type PaymentRefund struct {
	PaymentReference string
	Amount           Money
	Reason           string
	IdempotencyKey   string
}
