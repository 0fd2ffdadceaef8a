package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusRefunded  = "refunded"
)

// Order is one checkout transaction aggregating one or more tickets.
// PaymentReference is the provider-side payment identifier the refund
// is issued against.
type Order struct {
	OrderID          uuid.UUID `json:"order_id" db:"order_id"`
	EventID          uuid.UUID `json:"event_id" db:"event_id"`
	BuyerEmail       string    `json:"buyer_email" db:"buyer_email"`
	BuyerName        string    `json:"buyer_name" db:"buyer_name"`
	Total            Money     `json:"total" db:"total"`
	Status           string    `json:"status" db:"status"`
	PaymentReference string    `json:"payment_reference" db:"payment_reference"`
	Notes            string    `json:"notes" db:"notes"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
