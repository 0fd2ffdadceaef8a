package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	TicketStatusActive    = "active"
	TicketStatusCancelled = "cancelled"

	TicketPaymentCompleted = "completed"
	TicketPaymentRefunded  = "refunded"
)

type Ticket struct {
	TicketID      uuid.UUID  `json:"ticket_id" db:"ticket_id"`
	OrderID       uuid.UUID  `json:"order_id" db:"order_id"`
	EventID       uuid.UUID  `json:"event_id" db:"event_id"`
	AttendeeEmail string     `json:"attendee_email" db:"attendee_email"`
	Price         Money      `json:"price" db:"price"`
	Status        string     `json:"status" db:"status"`
	PaymentStatus string     `json:"payment_status" db:"payment_status"`
	RefundedAt    *time.Time `json:"refunded_at,omitempty" db:"refunded_at"`
	RefundReason  *string    `json:"refund_reason,omitempty" db:"refund_reason"`
}
