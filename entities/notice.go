package entities

import "github.com/google/uuid"

// RefundNotice is the payload of the buyer-facing refund email.
type RefundNotice struct {
	Recipient  string
	EventTitle string
	OrderID    uuid.UUID
	Amount     Money
	Reason     string
}

// RefundFailureNotice goes to the operations inbox so a failed refund
// can be retried by hand.
type RefundFailureNotice struct {
	Recipient   string
	EventTitle  string
	OrderID     uuid.UUID
	Amount      Money
	ErrorDetail string
}
