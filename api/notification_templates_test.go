package api

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ticketing/entities"
)

func TestRenderRefundNotice(t *testing.T) {
	orderID := uuid.New()
	body := renderRefundNotice(entities.RefundNotice{
		Recipient:  "ada@example.com",
		EventTitle: "Lagos Jazz Night",
		OrderID:    orderID,
		Amount:     entities.Money{Amount: "5250.00", Currency: "NGN"},
		Reason:     "venue flooded",
	})

	assert.Contains(t, body, "Lagos Jazz Night has been cancelled")
	assert.Contains(t, body, orderID.String())
	assert.Contains(t, body, "5250.00 NGN")
	assert.Contains(t, body, "venue flooded")
}

func TestRenderFailureNotice(t *testing.T) {
	orderID := uuid.New()
	body := renderFailureNotice(entities.RefundFailureNotice{
		Recipient:   "ops@example.com",
		EventTitle:  "Lagos Jazz Night",
		OrderID:     orderID,
		Amount:      entities.Money{Amount: "3000.00", Currency: "NGN"},
		ErrorDetail: "network timeout",
	})

	assert.Contains(t, body, orderID.String())
	assert.Contains(t, body, "3000.00 NGN")
	assert.Contains(t, body, "network timeout")
}
