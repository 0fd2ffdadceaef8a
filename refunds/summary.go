package refunds

import (
	"github.com/google/uuid"

	"ticketing/entities"
)

const (
	StatusRefunded = "refunded"
	StatusFailed   = "failed"
	StatusSkipped  = "skipped"

	// StatusNeedsReconciliation flags the dangerous case: the provider
	// refunded the money but the ledger write failed.
	StatusNeedsReconciliation = "needs_reconciliation"
)

type Summary struct {
	Success       bool     `json:"success"`
	RefundedCount int      `json:"refunded_count"`
	FailedCount   int      `json:"failed_count"`
	SkippedCount  int      `json:"skipped_count"`
	Details       []Detail `json:"details"`
}

type Detail struct {
	OrderID uuid.UUID      `json:"order_id"`
	Amount  entities.Money `json:"amount"`
	Status  string         `json:"status"`
	Error   string         `json:"error,omitempty"`
}

func (s *Summary) add(detail Detail) {
	switch detail.Status {
	case StatusRefunded:
		s.RefundedCount++
	case StatusSkipped:
		s.SkippedCount++
	default:
		s.FailedCount++
	}
	s.Details = append(s.Details, detail)
}
