package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"ticketing/entities"
)

type RefundRequestRepository struct {
	db *DB
}

func NewRefundRequestRepository(db *DB) RefundRequestRepository {
	if db == nil {
		panic("db is nil")
	}
	return RefundRequestRepository{db: db}
}

func (rr RefundRequestRepository) Create(ctx context.Context, request entities.RefundRequest) error {
	_, err := rr.db.Conn.NamedExecContext(ctx, `
		INSERT INTO
			refund_requests (refund_request_id, order_id, event_id, amount, currency, status, provider_refund_id, error_detail, requested_by)
		VALUES
			(:refund_request_id, :order_id, :event_id, :amount.amount, :amount.currency, :status, :provider_refund_id, :error_detail, :requested_by)`,
		request,
	)
	if isErrorUniqueViolation(err) {
		// a processed row for this order already exists, nothing to record
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not save refund request: %w", err)
	}
	return nil
}

// ProcessedExists is the idempotency guard: re-invoking the
// orchestrator for an already refunded order must not reach the
// provider again.
func (rr RefundRequestRepository) ProcessedExists(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var exists bool
	err := rr.db.Conn.GetContext(ctx, &exists, `
		SELECT EXISTS (
			SELECT 1 FROM refund_requests WHERE order_id = $1 AND status = $2
		)`,
		orderID, entities.RefundRequestProcessed,
	)
	if err != nil {
		return false, fmt.Errorf("could not check processed refund requests: %w", err)
	}

	return exists, nil
}

func (rr RefundRequestRepository) ByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.RefundRequest, error) {
	var requests []entities.RefundRequest
	err := rr.db.Conn.SelectContext(ctx, &requests, `
		SELECT
			refund_request_id, order_id, event_id,
			amount AS "amount.amount",
			currency AS "amount.currency",
			status, provider_refund_id, error_detail, requested_by, created_at
		FROM
			refund_requests
		WHERE
			event_id = $1
		ORDER BY created_at`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not get refund requests: %w", err)
	}

	return requests, nil
}
