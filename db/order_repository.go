package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ticketing/entities"
	"ticketing/message/event"
	"ticketing/message/outbox"
)

type OrderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) OrderRepository {
	if db == nil {
		panic("db is nil")
	}
	return OrderRepository{db: db}
}

func (or OrderRepository) Create(ctx context.Context, order entities.Order) error {
	_, err := or.db.Conn.NamedExecContext(ctx, `
		INSERT INTO
			orders (order_id, event_id, buyer_email, buyer_name, total_amount, total_currency, status, payment_reference, notes)
		VALUES
			(:order_id, :event_id, :buyer_email, :buyer_name, :total.amount, :total.currency, :status, :payment_reference, :notes)
		ON CONFLICT DO NOTHING`,
		order,
	)
	if err != nil {
		return fmt.Errorf("could not save order: %w", err)
	}
	return nil
}

func (or OrderRepository) ByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	var order entities.Order
	err := or.db.Conn.GetContext(ctx, &order, selectOrderColumns+`WHERE order_id = $1`, orderID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("could not get order: %w", err)
	}

	return order, nil
}

// CompletedByEvent returns the orders the orchestrator has to refund,
// oldest first so repeated runs process them in a stable order.
func (or OrderRepository) CompletedByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.Order, error) {
	var orders []entities.Order
	err := or.db.Conn.SelectContext(ctx, &orders, selectOrderColumns+`
		WHERE event_id = $1 AND status = $2
		ORDER BY created_at`,
		eventID, entities.OrderStatusCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("could not get completed orders: %w", err)
	}

	return orders, nil
}

const selectOrderColumns = `
	SELECT
		order_id, event_id, buyer_email, buyer_name,
		total_amount AS "total.amount",
		total_currency AS "total.currency",
		status, payment_reference, notes, created_at
	FROM orders
`

// MarkRefunded is the ledger write: one serializable transaction moves
// the order and every ticket under it to the refunded state, appends
// the cancellation reason to the order notes and publishes the
// OrderRefunded_v1 event through the transactional outbox. The update
// is predicated on status = 'completed', so a concurrent invocation
// cannot commit the same transition twice.
func (or OrderRepository) MarkRefunded(
	ctx context.Context,
	orderID uuid.UUID,
	reason string,
	refundedAt time.Time,
	refundedEvent entities.OrderRefunded_v1,
) (err error) {
	tx, err := or.db.Conn.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			rollbackErr := tx.Rollback()
			err = errors.Join(err, rollbackErr)
			return
		}
		err = tx.Commit()
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $2, notes = trim(both ' | ' from notes || ' | ' || $3)
		WHERE order_id = $1 AND status = $4`,
		orderID, entities.OrderStatusRefunded, "refunded: "+reason, entities.OrderStatusCompleted,
	)
	if err != nil {
		return fmt.Errorf("could not update order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check order update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("order %s: %w", orderID, ErrOrderNotRefundable)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE tickets
		SET status = $2, payment_status = $3, refunded_at = $4, refund_reason = $5
		WHERE order_id = $1`,
		orderID, entities.TicketStatusCancelled, entities.TicketPaymentRefunded, refundedAt, reason,
	)
	if err != nil {
		return fmt.Errorf("could not update tickets: %w", err)
	}

	outboxPublisher, err := outbox.NewPublisherForDb(ctx, tx)
	if err != nil {
		return fmt.Errorf("could not create outbox publisher: %w", err)
	}
	err = event.NewBus(outboxPublisher).Publish(ctx, refundedEvent)
	if err != nil {
		return fmt.Errorf("could not publish OrderRefunded_v1: %w", err)
	}

	return nil
}
