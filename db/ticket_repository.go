package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"ticketing/entities"
)

type TicketRepository struct {
	db *DB
}

func NewTicketRepository(db *DB) TicketRepository {
	if db == nil {
		panic("db is nil")
	}
	return TicketRepository{db: db}
}

func (tr TicketRepository) Create(ctx context.Context, ticket entities.Ticket) error {
	_, err := tr.db.Conn.NamedExecContext(ctx, `
		INSERT INTO
			tickets (ticket_id, order_id, event_id, attendee_email, price_amount, price_currency, status, payment_status)
		VALUES
			(:ticket_id, :order_id, :event_id, :attendee_email, :price.amount, :price.currency, :status, :payment_status)
		ON CONFLICT DO NOTHING`,
		ticket,
	)
	if err != nil {
		return fmt.Errorf("could not save ticket: %w", err)
	}
	return nil
}

func (tr TicketRepository) ByOrder(ctx context.Context, orderID uuid.UUID) ([]entities.Ticket, error) {
	var tickets []entities.Ticket
	err := tr.db.Conn.SelectContext(ctx, &tickets, `
		SELECT
			ticket_id, order_id, event_id, attendee_email,
			price_amount AS "price.amount",
			price_currency AS "price.currency",
			status, payment_status, refunded_at, refund_reason
		FROM
			tickets
		WHERE
			order_id = $1`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not get tickets for order: %w", err)
	}

	return tickets, nil
}
