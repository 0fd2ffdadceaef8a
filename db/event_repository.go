package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ticketing/entities"
)

type EventRepository struct {
	db *DB
}

func NewEventRepository(db *DB) EventRepository {
	if db == nil {
		panic("db is nil")
	}
	return EventRepository{db: db}
}

func (er EventRepository) Create(ctx context.Context, event entities.Event) error {
	_, err := er.db.Conn.NamedExecContext(ctx, `
		INSERT INTO
			events (event_id, parent_event_id, organizer_id, title, status, starts_at, ends_at)
		VALUES
			(:event_id, :parent_event_id, :organizer_id, :title, :status, :starts_at, :ends_at)`,
		event,
	)
	if err != nil {
		return fmt.Errorf("could not save event: %w", err)
	}
	return nil
}

func (er EventRepository) ByID(ctx context.Context, eventID uuid.UUID) (entities.Event, error) {
	var event entities.Event
	err := er.db.Conn.GetContext(ctx, &event, `
		SELECT
			event_id, parent_event_id, organizer_id, title, status,
			starts_at, ends_at, cancelled_at, cancellation_reason
		FROM
			events
		WHERE
			event_id = $1`,
		eventID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Event{}, fmt.Errorf("event %s: %w", eventID, ErrEventNotFound)
	}
	if err != nil {
		return entities.Event{}, fmt.Errorf("could not get event: %w", err)
	}

	return event, nil
}

// Children returns the dated occurrences generated from a recurring
// series, so cancelling the parent refunds them all.
func (er EventRepository) Children(ctx context.Context, parentID uuid.UUID) ([]entities.Event, error) {
	var events []entities.Event
	err := er.db.Conn.SelectContext(ctx, &events, `
		SELECT
			event_id, parent_event_id, organizer_id, title, status,
			starts_at, ends_at, cancelled_at, cancellation_reason
		FROM
			events
		WHERE
			parent_event_id = $1`,
		parentID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not get child events: %w", err)
	}

	return events, nil
}

// Cancel transitions the event (and its children) to cancelled. Already
// cancelled rows are left untouched so the transition stays idempotent.
func (er EventRepository) Cancel(ctx context.Context, eventID uuid.UUID, reason string, at time.Time) error {
	_, err := er.db.Conn.ExecContext(ctx, `
		UPDATE events
		SET status = $2, cancelled_at = $3, cancellation_reason = $4
		WHERE (event_id = $1 OR parent_event_id = $1) AND status != $2`,
		eventID, entities.EventStatusCancelled, at, reason,
	)
	if err != nil {
		return fmt.Errorf("could not cancel event: %w", err)
	}

	return nil
}
