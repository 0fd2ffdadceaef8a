package db

import (
	"context"
	"fmt"

	"ticketing/entities"
)

// AuditRepository appends every refund domain event to an append-only
// trail for manual reconciliation.
type AuditRepository struct {
	db *DB
}

func NewAuditRepository(db *DB) AuditRepository {
	if db == nil {
		panic("db is nil")
	}
	return AuditRepository{db: db}
}

func (ar AuditRepository) Store(ctx context.Context, event entities.AuditEvent) error {
	_, err := ar.db.Conn.ExecContext(ctx, `
		INSERT INTO
			events_audit (audit_event_id, published_at, event_name, event_payload)
		VALUES
			($1, $2, $3, $4)
		ON CONFLICT (audit_event_id) DO NOTHING`,
		event.AuditEventID, event.PublishedAt, event.EventName, event.EventPayload,
	)
	if err != nil {
		return fmt.Errorf("could not store audit event: %w", err)
	}

	return nil
}
