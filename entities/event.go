package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusCancelled = "cancelled"
)

// Event is a single dated occurrence that tickets are sold against.
// Recurring series are represented as child events pointing at their parent.
type Event struct {
	EventID            uuid.UUID  `json:"event_id" db:"event_id"`
	ParentEventID      *uuid.UUID `json:"parent_event_id,omitempty" db:"parent_event_id"`
	OrganizerID        uuid.UUID  `json:"organizer_id" db:"organizer_id"`
	Title              string     `json:"title" db:"title"`
	Status             string     `json:"status" db:"status"`
	StartsAt           time.Time  `json:"starts_at" db:"starts_at"`
	EndsAt             *time.Time `json:"ends_at,omitempty" db:"ends_at"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CancellationReason *string    `json:"cancellation_reason,omitempty" db:"cancellation_reason"`
}
