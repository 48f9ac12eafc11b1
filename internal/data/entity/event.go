package entity

import (
	"github.com/google/uuid"
)

// EventRegistration is a free, append-only sign-up for a published event.
type EventRegistration struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	EventSlug string    `db:"event_slug"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
}
