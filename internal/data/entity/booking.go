package entity

import (
	"github.com/google/uuid"
)

type BookingType string

const (
	BookingFreeSwim     BookingType = "free_swim"
	BookingLaneTraining BookingType = "lane_training"
	BookingOther        BookingType = "other"
)

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusExpired   BookingStatus = "expired"
)

// Booking holds its slot as raw date/time strings. Parsing happens lazily in
// the availability engine and unparseable slots are treated as already past.
type Booking struct {
	Base
	UserID          uuid.UUID     `db:"user_id"`
	Date            string        `db:"date"` // YYYY-MM-DD
	Time            string        `db:"time"` // HH:MM
	DurationMinutes int           `db:"duration_minutes"`
	Type            BookingType   `db:"type"`
	Lane            *int          `db:"lane"` // set for lane_training only
	Price           int64         `db:"price"`
	Status          BookingStatus `db:"status"`
}
