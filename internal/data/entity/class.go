package entity

import (
	"github.com/google/uuid"
)

type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelled"
)

// ClassEnrollment ties a user to a catalog class. Class details are copied in
// at enrollment time, same as membership history.
type ClassEnrollment struct {
	BaseSimple
	UserID    uuid.UUID        `db:"user_id"`
	ClassSlug string           `db:"class_slug"`
	ClassName string           `db:"class_name"`
	Amount    int64            `db:"amount"`
	Status    EnrollmentStatus `db:"status"`
}
