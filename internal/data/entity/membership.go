package entity

import (
	"time"

	"github.com/google/uuid"
)

type MembershipStatus string

const (
	MembershipStatusActive    MembershipStatus = "active"
	MembershipStatusCancelled MembershipStatus = "cancelled"
	MembershipStatusExpired   MembershipStatus = "expired"
)

// MembershipHistoryItem records one plan purchase. Plan details are copied in
// at purchase time so later catalog edits cannot rewrite history.
type MembershipHistoryItem struct {
	Base
	UserID      uuid.UUID        `db:"user_id"`
	PlanSlug    string           `db:"plan_slug"`
	PlanName    string           `db:"plan_name"`
	PurchasedAt time.Time        `db:"purchased_at"`
	ExpiresAt   time.Time        `db:"expires_at"`
	Amount      int64            `db:"amount"`
	Status      MembershipStatus `db:"status"`
}
