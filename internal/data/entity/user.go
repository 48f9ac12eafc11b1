package entity

import "time"

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	Base
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	Phone        *string  `db:"phone"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`

	// Wallet balance is the running sum of the user's wallet transactions.
	WalletBalance int64 `db:"wallet_balance"`

	// Denormalized cache of the latest active membership history item.
	// Active-membership checks recompute from history, never trust these alone.
	MembershipSlug    *string    `db:"membership_slug"`
	MembershipName    *string    `db:"membership_name"`
	MembershipExpires *time.Time `db:"membership_expires"`
}
