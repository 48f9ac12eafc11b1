package usecase

import "errors"

// Expected, recoverable outcomes. Handlers map these to HTTP statuses with
// errors.Is; anything else is an internal error.
var (
	ErrValidation        = errors.New("validation failed")
	ErrPastSlot          = errors.New("slot is in the past")
	ErrConflict          = errors.New("overlapping booking exists")
	ErrCapacity          = errors.New("no capacity for this slot")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrNotFound          = errors.New("not found")
	ErrNotActive         = errors.New("not active")
	ErrMembershipWindow  = errors.New("cancellation window has passed")
)
