package repository

import (
	"pool-club/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Session    SessionRepository
	Wallet     WalletRepository
	Booking    BookingRepository
	Membership MembershipRepository
	Class      ClassRepository
	Event      EventRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Wallet:     NewWalletRepository(db, log),
		Booking:    NewBookingRepository(db, log),
		Membership: NewMembershipRepository(db, log),
		Class:      NewClassRepository(db, log),
		Event:      NewEventRepository(db, log),
	}
}
