// Package memory implements the repository interfaces over process memory.
// It mirrors the volatile reference storage and backs the test suite; the
// postgres repositories are the durable migration target.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"pool-club/internal/data/entity"
	"pool-club/internal/data/repository"

	"github.com/google/uuid"
)

// Store keeps every aggregate behind a single mutex. The booking create path
// is check-then-act, so all reads and writes that feed it must be serialized.
type Store struct {
	mu sync.RWMutex

	users        map[uuid.UUID]*entity.User
	usersByEmail map[string]uuid.UUID
	sessions     map[uuid.UUID]*entity.Session
	transactions map[uuid.UUID]*entity.WalletTransaction
	bookings     map[uuid.UUID]*entity.Booking
	memberships  map[uuid.UUID]*entity.MembershipHistoryItem
	enrollments  map[uuid.UUID]*entity.ClassEnrollment
	events       map[uuid.UUID]*entity.EventRegistration
}

func NewStore() *Store {
	return &Store{
		users:        make(map[uuid.UUID]*entity.User),
		usersByEmail: make(map[string]uuid.UUID),
		sessions:     make(map[uuid.UUID]*entity.Session),
		transactions: make(map[uuid.UUID]*entity.WalletTransaction),
		bookings:     make(map[uuid.UUID]*entity.Booking),
		memberships:  make(map[uuid.UUID]*entity.MembershipHistoryItem),
		enrollments:  make(map[uuid.UUID]*entity.ClassEnrollment),
		events:       make(map[uuid.UUID]*entity.EventRegistration),
	}
}

// NewRepository wires every aggregate of the store into the shared
// Repository struct the services consume.
func NewRepository(store *Store) *repository.Repository {
	return &repository.Repository{
		User:       &userStore{store},
		Session:    &sessionStore{store},
		Wallet:     &walletStore{store},
		Booking:    &bookingStore{store},
		Membership: &membershipStore{store},
		Class:      &classStore{store},
		Event:      &eventStore{store},
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func copyUser(user *entity.User) *entity.User {
	clone := *user
	if user.Phone != nil {
		phone := *user.Phone
		clone.Phone = &phone
	}
	if user.MembershipSlug != nil {
		slug := *user.MembershipSlug
		clone.MembershipSlug = &slug
	}
	if user.MembershipName != nil {
		name := *user.MembershipName
		clone.MembershipName = &name
	}
	if user.MembershipExpires != nil {
		expires := *user.MembershipExpires
		clone.MembershipExpires = &expires
	}
	return &clone
}

func copyBooking(booking *entity.Booking) *entity.Booking {
	clone := *booking
	if booking.Lane != nil {
		lane := *booking.Lane
		clone.Lane = &lane
	}
	return &clone
}

func sortNewestFirst[T any](items []T, at func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return at(items[i]).After(at(items[j]))
	})
}
