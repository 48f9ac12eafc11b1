package memory

import (
	"context"
	"fmt"
	"time"

	"pool-club/internal/data/entity"

	"github.com/google/uuid"
)

type bookingStore struct {
	store *Store
}

func (s *bookingStore) Create(ctx context.Context, booking *entity.Booking) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	s.store.bookings[booking.ID] = copyBooking(booking)
	return nil
}

func (s *bookingStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	booking, ok := s.store.bookings[id]
	if !ok {
		return nil, nil
	}
	return copyBooking(booking), nil
}

func (s *bookingStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var bookings []*entity.Booking
	for _, booking := range s.store.bookings {
		if booking.UserID == userID {
			bookings = append(bookings, copyBooking(booking))
		}
	}

	sortNewestFirst(bookings, func(b *entity.Booking) time.Time {
		slot, err := time.Parse("2006-01-02 15:04", b.Date+" "+b.Time)
		if err != nil {
			return time.Time{} // unparseable slots sort last
		}
		return slot
	})
	return bookings, nil
}

func (s *bookingStore) FindActive(ctx context.Context) ([]*entity.Booking, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var bookings []*entity.Booking
	for _, booking := range s.store.bookings {
		if booking.Status == entity.BookingStatusActive {
			bookings = append(bookings, copyBooking(booking))
		}
	}
	return bookings, nil
}

func (s *bookingStore) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var bookings []*entity.Booking
	for _, booking := range s.store.bookings {
		if booking.UserID == userID && booking.Status == entity.BookingStatusActive {
			bookings = append(bookings, copyBooking(booking))
		}
	}
	return bookings, nil
}

func (s *bookingStore) FindActiveByType(ctx context.Context, bookingType entity.BookingType) ([]*entity.Booking, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var bookings []*entity.Booking
	for _, booking := range s.store.bookings {
		if booking.Type == bookingType && booking.Status == entity.BookingStatusActive {
			bookings = append(bookings, copyBooking(booking))
		}
	}
	return bookings, nil
}

func (s *bookingStore) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	booking, ok := s.store.bookings[bookingID]
	if !ok {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	booking.Status = status
	booking.UpdatedAt = time.Now()
	return nil
}
