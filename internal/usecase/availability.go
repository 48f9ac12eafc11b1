package usecase

import (
	"context"
	"fmt"
	"time"

	"pool-club/internal/data/entity"
	"pool-club/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const slotLayout = "2006-01-02 15:04"

// AvailabilityService decides whether a requested slot can be granted:
// overlap detection, pool capacity counting, lane assignment, and the lazy
// status refresh. All checks are read-only; bookings whose status is not
// active are invisible to them.
type AvailabilityService interface {
	IsPast(date, timeStr string, now time.Time) bool
	UserHasOverlap(ctx context.Context, userID uuid.UUID, date, timeStr string, duration int) (bool, error)
	CountConcurrent(ctx context.Context, bookingType entity.BookingType, date, timeStr string, duration int) (int, error)
	AssignLane(ctx context.Context, date, timeStr string, duration int) (*int, error)
	RefreshStatuses(ctx context.Context, now time.Time) error
	NextReservation(ctx context.Context, userID uuid.UUID, now time.Time) (*entity.Booking, error)
}

type availabilityService struct {
	bookings repository.BookingRepository
	lanes    int
	log      *zap.Logger
}

func NewAvailabilityService(bookings repository.BookingRepository, lanes int, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		bookings: bookings,
		lanes:    lanes,
		log:      log.With(zap.String("service", "availability")),
	}
}

// parseSlot turns a date (YYYY-MM-DD) and time (HH:MM) into a single
// offset-naive instant. ok is false for malformed input; callers must then
// treat the slot as past/invalid, never proceed with it.
func parseSlot(date, timeStr string) (time.Time, bool) {
	slot, err := time.Parse(slotLayout, date+" "+timeStr)
	if err != nil {
		return time.Time{}, false
	}
	return slot, true
}

// overlaps is the half-open interval test [start, start+duration) used by
// every availability check. Touching intervals do not overlap.
func overlaps(aStart time.Time, aDuration int, bStart time.Time, bDuration int) bool {
	aEnd := aStart.Add(time.Duration(aDuration) * time.Minute)
	bEnd := bStart.Add(time.Duration(bDuration) * time.Minute)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// IsPast reports whether the slot starts at or before now. Unparseable
// slots are past by definition (fail closed: they are never bookable).
func (s *availabilityService) IsPast(date, timeStr string, now time.Time) bool {
	slot, ok := parseSlot(date, timeStr)
	if !ok {
		return true
	}
	return !slot.After(now)
}

func (s *availabilityService) UserHasOverlap(ctx context.Context, userID uuid.UUID, date, timeStr string, duration int) (bool, error) {
	slot, ok := parseSlot(date, timeStr)
	if !ok {
		return false, fmt.Errorf("check user overlap: unparseable slot %s %s", date, timeStr)
	}

	active, err := s.bookings.FindActiveByUserID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("check user overlap: %w", err)
	}

	for _, booking := range active {
		existing, ok := parseSlot(booking.Date, booking.Time)
		if !ok {
			continue // will be expired by the next refresh
		}
		if overlaps(slot, duration, existing, booking.DurationMinutes) {
			return true, nil
		}
	}

	return false, nil
}

// CountConcurrent counts active bookings of the given type overlapping the
// proposed interval across all users.
func (s *availabilityService) CountConcurrent(ctx context.Context, bookingType entity.BookingType, date, timeStr string, duration int) (int, error) {
	slot, ok := parseSlot(date, timeStr)
	if !ok {
		return 0, fmt.Errorf("count concurrent bookings: unparseable slot %s %s", date, timeStr)
	}

	active, err := s.bookings.FindActiveByType(ctx, bookingType)
	if err != nil {
		return 0, fmt.Errorf("count concurrent bookings: %w", err)
	}

	count := 0
	for _, booking := range active {
		existing, ok := parseSlot(booking.Date, booking.Time)
		if !ok {
			continue
		}
		if overlaps(slot, duration, existing, booking.DurationMinutes) {
			count++
		}
	}

	return count, nil
}

// AssignLane returns the lowest-numbered lane with no overlapping active
// lane-training booking, or nil when every lane is contested. The ascending
// scan keeps assignment deterministic.
func (s *availabilityService) AssignLane(ctx context.Context, date, timeStr string, duration int) (*int, error) {
	slot, ok := parseSlot(date, timeStr)
	if !ok {
		return nil, fmt.Errorf("assign lane: unparseable slot %s %s", date, timeStr)
	}

	active, err := s.bookings.FindActiveByType(ctx, entity.BookingLaneTraining)
	if err != nil {
		return nil, fmt.Errorf("assign lane: %w", err)
	}

	for lane := 1; lane <= s.lanes; lane++ {
		free := true
		for _, booking := range active {
			if booking.Lane == nil || *booking.Lane != lane {
				continue
			}
			existing, ok := parseSlot(booking.Date, booking.Time)
			if !ok {
				continue
			}
			if overlaps(slot, duration, existing, booking.DurationMinutes) {
				free = false
				break
			}
		}
		if free {
			assigned := lane
			return &assigned, nil
		}
	}

	return nil, nil
}

// RefreshStatuses expires every active booking whose slot start is at or
// before now. Cancelled bookings are never touched. Idempotent; expiry is
// computed lazily instead of by a background timer, so this runs before any
// read that surfaces booking status.
func (s *availabilityService) RefreshStatuses(ctx context.Context, now time.Time) error {
	active, err := s.bookings.FindActive(ctx)
	if err != nil {
		return fmt.Errorf("refresh booking statuses: %w", err)
	}

	expired := 0
	for _, booking := range active {
		if !s.IsPast(booking.Date, booking.Time, now) {
			continue
		}
		if err := s.bookings.UpdateStatus(ctx, booking.ID, entity.BookingStatusExpired); err != nil {
			return fmt.Errorf("refresh booking statuses: %w", err)
		}
		expired++
	}

	if expired > 0 {
		s.log.Info("Bookings expired", zap.Int("count", expired))
	}
	return nil
}

// NextReservation returns the user's soonest active booking strictly after
// now, or nil when there is none.
func (s *availabilityService) NextReservation(ctx context.Context, userID uuid.UUID, now time.Time) (*entity.Booking, error) {
	active, err := s.bookings.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find next reservation: %w", err)
	}

	var next *entity.Booking
	var nextStart time.Time
	for _, booking := range active {
		start, ok := parseSlot(booking.Date, booking.Time)
		if !ok || !start.After(now) {
			continue
		}
		if next == nil || start.Before(nextStart) {
			next = booking
			nextStart = start
		}
	}

	return next, nil
}
