package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"pool-club/internal/data/entity"
	"pool-club/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newAvailFixture(lanes int) (*repository.Repository, AvailabilityService) {
	repo := newTestRepo()
	return repo, NewAvailabilityService(repo.Booking, lanes, zap.NewNop())
}

func addBooking(t *testing.T, repo *repository.Repository, userID uuid.UUID, date, timeStr string, duration int, bookingType entity.BookingType, lane *int, status entity.BookingStatus) uuid.UUID {
	t.Helper()

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:          userID,
		Date:            date,
		Time:            timeStr,
		DurationMinutes: duration,
		Type:            bookingType,
		Lane:            lane,
		Price:           40000,
		Status:          status,
	}
	if err := repo.Booking.Create(context.Background(), booking); err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return booking.ID
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		aStart    time.Time
		aDuration int
		bStart    time.Time
		bDuration int
		want      bool
	}{
		{"identical", base, 60, base, 60, true},
		{"contained", base, 120, base.Add(30 * time.Minute), 30, true},
		{"partial", base, 60, base.Add(30 * time.Minute), 60, true},
		{"touching end to start", base, 60, base.Add(60 * time.Minute), 60, false},
		{"touching start to end", base.Add(60 * time.Minute), 60, base, 60, false},
		{"disjoint", base, 60, base.Add(3 * time.Hour), 60, false},
		{"one minute overlap", base, 61, base.Add(60 * time.Minute), 60, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := overlaps(tc.aStart, tc.aDuration, tc.bStart, tc.bDuration); got != tc.want {
				t.Errorf("overlaps(%v,%d,%v,%d) = %v, want %v",
					tc.aStart, tc.aDuration, tc.bStart, tc.bDuration, got, tc.want)
			}
			// The test is symmetric by construction.
			if got := overlaps(tc.bStart, tc.bDuration, tc.aStart, tc.aDuration); got != tc.want {
				t.Errorf("overlaps is not symmetric for %s", tc.name)
			}
		})
	}
}

func TestIsPast(t *testing.T) {
	_, avail := newAvailFixture(6)
	now := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		date    string
		timeStr string
		want    bool
	}{
		{"future slot", "2030-06-01", "10:01", false},
		{"past slot", "2030-06-01", "09:59", true},
		{"exactly now", "2030-06-01", "10:00", true},
		{"garbage date", "not-a-date", "10:00", true},
		{"garbage time", "2030-06-01", "25:99", true},
		{"empty", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := avail.IsPast(tc.date, tc.timeStr, now); got != tc.want {
				t.Errorf("IsPast(%q, %q) = %v, want %v", tc.date, tc.timeStr, got, tc.want)
			}
		})
	}
}

func TestUserHasOverlap(t *testing.T) {
	repo, avail := newAvailFixture(6)
	ctx := context.Background()
	userID := newTestUser(t, repo, 0)
	otherID := newTestUser(t, repo, 0)

	addBooking(t, repo, userID, "2030-06-01", "10:00", 60, entity.BookingFreeSwim, nil, entity.BookingStatusActive)

	overlap, err := avail.UserHasOverlap(ctx, userID, "2030-06-01", "10:30", 60)
	if err != nil {
		t.Fatalf("UserHasOverlap: %v", err)
	}
	if !overlap {
		t.Error("expected overlap for the same user at 10:30")
	}

	// Touching slots do not overlap.
	overlap, err = avail.UserHasOverlap(ctx, userID, "2030-06-01", "11:00", 60)
	if err != nil {
		t.Fatalf("UserHasOverlap: %v", err)
	}
	if overlap {
		t.Error("touching slot should not overlap")
	}

	// Another user's bookings are irrelevant.
	overlap, err = avail.UserHasOverlap(ctx, otherID, "2030-06-01", "10:30", 60)
	if err != nil {
		t.Fatalf("UserHasOverlap: %v", err)
	}
	if overlap {
		t.Error("other user should not be blocked by this booking")
	}
}

func TestOverlapsRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	base := time.Date(2030, 6, 1, 6, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		aOff := rng.Intn(720)
		bOff := rng.Intn(720)
		aDur := 15 + rng.Intn(165)
		bDur := 15 + rng.Intn(165)

		aStart := base.Add(time.Duration(aOff) * time.Minute)
		bStart := base.Add(time.Duration(bOff) * time.Minute)

		// Independent oracle over minute offsets.
		want := aOff < bOff+bDur && bOff < aOff+aDur

		if got := overlaps(aStart, aDur, bStart, bDur); got != want {
			t.Fatalf("overlaps(+%dm,%d, +%dm,%d) = %v, want %v", aOff, aDur, bOff, bDur, got, want)
		}
		if got := overlaps(bStart, bDur, aStart, aDur); got != want {
			t.Fatalf("overlaps not symmetric for +%dm,%d vs +%dm,%d", aOff, aDur, bOff, bDur)
		}
	}
}

func TestUserHasOverlapRandomized(t *testing.T) {
	repo, avail := newAvailFixture(6)
	ctx := context.Background()
	userID := newTestUser(t, repo, 0)
	rng := rand.New(rand.NewSource(2))

	type slot struct{ off, dur int }
	minuteClock := func(off int) string {
		return fmt.Sprintf("%02d:%02d", 6+off/60, off%60)
	}

	var existing []slot
	for i := 0; i < 20; i++ {
		s := slot{off: rng.Intn(720), dur: 15 + rng.Intn(165)}
		existing = append(existing, s)
		addBooking(t, repo, userID, "2030-06-01", minuteClock(s.off), s.dur, entity.BookingFreeSwim, nil, entity.BookingStatusActive)
	}

	for i := 0; i < 200; i++ {
		candidate := slot{off: rng.Intn(720), dur: 15 + rng.Intn(165)}

		want := false
		for _, s := range existing {
			if candidate.off < s.off+s.dur && s.off < candidate.off+candidate.dur {
				want = true
				break
			}
		}

		got, err := avail.UserHasOverlap(ctx, userID, "2030-06-01", minuteClock(candidate.off), candidate.dur)
		if err != nil {
			t.Fatalf("UserHasOverlap: %v", err)
		}
		if got != want {
			t.Fatalf("UserHasOverlap(+%dm, %d) = %v, want %v", candidate.off, candidate.dur, got, want)
		}
	}
}

func TestAssignLaneLowestFree(t *testing.T) {
	repo, avail := newAvailFixture(3)
	ctx := context.Background()
	userID := newTestUser(t, repo, 0)

	lane1, lane2 := 1, 2
	addBooking(t, repo, userID, "2030-06-01", "10:00", 60, entity.BookingLaneTraining, &lane1, entity.BookingStatusActive)
	addBooking(t, repo, userID, "2030-06-01", "10:00", 60, entity.BookingLaneTraining, &lane2, entity.BookingStatusActive)

	lane, err := avail.AssignLane(ctx, "2030-06-01", "10:30", 60)
	if err != nil {
		t.Fatalf("AssignLane: %v", err)
	}
	if lane == nil || *lane != 3 {
		t.Errorf("expected lane 3, got %v", lane)
	}

	// Fill the last lane; nothing remains.
	lane3 := 3
	addBooking(t, repo, userID, "2030-06-01", "10:00", 60, entity.BookingLaneTraining, &lane3, entity.BookingStatusActive)

	lane, err = avail.AssignLane(ctx, "2030-06-01", "10:30", 60)
	if err != nil {
		t.Fatalf("AssignLane: %v", err)
	}
	if lane != nil {
		t.Errorf("expected no lane, got %d", *lane)
	}

	// A non-overlapping slot frees every lane again, lowest id wins.
	lane, err = avail.AssignLane(ctx, "2030-06-01", "11:00", 60)
	if err != nil {
		t.Fatalf("AssignLane: %v", err)
	}
	if lane == nil || *lane != 1 {
		t.Errorf("expected lane 1 for free slot, got %v", lane)
	}
}

func TestRefreshStatuses(t *testing.T) {
	repo, avail := newAvailFixture(6)
	ctx := context.Background()
	userID := newTestUser(t, repo, 0)

	pastID := addBooking(t, repo, userID, "2030-06-01", "09:00", 60, entity.BookingFreeSwim, nil, entity.BookingStatusActive)
	futureID := addBooking(t, repo, userID, "2030-06-01", "11:00", 60, entity.BookingFreeSwim, nil, entity.BookingStatusActive)
	cancelledID := addBooking(t, repo, userID, "2030-06-01", "08:00", 60, entity.BookingFreeSwim, nil, entity.BookingStatusCancelled)
	brokenID := addBooking(t, repo, userID, "junk", "junk", 60, entity.BookingFreeSwim, nil, entity.BookingStatusActive)

	now := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)
	if err := avail.RefreshStatuses(ctx, now); err != nil {
		t.Fatalf("RefreshStatuses: %v", err)
	}

	assertStatus := func(id uuid.UUID, want entity.BookingStatus) {
		t.Helper()
		booking, err := repo.Booking.FindByID(ctx, id)
		if err != nil || booking == nil {
			t.Fatalf("find booking: %v", err)
		}
		if booking.Status != want {
			t.Errorf("booking %s status = %s, want %s", id, booking.Status, want)
		}
	}

	assertStatus(pastID, entity.BookingStatusExpired)
	assertStatus(futureID, entity.BookingStatusActive)
	assertStatus(cancelledID, entity.BookingStatusCancelled)
	// Unparseable slots are past by definition.
	assertStatus(brokenID, entity.BookingStatusExpired)

	// Idempotent: a second pass changes nothing.
	if err := avail.RefreshStatuses(ctx, now); err != nil {
		t.Fatalf("RefreshStatuses second pass: %v", err)
	}
	assertStatus(pastID, entity.BookingStatusExpired)
	assertStatus(futureID, entity.BookingStatusActive)
	assertStatus(cancelledID, entity.BookingStatusCancelled)
}

func TestNextReservation(t *testing.T) {
	repo, avail := newAvailFixture(6)
	ctx := context.Background()
	userID := newTestUser(t, repo, 0)

	addBooking(t, repo, userID, "2030-06-01", "09:00", 60, entity.BookingFreeSwim, nil, entity.BookingStatusActive)
	soonID := addBooking(t, repo, userID, "2030-06-01", "11:00", 60, entity.BookingFreeSwim, nil, entity.BookingStatusActive)
	addBooking(t, repo, userID, "2030-06-02", "09:00", 60, entity.BookingFreeSwim, nil, entity.BookingStatusActive)

	now := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)
	next, err := avail.NextReservation(ctx, userID, now)
	if err != nil {
		t.Fatalf("NextReservation: %v", err)
	}
	if next == nil || next.ID != soonID {
		t.Errorf("expected next reservation %s, got %+v", soonID, next)
	}

	// No future bookings at all.
	late := time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)
	next, err = avail.NextReservation(ctx, userID, late)
	if err != nil {
		t.Fatalf("NextReservation: %v", err)
	}
	if next != nil {
		t.Errorf("expected nil, got %+v", next)
	}
}
