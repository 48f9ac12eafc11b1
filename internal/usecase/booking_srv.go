package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"pool-club/internal/data/catalog"
	"pool-club/internal/data/entity"
	"pool-club/internal/data/repository"
	"pool-club/internal/dto/request"
	"pool-club/internal/dto/response"
	"pool-club/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) error
	GetUserBookings(ctx context.Context, userID uuid.UUID) (*response.BookingListResponse, error)
	DashboardSummary(ctx context.Context, userID uuid.UUID) (*response.DashboardResponse, error)
	ActiveBookings(ctx context.Context) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	catalog  *catalog.Catalog
	avail    AvailabilityService
	wallet   WalletService
	capacity int
	log      *zap.Logger

	// Serializes the check-charge-create sequence. Two concurrent requests
	// must not both pass the lane/capacity check before either persists.
	mu sync.Mutex
}

func NewBookingService(
	repo *repository.Repository,
	cat *catalog.Catalog,
	avail AvailabilityService,
	wallet WalletService,
	capacity int,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:     repo,
		catalog:  cat,
		avail:    avail,
		wallet:   wallet,
		capacity: capacity,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	bookingType := entity.BookingType(req.Type)
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.avail.RefreshStatuses(ctx, now); err != nil {
		return nil, err
	}

	if s.avail.IsPast(req.Date, req.Time, now) {
		return nil, fmt.Errorf("slot %s %s: %w", req.Date, req.Time, ErrPastSlot)
	}

	overlap, err := s.avail.UserHasOverlap(ctx, userID, req.Date, req.Time, req.Duration)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, fmt.Errorf("slot %s %s: %w", req.Date, req.Time, ErrConflict)
	}

	var lane *int
	switch bookingType {
	case entity.BookingFreeSwim:
		swimmers, err := s.avail.CountConcurrent(ctx, entity.BookingFreeSwim, req.Date, req.Time, req.Duration)
		if err != nil {
			return nil, err
		}
		if swimmers >= s.capacity {
			return nil, fmt.Errorf("pool is full for slot %s %s: %w", req.Date, req.Time, ErrCapacity)
		}
	case entity.BookingLaneTraining:
		lane, err = s.avail.AssignLane(ctx, req.Date, req.Time, req.Duration)
		if err != nil {
			return nil, err
		}
		if lane == nil {
			return nil, fmt.Errorf("all lanes taken for slot %s %s: %w", req.Date, req.Time, ErrCapacity)
		}
	}

	// Every availability check passed; only now may the wallet be touched.
	price := s.catalog.PriceFor(bookingType)
	newBalance, err := s.wallet.Charge(ctx, userID, price,
		fmt.Sprintf("Booking %s %s %s", bookingType, req.Date, req.Time))
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:          userID,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.Duration,
		Type:            bookingType,
		Lane:            lane,
		Price:           price,
		Status:          entity.BookingStatusActive,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		// The debit already happened; compensate so no one pays for a
		// booking that was never persisted.
		if _, refundErr := s.wallet.Refund(ctx, userID, price, "Refund: booking could not be saved"); refundErr != nil {
			s.log.Error("Failed to refund after booking create failure",
				zap.Error(refundErr),
				zap.String("user_id", userID.String()),
			)
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("date", req.Date),
			zap.String("time", req.Time),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("type", string(bookingType)),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
		zap.Intp("lane", lane),
		zap.Int64("price", price),
	)

	bookingResp := response.BookingToResponse(booking)
	return &response.CreateBookingResponse{
		Booking:    bookingResp,
		NewBalance: newBalance,
	}, nil
}

// CancelBooking flips an active booking to cancelled. No refund is granted;
// the paid amount stays spent.
func (s *bookingService) CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("booking id %s: %w", bookingID, ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.avail.RefreshStatuses(ctx, time.Now()); err != nil {
		return err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	if booking == nil || booking.UserID != userID {
		return fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
	}
	if booking.Status != entity.BookingStatusActive {
		return fmt.Errorf("booking %s is %s: %w", bookingID, booking.Status, ErrNotActive)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("user_id", userID.String()),
	)
	return nil
}

// ActiveBookings is the staff schedule overview: every active reservation
// across all members, soonest slot first.
func (s *bookingService) ActiveBookings(ctx context.Context) ([]response.BookingResponse, error) {
	if err := s.avail.RefreshStatuses(ctx, time.Now()); err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active bookings: %w", err)
	}

	// Date and time are ISO-ordered strings, so lexicographic sort is
	// chronological.
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date < bookings[j].Date
		}
		return bookings[i].Time < bookings[j].Time
	})

	resp := []response.BookingResponse{}
	for _, booking := range bookings {
		resp = append(resp, response.BookingToResponse(booking))
	}
	return resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID) (*response.BookingListResponse, error) {
	now := time.Now()
	if err := s.avail.RefreshStatuses(ctx, now); err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	resp := &response.BookingListResponse{
		Upcoming: []response.BookingResponse{},
		Past:     []response.BookingResponse{},
	}
	for _, booking := range bookings {
		bookingResp := response.BookingToResponse(booking)
		if s.avail.IsPast(booking.Date, booking.Time, now) {
			resp.Past = append(resp.Past, bookingResp)
		} else {
			resp.Upcoming = append(resp.Upcoming, bookingResp)
		}
	}

	return resp, nil
}

func (s *bookingService) DashboardSummary(ctx context.Context, userID uuid.UUID) (*response.DashboardResponse, error) {
	now := time.Now()
	if err := s.avail.RefreshStatuses(ctx, now); err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}

	upcoming, past := 0, 0
	for _, booking := range bookings {
		if s.avail.IsPast(booking.Date, booking.Time, now) {
			past++
		} else {
			upcoming++
		}
	}

	next, err := s.avail.NextReservation(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	var nextResp *response.BookingResponse
	if next != nil {
		resp := response.BookingToResponse(next)
		nextResp = &resp
	}

	enrollments, err := s.repo.Class.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}

	classes := []response.EnrollmentResponse{}
	for _, enrollment := range enrollments {
		if enrollment.Status == entity.EnrollmentStatusActive {
			classes = append(classes, response.EnrollmentToResponse(enrollment))
		}
	}

	return &response.DashboardResponse{
		NextReservation: nextResp,
		UpcomingCount:   upcoming,
		PastCount:       past,
		MyClasses:       classes,
	}, nil
}
