package repository

import (
	"context"
	"fmt"

	"pool-club/internal/data/entity"
	"pool-club/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error

	// Availability queries. Expiry is computed lazily in Go because slots are
	// stored as raw strings, so "active" here means status only.
	FindActive(ctx context.Context) ([]*entity.Booking, error)
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindActiveByType(ctx context.Context, bookingType entity.BookingType) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, date, time, duration_minutes, type, lane, price, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.Date,
		&booking.Time,
		&booking.DurationMinutes,
		&booking.Type,
		&booking.Lane,
		&booking.Price,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, date, time, duration_minutes, type, lane, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.Date,
		booking.Time,
		booking.DurationMinutes,
		booking.Type,
		booking.Lane,
		booking.Price,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("date", booking.Date),
			zap.String("time", booking.Time),
		)
		return fmt.Errorf("create booking for user %s: %w", booking.UserID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE user_id = $1
		ORDER BY date DESC, time DESC
	`, bookingColumns)

	return r.queryBookings(ctx, query, userID)
}

func (r *bookingRepository) FindActive(ctx context.Context) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE status = 'active'`, bookingColumns)

	return r.queryBookings(ctx, query)
}

func (r *bookingRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE user_id = $1 AND status = 'active'
	`, bookingColumns)

	return r.queryBookings(ctx, query, userID)
}

func (r *bookingRepository) FindActiveByType(ctx context.Context, bookingType entity.BookingType) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE type = $1 AND status = 'active'
	`, bookingColumns)

	return r.queryBookings(ctx, query, bookingType)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query bookings", zap.Error(err))
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.Date,
			&booking.Time,
			&booking.DurationMinutes,
			&booking.Type,
			&booking.Lane,
			&booking.Price,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}
