package response

import (
	"time"

	"pool-club/internal/data/entity"
)

type BookingResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Duration  int       `json:"duration"`
	Type      string    `json:"type"`
	Lane      *int      `json:"lane,omitempty"`
	Price     int64     `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateBookingResponse struct {
	Booking    BookingResponse `json:"booking"`
	NewBalance int64           `json:"new_balance"`
}

type BookingListResponse struct {
	Upcoming []BookingResponse `json:"upcoming"`
	Past     []BookingResponse `json:"past"`
}

type DashboardResponse struct {
	NextReservation *BookingResponse     `json:"next_reservation,omitempty"`
	UpcomingCount   int                  `json:"upcoming_count"`
	PastCount       int                  `json:"past_count"`
	MyClasses       []EnrollmentResponse `json:"my_classes"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:        booking.ID.String(),
		Date:      booking.Date,
		Time:      booking.Time,
		Duration:  booking.DurationMinutes,
		Type:      string(booking.Type),
		Lane:      booking.Lane,
		Price:     booking.Price,
		Status:    string(booking.Status),
		CreatedAt: booking.CreatedAt,
	}
}
