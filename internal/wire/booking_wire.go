package wire

import (
	"pool-club/internal/adaptor"
	"pool-club/internal/data/repository"
	"pool-club/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/bookings - Reserve a slot
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings - Upcoming and past reservations
		r.Get("/api/bookings", bookingHandler.GetUserBookings)

		// PUT /api/bookings/{id}/cancel - Cancel own reservation
		r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)

		// GET /api/dashboard - Member dashboard summary
		r.Get("/api/dashboard", bookingHandler.Dashboard)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/bookings - Full active schedule, soonest first
		r.Get("/", bookingHandler.AllBookings)
	})
}
