package wire

import (
	"pool-club/internal/adaptor"
	"pool-club/internal/data/repository"
	"pool-club/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEvent(
	r chi.Router,
	eventHandler *adaptor.EventHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================

	// GET /api/events - Published events
	r.Get("/api/events", eventHandler.GetEvents)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/events/register - Free registration
		r.Post("/api/events/register", eventHandler.Register)

		// GET /api/user/events - Own registrations
		r.Get("/api/user/events", eventHandler.MyRegistrations)
	})
}
