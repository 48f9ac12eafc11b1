package wire

import (
	"pool-club/internal/adaptor"
	"pool-club/internal/data/repository"
	"pool-club/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireClass(
	r chi.Router,
	classHandler *adaptor.ClassHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================

	// GET /api/classes - Class catalog
	r.Get("/api/classes", classHandler.GetClasses)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/classes/enroll - Paid enrollment
		r.Post("/api/classes/enroll", classHandler.Enroll)

		// GET /api/user/classes - Own enrollments
		r.Get("/api/user/classes", classHandler.MyClasses)

		// PUT /api/classes/enrollments/{id}/cancel - Cancel enrollment
		r.Put("/api/classes/enrollments/{id}/cancel", classHandler.CancelEnrollment)
	})
}
