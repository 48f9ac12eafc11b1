package wire

import (
	"pool-club/internal/adaptor"
	"pool-club/internal/data/repository"
	"pool-club/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================

	// POST /api/register - Create a new account
	r.Post("/api/register", authHandler.Register)

	// POST /api/login - Exchange credentials for a session token
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/logout - Revoke the current session
		r.Post("/api/logout", authHandler.Logout)
	})
}
