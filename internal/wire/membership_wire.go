package wire

import (
	"pool-club/internal/adaptor"
	"pool-club/internal/data/repository"
	"pool-club/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMembership(
	r chi.Router,
	membershipHandler *adaptor.MembershipHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================

	// GET /api/plans - Available membership plans
	r.Get("/api/plans", membershipHandler.GetPlans)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/membership - Current plan plus purchase history
		r.Get("/api/membership", membershipHandler.GetMembership)

		// POST /api/membership/purchase - Buy or extend a plan
		r.Post("/api/membership/purchase", membershipHandler.Purchase)

		// PUT /api/membership/{id}/cancel - Same-day cancellation with refund
		r.Put("/api/membership/{id}/cancel", membershipHandler.Cancel)
	})
}
