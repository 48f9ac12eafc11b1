package wire

import (
	"pool-club/internal/adaptor"
	"pool-club/internal/data/repository"
	"pool-club/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWallet(
	r chi.Router,
	walletHandler *adaptor.WalletHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/wallet - Balance plus transaction history
		r.Get("/api/wallet", walletHandler.GetWallet)

		// POST /api/wallet/deposit - Top up the wallet
		r.Post("/api/wallet/deposit", walletHandler.Deposit)
	})
}
