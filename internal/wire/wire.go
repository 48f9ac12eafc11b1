package wire

import (
	"net/http"

	"pool-club/internal/adaptor"
	"pool-club/internal/data/catalog"
	"pool-club/internal/data/repository"
	"pool-club/internal/usecase"
	"pool-club/pkg/cache"
	"pool-club/pkg/middleware"
	"pool-club/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(
	repo *repository.Repository,
	cat *catalog.Catalog,
	rankingsCache *cache.Cache,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, cat, rankingsCache, config, logger)
	handler := adaptor.NewHandler(service, cat, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, logger)
	wireContent(r, handler.Content)
	wireWallet(r, handler.Wallet, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireMembership(r, handler.Membership, repo, logger)
	wireClass(r, handler.Class, repo, logger)
	wireEvent(r, handler.Event, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
