package usecase

import (
	"time"

	"pool-club/internal/data/catalog"
	"pool-club/internal/data/repository"
	"pool-club/pkg/cache"
	"pool-club/pkg/scraper"
	"pool-club/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	Wallet     WalletService
	Booking    BookingService
	Membership MembershipService
	Class      ClassService
	Event      EventService
	Rankings   RankingsService
}

func NewService(
	repo *repository.Repository,
	cat *catalog.Catalog,
	rankingsCache *cache.Cache,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	avail := NewAvailabilityService(repo.Booking, config.Pool.Lanes, log)
	wallet := NewWalletService(repo, log)

	return &Service{
		Auth:       NewAuthService(repo, config, log),
		Wallet:     wallet,
		Booking:    NewBookingService(repo, cat, avail, wallet, config.Pool.MaxCapacity, log),
		Membership: NewMembershipService(repo, cat, wallet, log),
		Class:      NewClassService(repo, cat, wallet, log),
		Event:      NewEventService(repo, cat, log),
		Rankings: NewRankingsService(
			scraper.NewSwimcloudClient(log),
			rankingsCache,
			time.Duration(config.Redis.TTLMinutes)*time.Minute,
			log,
		),
	}
}
