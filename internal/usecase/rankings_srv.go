package usecase

import (
	"context"
	"time"

	"pool-club/internal/dto/response"
	"pool-club/pkg/cache"
	"pool-club/pkg/scraper"

	"go.uber.org/zap"
)

const rankingsCacheKey = "rankings:swimcloud"

type RankingsService interface {
	Rankings(ctx context.Context) *response.RankingsResponse
}

type rankingsService struct {
	scraper *scraper.SwimcloudClient
	cache   *cache.Cache
	ttl     time.Duration
	log     *zap.Logger
}

// NewRankingsService builds the rankings reader. The cache may be nil, in
// which case every call hits the upstream page.
func NewRankingsService(sc *scraper.SwimcloudClient, c *cache.Cache, ttl time.Duration, log *zap.Logger) RankingsService {
	return &rankingsService{
		scraper: sc,
		cache:   c,
		ttl:     ttl,
		log:     log.With(zap.String("service", "rankings")),
	}
}

// Rankings never fails outward. Upstream or cache trouble degrades to empty
// lists so the page still renders.
func (s *rankingsService) Rankings(ctx context.Context) *response.RankingsResponse {
	if s.cache != nil {
		var cached response.RankingsResponse
		hit, err := s.cache.Get(ctx, rankingsCacheKey, &cached)
		if err != nil {
			s.log.Warn("Failed to read rankings cache", zap.Error(err))
		}
		if hit {
			return &cached
		}
	}

	resp := &response.RankingsResponse{
		Men:         []response.RankingItem{},
		Women:       []response.RankingItem{},
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}

	swims, err := s.scraper.FetchTopSwims(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch rankings", zap.Error(err))
		return resp
	}

	resp.Men = convertSwims(swims.Men)
	resp.Women = convertSwims(swims.Women)

	if s.cache != nil {
		if err := s.cache.Set(ctx, rankingsCacheKey, resp, s.ttl); err != nil {
			s.log.Warn("Failed to cache rankings", zap.Error(err))
		}
	}

	return resp
}

func convertSwims(swims []scraper.Swim) []response.RankingItem {
	items := []response.RankingItem{}
	for _, swim := range swims {
		items = append(items, response.RankingItem{
			Rank:  swim.Rank,
			Name:  swim.Name,
			Club:  swim.Club,
			Event: swim.Event,
			Time:  swim.Time,
			Score: swim.Score,
		})
	}
	return items
}
