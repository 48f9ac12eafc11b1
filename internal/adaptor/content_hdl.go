package adaptor

import (
	"net/http"

	"pool-club/internal/data/catalog"
	"pool-club/internal/usecase"
	"pool-club/pkg/utils"

	"go.uber.org/zap"
)

type ContentHandler struct {
	catalog  *catalog.Catalog
	rankings usecase.RankingsService
	log      *zap.Logger
}

func NewContentHandler(cat *catalog.Catalog, rankings usecase.RankingsService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{
		catalog:  cat,
		rankings: rankings,
		log:      log.With(zap.String("handler", "content")),
	}
}

// Home handles GET /api/content/home (public)
func (h *ContentHandler) Home(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", map[string]any{
		"site":       h.catalog.Site(),
		"hours":      h.catalog.Hours(),
		"facilities": h.catalog.Facilities(),
	})
}

// Rankings handles GET /api/rankings (public)
func (h *ContentHandler) Rankings(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.rankings.Rankings(r.Context()))
}
