package wire

import (
	"pool-club/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireContent(r chi.Router, contentHandler *adaptor.ContentHandler) {
	// ==================== PUBLIC ROUTES ====================

	// GET /api/content/home - Site info, opening hours, facilities
	r.Get("/api/content/home", contentHandler.Home)

	// GET /api/rankings - Cached Swimcloud top swims
	r.Get("/api/rankings", contentHandler.Rankings)
}
