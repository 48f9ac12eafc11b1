package adaptor

import (
	"encoding/json"
	"net/http"

	"pool-club/internal/dto/request"
	"pool-club/internal/usecase"
	"pool-club/pkg/utils"

	"go.uber.org/zap"
)

type EventHandler struct {
	service usecase.EventService
	log     *zap.Logger
}

func NewEventHandler(service usecase.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		log:     log.With(zap.String("handler", "event")),
	}
}

// GetEvents handles GET /api/events (public)
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Events())
}

// Register handles POST /api/events/register (protected)
func (h *EventHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.RegisterEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Register(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register for event")
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// MyRegistrations handles GET /api/user/events (protected)
func (h *EventHandler) MyRegistrations(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	registrations, err := h.service.MyRegistrations(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list event registrations")
		return
	}

	utils.ResponseSuccess(w, "success", registrations)
}
