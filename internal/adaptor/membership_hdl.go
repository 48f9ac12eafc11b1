package adaptor

import (
	"encoding/json"
	"net/http"

	"pool-club/internal/dto/request"
	"pool-club/internal/usecase"
	"pool-club/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MembershipHandler struct {
	service usecase.MembershipService
	log     *zap.Logger
}

func NewMembershipHandler(service usecase.MembershipService, log *zap.Logger) *MembershipHandler {
	return &MembershipHandler{
		service: service,
		log:     log.With(zap.String("handler", "membership")),
	}
}

// GetPlans handles GET /api/plans (public)
func (h *MembershipHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Plans())
}

// GetMembership handles GET /api/membership (protected)
func (h *MembershipHandler) GetMembership(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	membership, err := h.service.GetMembership(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get membership")
		return
	}

	utils.ResponseSuccess(w, "success", membership)
}

// Purchase handles POST /api/membership/purchase (protected)
func (h *MembershipHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.PurchaseMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Purchase(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "purchase membership")
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// Cancel handles PUT /api/membership/{id}/cancel (protected)
func (h *MembershipHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Membership ID is required", nil)
		return
	}

	if err := h.service.Cancel(r.Context(), userID, itemID); err != nil {
		handleServiceError(w, h.log, err, "cancel membership")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
