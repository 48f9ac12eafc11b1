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

type ClassHandler struct {
	service usecase.ClassService
	log     *zap.Logger
}

func NewClassHandler(service usecase.ClassService, log *zap.Logger) *ClassHandler {
	return &ClassHandler{
		service: service,
		log:     log.With(zap.String("handler", "class")),
	}
}

// GetClasses handles GET /api/classes (public)
func (h *ClassHandler) GetClasses(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Classes())
}

// Enroll handles POST /api/classes/enroll (protected)
func (h *ClassHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.EnrollClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Enroll(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "enroll class")
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// MyClasses handles GET /api/user/classes (protected)
func (h *ClassHandler) MyClasses(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	enrollments, err := h.service.MyClasses(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list enrollments")
		return
	}

	utils.ResponseSuccess(w, "success", enrollments)
}

// CancelEnrollment handles PUT /api/classes/enrollments/{id}/cancel (protected)
func (h *ClassHandler) CancelEnrollment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	enrollmentID := chi.URLParam(r, "id")
	if enrollmentID == "" {
		utils.ResponseBadRequest(w, "Enrollment ID is required", nil)
		return
	}

	if err := h.service.CancelEnrollment(r.Context(), userID, enrollmentID); err != nil {
		handleServiceError(w, h.log, err, "cancel enrollment")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
