package adaptor

import (
	"encoding/json"
	"net/http"

	"pool-club/internal/dto/request"
	"pool-club/internal/dto/response"
	"pool-club/internal/usecase"
	"pool-club/pkg/utils"

	"go.uber.org/zap"
)

type WalletHandler struct {
	service usecase.WalletService
	log     *zap.Logger
}

func NewWalletHandler(service usecase.WalletService, log *zap.Logger) *WalletHandler {
	return &WalletHandler{
		service: service,
		log:     log.With(zap.String("handler", "wallet")),
	}
}

// GetWallet handles GET /api/wallet (protected)
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	wallet, err := h.service.GetWallet(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get wallet")
		return
	}

	utils.ResponseSuccess(w, "success", wallet)
}

// Deposit handles POST /api/wallet/deposit (protected)
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	description := req.Description
	if description == "" {
		description = "Wallet deposit"
	}

	newBalance, err := h.service.Deposit(r.Context(), userID, req.Amount, description)
	if err != nil {
		handleServiceError(w, h.log, err, "deposit")
		return
	}

	utils.ResponseSuccess(w, "success", response.DepositResponse{NewBalance: newBalance})
}
