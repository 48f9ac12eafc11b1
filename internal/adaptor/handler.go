package adaptor

import (
	"errors"
	"net/http"

	"pool-club/internal/data/catalog"
	"pool-club/internal/usecase"
	"pool-club/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	Wallet     *WalletHandler
	Booking    *BookingHandler
	Membership *MembershipHandler
	Class      *ClassHandler
	Event      *EventHandler
	Content    *ContentHandler
}

func NewHandler(service *usecase.Service, cat *catalog.Catalog, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		Wallet:     NewWalletHandler(service.Wallet, log),
		Booking:    NewBookingHandler(service.Booking, log),
		Membership: NewMembershipHandler(service.Membership, log),
		Class:      NewClassHandler(service.Class, log),
		Event:      NewEventHandler(service.Event, log),
		Content:    NewContentHandler(cat, service.Rankings, log),
	}
}

// handleServiceError maps service errors onto HTTP responses. Error kinds are
// matched with errors.Is so wrapped messages stay intact for the client.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrPastSlot),
		errors.Is(err, usecase.ErrNotActive):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, usecase.ErrInsufficientFunds):
		log.Warn(operation+" failed - insufficient funds",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponsePaymentRequired(w, errMsg)

	case errors.Is(err, usecase.ErrConflict),
		errors.Is(err, usecase.ErrCapacity):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case errors.Is(err, usecase.ErrMembershipWindow):
		log.Warn(operation+" failed - outside cancellation window",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
