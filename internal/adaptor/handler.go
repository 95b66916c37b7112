package adaptor

import (
	"errors"
	"net/http"

	"cinehub-client/internal/data/gateway"
	"cinehub-client/internal/usecase"
	"cinehub-client/pkg/utils"

	"go.uber.org/zap"
)

// Handler groups all HTTP handlers
type Handler struct {
	Auth       *AuthHandler
	Movie      *MovieHandler
	Booking    *BookingHandler
	Settlement *SettlementHandler
	Order      *OrderHandler
	User       *UserHandler
	Admin      *AdminHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, config.Session, log),
		Movie:      NewMovieHandler(service.Catalog, log),
		Booking:    NewBookingHandler(service.Catalog, service.Booking, service.Checkout, log),
		Settlement: NewSettlementHandler(service.Settlement, log),
		Order:      NewOrderHandler(service.Order, log),
		User:       NewUserHandler(service.User, log),
		Admin:      NewAdminHandler(service.Admin, log),
	}
}

// handleServiceError maps service errors onto the response envelope.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var ve *usecase.ValidationError
	var be *gateway.BackendError

	switch {
	case errors.As(err, &ve):
		log.Warn(operation+" rejected", zap.Error(err), zap.String("operation", operation))
		utils.ResponseBadRequest(w, ve.Msg, ve.Fields)

	case errors.Is(err, usecase.ErrCheckoutInFlight):
		log.Warn(operation+" already in flight", zap.String("operation", operation))
		utils.ResponseConflict(w, "A checkout is already in progress. Please wait.")

	case errors.Is(err, gateway.ErrUnauthorized):
		log.Warn(operation+" unauthorized", zap.String("operation", operation))
		utils.ResponseUnauthorized(w, "Session expired. Please log in again.")

	case errors.Is(err, gateway.ErrNotFound):
		log.Warn(operation+" not found", zap.Error(err), zap.String("operation", operation))
		utils.ResponseNotFound(w, gateway.Message(err, "Not found"))

	case errors.Is(err, gateway.ErrUnavailable):
		log.Error(operation+" failed - backend unreachable", zap.Error(err), zap.String("operation", operation))
		utils.ResponseBadGateway(w, "The booking service is currently unavailable. Please try again.")

	case errors.As(err, &be):
		log.Warn(operation+" failed", zap.Error(err), zap.Int("status", be.StatusCode), zap.String("operation", operation))
		if be.StatusCode >= http.StatusInternalServerError {
			utils.ResponseBadGateway(w, gateway.Message(err, "The booking service returned an error."))
			return
		}
		utils.ResponseBadRequest(w, gateway.Message(err, "Request rejected."), nil)

	default:
		log.Error(operation+" failed", zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
