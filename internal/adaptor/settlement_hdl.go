package adaptor

import (
	"net/http"

	"cinehub-client/internal/usecase"
	"cinehub-client/pkg/utils"

	"go.uber.org/zap"
)

type SettlementHandler struct {
	service usecase.SettlementService
	log     *zap.Logger
}

func NewSettlementHandler(service usecase.SettlementService, log *zap.Logger) *SettlementHandler {
	return &SettlementHandler{
		service: service,
		log:     log,
	}
}

// PaymentSuccess handles GET /payment-success. The view model is always
// 200: success and error are terminal states of the page, not of the
// HTTP exchange.
func (h *SettlementHandler) PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	paymentSessionID := r.URL.Query().Get("session_id")
	view := h.service.Reconcile(r.Context(), paymentSessionID)
	utils.ResponseSuccess(w, "success", view)
}

// PaymentFailed handles GET /payment-failed
func (h *SettlementHandler) PaymentFailed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view := h.service.FailureView(
		q.Get("movieId"),
		q.Get("date"),
		q.Get("theater"),
		q.Get("slot"),
	)
	utils.ResponseSuccess(w, "success", view)
}
