package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"cinehub-client/internal/data/entity"
	"cinehub-client/internal/dto/request"
	"cinehub-client/internal/dto/response"
	"cinehub-client/internal/usecase"
	"cinehub-client/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	catalog  usecase.CatalogService
	booking  usecase.BookingService
	checkout usecase.CheckoutService
	log      *zap.Logger
}

func NewBookingHandler(
	catalog usecase.CatalogService,
	booking usecase.BookingService,
	checkout usecase.CheckoutService,
	log *zap.Logger,
) *BookingHandler {
	return &BookingHandler{
		catalog:  catalog,
		booking:  booking,
		checkout: checkout,
		log:      log,
	}
}

// SlotView handles GET /api/movies/{id}/slots
func (h *BookingHandler) SlotView(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie id is required", nil)
		return
	}

	movie, pending := h.catalog.GetMovie(r.Context(), movieID)
	dates, theatres := response.ShowtimesToResponse(h.booking.Showtimes())

	utils.ResponseSuccess(w, "success", &response.SlotViewResponse{
		Movie:    response.MovieToResponse(movie),
		Pending:  pending,
		Dates:    dates,
		Theatres: theatres,
	})
}

// SelectSlot handles POST /api/movies/{id}/slots
func (h *BookingHandler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	var req request.SlotSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	_, proceed, err := h.booking.ValidateSelection(movieID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "select slot")
		return
	}

	utils.ResponseSuccess(w, "success", proceed)
}

// SeatView handles GET /api/movies/{id}/seats
func (h *BookingHandler) SeatView(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie id is required", nil)
		return
	}

	view, err := h.booking.SeatView()
	if err != nil {
		handleServiceError(w, h.log, err, "seat view")
		return
	}

	utils.ResponseSuccess(w, "success", view)
}

// Checkout handles POST /api/movies/{id}/seats/checkout. On success the
// browser is sent to the hosted payment page with a full-page redirect;
// the SPA-style in-page fetch flow ends here.
func (h *BookingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	var req request.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Stale or unknown showtime ids are carried through; checkout
	// degrades their labels instead of blocking the purchase.
	sel := &entity.BookingSelection{
		MovieID:   movieID,
		DateID:    r.URL.Query().Get("date"),
		TheatreID: r.URL.Query().Get("theater"),
		SlotID:    r.URL.Query().Get("slot"),
	}

	sel, err := h.booking.ApplySeats(sel, req.Seats)
	if err != nil {
		handleServiceError(w, h.log, err, "checkout")
		return
	}

	paymentURL, err := h.checkout.Initiate(r.Context(), sel)
	if err != nil {
		// A duplicate submit is a conflict, not a failed payment; only
		// backend failures land on the failure page.
		if usecase.IsValidation(err) || errors.Is(err, usecase.ErrCheckoutInFlight) {
			handleServiceError(w, h.log, err, "checkout")
			return
		}
		h.log.Error("Checkout failed, redirecting to failure page", zap.Error(err))
		utils.ResponseRedirect(w, r, failureURL(sel))
		return
	}

	utils.ResponseRedirect(w, r, paymentURL)
}

func failureURL(sel *entity.BookingSelection) string {
	q := url.Values{}
	q.Set("movieId", sel.MovieID)
	q.Set("date", sel.DateID)
	q.Set("theater", sel.TheatreID)
	q.Set("slot", sel.SlotID)
	return fmt.Sprintf("/payment-failed?%s", q.Encode())
}
