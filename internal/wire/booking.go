package wire

import (
	"cinehub-client/internal/adaptor"
	"cinehub-client/internal/data/repository"
	"cinehub-client/pkg/middleware"
	"cinehub-client/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Browsing needs no account; only paying does.
	r.Get("/api/movies/trending", handler.Movie.Trending)
	r.Get("/api/movies/{id}", handler.Movie.Detail)
	r.Get("/api/movies/{id}/slots", handler.Booking.SlotView)
	r.Post("/api/movies/{id}/slots", handler.Booking.SelectSlot)
	r.Get("/api/movies/{id}/seats", handler.Booking.SeatView)

	// Cancelled payments land here without a session.
	r.Get("/payment-failed", handler.Settlement.PaymentFailed)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config.Session.CookieName, log))

		// POST /api/movies/{id}/seats/checkout - redirect to payment
		r.Post("/api/movies/{id}/seats/checkout", handler.Booking.Checkout)

		// GET /payment-success - settle the returning payment
		r.Get("/payment-success", handler.Settlement.PaymentSuccess)
	})
}
