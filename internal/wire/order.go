package wire

import (
	"cinehub-client/internal/adaptor"
	"cinehub-client/internal/data/repository"
	"cinehub-client/pkg/middleware"
	"cinehub-client/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config.Session.CookieName, log))

		// GET /api/orders - booking history
		r.Get("/", handler.Order.List)

		// DELETE /api/orders/{id} - cancel a booking
		r.Delete("/{id}", handler.Order.Cancel)
	})
}
