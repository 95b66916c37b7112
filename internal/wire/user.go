package wire

import (
	"cinehub-client/internal/adaptor"
	"cinehub-client/internal/data/repository"
	"cinehub-client/pkg/middleware"
	"cinehub-client/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/profile", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config.Session.CookieName, log))

		// GET /api/profile - load profile form
		r.Get("/", userHandler.GetProfile)

		// PUT /api/profile - save profile form
		r.Put("/", userHandler.UpdateProfile)
	})
}
