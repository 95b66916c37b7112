package wire

import (
	"cinehub-client/internal/adaptor"
	"cinehub-client/internal/data/repository"
	"cinehub-client/pkg/middleware"
	"cinehub-client/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin", func(r chi.Router) {
		// Middleware chain: AuthSession then Admin
		r.Use(middleware.AuthSession(repo.Session, config.Session.CookieName, log))
		r.Use(middleware.Admin(log))

		r.Get("/cities", adminHandler.ListCities)
		r.Post("/cities", adminHandler.AddCity)

		r.Get("/theatres", adminHandler.ListTheatres)
		r.Post("/theatres", adminHandler.AddTheatre)

		r.Get("/movies", adminHandler.ListMovies)
		r.Post("/movies", adminHandler.AddMovie)

		r.Get("/users", adminHandler.ListUsers)
		r.Put("/users/{id}/toggle", adminHandler.ToggleUser)
	})
}
