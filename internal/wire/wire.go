package wire

import (
	"net/http"

	"cinehub-client/internal/adaptor"
	"cinehub-client/internal/data/gateway"
	"cinehub-client/internal/data/repository"
	"cinehub-client/internal/usecase"
	"cinehub-client/pkg/middleware"
	"cinehub-client/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes every dependency and assembles the router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	gw := gateway.NewGateway(config.Backend, logger)
	catalog := gateway.NewMovieCatalog(config.Catalog, logger)

	service := usecase.NewService(gw, catalog, repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireBooking(r, handler, repo, config, logger)
	wireOrder(r, handler, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireAdmin(r, handler.Admin, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
