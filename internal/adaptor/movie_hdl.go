package adaptor

import (
	"net/http"

	"cinehub-client/internal/usecase"
	"cinehub-client/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	catalog usecase.CatalogService
	log     *zap.Logger
}

func NewMovieHandler(catalog usecase.CatalogService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		catalog: catalog,
		log:     log,
	}
}

// Trending handles GET /api/movies/trending
func (h *MovieHandler) Trending(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.catalog.Trending())
}

// Detail handles GET /api/movies/{id}
func (h *MovieHandler) Detail(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie id is required", nil)
		return
	}

	utils.ResponseSuccess(w, "success", h.catalog.Detail(r.Context(), movieID))
}
