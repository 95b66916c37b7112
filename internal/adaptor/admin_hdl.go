package adaptor

import (
	"encoding/json"
	"net/http"

	"cinehub-client/internal/dto/request"
	"cinehub-client/internal/usecase"
	"cinehub-client/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxPosterUploadBytes = 10 << 20

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// ListCities handles GET /api/admin/cities
func (h *AdminHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.ListCities(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list cities")
		return
	}
	utils.ResponseSuccess(w, "success", cities)
}

// AddCity handles POST /api/admin/cities
func (h *AdminHandler) AddCity(w http.ResponseWriter, r *http.Request) {
	var req request.AddCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.AddCity(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "add city")
		return
	}
	utils.ResponseCreated(w, "City added", nil)
}

// ListTheatres handles GET /api/admin/theatres
func (h *AdminHandler) ListTheatres(w http.ResponseWriter, r *http.Request) {
	theatres, err := h.service.ListTheatres(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list theatres")
		return
	}
	utils.ResponseSuccess(w, "success", theatres)
}

// AddTheatre handles POST /api/admin/theatres
func (h *AdminHandler) AddTheatre(w http.ResponseWriter, r *http.Request) {
	var req request.AddTheatreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.AddTheatre(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "add theatre")
		return
	}
	utils.ResponseCreated(w, "Theatre added", nil)
}

// ListMovies handles GET /api/admin/movies
func (h *AdminHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.ListMovies(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list movies")
		return
	}
	utils.ResponseSuccess(w, "success", movies)
}

// AddMovie handles POST /api/admin/movies. The form arrives as
// multipart: scalar fields plus the poster binary, with genre as a
// JSON-encoded array, the same shape the backend expects downstream.
func (h *AdminHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPosterUploadBytes); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	var genre []string
	if raw := r.FormValue("genre"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &genre); err != nil {
			utils.ResponseBadRequest(w, "Invalid genre list", nil)
			return
		}
	}

	req := request.AddMovieRequest{
		Title:       r.FormValue("title"),
		Language:    r.FormValue("language"),
		Genre:       genre,
		IsSubtitle:  r.FormValue("isSubtitle") == "true",
		Subtitle:    r.FormValue("subtitle"),
		Description: r.FormValue("description"),
	}

	file, header, err := r.FormFile("poster")
	if err != nil {
		utils.ResponseBadRequest(w, "A poster image is required", nil)
		return
	}
	defer file.Close()

	record, err := h.service.AddMovie(r.Context(), &req, header.Filename, file)
	if err != nil {
		handleServiceError(w, h.log, err, "add movie")
		return
	}
	utils.ResponseCreated(w, "Movie added", record)
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}
	utils.ResponseSuccess(w, "success", users)
}

// ToggleUser handles PUT /api/admin/users/{id}/toggle
func (h *AdminHandler) ToggleUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	if err := h.service.ToggleUser(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "toggle user")
		return
	}
	utils.ResponseSuccess(w, "User updated", nil)
}
