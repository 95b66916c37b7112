package usecase

import (
	"context"
	"io"

	"cinehub-client/internal/data/gateway"
	"cinehub-client/internal/dto/request"
	"cinehub-client/internal/dto/response"
	"cinehub-client/pkg/utils"

	"go.uber.org/zap"
)

// AdminService fronts the backend's admin surface: cities, theatres,
// the movie table behind the booking flow, and account moderation.
type AdminService interface {
	ListCities(ctx context.Context) ([]response.CityResponse, error)
	AddCity(ctx context.Context, req *request.AddCityRequest) error

	ListTheatres(ctx context.Context) ([]response.TheatreResponse, error)
	AddTheatre(ctx context.Context, req *request.AddTheatreRequest) error

	ListMovies(ctx context.Context) ([]response.MovieRecordResponse, error)
	AddMovie(ctx context.Context, req *request.AddMovieRequest, posterName string, poster io.Reader) (*response.MovieRecordResponse, error)

	ListUsers(ctx context.Context) ([]response.UserResponse, error)
	ToggleUser(ctx context.Context, userID string) error
}

type adminService struct {
	gw  *gateway.Gateway
	log *zap.Logger
}

func NewAdminService(gw *gateway.Gateway, log *zap.Logger) AdminService {
	return &adminService{
		gw:  gw,
		log: log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) ListCities(ctx context.Context) ([]response.CityResponse, error) {
	cities, err := s.gw.Cities.List(ctx)
	if err != nil {
		s.log.Error("Failed to list cities", zap.Error(err))
		return nil, err
	}

	out := make([]response.CityResponse, len(cities))
	for i := range cities {
		out[i] = response.CityToResponse(&cities[i])
	}
	return out, nil
}

func (s *adminService) AddCity(ctx context.Context, req *request.AddCityRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	if err := s.gw.Cities.Add(ctx, &gateway.AddCityRequest{
		Name:        req.Name,
		Description: req.Description,
	}); err != nil {
		s.log.Error("Failed to add city", zap.Error(err), zap.String("city", req.Name))
		return err
	}
	s.log.Info("City added", zap.String("city", req.Name))
	return nil
}

func (s *adminService) ListTheatres(ctx context.Context) ([]response.TheatreResponse, error) {
	theatres, err := s.gw.Theatres.List(ctx)
	if err != nil {
		s.log.Error("Failed to list theatres", zap.Error(err))
		return nil, err
	}

	out := make([]response.TheatreResponse, len(theatres))
	for i := range theatres {
		out[i] = response.TheatreToResponse(&theatres[i])
	}
	return out, nil
}

func (s *adminService) AddTheatre(ctx context.Context, req *request.AddTheatreRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	if err := s.gw.Theatres.Add(ctx, &gateway.AddTheatreRequest{
		Name:          req.Name,
		City:          req.City,
		TicketPrice:   req.TicketPrice,
		Beverage:      req.Beverage,
		RunningMovies: req.RunningMovies,
	}); err != nil {
		s.log.Error("Failed to add theatre", zap.Error(err), zap.String("theatre", req.Name))
		return err
	}
	s.log.Info("Theatre added", zap.String("theatre", req.Name))
	return nil
}

func (s *adminService) ListMovies(ctx context.Context) ([]response.MovieRecordResponse, error) {
	movies, err := s.gw.Movies.List(ctx)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, err
	}

	out := make([]response.MovieRecordResponse, len(movies))
	for i := range movies {
		out[i] = response.MovieRecordToResponse(&movies[i])
	}
	return out, nil
}

func (s *adminService) AddMovie(ctx context.Context, req *request.AddMovieRequest, posterName string, poster io.Reader) (*response.MovieRecordResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}
	if poster == nil {
		return nil, NewValidationError("A poster image is required.")
	}

	record, err := s.gw.Movies.Add(ctx, &gateway.AddMovieRequest{
		Title:       req.Title,
		Language:    req.Language,
		Genre:       req.Genre,
		IsSubtitle:  req.IsSubtitle,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		PosterName:  posterName,
		Poster:      poster,
	})
	if err != nil {
		s.log.Error("Failed to add movie", zap.Error(err), zap.String("title", req.Title))
		return nil, err
	}

	s.log.Info("Movie added", zap.String("title", req.Title), zap.String("movie_id", record.ID))
	resp := response.MovieRecordToResponse(record)
	return &resp, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.gw.Users.All(ctx)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, err
	}

	out := make([]response.UserResponse, len(users))
	for i := range users {
		out[i] = response.UserToResponse(&users[i])
	}
	return out, nil
}

func (s *adminService) ToggleUser(ctx context.Context, userID string) error {
	if userID == "" {
		return NewValidationError("User id is required.")
	}
	if err := s.gw.Users.ToggleActive(ctx, userID); err != nil {
		s.log.Error("Failed to toggle user", zap.Error(err), zap.String("user_id", userID))
		return err
	}
	s.log.Info("User toggled", zap.String("user_id", userID))
	return nil
}
