package response

import (
	"time"

	"cinehub-client/internal/data/entity"
)

type CityResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Theatres    []string `json:"theatres"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

type TheatreResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	City          string   `json:"city"`
	TicketPrice   int      `json:"ticket_price"`
	Beverage      bool     `json:"beverage"`
	RunningMovies []string `json:"running_movies"`
	UpdatedAt     string   `json:"updated_at,omitempty"`
}

type MovieRecordResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Language    string   `json:"language"`
	Genre       []string `json:"genre"`
	IsSubtitle  bool     `json:"is_subtitle"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Description string   `json:"description"`
	Poster      string   `json:"poster"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func formatUpdatedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func CityToResponse(city *entity.City) CityResponse {
	return CityResponse{
		ID:          city.ID,
		Name:        city.Name,
		Description: city.Description,
		Theatres:    city.Theatres,
		UpdatedAt:   formatUpdatedAt(city.UpdatedAt),
	}
}

func TheatreToResponse(theatre *entity.Theatre) TheatreResponse {
	return TheatreResponse{
		ID:            theatre.ID,
		Name:          theatre.Name,
		City:          theatre.City,
		TicketPrice:   theatre.TicketPrice,
		Beverage:      theatre.Beverage,
		RunningMovies: theatre.RunningMovies,
		UpdatedAt:     formatUpdatedAt(theatre.UpdatedAt),
	}
}

func MovieRecordToResponse(movie *entity.MovieRecord) MovieRecordResponse {
	return MovieRecordResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Language:    movie.Language,
		Genre:       movie.Genre,
		IsSubtitle:  movie.IsSubtitle,
		Subtitle:    movie.Subtitle,
		Description: movie.Description,
		Poster:      movie.Poster,
		UpdatedAt:   formatUpdatedAt(movie.UpdatedAt),
	}
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsActive:  user.IsActive,
		UpdatedAt: formatUpdatedAt(user.UpdatedAt),
	}
}
