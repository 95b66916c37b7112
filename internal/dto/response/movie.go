package response

import "cinehub-client/internal/data/entity"

type MovieResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Poster    string   `json:"poster"`
	Plot      string   `json:"plot,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Rating    string   `json:"rating,omitempty"`
}

// MovieDetailResponse is the detail view. Pending stays true for as long
// as the catalog has not resolved; the page keeps showing its loading
// placeholder rather than a terminal error.
type MovieDetailResponse struct {
	Pending bool           `json:"pending"`
	Movie   *MovieResponse `json:"movie,omitempty"`
}

// MovieCardResponse is a landing page card.
type MovieCardResponse struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Image  string  `json:"image"`
	Rating float64 `json:"rating"`
}

func MovieToResponse(movie *entity.Movie) *MovieResponse {
	return &MovieResponse{
		ID:        movie.ID,
		Title:     movie.Title,
		Poster:    movie.Poster,
		Plot:      movie.Plot,
		Languages: movie.Languages(),
		Rating:    movie.Rating,
	}
}
