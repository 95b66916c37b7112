package request

type AddCityRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type AddTheatreRequest struct {
	Name          string   `json:"name" validate:"required"`
	City          string   `json:"city" validate:"required"`
	TicketPrice   int      `json:"ticketPrice" validate:"required,gt=0"`
	Beverage      bool     `json:"beverage"`
	RunningMovies []string `json:"runningMovies" validate:"required,min=1"`
}

// AddMovieRequest mirrors the admin movie form. The poster binary is
// read from the multipart part, not from this struct.
type AddMovieRequest struct {
	Title       string   `json:"title" validate:"required"`
	Language    string   `json:"language" validate:"required"`
	Genre       []string `json:"genre" validate:"required,min=1"`
	IsSubtitle  bool     `json:"isSubtitle"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description" validate:"required"`
}
