package response

import "cinehub-client/internal/data/entity"

type ShowDateResponse struct {
	ID    string `json:"id"`
	Day   string `json:"day"`
	Label string `json:"date"`
}

type ShowSlotResponse struct {
	ID          string `json:"id"`
	Time        string `json:"time"`
	Description string `json:"description,omitempty"`
}

type ShowTheatreResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Slots       []ShowSlotResponse `json:"slots"`
}

// SlotViewResponse is the slot page: the movie being booked plus the
// date and theatre/slot choices.
type SlotViewResponse struct {
	Movie    *MovieResponse        `json:"movie,omitempty"`
	Pending  bool                  `json:"pending"`
	Dates    []ShowDateResponse    `json:"dates"`
	Theatres []ShowTheatreResponse `json:"theatres"`
}

type SeatResponse struct {
	Label  string `json:"id"`
	Status string `json:"status"`
}

// SeatViewResponse is the seat page: the generated grid and pricing.
type SeatViewResponse struct {
	Rows      int            `json:"rows"`
	Cols      int            `json:"cols"`
	Seats     []SeatResponse `json:"seats"`
	UnitPrice int            `json:"unit_price"`
}

// SeatProceedResponse points the browser at the seat page for a
// completed slot selection.
type SeatProceedResponse struct {
	SeatURL string `json:"seat_url"`
}

func ShowtimesToResponse(catalog *entity.ShowtimeCatalog) ([]ShowDateResponse, []ShowTheatreResponse) {
	dates := make([]ShowDateResponse, len(catalog.Dates))
	for i, d := range catalog.Dates {
		dates[i] = ShowDateResponse{ID: d.ID, Day: d.Day, Label: d.Label}
	}

	theatres := make([]ShowTheatreResponse, len(catalog.Theatres))
	for i, t := range catalog.Theatres {
		slots := make([]ShowSlotResponse, len(t.Slots))
		for j, s := range t.Slots {
			slots[j] = ShowSlotResponse{ID: s.ID, Time: s.Time, Description: s.Description}
		}
		theatres[i] = ShowTheatreResponse{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Slots:       slots,
		}
	}
	return dates, theatres
}

func SeatMapToResponse(m *entity.SeatMap, unitPrice int) *SeatViewResponse {
	seats := make([]SeatResponse, len(m.Seats))
	for i, s := range m.Seats {
		seats[i] = SeatResponse{Label: s.Label, Status: string(s.Status)}
	}
	return &SeatViewResponse{
		Rows:      m.Rows,
		Cols:      m.Cols,
		Seats:     seats,
		UnitPrice: unitPrice,
	}
}
