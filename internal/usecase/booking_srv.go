package usecase

import (
	"fmt"
	"net/url"

	"cinehub-client/internal/data/entity"
	"cinehub-client/internal/dto/request"
	"cinehub-client/internal/dto/response"
	"cinehub-client/pkg/utils"

	"go.uber.org/zap"
)

const (
	msgIncompleteSelection = "Please select a date, theater, and slot before proceeding."
	msgNoSeats             = "Please select at least one seat!"
)

type BookingService interface {
	// Showtimes returns the fixed date/theatre/slot tables.
	Showtimes() *entity.ShowtimeCatalog

	// ValidateSelection checks the slot page's choices and returns the
	// selection plus the seat page URL to proceed to.
	ValidateSelection(movieID string, req *request.SlotSelectionRequest) (*entity.BookingSelection, *response.SeatProceedResponse, error)

	// SeatView generates the seat grid for one booking session.
	SeatView() (*response.SeatViewResponse, error)

	// ApplySeats toggles the requested seats onto a fresh grid and
	// returns the completed selection. Zero effective seats is an error.
	ApplySeats(sel *entity.BookingSelection, seats []string) (*entity.BookingSelection, error)

	UnitPrice() int
}

type bookingService struct {
	showtimes *entity.ShowtimeCatalog
	config    utils.BookingConfig
	log       *zap.Logger
}

func NewBookingService(config utils.BookingConfig, log *zap.Logger) BookingService {
	return &bookingService{
		showtimes: entity.DefaultShowtimes(),
		config:    config,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Showtimes() *entity.ShowtimeCatalog {
	return s.showtimes
}

func (s *bookingService) UnitPrice() int {
	return s.config.UnitPrice
}

func (s *bookingService) ValidateSelection(movieID string, req *request.SlotSelectionRequest) (*entity.BookingSelection, *response.SeatProceedResponse, error) {
	if movieID == "" {
		return nil, nil, NewValidationError(msgIncompleteSelection)
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, nil, NewValidationError(msgIncompleteSelection)
	}

	if _, ok := s.showtimes.DateByID(req.DateID); !ok {
		return nil, nil, NewValidationError(msgIncompleteSelection)
	}
	if _, ok := s.showtimes.TheatreByID(req.TheatreID); !ok {
		return nil, nil, NewValidationError(msgIncompleteSelection)
	}
	// A slot id is only valid inside the theatre it was listed under.
	if !s.showtimes.SlotBelongsTo(req.TheatreID, req.SlotID) {
		return nil, nil, NewValidationError(msgIncompleteSelection)
	}

	sel := &entity.BookingSelection{
		MovieID:   movieID,
		DateID:    req.DateID,
		TheatreID: req.TheatreID,
		SlotID:    req.SlotID,
	}

	q := url.Values{}
	q.Set("date", sel.DateID)
	q.Set("theater", sel.TheatreID)
	q.Set("slot", sel.SlotID)
	proceed := &response.SeatProceedResponse{
		SeatURL: fmt.Sprintf("/movies/%s/seats?%s", sel.MovieID, q.Encode()),
	}
	return sel, proceed, nil
}

func (s *bookingService) newSeatMap() (*entity.SeatMap, error) {
	m, err := entity.NewSeatMap(s.config.SeatRows, s.config.SeatCols)
	if err != nil {
		s.log.Error("Failed to build seat grid", zap.Error(err),
			zap.Int("rows", s.config.SeatRows),
			zap.Int("cols", s.config.SeatCols),
		)
		return nil, fmt.Errorf("failed to build seat grid")
	}
	return m, nil
}

func (s *bookingService) SeatView() (*response.SeatViewResponse, error) {
	m, err := s.newSeatMap()
	if err != nil {
		return nil, err
	}
	return response.SeatMapToResponse(m, s.config.UnitPrice), nil
}

func (s *bookingService) ApplySeats(sel *entity.BookingSelection, seats []string) (*entity.BookingSelection, error) {
	if !sel.Complete() {
		return nil, NewValidationError(msgIncompleteSelection)
	}

	m, err := s.newSeatMap()
	if err != nil {
		return nil, err
	}
	for _, label := range seats {
		if err := m.Toggle(label); err != nil {
			return nil, NewValidationError(fmt.Sprintf("Seat %s does not exist.", label))
		}
	}
	if m.SelectedCount() == 0 {
		return nil, NewValidationError(msgNoSeats)
	}

	out := *sel
	out.Seats = m.Selected()
	return &out, nil
}
