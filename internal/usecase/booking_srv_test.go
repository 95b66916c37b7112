package usecase

import (
	"testing"

	"cinehub-client/internal/data/entity"
	"cinehub-client/internal/dto/request"
	"cinehub-client/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingService(t *testing.T) BookingService {
	t.Helper()
	return NewBookingService(utils.BookingConfig{SeatRows: 7, SeatCols: 7, UnitPrice: 150}, zap.NewNop())
}

func TestValidateSelection_Valid(t *testing.T) {
	svc := newBookingService(t)

	sel, proceed, err := svc.ValidateSelection("123", &request.SlotSelectionRequest{
		DateID:    "date-123",
		TheatreID: "theater-123",
		SlotID:    "slot-125",
	})
	require.NoError(t, err)
	assert.True(t, sel.Complete())
	assert.Equal(t, "/movies/123/seats?date=date-123&slot=slot-125&theater=theater-123", proceed.SeatURL)
}

func TestValidateSelection_Incomplete(t *testing.T) {
	svc := newBookingService(t)

	cases := []request.SlotSelectionRequest{
		{TheatreID: "theater-123", SlotID: "slot-123"},
		{DateID: "date-123", SlotID: "slot-123"},
		{DateID: "date-123", TheatreID: "theater-123"},
		{},
	}
	for _, req := range cases {
		_, _, err := svc.ValidateSelection("123", &req)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Equal(t, "Please select a date, theater, and slot before proceeding.", err.Error())
	}
}

func TestValidateSelection_SlotFromOtherTheatre(t *testing.T) {
	svc := newBookingService(t)

	_, _, err := svc.ValidateSelection("123", &request.SlotSelectionRequest{
		DateID:    "date-123",
		TheatreID: "theater-123",
		SlotID:    "slot-225",
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestValidateSelection_UnknownIDs(t *testing.T) {
	svc := newBookingService(t)

	_, _, err := svc.ValidateSelection("123", &request.SlotSelectionRequest{
		DateID:    "date-999",
		TheatreID: "theater-123",
		SlotID:    "slot-123",
	})
	assert.True(t, IsValidation(err))

	_, _, err = svc.ValidateSelection("", &request.SlotSelectionRequest{
		DateID:    "date-123",
		TheatreID: "theater-123",
		SlotID:    "slot-123",
	})
	assert.True(t, IsValidation(err))
}

func TestApplySeats(t *testing.T) {
	svc := newBookingService(t)
	sel := &entity.BookingSelection{MovieID: "123", DateID: "date-123", TheatreID: "theater-123", SlotID: "slot-125"}

	out, err := svc.ApplySeats(sel, []string{"A1", "A2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, out.Seats)

	// The input selection is not mutated.
	assert.Nil(t, sel.Seats)
}

func TestApplySeats_NoSeats(t *testing.T) {
	svc := newBookingService(t)
	sel := &entity.BookingSelection{MovieID: "123", DateID: "date-123", TheatreID: "theater-123", SlotID: "slot-125"}

	_, err := svc.ApplySeats(sel, nil)
	require.Error(t, err)
	assert.Equal(t, "Please select at least one seat!", err.Error())

	// Toggling a seat twice deselects it again.
	_, err = svc.ApplySeats(sel, []string{"A1", "A1"})
	require.Error(t, err)
	assert.Equal(t, "Please select at least one seat!", err.Error())
}

func TestApplySeats_UnknownSeat(t *testing.T) {
	svc := newBookingService(t)
	sel := &entity.BookingSelection{MovieID: "123", DateID: "date-123", TheatreID: "theater-123", SlotID: "slot-125"}

	_, err := svc.ApplySeats(sel, []string{"Z99"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestApplySeats_IncompleteSelection(t *testing.T) {
	svc := newBookingService(t)

	_, err := svc.ApplySeats(&entity.BookingSelection{MovieID: "123"}, []string{"A1"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestSeatView(t *testing.T) {
	svc := newBookingService(t)

	view, err := svc.SeatView()
	require.NoError(t, err)
	assert.Equal(t, 7, view.Rows)
	assert.Equal(t, 7, view.Cols)
	assert.Len(t, view.Seats, 49)
	assert.Equal(t, 150, view.UnitPrice)
}
