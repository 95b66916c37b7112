package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeatMap_Grid(t *testing.T) {
	m, err := NewSeatMap(7, 7)
	require.NoError(t, err)

	require.Len(t, m.Seats, 49)
	assert.Equal(t, 7, m.Rows)
	assert.Equal(t, 7, m.Cols)

	seen := make(map[string]bool)
	for _, seat := range m.Seats {
		assert.False(t, seen[seat.Label], "duplicate label %s", seat.Label)
		seen[seat.Label] = true
		assert.Equal(t, SeatStatusAvailable, seat.Status)
	}

	assert.Equal(t, "A1", m.Seats[0].Label)
	assert.Equal(t, "A7", m.Seats[6].Label)
	assert.Equal(t, "G7", m.Seats[48].Label)
}

func TestNewSeatMap_InvalidSizes(t *testing.T) {
	_, err := NewSeatMap(0, 7)
	assert.Error(t, err)

	_, err = NewSeatMap(7, 0)
	assert.Error(t, err)

	_, err = NewSeatMap(27, 1)
	assert.Error(t, err)
}

func TestSeatMap_ToggleRoundTrip(t *testing.T) {
	m, err := NewSeatMap(7, 7)
	require.NoError(t, err)

	require.NoError(t, m.Toggle("B3"))
	assert.True(t, m.IsSelected("B3"))
	assert.Equal(t, 1, m.SelectedCount())

	require.NoError(t, m.Toggle("B3"))
	assert.False(t, m.IsSelected("B3"))
	assert.Equal(t, 0, m.SelectedCount())
}

func TestSeatMap_SelectionOrderPreserved(t *testing.T) {
	m, err := NewSeatMap(7, 7)
	require.NoError(t, err)

	for _, label := range []string{"C2", "A1", "B7"} {
		require.NoError(t, m.Toggle(label))
	}
	assert.Equal(t, []string{"C2", "A1", "B7"}, m.Selected())

	// Removing the middle seat keeps the others in place.
	require.NoError(t, m.Toggle("A1"))
	assert.Equal(t, []string{"C2", "B7"}, m.Selected())
}

func TestSeatMap_UnavailableSeatIsNoOp(t *testing.T) {
	m, err := NewSeatMap(2, 2)
	require.NoError(t, err)

	m.Seats[0].Status = SeatStatusUnavailable

	require.NoError(t, m.Toggle("A1"))
	assert.False(t, m.IsSelected("A1"))
	assert.Equal(t, 0, m.SelectedCount())
}

func TestSeatMap_UnknownSeat(t *testing.T) {
	m, err := NewSeatMap(2, 2)
	require.NoError(t, err)

	assert.Error(t, m.Toggle("Z9"))
}

func TestSeatMap_Total(t *testing.T) {
	m, err := NewSeatMap(7, 7)
	require.NoError(t, err)

	assert.Equal(t, 0, m.Total(150))

	require.NoError(t, m.Toggle("A1"))
	require.NoError(t, m.Toggle("A2"))
	assert.Equal(t, 300, m.Total(150))

	require.NoError(t, m.Toggle("A2"))
	assert.Equal(t, 150, m.Total(150))
}
