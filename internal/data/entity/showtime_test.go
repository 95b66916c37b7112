package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultShowtimes_Tables(t *testing.T) {
	c := DefaultShowtimes()

	require.Len(t, c.Dates, 3)
	assert.Equal(t, "date-123", c.Dates[0].ID)
	assert.Equal(t, "Mon", c.Dates[0].Day)
	assert.Equal(t, "22 July", c.Dates[0].Label)

	require.Len(t, c.Theatres, 2)
	assert.Equal(t, "PVR Cinemas", c.Theatres[0].Name)
	assert.Equal(t, "INOX Cinemas", c.Theatres[1].Name)
	require.Len(t, c.Theatres[0].Slots, 5)
	require.Len(t, c.Theatres[1].Slots, 5)
}

func TestShowtimeCatalog_Lookups(t *testing.T) {
	c := DefaultShowtimes()

	date, ok := c.DateByID("date-124")
	require.True(t, ok)
	assert.Equal(t, "23 July", date.Label)

	_, ok = c.DateByID("date-999")
	assert.False(t, ok)

	theatre, ok := c.TheatreByID("theater-124")
	require.True(t, ok)
	assert.Equal(t, "INOX Cinemas", theatre.Name)

	slot, ok := c.SlotByID("slot-125")
	require.True(t, ok)
	assert.Equal(t, "4:00 PM", slot.Time)
}

func TestShowtimeCatalog_SlotBelongsTo(t *testing.T) {
	c := DefaultShowtimes()

	assert.True(t, c.SlotBelongsTo("theater-123", "slot-125"))
	assert.True(t, c.SlotBelongsTo("theater-124", "slot-225"))

	// INOX slots are not valid under PVR.
	assert.False(t, c.SlotBelongsTo("theater-123", "slot-225"))
	assert.False(t, c.SlotBelongsTo("theater-999", "slot-125"))
}
