package entity

// Showtime lookup tables. The backend has no showtime inventory yet, so
// dates, theatres and slots are a fixed client-side catalog; ids are the
// values carried through the booking URLs.

type ShowDate struct {
	ID    string
	Day   string
	Label string
}

type ShowSlot struct {
	ID          string
	Time        string
	Description string
}

type ShowTheatre struct {
	ID          string
	Name        string
	Description string
	Slots       []ShowSlot
}

// ShowtimeCatalog resolves selection ids to display labels.
type ShowtimeCatalog struct {
	Dates    []ShowDate
	Theatres []ShowTheatre
}

// DefaultShowtimes returns the built-in showtime tables.
func DefaultShowtimes() *ShowtimeCatalog {
	return &ShowtimeCatalog{
		Dates: []ShowDate{
			{ID: "date-123", Day: "Mon", Label: "22 July"},
			{ID: "date-124", Day: "Tue", Label: "23 July"},
			{ID: "date-125", Day: "Wed", Label: "24 July"},
		},
		Theatres: []ShowTheatre{
			{
				ID:          "theater-123",
				Name:        "PVR Cinemas",
				Description: "Beverages, Snacks, Recliner Seats",
				Slots: []ShowSlot{
					{ID: "slot-123", Time: "10:00 AM", Description: "Dolby 5.1"},
					{ID: "slot-124", Time: "1:00 PM", Description: "Dolby 5.1"},
					{ID: "slot-125", Time: "4:00 PM"},
					{ID: "slot-126", Time: "7:00 PM"},
					{ID: "slot-127", Time: "10:00 PM"},
				},
			},
			{
				ID:          "theater-124",
				Name:        "INOX Cinemas",
				Description: "Beverages, Snacks, Recliner Seats",
				Slots: []ShowSlot{
					{ID: "slot-223", Time: "10:00 AM", Description: "Dolby 5.1"},
					{ID: "slot-224", Time: "1:00 PM", Description: "Dolby 5.1"},
					{ID: "slot-225", Time: "4:00 PM"},
					{ID: "slot-226", Time: "7:00 PM"},
					{ID: "slot-227", Time: "10:00 PM"},
				},
			},
		},
	}
}

func (c *ShowtimeCatalog) DateByID(id string) (ShowDate, bool) {
	for _, d := range c.Dates {
		if d.ID == id {
			return d, true
		}
	}
	return ShowDate{}, false
}

func (c *ShowtimeCatalog) TheatreByID(id string) (ShowTheatre, bool) {
	for _, t := range c.Theatres {
		if t.ID == id {
			return t, true
		}
	}
	return ShowTheatre{}, false
}

// SlotByID searches every theatre for the slot.
func (c *ShowtimeCatalog) SlotByID(id string) (ShowSlot, bool) {
	for _, t := range c.Theatres {
		for _, s := range t.Slots {
			if s.ID == id {
				return s, true
			}
		}
	}
	return ShowSlot{}, false
}

// SlotBelongsTo reports whether the slot is one of the theatre's slots.
func (c *ShowtimeCatalog) SlotBelongsTo(theatreID, slotID string) bool {
	t, ok := c.TheatreByID(theatreID)
	if !ok {
		return false
	}
	for _, s := range t.Slots {
		if s.ID == slotID {
			return true
		}
	}
	return false
}
