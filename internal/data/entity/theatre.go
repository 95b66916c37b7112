package entity

import "time"

// Theatre is the backend's theatre record managed from the admin console.
// Distinct from ShowTheatre, which is the booking flow's showtime table.
type Theatre struct {
	ID            string
	Name          string
	City          string
	TicketPrice   int
	Beverage      bool
	RunningMovies []string
	UpdatedAt     time.Time
}
