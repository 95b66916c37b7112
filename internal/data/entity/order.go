package entity

import "time"

// Order is a persisted booking. Orders are created server-side exactly
// once per payment session; the client never constructs an order id.
type Order struct {
	ID          string
	MovieID     string
	Title       string
	Poster      string
	Seats       []string
	BookingDate time.Time
}
