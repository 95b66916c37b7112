package entity

import "time"

// MovieRecord is the backend's own movie row managed from the admin
// console. Display metadata for the booking flow comes from the external
// catalog instead (see Movie).
type MovieRecord struct {
	ID          string
	Title       string
	Language    string
	Genre       []string
	IsSubtitle  bool
	Subtitle    string
	Description string
	Poster      string
	UpdatedAt   time.Time
}
