package entity

// BookingSelection is the user's in-progress choice of movie, date,
// theatre, slot and seats. It is carried through booking URLs and never
// persisted server-side until checkout succeeds. Each single-choice
// field replaces its previous value on re-selection.
type BookingSelection struct {
	MovieID   string
	DateID    string
	TheatreID string
	SlotID    string
	Seats     []string
}

// Complete reports whether all single-choice fields are set. Seats are
// validated separately at checkout.
func (s *BookingSelection) Complete() bool {
	return s.MovieID != "" && s.DateID != "" && s.TheatreID != "" && s.SlotID != ""
}
