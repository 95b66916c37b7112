package request

// SlotSelectionRequest carries the slot page's three single-choice
// fields. All three must be set before the flow may proceed to seats.
type SlotSelectionRequest struct {
	DateID    string `json:"date" validate:"required"`
	TheatreID string `json:"theater" validate:"required"`
	SlotID    string `json:"slot" validate:"required"`
}

// CheckoutRequest carries the seats picked on the seat page. Seat
// labels are checked against the seat map when they are applied, so
// the payload itself carries no validation tags.
type CheckoutRequest struct {
	Seats []string `json:"seats"`
}
