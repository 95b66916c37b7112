package entity

// PaymentSessionRequest is the body sent once per checkout attempt to
// the backend's payment-session endpoint. SuccessURL contains the
// {CHECKOUT_SESSION_ID} placeholder the payment provider substitutes;
// CancelURL carries the original selection so a retry can reconstruct
// context without a server round-trip.
type PaymentSessionRequest struct {
	MovieID     string   `json:"movieId"`
	MovieTitle  string   `json:"movieTitle"`
	Theatre     string   `json:"theatre"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Seats       []string `json:"seats"`
	TotalAmount int      `json:"totalAmount"`
	Poster      string   `json:"poster"`
	SuccessURL  string   `json:"successUrl"`
	CancelURL   string   `json:"cancelUrl"`
}

// PaymentSessionMeta is the booking metadata the backend resolves for an
// opaque payment session id after the provider redirects back.
type PaymentSessionMeta struct {
	MovieID     string
	MovieTitle  string
	Theatre     string
	Date        string
	Time        string
	Seats       []string
	TotalAmount int
	Poster      string
}
