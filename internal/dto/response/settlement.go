package response

// Settlement states. Success and error are terminal; pending is shown
// to a duplicate visit while another request for the same payment
// session is still recording the order. The view never retries on its
// own.
const (
	SettlementSuccess = "success"
	SettlementPending = "pending"
	SettlementError   = "error"
)

// TicketResponse is the summary rendered on a successful settlement.
type TicketResponse struct {
	Movie   string   `json:"movie"`
	Theatre string   `json:"theatre"`
	Date    string   `json:"date"`
	Time    string   `json:"time"`
	Seats   []string `json:"seats"`
	Price   int      `json:"price"`
	Poster  string   `json:"poster,omitempty"`
	OrderID string   `json:"order_id,omitempty"`
}

// SettlementResponse is the payment-success view model. On error the
// redirect fields tell the page where to send the stranded user and
// after how many seconds.
type SettlementResponse struct {
	State                string          `json:"state"`
	Message              string          `json:"message,omitempty"`
	Ticket               *TicketResponse `json:"ticket,omitempty"`
	DownloadEnabled      bool            `json:"download_enabled"`
	RedirectTo           string          `json:"redirect_to,omitempty"`
	RedirectAfterSeconds int             `json:"redirect_after_seconds,omitempty"`
}

// PaymentFailureResponse is the payment-failed view model. RetryURL is
// rebuilt from the selection carried in the failure redirect; when that
// is impossible it falls back to home.
type PaymentFailureResponse struct {
	Message  string `json:"message"`
	RetryURL string `json:"retry_url"`
	HomeURL  string `json:"home_url"`
}
