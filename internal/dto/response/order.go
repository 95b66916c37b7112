package response

import "cinehub-client/internal/data/entity"

type OrderResponse struct {
	ID        string   `json:"id"`
	MovieID   string   `json:"movie_id"`
	Title     string   `json:"title"`
	Poster    string   `json:"poster"`
	Seats     []string `json:"seats"`
	SeatCount int      `json:"seat_count"`
	BookedOn  string   `json:"booked_on"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	resp := OrderResponse{
		ID:        order.ID,
		MovieID:   order.MovieID,
		Title:     order.Title,
		Poster:    order.Poster,
		Seats:     order.Seats,
		SeatCount: len(order.Seats),
	}
	if !order.BookingDate.IsZero() {
		resp.BookedOn = order.BookingDate.Format("January 2, 2006")
	}
	return resp
}

func OrdersToResponse(orders []entity.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = OrderToResponse(&orders[i])
	}
	return out
}
