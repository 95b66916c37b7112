package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cinehub-client/internal/data/entity"
)

// CreateOrderRequest is the settlement payload. The backend assigns the
// order id; the client never constructs one.
type CreateOrderRequest struct {
	MovieID string   `json:"movieId"`
	Title   string   `json:"title"`
	Poster  string   `json:"poster"`
	Seats   []string `json:"seats"`
}

type OrderGateway interface {
	Create(ctx context.Context, req *CreateOrderRequest) (*entity.Order, error)
	List(ctx context.Context) ([]entity.Order, error)
	Cancel(ctx context.Context, orderID string) error
}

type orderGateway struct {
	client *Client
}

func NewOrderGateway(client *Client) OrderGateway {
	return &orderGateway{client: client}
}

type orderPayload struct {
	ID          string   `json:"_id"`
	MovieID     string   `json:"movieId"`
	Title       string   `json:"title"`
	Poster      string   `json:"poster"`
	Seats       []string `json:"seats"`
	BookingDate string   `json:"bookingDate"`
}

func (p *orderPayload) toEntity() entity.Order {
	order := entity.Order{
		ID:      p.ID,
		MovieID: p.MovieID,
		Title:   p.Title,
		Poster:  p.Poster,
		Seats:   p.Seats,
	}
	if t, err := time.Parse(time.RFC3339, p.BookingDate); err == nil {
		order.BookingDate = t
	}
	return order
}

func (g *orderGateway) Create(ctx context.Context, req *CreateOrderRequest) (*entity.Order, error) {
	var result struct {
		Order orderPayload `json:"order"`
	}
	if err := g.client.do(ctx, http.MethodPost, "/api/orders/createOrder", req, &result); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	order := result.Order.toEntity()
	return &order, nil
}

func (g *orderGateway) List(ctx context.Context) ([]entity.Order, error) {
	var result struct {
		Orders []orderPayload `json:"orders"`
	}
	if err := g.client.do(ctx, http.MethodGet, "/api/orders/getOrder", nil, &result); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]entity.Order, len(result.Orders))
	for i, p := range result.Orders {
		orders[i] = p.toEntity()
	}
	return orders, nil
}

func (g *orderGateway) Cancel(ctx context.Context, orderID string) error {
	if err := g.client.do(ctx, http.MethodDelete, "/api/orders/"+orderID, nil, nil); err != nil {
		return fmt.Errorf("cancel order %s: %w", orderID, err)
	}
	return nil
}
