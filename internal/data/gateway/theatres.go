package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cinehub-client/internal/data/entity"
)

type AddTheatreRequest struct {
	Name          string   `json:"name"`
	City          string   `json:"city"`
	TicketPrice   int      `json:"ticketPrice"`
	Beverage      bool     `json:"beverage"`
	RunningMovies []string `json:"runningMovies"`
}

type TheatreGateway interface {
	List(ctx context.Context) ([]entity.Theatre, error)
	Add(ctx context.Context, req *AddTheatreRequest) error
}

type theatreGateway struct {
	client *Client
}

func NewTheatreGateway(client *Client) TheatreGateway {
	return &theatreGateway{client: client}
}

func (g *theatreGateway) List(ctx context.Context) ([]entity.Theatre, error) {
	var payload []struct {
		ID            string   `json:"_id"`
		Name          string   `json:"name"`
		City          string   `json:"city"`
		TicketPrice   int      `json:"ticketPrice"`
		Beverage      bool     `json:"beverage"`
		RunningMovies []string `json:"runningMovies"`
		UpdatedAt     string   `json:"updatedAt"`
	}
	if err := g.client.do(ctx, http.MethodGet, "/theatres/getTheatre", nil, &payload); err != nil {
		return nil, fmt.Errorf("list theatres: %w", err)
	}

	theatres := make([]entity.Theatre, len(payload))
	for i, p := range payload {
		theatres[i] = entity.Theatre{
			ID:            p.ID,
			Name:          p.Name,
			City:          p.City,
			TicketPrice:   p.TicketPrice,
			Beverage:      p.Beverage,
			RunningMovies: p.RunningMovies,
		}
		if t, err := time.Parse(time.RFC3339, p.UpdatedAt); err == nil {
			theatres[i].UpdatedAt = t
		}
	}
	return theatres, nil
}

func (g *theatreGateway) Add(ctx context.Context, req *AddTheatreRequest) error {
	if err := g.client.do(ctx, http.MethodPost, "/theatres/addTheatre", req, nil); err != nil {
		return fmt.Errorf("add theatre: %w", err)
	}
	return nil
}
