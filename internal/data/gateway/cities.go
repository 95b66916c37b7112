package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cinehub-client/internal/data/entity"
)

type AddCityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CityGateway interface {
	List(ctx context.Context) ([]entity.City, error)
	Add(ctx context.Context, req *AddCityRequest) error
}

type cityGateway struct {
	client *Client
}

func NewCityGateway(client *Client) CityGateway {
	return &cityGateway{client: client}
}

type cityPayload struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Theatres    []struct {
		Name string `json:"name"`
	} `json:"theatres"`
	UpdatedAt string `json:"updatedAt"`
}

func (g *cityGateway) List(ctx context.Context) ([]entity.City, error) {
	var payload []cityPayload
	if err := g.client.do(ctx, http.MethodGet, "/cities/getCity", nil, &payload); err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}

	cities := make([]entity.City, len(payload))
	for i, p := range payload {
		city := entity.City{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
		}
		for _, t := range p.Theatres {
			city.Theatres = append(city.Theatres, t.Name)
		}
		if t, err := time.Parse(time.RFC3339, p.UpdatedAt); err == nil {
			city.UpdatedAt = t
		}
		cities[i] = city
	}
	return cities, nil
}

func (g *cityGateway) Add(ctx context.Context, req *AddCityRequest) error {
	if err := g.client.do(ctx, http.MethodPost, "/cities/addCity", req, nil); err != nil {
		return fmt.Errorf("add city: %w", err)
	}
	return nil
}
