package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cinehub-client/internal/data/entity"
)

type UserGateway interface {
	// All lists every account; admin-only on the backend side.
	All(ctx context.Context) ([]entity.User, error)
	// ToggleActive flips an account's active flag.
	ToggleActive(ctx context.Context, userID string) error

	GetProfile(ctx context.Context) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, profile *entity.Profile) error
}

type userGateway struct {
	client *Client
}

func NewUserGateway(client *Client) UserGateway {
	return &userGateway{client: client}
}

func (g *userGateway) All(ctx context.Context) ([]entity.User, error) {
	var payload []struct {
		ID        string `json:"_id"`
		Username  string `json:"username"`
		Email     string `json:"email"`
		IsActive  bool   `json:"isActive"`
		UpdatedAt string `json:"updatedAt"`
	}
	if err := g.client.do(ctx, http.MethodGet, "/users/all", nil, &payload); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]entity.User, len(payload))
	for i, p := range payload {
		users[i] = entity.User{
			ID:       p.ID,
			Username: p.Username,
			Email:    p.Email,
			IsActive: p.IsActive,
		}
		if t, err := time.Parse(time.RFC3339, p.UpdatedAt); err == nil {
			users[i].UpdatedAt = t
		}
	}
	return users, nil
}

func (g *userGateway) ToggleActive(ctx context.Context, userID string) error {
	if err := g.client.do(ctx, http.MethodPut, "/users/"+userID+"/toggle", nil, nil); err != nil {
		return fmt.Errorf("toggle user %s: %w", userID, err)
	}
	return nil
}

type profilePayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Pincode string `json:"pincode"`
}

func (g *userGateway) GetProfile(ctx context.Context) (*entity.Profile, error) {
	var p profilePayload
	if err := g.client.do(ctx, http.MethodGet, "/users/profile/getProfile", nil, &p); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &entity.Profile{
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: p.Address,
		City:    p.City,
		State:   p.State,
		Country: p.Country,
		Pincode: p.Pincode,
	}, nil
}

func (g *userGateway) UpdateProfile(ctx context.Context, profile *entity.Profile) error {
	body := profilePayload{
		Name:    profile.Name,
		Email:   profile.Email,
		Phone:   profile.Phone,
		Address: profile.Address,
		City:    profile.City,
		State:   profile.State,
		Country: profile.Country,
		Pincode: profile.Pincode,
	}
	if err := g.client.do(ctx, http.MethodPut, "/users/profile/updateProfile", body, nil); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
