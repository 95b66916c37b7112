package gateway

import (
	"context"
	"fmt"
	"net/http"
)

// AuthResult is the backend's answer to login/register: an opaque bearer
// token plus the admin flag that decides the landing route.
type AuthResult struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
}

type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)
}

type authGateway struct {
	client *Client
}

func NewAuthGateway(client *Client) AuthGateway {
	return &authGateway{client: client}
}

func (g *authGateway) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var result AuthResult
	if err := g.client.do(ctx, http.MethodPost, "/users/login", body, &result); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if result.Token == "" {
		return nil, fmt.Errorf("login: backend returned no token")
	}
	return &result, nil
}

func (g *authGateway) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}

	var result AuthResult
	if err := g.client.do(ctx, http.MethodPost, "/users/register", body, &result); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if result.Token == "" {
		return nil, fmt.Errorf("register: backend returned no token")
	}
	return &result, nil
}
