package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"cinehub-client/internal/data/entity"
)

type PaymentGateway interface {
	// CreateSession submits one checkout attempt and returns the hosted
	// checkout URL the browser must be redirected to.
	CreateSession(ctx context.Context, req *entity.PaymentSessionRequest) (string, error)

	// GetSession resolves an opaque session id, after the provider
	// redirected back, to the booking metadata captured at checkout.
	GetSession(ctx context.Context, sessionID string) (*entity.PaymentSessionMeta, error)
}

type paymentGateway struct {
	client *Client
}

func NewPaymentGateway(client *Client) PaymentGateway {
	return &paymentGateway{client: client}
}

func (g *paymentGateway) CreateSession(ctx context.Context, req *entity.PaymentSessionRequest) (string, error) {
	var result struct {
		URL string `json:"url"`
	}
	if err := g.client.do(ctx, http.MethodPost, "/api/payments/create-session", req, &result); err != nil {
		return "", fmt.Errorf("create payment session: %w", err)
	}
	if result.URL == "" {
		return "", fmt.Errorf("create payment session: backend returned no redirect url")
	}
	return result.URL, nil
}

func (g *paymentGateway) GetSession(ctx context.Context, sessionID string) (*entity.PaymentSessionMeta, error) {
	var result struct {
		Metadata struct {
			MovieID     string          `json:"movieId"`
			MovieTitle  string          `json:"movieTitle"`
			Theatre     string          `json:"theatre"`
			Date        string          `json:"date"`
			Time        string          `json:"time"`
			Seats       json.RawMessage `json:"seats"`
			TotalAmount int             `json:"totalAmount"`
			Poster      string          `json:"poster"`
		} `json:"metadata"`
	}
	if err := g.client.do(ctx, http.MethodGet, "/api/payments/session/"+sessionID, nil, &result); err != nil {
		return nil, fmt.Errorf("get payment session %s: %w", sessionID, err)
	}

	meta := &entity.PaymentSessionMeta{
		MovieID:     result.Metadata.MovieID,
		MovieTitle:  result.Metadata.MovieTitle,
		Theatre:     result.Metadata.Theatre,
		Date:        result.Metadata.Date,
		Time:        result.Metadata.Time,
		TotalAmount: result.Metadata.TotalAmount,
		Poster:      result.Metadata.Poster,
	}
	meta.Seats = decodeSeats(result.Metadata.Seats)

	return meta, nil
}

// decodeSeats handles the metadata's seats field, which the payment
// provider stores as a JSON-encoded string ("[\"A1\",\"A2\"]") but older
// sessions carry as a plain array.
func decodeSeats(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var seats []string
	if err := json.Unmarshal(raw, &seats); err == nil {
		return seats
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil
	}
	if err := json.Unmarshal([]byte(encoded), &seats); err != nil {
		return nil
	}
	return seats
}
