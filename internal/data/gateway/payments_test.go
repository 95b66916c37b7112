package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"cinehub-client/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentGateway_CreateSession(t *testing.T) {
	var gotBody entity.PaymentSessionRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/payments/create-session", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"url":"https://pay.example/cs_123"}`))
	})
	gw := NewPaymentGateway(client)

	url, err := gw.CreateSession(authedContext("tok"), &entity.PaymentSessionRequest{
		MovieID:     "123",
		MovieTitle:  "Venom",
		Theatre:     "PVR Cinemas",
		Seats:       []string{"A1", "A2"},
		TotalAmount: 300,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/cs_123", url)
	assert.Equal(t, "Venom", gotBody.MovieTitle)
	assert.Equal(t, 300, gotBody.TotalAmount)
}

func TestPaymentGateway_CreateSessionEmptyURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	gw := NewPaymentGateway(client)

	_, err := gw.CreateSession(context.Background(), &entity.PaymentSessionRequest{})
	assert.Error(t, err)
}

func TestPaymentGateway_GetSession_EncodedSeats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/payments/session/cs_123", r.URL.Path)
		w.Write([]byte(`{"metadata":{"movieId":"123","movieTitle":"Venom","theatre":"PVR Cinemas","date":"22 July","time":"4:00 PM","seats":"[\"A1\",\"A2\"]","totalAmount":300,"poster":"p.jpg"}}`))
	})
	gw := NewPaymentGateway(client)

	meta, err := gw.GetSession(context.Background(), "cs_123")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, meta.Seats)
	assert.Equal(t, "Venom", meta.MovieTitle)
	assert.Equal(t, 300, meta.TotalAmount)
}

func TestPaymentGateway_GetSession_PlainSeats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"metadata":{"movieId":"123","seats":["B1"],"totalAmount":150}}`))
	})
	gw := NewPaymentGateway(client)

	meta, err := gw.GetSession(context.Background(), "cs_456")
	require.NoError(t, err)
	assert.Equal(t, []string{"B1"}, meta.Seats)
}

func TestDecodeSeats(t *testing.T) {
	assert.Nil(t, decodeSeats(nil))
	assert.Nil(t, decodeSeats(json.RawMessage(`"not json"`)))
	assert.Equal(t, []string{"A1"}, decodeSeats(json.RawMessage(`["A1"]`)))
	assert.Equal(t, []string{"A1"}, decodeSeats(json.RawMessage(`"[\"A1\"]"`)))
}
