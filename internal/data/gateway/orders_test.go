package gateway

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderGateway_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders/createOrder", r.URL.Path)
		w.Write([]byte(`{"order":{"_id":"ord-1","movieId":"123","title":"Venom","seats":["A1"],"bookingDate":"2026-08-30T10:00:00Z"}}`))
	})
	gw := NewOrderGateway(client)

	order, err := gw.Create(authedContext("tok"), &CreateOrderRequest{
		MovieID: "123",
		Title:   "Venom",
		Seats:   []string{"A1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", order.ID)
	assert.Equal(t, []string{"A1"}, order.Seats)
	assert.Equal(t, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC), order.BookingDate)
}

func TestOrderGateway_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders/getOrder", r.URL.Path)
		w.Write([]byte(`{"orders":[{"_id":"ord-1","title":"Venom","seats":["A1","A2"],"bookingDate":"not-a-date"}]}`))
	})
	gw := NewOrderGateway(client)

	orders, err := gw.List(authedContext("tok"))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Venom", orders[0].Title)

	// An unparseable date is dropped, not fatal.
	assert.True(t, orders[0].BookingDate.IsZero())
}

func TestOrderGateway_Cancel(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodDelete, r.Method)
		w.Write([]byte(`{}`))
	})
	gw := NewOrderGateway(client)

	require.NoError(t, gw.Cancel(context.Background(), "ord-1"))
	assert.Equal(t, "/api/orders/ord-1", gotPath)
}
