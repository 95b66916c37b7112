package usecase

import (
	"context"
	"errors"
	"testing"

	"cinehub-client/internal/data/entity"
	"cinehub-client/internal/data/gateway"
	"cinehub-client/internal/data/repository"
	"cinehub-client/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCheckoutFixture(t *testing.T, payments *fakePayments, catalog CatalogService) (CheckoutService, repository.CheckoutLockRepository) {
	t.Helper()

	config := &utils.Config{
		App:     utils.AppConfig{PublicBaseURL: "http://localhost:8080"},
		Booking: utils.BookingConfig{SeatRows: 7, SeatCols: 7, UnitPrice: 150},
	}
	locks := repository.NewMemoryCheckoutLockRepository()
	booking := NewBookingService(config.Booking, zap.NewNop())
	svc := NewCheckoutService(payments, locks, catalog, booking, config, zap.NewNop())
	return svc, locks
}

func sessionContext() context.Context {
	return utils.SetSessionContext(context.Background(), uuid.New(), "tok", false)
}

func TestCheckout_HappyPath(t *testing.T) {
	payments := &fakePayments{createURL: "https://pay.example/cs_123"}
	catalog := &fakeCatalog{movie: &entity.Movie{ID: "123", Title: "Venom", Poster: "venom.jpg"}}
	svc, _ := newCheckoutFixture(t, payments, catalog)

	sel := &entity.BookingSelection{
		MovieID:   "123",
		DateID:    "date-123",
		TheatreID: "theater-123",
		SlotID:    "slot-125",
		Seats:     []string{"A1", "A2"},
	}

	url, err := svc.Initiate(sessionContext(), sel)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/cs_123", url)
	require.Equal(t, 1, payments.createCalls)

	req := payments.createReq
	assert.Equal(t, "Venom", req.MovieTitle)
	assert.Equal(t, "PVR Cinemas", req.Theatre)
	assert.Equal(t, "22 July", req.Date)
	assert.Equal(t, "4:00 PM", req.Time)
	assert.Equal(t, []string{"A1", "A2"}, req.Seats)
	assert.Equal(t, 300, req.TotalAmount)
	assert.Equal(t, "venom.jpg", req.Poster)
	assert.Equal(t, "http://localhost:8080/payment-success?session_id={CHECKOUT_SESSION_ID}", req.SuccessURL)
	assert.Contains(t, req.CancelURL, "http://localhost:8080/payment-failed?")
	assert.Contains(t, req.CancelURL, "movieId=123")
	assert.Contains(t, req.CancelURL, "theater=theater-123")
}

func TestCheckout_UnknownShowtimeIDsDegrade(t *testing.T) {
	payments := &fakePayments{createURL: "https://pay.example/cs_123"}
	svc, _ := newCheckoutFixture(t, payments, &fakeCatalog{})

	sel := &entity.BookingSelection{
		MovieID:   "123",
		DateID:    "date-999",
		TheatreID: "theater-999",
		SlotID:    "slot-999",
		Seats:     []string{"A1"},
	}

	_, err := svc.Initiate(sessionContext(), sel)
	require.NoError(t, err)
	require.Equal(t, 1, payments.createCalls)

	req := payments.createReq
	assert.Equal(t, "Unknown Theatre", req.Theatre)
	assert.Equal(t, "Unknown Date", req.Date)
	assert.Equal(t, "Unknown Time", req.Time)
	assert.Equal(t, "Unknown Title", req.MovieTitle)
	assert.Equal(t, 150, req.TotalAmount)
}

func TestCheckout_IncompleteSelection(t *testing.T) {
	payments := &fakePayments{}
	svc, _ := newCheckoutFixture(t, payments, &fakeCatalog{})

	_, err := svc.Initiate(sessionContext(), &entity.BookingSelection{MovieID: "123", Seats: []string{"A1"}})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, 0, payments.createCalls)
}

func TestCheckout_NoSeats(t *testing.T) {
	payments := &fakePayments{}
	svc, _ := newCheckoutFixture(t, payments, &fakeCatalog{})

	sel := &entity.BookingSelection{MovieID: "123", DateID: "date-123", TheatreID: "theater-123", SlotID: "slot-125"}
	_, err := svc.Initiate(sessionContext(), sel)
	require.Error(t, err)
	assert.Equal(t, "Please select at least one seat!", err.Error())
	assert.Equal(t, 0, payments.createCalls)
}

func TestCheckout_RequiresSession(t *testing.T) {
	payments := &fakePayments{}
	svc, _ := newCheckoutFixture(t, payments, &fakeCatalog{})

	sel := &entity.BookingSelection{
		MovieID: "123", DateID: "date-123", TheatreID: "theater-123", SlotID: "slot-125",
		Seats: []string{"A1"},
	}
	_, err := svc.Initiate(context.Background(), sel)
	assert.True(t, errors.Is(err, gateway.ErrUnauthorized))
	assert.Equal(t, 0, payments.createCalls)
}

func TestCheckout_DuplicateSubmitBlocked(t *testing.T) {
	payments := &fakePayments{createURL: "https://pay.example/cs_123"}
	svc, locks := newCheckoutFixture(t, payments, &fakeCatalog{})

	sessionID := uuid.New()
	ctx := utils.SetSessionContext(context.Background(), sessionID, "tok", false)

	held, err := locks.Acquire(ctx, sessionID.String(), checkoutLockTTL)
	require.NoError(t, err)
	require.True(t, held)

	sel := &entity.BookingSelection{
		MovieID: "123", DateID: "date-123", TheatreID: "theater-123", SlotID: "slot-125",
		Seats: []string{"A1"},
	}
	_, err = svc.Initiate(ctx, sel)
	assert.True(t, errors.Is(err, ErrCheckoutInFlight))
	assert.Equal(t, 0, payments.createCalls)
}

func TestCheckout_LockReleasedAfterFailure(t *testing.T) {
	payments := &fakePayments{createErr: errors.New("backend down")}
	svc, _ := newCheckoutFixture(t, payments, &fakeCatalog{})

	ctx := sessionContext()
	sel := &entity.BookingSelection{
		MovieID: "123", DateID: "date-123", TheatreID: "theater-123", SlotID: "slot-125",
		Seats: []string{"A1"},
	}

	_, err := svc.Initiate(ctx, sel)
	require.Error(t, err)

	// A retry is not blocked by a stale lock.
	payments.createErr = nil
	payments.createURL = "https://pay.example/cs_456"
	url, err := svc.Initiate(ctx, sel)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/cs_456", url)
}
