package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinehub-client/internal/data/entity"
	"cinehub-client/internal/dto/response"
	"cinehub-client/internal/usecase"
	"cinehub-client/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCatalogService struct {
	movie   *entity.Movie
	pending bool
}

func (f *fakeCatalogService) GetMovie(_ context.Context, id string) (*entity.Movie, bool) {
	if f.movie == nil {
		return entity.PlaceholderMovie(id), true
	}
	return f.movie, f.pending
}

func (f *fakeCatalogService) Detail(ctx context.Context, id string) *response.MovieDetailResponse {
	movie, pending := f.GetMovie(ctx, id)
	return &response.MovieDetailResponse{Pending: pending, Movie: response.MovieToResponse(movie)}
}

func (f *fakeCatalogService) Trending() []response.MovieCardResponse { return nil }

type fakeCheckoutService struct {
	sel *entity.BookingSelection
	url string
	err error
}

func (f *fakeCheckoutService) Initiate(_ context.Context, sel *entity.BookingSelection) (string, error) {
	f.sel = sel
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func newBookingRouter(checkout usecase.CheckoutService) *chi.Mux {
	log := zap.NewNop()
	booking := usecase.NewBookingService(utils.BookingConfig{SeatRows: 7, SeatCols: 7, UnitPrice: 150}, log)
	h := NewBookingHandler(&fakeCatalogService{}, booking, checkout, log)

	r := chi.NewRouter()
	r.Get("/api/movies/{id}/slots", h.SlotView)
	r.Post("/api/movies/{id}/slots", h.SelectSlot)
	r.Get("/api/movies/{id}/seats", h.SeatView)
	r.Post("/api/movies/{id}/seats/checkout", h.Checkout)
	return r
}

func TestCheckoutHandler_RedirectsToPayment(t *testing.T) {
	checkout := &fakeCheckoutService{url: "https://pay.example/cs_123"}
	router := newBookingRouter(checkout)

	req := httptest.NewRequest(http.MethodPost,
		"/api/movies/123/seats/checkout?date=date-123&theater=theater-123&slot=slot-125",
		strings.NewReader(`{"seats":["A1","A2"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://pay.example/cs_123", rec.Header().Get("Location"))

	require.NotNil(t, checkout.sel)
	assert.Equal(t, "123", checkout.sel.MovieID)
	assert.Equal(t, []string{"A1", "A2"}, checkout.sel.Seats)
}

func TestCheckoutHandler_NoSeatsRejected(t *testing.T) {
	checkout := &fakeCheckoutService{url: "https://pay.example/cs_123"}
	router := newBookingRouter(checkout)

	req := httptest.NewRequest(http.MethodPost,
		"/api/movies/123/seats/checkout?date=date-123&theater=theater-123&slot=slot-125",
		strings.NewReader(`{"seats":[]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please select at least one seat!")
	assert.Nil(t, checkout.sel)
}

func TestCheckoutHandler_BackendFailureRedirectsToFailurePage(t *testing.T) {
	checkout := &fakeCheckoutService{err: assert.AnError}
	router := newBookingRouter(checkout)

	req := httptest.NewRequest(http.MethodPost,
		"/api/movies/123/seats/checkout?date=date-123&theater=theater-123&slot=slot-125",
		strings.NewReader(`{"seats":["A1"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	loc := rec.Header().Get("Location")
	assert.Contains(t, loc, "/payment-failed?")
	assert.Contains(t, loc, "movieId=123")
}

func TestCheckoutHandler_DuplicateSubmitConflicts(t *testing.T) {
	checkout := &fakeCheckoutService{err: usecase.ErrCheckoutInFlight}
	router := newBookingRouter(checkout)

	req := httptest.NewRequest(http.MethodPost,
		"/api/movies/123/seats/checkout?date=date-123&theater=theater-123&slot=slot-125",
		strings.NewReader(`{"seats":["A1"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// A second submit while one is in flight is a conflict, not a
	// failed payment.
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already in progress")
	assert.Empty(t, rec.Header().Get("Location"))
}

func TestSelectSlotHandler(t *testing.T) {
	router := newBookingRouter(&fakeCheckoutService{})

	req := httptest.NewRequest(http.MethodPost, "/api/movies/123/slots",
		strings.NewReader(`{"date":"date-123","theater":"theater-123","slot":"slot-125"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/movies/123/seats?")
}

func TestSelectSlotHandler_CrossTheatreSlot(t *testing.T) {
	router := newBookingRouter(&fakeCheckoutService{})

	req := httptest.NewRequest(http.MethodPost, "/api/movies/123/slots",
		strings.NewReader(`{"date":"date-123","theater":"theater-123","slot":"slot-225"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSlotViewHandler(t *testing.T) {
	router := newBookingRouter(&fakeCheckoutService{})

	req := httptest.NewRequest(http.MethodGet, "/api/movies/123/slots", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "PVR Cinemas")
	assert.Contains(t, body, "INOX Cinemas")
	assert.Contains(t, body, "22 July")
}
