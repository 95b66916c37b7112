package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinehub-client/internal/data/entity"
	"cinehub-client/internal/data/repository"
	"cinehub-client/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSettlementFixture(payments *fakePayments, orders *fakeOrders) (SettlementService, repository.SettlementRepository) {
	marks := repository.NewMemorySettlementRepository()
	return NewSettlementService(payments, orders, marks, zap.NewNop()), marks
}

func testMeta() *entity.PaymentSessionMeta {
	return &entity.PaymentSessionMeta{
		MovieID:     "123",
		MovieTitle:  "Venom",
		Theatre:     "PVR Cinemas",
		Date:        "22 July",
		Time:        "4:00 PM",
		Seats:       []string{"A1", "A2"},
		TotalAmount: 300,
		Poster:      "venom.jpg",
	}
}

func TestReconcile_MissingSessionID(t *testing.T) {
	payments := &fakePayments{}
	orders := &fakeOrders{}
	svc, _ := newSettlementFixture(payments, orders)

	view := svc.Reconcile(context.Background(), "")

	assert.Equal(t, response.SettlementError, view.State)
	assert.Equal(t, "No payment session found", view.Message)
	assert.Equal(t, "/", view.RedirectTo)
	assert.Equal(t, 3, view.RedirectAfterSeconds)

	// A stranded visit never touches the backend.
	assert.Equal(t, 0, payments.getCalls)
	assert.Equal(t, 0, orders.createCalls)
}

func TestReconcile_Success(t *testing.T) {
	payments := &fakePayments{meta: testMeta()}
	orders := &fakeOrders{order: &entity.Order{ID: "ord-1"}}
	svc, _ := newSettlementFixture(payments, orders)

	view := svc.Reconcile(context.Background(), "cs_123")

	require.Equal(t, response.SettlementSuccess, view.State)
	require.NotNil(t, view.Ticket)
	assert.Equal(t, "Venom", view.Ticket.Movie)
	assert.Equal(t, "PVR Cinemas", view.Ticket.Theatre)
	assert.Equal(t, []string{"A1", "A2"}, view.Ticket.Seats)
	assert.Equal(t, 300, view.Ticket.Price)
	assert.Equal(t, "ord-1", view.Ticket.OrderID)
	assert.True(t, view.DownloadEnabled)

	require.Equal(t, 1, orders.createCalls)
	assert.Equal(t, "123", orders.createReq.MovieID)
	assert.Equal(t, "Venom", orders.createReq.Title)
	assert.Equal(t, []string{"A1", "A2"}, orders.createReq.Seats)
}

func TestReconcile_AtMostOneOrder(t *testing.T) {
	payments := &fakePayments{meta: testMeta()}
	orders := &fakeOrders{order: &entity.Order{ID: "ord-1"}}
	svc, _ := newSettlementFixture(payments, orders)

	first := svc.Reconcile(context.Background(), "cs_123")
	second := svc.Reconcile(context.Background(), "cs_123")

	assert.Equal(t, 1, orders.createCalls)
	assert.Equal(t, response.SettlementSuccess, first.State)
	assert.Equal(t, response.SettlementSuccess, second.State)
	require.NotNil(t, second.Ticket)
	assert.Equal(t, "Venom", second.Ticket.Movie)
}

func TestReconcile_InFlightDuplicateShowsPending(t *testing.T) {
	payments := &fakePayments{meta: testMeta()}
	orders := &fakeOrders{order: &entity.Order{ID: "ord-1"}}
	svc, marks := newSettlementFixture(payments, orders)

	// Another request for the same session holds the mark but has not
	// recorded the order yet.
	first, err := marks.MarkSettled(context.Background(), "cs_123", time.Hour)
	require.NoError(t, err)
	require.True(t, first)

	view := svc.Reconcile(context.Background(), "cs_123")

	assert.Equal(t, response.SettlementPending, view.State)
	assert.Contains(t, view.Message, "still being recorded")
	assert.False(t, view.DownloadEnabled)
	assert.Equal(t, 0, orders.createCalls)
}

func TestReconcile_MetadataFetchFails(t *testing.T) {
	payments := &fakePayments{getErr: errors.New("boom")}
	orders := &fakeOrders{}
	svc, _ := newSettlementFixture(payments, orders)

	view := svc.Reconcile(context.Background(), "cs_123")

	assert.Equal(t, response.SettlementError, view.State)
	assert.Equal(t, "/", view.RedirectTo)
	assert.Equal(t, 0, orders.createCalls)
}

func TestReconcile_OrderCreationFails(t *testing.T) {
	payments := &fakePayments{meta: testMeta()}
	orders := &fakeOrders{createErr: errors.New("db down")}
	svc, _ := newSettlementFixture(payments, orders)

	view := svc.Reconcile(context.Background(), "cs_123")

	assert.Equal(t, response.SettlementError, view.State)
	assert.Contains(t, view.Message, "could not be recorded")
	assert.False(t, view.DownloadEnabled)
	require.NotNil(t, view.Ticket)

	// The mark was cleared, so a later visit retries the creation.
	orders.createErr = nil
	orders.order = &entity.Order{ID: "ord-2"}
	retry := svc.Reconcile(context.Background(), "cs_123")

	assert.Equal(t, response.SettlementSuccess, retry.State)
	assert.Equal(t, 2, orders.createCalls)
}

func TestFailureView(t *testing.T) {
	svc, _ := newSettlementFixture(&fakePayments{}, &fakeOrders{})

	view := svc.FailureView("123", "date-123", "theater-123", "slot-125")
	assert.Equal(t, "/movies/123/seats?date=date-123&slot=slot-125&theater=theater-123", view.RetryURL)
	assert.Equal(t, "/", view.HomeURL)
	assert.NotEmpty(t, view.Message)

	// Only the movie survived: retry from the detail page.
	view = svc.FailureView("123", "", "", "")
	assert.Equal(t, "/movies/123", view.RetryURL)

	// Nothing survived: home is the only option.
	view = svc.FailureView("", "", "", "")
	assert.Equal(t, "/", view.RetryURL)
}
