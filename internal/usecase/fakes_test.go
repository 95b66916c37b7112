package usecase

import (
	"context"
	"errors"

	"cinehub-client/internal/data/entity"
	"cinehub-client/internal/data/gateway"
	"cinehub-client/internal/dto/response"
)

// fakePayments counts outbound payment calls so tests can assert that
// rejected flows never reach the network.
type fakePayments struct {
	createCalls int
	createReq   *entity.PaymentSessionRequest
	createURL   string
	createErr   error

	getCalls int
	meta     *entity.PaymentSessionMeta
	getErr   error
}

func (f *fakePayments) CreateSession(_ context.Context, req *entity.PaymentSessionRequest) (string, error) {
	f.createCalls++
	f.createReq = req
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.createURL, nil
}

func (f *fakePayments) GetSession(_ context.Context, _ string) (*entity.PaymentSessionMeta, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.meta, nil
}

type fakeOrders struct {
	createCalls int
	createReq   *gateway.CreateOrderRequest
	order       *entity.Order
	createErr   error
}

func (f *fakeOrders) Create(_ context.Context, req *gateway.CreateOrderRequest) (*entity.Order, error) {
	f.createCalls++
	f.createReq = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.order, nil
}

func (f *fakeOrders) List(_ context.Context) ([]entity.Order, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeOrders) Cancel(_ context.Context, _ string) error {
	return errors.New("not implemented")
}

type fakeCatalog struct {
	movie   *entity.Movie
	pending bool
}

func (f *fakeCatalog) GetMovie(_ context.Context, id string) (*entity.Movie, bool) {
	if f.movie == nil {
		return entity.PlaceholderMovie(id), true
	}
	return f.movie, f.pending
}

func (f *fakeCatalog) Detail(ctx context.Context, id string) *response.MovieDetailResponse {
	movie, pending := f.GetMovie(ctx, id)
	return &response.MovieDetailResponse{Pending: pending, Movie: response.MovieToResponse(movie)}
}

func (f *fakeCatalog) Trending() []response.MovieCardResponse {
	return nil
}

type fakeAuthGateway struct {
	result *gateway.AuthResult
	err    error
}

func (f *fakeAuthGateway) Login(_ context.Context, _, _ string) (*gateway.AuthResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeAuthGateway) Register(_ context.Context, _, _, _ string) (*gateway.AuthResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
