package usecase

import (
	"context"

	"cinehub-client/internal/data/gateway"
	"cinehub-client/internal/dto/response"

	"go.uber.org/zap"
)

type OrderService interface {
	List(ctx context.Context) ([]response.OrderResponse, error)
	Cancel(ctx context.Context, orderID string) error
}

type orderService struct {
	orders gateway.OrderGateway
	log    *zap.Logger
}

func NewOrderService(orders gateway.OrderGateway, log *zap.Logger) OrderService {
	return &orderService{
		orders: orders,
		log:    log.With(zap.String("service", "order")),
	}
}

func (s *orderService) List(ctx context.Context) ([]response.OrderResponse, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err))
		return nil, err
	}
	return response.OrdersToResponse(orders), nil
}

func (s *orderService) Cancel(ctx context.Context, orderID string) error {
	if orderID == "" {
		return NewValidationError("Order id is required.")
	}
	if err := s.orders.Cancel(ctx, orderID); err != nil {
		s.log.Error("Failed to cancel order", zap.Error(err), zap.String("order_id", orderID))
		return err
	}
	s.log.Info("Order cancelled", zap.String("order_id", orderID))
	return nil
}
