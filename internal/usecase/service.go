package usecase

import (
	"cinehub-client/internal/data/gateway"
	"cinehub-client/internal/data/repository"
	"cinehub-client/pkg/utils"

	"go.uber.org/zap"
)

// Service groups every use case behind one wiring point.
type Service struct {
	Auth       AuthService
	Catalog    CatalogService
	Booking    BookingService
	Checkout   CheckoutService
	Settlement SettlementService
	Order      OrderService
	User       UserService
	Admin      AdminService
}

func NewService(
	gw *gateway.Gateway,
	catalog gateway.MovieCatalog,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *Service {
	catalogSrv := NewCatalogService(catalog, repo.MovieCache, config.Catalog.CacheTTL, logger)
	bookingSrv := NewBookingService(config.Booking, logger)

	return &Service{
		Auth:       NewAuthService(gw.Auth, repo.Session, config.Session, logger),
		Catalog:    catalogSrv,
		Booking:    bookingSrv,
		Checkout:   NewCheckoutService(gw.Payments, repo.Checkout, catalogSrv, bookingSrv, config, logger),
		Settlement: NewSettlementService(gw.Payments, gw.Orders, repo.Settlement, logger),
		Order:      NewOrderService(gw.Orders, logger),
		User:       NewUserService(gw.Users, logger),
		Admin:      NewAdminService(gw, logger),
	}
}
