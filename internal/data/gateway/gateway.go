package gateway

import (
	"cinehub-client/pkg/utils"

	"go.uber.org/zap"
)

// Gateway groups every backend resource client, mirroring the routes the
// backend exposes. It is the only place outbound backend calls are made.
type Gateway struct {
	Auth     AuthGateway
	Cities   CityGateway
	Movies   MovieGateway
	Theatres TheatreGateway
	Payments PaymentGateway
	Orders   OrderGateway
	Users    UserGateway
}

func NewGateway(cfg utils.BackendConfig, log *zap.Logger) *Gateway {
	client := NewClient(cfg, log)

	return &Gateway{
		Auth:     NewAuthGateway(client),
		Cities:   NewCityGateway(client),
		Movies:   NewMovieGateway(client),
		Theatres: NewTheatreGateway(client),
		Payments: NewPaymentGateway(client),
		Orders:   NewOrderGateway(client),
		Users:    NewUserGateway(client),
	}
}
