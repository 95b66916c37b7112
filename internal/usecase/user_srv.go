package usecase

import (
	"context"

	"cinehub-client/internal/data/entity"
	"cinehub-client/internal/data/gateway"
	"cinehub-client/internal/dto/request"
	"cinehub-client/internal/dto/response"
	"cinehub-client/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
}

type userService struct {
	users gateway.UserGateway
	log   *zap.Logger
}

func NewUserService(users gateway.UserGateway, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context) (*response.ProfileResponse, error) {
	profile, err := s.users.GetProfile(ctx)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err))
		return nil, err
	}
	return response.ProfileToResponse(profile), nil
}

func (s *userService) UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Profile validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	profile := &entity.Profile{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
		Pincode: req.Pincode,
	}
	if err := s.users.UpdateProfile(ctx, profile); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err))
		return nil, err
	}
	return response.ProfileToResponse(profile), nil
}
