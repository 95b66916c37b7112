package usecase

import (
	"context"
	"fmt"
	"time"

	"cinehub-client/internal/data/entity"
	"cinehub-client/internal/data/gateway"
	"cinehub-client/internal/data/repository"
	"cinehub-client/internal/dto/request"
	"cinehub-client/internal/dto/response"
	"cinehub-client/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	// Login exchanges credentials for a backend token and opens a client
	// session around it. The returned session drives the cookie.
	Login(ctx context.Context, req *request.LoginRequest) (*entity.ClientSession, *response.AuthResponse, error)
	Register(ctx context.Context, req *request.RegisterRequest) (*entity.ClientSession, *response.AuthResponse, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

type authService struct {
	auth     gateway.AuthGateway
	sessions repository.SessionRepository
	config   utils.SessionConfig
	log      *zap.Logger
}

func NewAuthService(
	auth gateway.AuthGateway,
	sessions repository.SessionRepository,
	config utils.SessionConfig,
	log *zap.Logger,
) AuthService {
	return &authService{
		auth:     auth,
		sessions: sessions,
		config:   config,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*entity.ClientSession, *response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, nil, &ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	result, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.log.Warn("Login rejected", zap.Error(err), zap.String("email", req.Email))
		return nil, nil, err
	}

	return s.openSession(ctx, result)
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*entity.ClientSession, *response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, nil, &ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	result, err := s.auth.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		s.log.Warn("Register rejected", zap.Error(err), zap.String("email", req.Email))
		return nil, nil, err
	}

	return s.openSession(ctx, result)
}

func (s *authService) openSession(ctx context.Context, result *gateway.AuthResult) (*entity.ClientSession, *response.AuthResponse, error) {
	now := time.Now()
	session := &entity.ClientSession{
		ID:        uuid.New(),
		Token:     result.Token,
		IsAdmin:   result.IsAdmin,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL(result.Token)),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		s.log.Error("Failed to store session", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to open session")
	}

	resp := &response.AuthResponse{
		IsAdmin:    result.IsAdmin,
		RedirectTo: "/",
	}
	if result.IsAdmin {
		resp.RedirectTo = "/admin"
	}
	return session, resp, nil
}

// sessionTTL clamps the configured session lifetime to the token's own
// exp claim, so the cookie never outlives the bearer token behind it.
// The token is not verified here; the backend rejects bad ones anyway.
func (s *authService) sessionTTL(token string) time.Duration {
	ttl := s.config.TTL

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ttl
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return ttl
	}

	if remaining := time.Until(exp.Time); remaining > 0 && remaining < ttl {
		return remaining
	}
	return ttl
}

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err), zap.String("session_id", sessionID.String()))
		return fmt.Errorf("failed to log out")
	}
	return nil
}
