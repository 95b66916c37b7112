package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"cinehub-client/internal/data/entity"
	"cinehub-client/internal/data/gateway"
	"cinehub-client/internal/data/repository"
	"cinehub-client/pkg/utils"

	"go.uber.org/zap"
)

// ErrCheckoutInFlight means this client session already has a checkout
// attempt running; the duplicate submit is rejected, not queued.
var ErrCheckoutInFlight = errors.New("checkout already in progress")

const checkoutLockTTL = 30 * time.Second

type CheckoutService interface {
	// Initiate submits exactly one payment-session request for the
	// selection and returns the hosted checkout URL to redirect to.
	Initiate(ctx context.Context, sel *entity.BookingSelection) (string, error)
}

type checkoutService struct {
	payments gateway.PaymentGateway
	locks    repository.CheckoutLockRepository
	catalog  CatalogService
	booking  BookingService
	config   *utils.Config
	log      *zap.Logger
}

func NewCheckoutService(
	payments gateway.PaymentGateway,
	locks repository.CheckoutLockRepository,
	catalog CatalogService,
	booking BookingService,
	config *utils.Config,
	log *zap.Logger,
) CheckoutService {
	return &checkoutService{
		payments: payments,
		locks:    locks,
		catalog:  catalog,
		booking:  booking,
		config:   config,
		log:      log.With(zap.String("service", "checkout")),
	}
}

func (s *checkoutService) Initiate(ctx context.Context, sel *entity.BookingSelection) (string, error) {
	if !sel.Complete() {
		return "", NewValidationError(msgIncompleteSelection)
	}
	if len(sel.Seats) == 0 {
		return "", NewValidationError(msgNoSeats)
	}

	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		return "", gateway.ErrUnauthorized
	}

	acquired, err := s.locks.Acquire(ctx, sessionID.String(), checkoutLockTTL)
	if err != nil {
		s.log.Warn("Checkout lock unavailable, proceeding unlocked", zap.Error(err))
	} else if !acquired {
		return "", ErrCheckoutInFlight
	}
	defer func() {
		if err := s.locks.Release(ctx, sessionID.String()); err != nil {
			s.log.Warn("Failed to release checkout lock", zap.Error(err))
		}
	}()

	req := s.buildSessionRequest(ctx, sel)

	paymentURL, err := s.payments.CreateSession(ctx, req)
	if err != nil {
		s.log.Error("Payment session creation failed", zap.Error(err), zap.String("movie_id", sel.MovieID))
		return "", err
	}

	s.log.Info("Payment session created",
		zap.String("movie_id", sel.MovieID),
		zap.Int("seats", len(sel.Seats)),
		zap.Int("total", req.TotalAmount),
	)
	return paymentURL, nil
}

// buildSessionRequest resolves the selection's display labels. Stale or
// unknown ids degrade to "Unknown ..." labels; checkout proceeds, it is
// the backend's job to reject a payment it cannot price.
func (s *checkoutService) buildSessionRequest(ctx context.Context, sel *entity.BookingSelection) *entity.PaymentSessionRequest {
	showtimes := s.booking.Showtimes()

	theatreName := "Unknown Theatre"
	if theatre, ok := showtimes.TheatreByID(sel.TheatreID); ok {
		theatreName = theatre.Name
	}

	dateLabel := "Unknown Date"
	if date, ok := showtimes.DateByID(sel.DateID); ok {
		dateLabel = date.Label
	}

	timeLabel := "Unknown Time"
	if slot, ok := showtimes.SlotByID(sel.SlotID); ok {
		timeLabel = slot.Time
	}

	movie, _ := s.catalog.GetMovie(ctx, sel.MovieID)

	base := strings.TrimRight(s.config.App.PublicBaseURL, "/")

	cancelQuery := url.Values{}
	cancelQuery.Set("movieId", sel.MovieID)
	cancelQuery.Set("date", sel.DateID)
	cancelQuery.Set("theater", sel.TheatreID)
	cancelQuery.Set("slot", sel.SlotID)

	return &entity.PaymentSessionRequest{
		MovieID:     sel.MovieID,
		MovieTitle:  movie.Title,
		Theatre:     theatreName,
		Date:        dateLabel,
		Time:        timeLabel,
		Seats:       sel.Seats,
		TotalAmount: len(sel.Seats) * s.booking.UnitPrice(),
		Poster:      movie.Poster,
		SuccessURL:  base + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   fmt.Sprintf("%s/payment-failed?%s", base, cancelQuery.Encode()),
	}
}
