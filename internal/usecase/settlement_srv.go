package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"cinehub-client/internal/data/entity"
	"cinehub-client/internal/data/gateway"
	"cinehub-client/internal/data/repository"
	"cinehub-client/internal/dto/response"

	"go.uber.org/zap"
)

const (
	// settlementMarkTTL bounds how long a payment session id blocks
	// repeat order creation. Well past any realistic revisit window.
	settlementMarkTTL = 24 * time.Hour

	strandedRedirectSeconds = 3

	msgNoPaymentSession   = "No payment session found"
	msgBookingConfirmed   = "Your booking is confirmed!"
	msgAlreadySettled     = "This booking was already recorded."
	msgSettlementInFlight = "Your booking is still being recorded. Check My Orders in a moment."
	msgBookingWriteFailed = "Your payment succeeded but the booking could not be recorded. Contact support with your session id."
	msgPaymentFailed      = "Payment failed or was cancelled. Your seats were not booked."
)

type SettlementService interface {
	// Reconcile turns a payment provider return into a terminal view:
	// fetch the session metadata, create the order at most once, and
	// render a ticket or an error with a redirect for stranded visits.
	Reconcile(ctx context.Context, paymentSessionID string) *response.SettlementResponse

	// FailureView renders the cancel/failure page and rebuilds a retry
	// URL from the selection carried in the redirect.
	FailureView(movieID, dateID, theatreID, slotID string) *response.PaymentFailureResponse
}

type settlementService struct {
	payments gateway.PaymentGateway
	orders   gateway.OrderGateway
	marks    repository.SettlementRepository
	log      *zap.Logger
}

func NewSettlementService(
	payments gateway.PaymentGateway,
	orders gateway.OrderGateway,
	marks repository.SettlementRepository,
	log *zap.Logger,
) SettlementService {
	return &settlementService{
		payments: payments,
		orders:   orders,
		marks:    marks,
		log:      log.With(zap.String("service", "settlement")),
	}
}

func (s *settlementService) Reconcile(ctx context.Context, paymentSessionID string) *response.SettlementResponse {
	// A visit without a session id is a stranded navigation, not a
	// payment return. No network calls; send the user home.
	if paymentSessionID == "" {
		return strandedResponse(msgNoPaymentSession)
	}

	meta, err := s.payments.GetSession(ctx, paymentSessionID)
	if err != nil {
		s.log.Error("Failed to resolve payment session", zap.Error(err), zap.String("payment_session_id", paymentSessionID))
		return strandedResponse(gateway.Message(err, "Could not verify your payment session."))
	}

	ticket := ticketFromMeta(meta)

	first, err := s.marks.MarkSettled(ctx, paymentSessionID, settlementMarkTTL)
	if err != nil {
		// Dedup store down. Creating a possible duplicate beats silently
		// dropping a paid booking.
		s.log.Warn("Settlement mark unavailable", zap.Error(err), zap.String("payment_session_id", paymentSessionID))
		first = true
	}
	if !first {
		// The mark alone does not say whether the first caller finished.
		// Only a confirmed mark may claim the booking was recorded; a
		// pending one gets a non-terminal "still recording" view.
		confirmed, cerr := s.marks.IsConfirmed(ctx, paymentSessionID)
		if cerr != nil {
			s.log.Warn("Settlement mark read failed", zap.Error(cerr), zap.String("payment_session_id", paymentSessionID))
		}
		if confirmed {
			return &response.SettlementResponse{
				State:           response.SettlementSuccess,
				Message:         msgAlreadySettled,
				Ticket:          ticket,
				DownloadEnabled: true,
			}
		}
		return &response.SettlementResponse{
			State:   response.SettlementPending,
			Message: msgSettlementInFlight,
			Ticket:  ticket,
		}
	}

	order, err := s.orders.Create(ctx, &gateway.CreateOrderRequest{
		MovieID: meta.MovieID,
		Title:   meta.MovieTitle,
		Poster:  meta.Poster,
		Seats:   meta.Seats,
	})
	if err != nil {
		s.log.Error("Order creation failed after payment", zap.Error(err), zap.String("payment_session_id", paymentSessionID))
		if clearErr := s.marks.ClearMark(ctx, paymentSessionID); clearErr != nil {
			s.log.Warn("Failed to clear settlement mark", zap.Error(clearErr), zap.String("payment_session_id", paymentSessionID))
		}
		return &response.SettlementResponse{
			State:   response.SettlementError,
			Message: gateway.Message(err, msgBookingWriteFailed),
			Ticket:  ticket,
		}
	}

	if err := s.marks.ConfirmSettled(ctx, paymentSessionID, settlementMarkTTL); err != nil {
		s.log.Warn("Failed to confirm settlement mark", zap.Error(err), zap.String("payment_session_id", paymentSessionID))
	}

	ticket.OrderID = order.ID
	s.log.Info("Settlement recorded",
		zap.String("payment_session_id", paymentSessionID),
		zap.String("order_id", order.ID),
	)
	return &response.SettlementResponse{
		State:           response.SettlementSuccess,
		Message:         msgBookingConfirmed,
		Ticket:          ticket,
		DownloadEnabled: true,
	}
}

func strandedResponse(msg string) *response.SettlementResponse {
	return &response.SettlementResponse{
		State:                response.SettlementError,
		Message:              msg,
		RedirectTo:           "/",
		RedirectAfterSeconds: strandedRedirectSeconds,
	}
}

func ticketFromMeta(meta *entity.PaymentSessionMeta) *response.TicketResponse {
	return &response.TicketResponse{
		Movie:   meta.MovieTitle,
		Theatre: meta.Theatre,
		Date:    meta.Date,
		Time:    meta.Time,
		Seats:   meta.Seats,
		Price:   meta.TotalAmount,
		Poster:  meta.Poster,
	}
}

func (s *settlementService) FailureView(movieID, dateID, theatreID, slotID string) *response.PaymentFailureResponse {
	retry := "/"
	switch {
	case movieID != "" && dateID != "" && theatreID != "" && slotID != "":
		q := url.Values{}
		q.Set("date", dateID)
		q.Set("theater", theatreID)
		q.Set("slot", slotID)
		retry = fmt.Sprintf("/movies/%s/seats?%s", movieID, q.Encode())
	case movieID != "":
		retry = "/movies/" + movieID
	}

	return &response.PaymentFailureResponse{
		Message:  msgPaymentFailed,
		RetryURL: retry,
		HomeURL:  "/",
	}
}
