package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smarthub/internal/domain"
	"smarthub/internal/hubapi"
	"smarthub/internal/pkg/validator"
)

const (
	SuccessPagePath  = "/payment-success"
	BookingsPagePath = "/user-dashboard/bookings"
	TestCard         = "4242 4242 4242 4242"
)

// Service runs the simulated checkout. No card data leaves the process.
type Service struct {
	bookings bookingStatusWriter
	state    stateStore
	delay    time.Duration
	loggerf  func(format string, args ...interface{})
}

func NewService(bookings bookingStatusWriter, state stateStore, delay time.Duration, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{bookings: bookings, state: state, delay: delay, loggerf: loggerf}
}

func (s *Service) Pending(ctx context.Context, clientID string) (*domain.PendingPayment, error) {
	var p domain.PendingPayment
	ok, err := s.state.GetJSON(ctx, clientID, domain.StateKeyPendingPayment, &p)
	if err != nil {
		return nil, err
	}
	if !ok || p.BookingID == 0 {
		return nil, ErrNoPendingPayment
	}
	return &p, nil
}

// CheckForm applies the checkout form rules in the order the page shows them.
func CheckForm(req PayRequest) error {
	if strings.TrimSpace(req.Email) == "" || req.CardNumber == "" || req.Expiry == "" || req.CVC == "" || strings.TrimSpace(req.Name) == "" {
		return &FieldError{Field: "_", Message: "Please fill in all payment fields"}
	}
	if !validator.IsCardNumber(req.CardNumber) {
		return &FieldError{Field: "cardNumber", Message: "Card number must be 16 digits"}
	}
	if !validator.IsExpiry(req.Expiry) {
		return &FieldError{Field: "expiry", Message: "Expiry must be in MM/YY format"}
	}
	if !validator.IsCVC(req.CVC) {
		return &FieldError{Field: "cvc", Message: "CVC must be 3 digits"}
	}
	return nil
}

// Pay validates the form, waits out the simulated processing time, marks
// the pending booking PAID and clears the hand-off.
func (s *Service) Pay(ctx context.Context, clientID string, req PayRequest) (*PayResult, error) {
	pending, err := s.Pending(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if err := CheckForm(req); err != nil {
		return nil, err
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if _, err := s.bookings.UpdateBookingStatus(ctx, pending.BookingID, hubapi.BookingPaid); err != nil {
		s.loggerf("level=error msg=mark_paid_failed booking_id=%d err=%v", pending.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrMarkPaid, err)
	}

	if err := s.state.Delete(ctx, clientID, domain.StateKeyPendingPayment); err != nil {
		s.loggerf("level=warn msg=pending_payment_not_cleared client_id=%s err=%v", clientID, err)
	}
	s.loggerf("level=info msg=payment_completed booking_id=%d", pending.BookingID)

	return &PayResult{
		BookingID:   pending.BookingID,
		Message:     fmt.Sprintf("Payment completed for Booking ID: %d", pending.BookingID),
		RedirectURL: SuccessPagePath,
	}, nil
}
