package booking

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"smarthub/internal/domain"
	"smarthub/internal/hubapi"
	"smarthub/internal/session"
)

const (
	SearchPagePath   = "/user-dashboard/search"
	BookingsPagePath = "/user-dashboard/bookings"
	PaymentPagePath  = "/payment"

	// DefaultRate is shown on the payment page; bookings carry no price.
	DefaultRate = "₹500"
)

var shortClock = regexp.MustCompile(`^\d{2}:\d{2}$`)

type Service struct {
	backend Backend
	store   *session.Store
	loggerf func(format string, args ...interface{})
}

func NewService(backend Backend, store *session.Store, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{backend: backend, store: store, loggerf: loggerf}
}

func (s *Service) Pending(ctx context.Context, clientID string) (*domain.PendingBooking, error) {
	var pending domain.PendingBooking
	ok, err := s.store.GetJSON(ctx, clientID, domain.StateKeyPendingBooking, &pending)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoPendingBooking
	}
	return &pending, nil
}

// NormalizeTime turns HH:MM into HH:MM:SS; other values pass through.
func NormalizeTime(t string) string {
	t = strings.TrimSpace(t)
	if shortClock.MatchString(t) {
		return t + ":00"
	}
	return t
}

// Create books the pending provider for the signed-in user and clears the
// hand-off on success.
func (s *Service) Create(ctx context.Context, clientID string, sess *session.Session, req CreateBookingRequest) (*CreateBookingResult, error) {
	pending, err := s.Pending(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if pending.ProviderID == 0 {
		return nil, fmt.Errorf("%w: pending booking has no provider", ErrValidation)
	}

	serviceType := pending.Service
	if serviceType == "" {
		serviceType = "Service"
	}

	booking, err := s.backend.CreateBooking(ctx, hubapi.BookingRequest{
		UserID:      sess.ID,
		ProviderID:  pending.ProviderID,
		ServiceType: serviceType,
		BookingDate: req.Date,
		BookingTime: NormalizeTime(req.Time),
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.Delete(ctx, clientID, domain.StateKeyPendingBooking); err != nil {
		s.loggerf("level=warn msg=pending_booking_not_cleared client_id=%s err=%v", clientID, err)
	}
	s.loggerf("level=info msg=booking_created booking_id=%d user_id=%d provider_id=%d", booking.BookingID, sess.ID, pending.ProviderID)

	return &CreateBookingResult{
		Booking:     booking,
		Message:     fmt.Sprintf("Your booking request has been sent to the provider. Booking ID: %d", booking.BookingID),
		RedirectURL: BookingsPagePath,
	}, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]BookingView, error) {
	bookings, err := s.backend.ListUserBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, BookingView{
			Booking:     b,
			StatusLabel: StatusLabel(b.Status),
			CanPay:      b.Status == hubapi.BookingCompleted,
			CanReview:   b.Status == hubapi.BookingCompleted || b.Status == hubapi.BookingPaid,
		})
	}
	return views, nil
}

// PayNow writes the payment hand-off for one of the user's completed
// bookings.
func (s *Service) PayNow(ctx context.Context, clientID string, userID, bookingID int64) (*PayResult, error) {
	bookings, err := s.backend.ListUserBookings(ctx, userID)
	if err != nil {
		return nil, err
	}

	var target *hubapi.Booking
	for i := range bookings {
		if bookings[i].BookingID == bookingID {
			target = &bookings[i]
			break
		}
	}
	if target == nil || target.Status != hubapi.BookingCompleted {
		return nil, ErrNotPayable
	}

	payment := &domain.PendingPayment{
		BookingID:  target.BookingID,
		ProviderID: target.ProviderID,
		Service:    target.ServiceType,
		Rate:       DefaultRate,
		Date:       target.BookingDate,
		Time:       target.BookingTime,
	}
	if err := s.store.PutJSON(ctx, clientID, domain.StateKeyPendingPayment, payment); err != nil {
		return nil, fmt.Errorf("store pending payment: %w", err)
	}
	return &PayResult{PendingPayment: payment, RedirectURL: PaymentPagePath}, nil
}

// StatusLabel is the badge text for a booking status.
func StatusLabel(status string) string {
	if status == hubapi.BookingPaid {
		return "Payment Completed"
	}
	if status == "" {
		return ""
	}
	return status[:1] + strings.ToLower(status[1:])
}
