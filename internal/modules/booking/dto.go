package booking

import (
	"smarthub/internal/domain"
	"smarthub/internal/hubapi"
)

type CreateBookingRequest struct {
	Date string `json:"date" validate:"required,isodate"`
	Time string `json:"time" validate:"required,clock"`
}

type CreateBookingResult struct {
	Booking     *hubapi.Booking `json:"booking"`
	Message     string          `json:"message"`
	RedirectURL string          `json:"redirectUrl"`
}

// BookingView is a row of the "My Bookings" page.
type BookingView struct {
	hubapi.Booking
	StatusLabel string `json:"statusLabel"`
	CanPay      bool   `json:"canPay"`
	CanReview   bool   `json:"canReview"`
}

type PayResult struct {
	PendingPayment *domain.PendingPayment `json:"pendingPayment"`
	RedirectURL    string                 `json:"redirectUrl"`
}
