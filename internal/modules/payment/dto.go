package payment

import "smarthub/internal/domain"

type PayRequest struct {
	Email      string `json:"email"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
	Name       string `json:"name"`
	Country    string `json:"country,omitempty"`
	SaveInfo   bool   `json:"saveInfo,omitempty"`
}

type PayResult struct {
	BookingID   int64  `json:"bookingId"`
	Message     string `json:"message"`
	RedirectURL string `json:"redirectUrl"`
}

type PendingView struct {
	Payment *domain.PendingPayment `json:"payment"`
	// TestCard is the card number the simulated checkout accepts.
	TestCard string `json:"testCard"`
}
