package domain

// PendingBooking is written by the search page when a user picks a provider
// and read by the booking page.
type PendingBooking struct {
	ProviderID   int64  `json:"providerId"`
	Service      string `json:"service"`
	Rate         string `json:"rate"`
	Location     string `json:"location"`
	ProviderName string `json:"providerName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

// PendingPayment is written by "Pay now" on the bookings page and consumed
// by the payment page.
type PendingPayment struct {
	BookingID  int64  `json:"bookingId"`
	ProviderID int64  `json:"providerId"`
	Service    string `json:"service"`
	Rate       string `json:"rate"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}
