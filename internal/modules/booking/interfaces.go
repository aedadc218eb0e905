package booking

import (
	"context"

	"smarthub/internal/hubapi"
)

type Backend interface {
	CreateBooking(ctx context.Context, req hubapi.BookingRequest) (*hubapi.Booking, error)
	ListUserBookings(ctx context.Context, userID int64) ([]hubapi.Booking, error)
}
