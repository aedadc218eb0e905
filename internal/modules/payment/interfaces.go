package payment

import (
	"context"

	"smarthub/internal/hubapi"
)

type bookingStatusWriter interface {
	UpdateBookingStatus(ctx context.Context, bookingID int64, status string) (*hubapi.Booking, error)
}

type stateStore interface {
	GetJSON(ctx context.Context, clientID, key string, out any) (bool, error)
	Delete(ctx context.Context, clientID, key string) error
}
