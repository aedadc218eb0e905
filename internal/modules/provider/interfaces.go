package provider

import (
	"context"

	"smarthub/internal/feed"
	"smarthub/internal/hubapi"
)

type Backend interface {
	GetProviderProfile(ctx context.Context, providerID int64) (*hubapi.Provider, error)
	UpdateProviderProfile(ctx context.Context, providerID int64, upd hubapi.ProviderUpdate) (*hubapi.Provider, error)
	ListProviderBookings(ctx context.Context, providerID int64) ([]hubapi.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID int64, status string) (*hubapi.Booking, error)
	ListProviderReviews(ctx context.Context, providerID int64) ([]hubapi.Review, error)
}

// FeedLookup finds the notification feed mounted for a browser, if any.
type FeedLookup interface {
	Get(clientID string) (*feed.Feed, bool)
}
