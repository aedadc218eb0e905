package review

import (
	"context"

	"smarthub/internal/hubapi"
)

type Backend interface {
	ListUserBookings(ctx context.Context, userID int64) ([]hubapi.Booking, error)
	ListProviderReviews(ctx context.Context, providerID int64) ([]hubapi.Review, error)
	CreateReview(ctx context.Context, req hubapi.ReviewRequest) (*hubapi.Review, error)
}
