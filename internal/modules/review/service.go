package review

import (
	"context"
	"fmt"
	"strings"

	"smarthub/internal/hubapi"
)

type Service struct {
	backend Backend
}

func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

// Completed lists the bookings a user may review.
func (s *Service) Completed(ctx context.Context, userID int64) ([]hubapi.Booking, error) {
	bookings, err := s.backend.ListUserBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]hubapi.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == hubapi.BookingCompleted {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Service) ForProvider(ctx context.Context, providerID int64) (*Summary, error) {
	reviews, err := s.backend.ListProviderReviews(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return Summarize(reviews), nil
}

// Create posts a review for one of the user's completed bookings. The
// provider is taken from the booking, not from the request.
func (s *Service) Create(ctx context.Context, userID int64, req CreateReviewRequest) (*hubapi.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	completed, err := s.Completed(ctx, userID)
	if err != nil {
		return nil, err
	}
	var target *hubapi.Booking
	for i := range completed {
		if completed[i].BookingID == req.BookingID {
			target = &completed[i]
			break
		}
	}
	if target == nil {
		return nil, ErrReviewNotAllowed
	}

	return s.backend.CreateReview(ctx, hubapi.ReviewRequest{
		BookingID:  target.BookingID,
		UserID:     userID,
		ProviderID: target.ProviderID,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
	})
}

// Summarize counts reviews and formats the mean rating to one decimal.
func Summarize(reviews []hubapi.Review) *Summary {
	if reviews == nil {
		reviews = []hubapi.Review{}
	}
	sum := &Summary{Reviews: reviews, Count: len(reviews)}
	if len(reviews) == 0 {
		return sum
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	sum.AverageRating = fmt.Sprintf("%.1f", float64(total)/float64(len(reviews)))
	return sum
}
