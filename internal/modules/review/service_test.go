package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"smarthub/internal/hubapi"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) ListUserBookings(ctx context.Context, userID int64) ([]hubapi.Booking, error) {
	args := m.Called(ctx, userID)
	bookings, _ := args.Get(0).([]hubapi.Booking)
	return bookings, args.Error(1)
}

func (m *mockBackend) ListProviderReviews(ctx context.Context, providerID int64) ([]hubapi.Review, error) {
	args := m.Called(ctx, providerID)
	reviews, _ := args.Get(0).([]hubapi.Review)
	return reviews, args.Error(1)
}

func (m *mockBackend) CreateReview(ctx context.Context, req hubapi.ReviewRequest) (*hubapi.Review, error) {
	args := m.Called(ctx, req)
	rv, _ := args.Get(0).(*hubapi.Review)
	return rv, args.Error(1)
}

var userBookings = []hubapi.Booking{
	{BookingID: 1, ProviderID: 5, Status: hubapi.BookingPending},
	{BookingID: 2, ProviderID: 6, Status: hubapi.BookingCompleted},
	{BookingID: 3, ProviderID: 7, Status: hubapi.BookingPaid},
}

func TestCompleted_FiltersByStatus(t *testing.T) {
	backend := new(mockBackend)
	backend.On("ListUserBookings", mock.Anything, int64(3)).Return(userBookings, nil)

	got, err := NewService(backend).Completed(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].BookingID)
}

func TestCreate_UsesBookingProvider(t *testing.T) {
	backend := new(mockBackend)
	backend.On("ListUserBookings", mock.Anything, int64(3)).Return(userBookings, nil)
	backend.On("CreateReview", mock.Anything, hubapi.ReviewRequest{
		BookingID: 2, UserID: 3, ProviderID: 6, Rating: 4, Comment: "great",
	}).Return(&hubapi.Review{ReviewID: 10, Rating: 4}, nil).Once()

	rv, err := NewService(backend).Create(context.Background(), 3, CreateReviewRequest{BookingID: 2, Rating: 4, Comment: "  great "})
	require.NoError(t, err)
	assert.Equal(t, int64(10), rv.ReviewID)
	backend.AssertExpectations(t)
}

func TestCreate_Rejects(t *testing.T) {
	backend := new(mockBackend)
	backend.On("ListUserBookings", mock.Anything, int64(3)).Return(userBookings, nil)
	svc := NewService(backend)

	_, err := svc.Create(context.Background(), 3, CreateReviewRequest{BookingID: 2, Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.Create(context.Background(), 3, CreateReviewRequest{BookingID: 2, Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.Create(context.Background(), 3, CreateReviewRequest{BookingID: 1, Rating: 5})
	assert.ErrorIs(t, err, ErrReviewNotAllowed)

	backend.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
}

func TestSummarize(t *testing.T) {
	empty := Summarize(nil)
	assert.Equal(t, 0, empty.Count)
	assert.Equal(t, "", empty.AverageRating)
	assert.NotNil(t, empty.Reviews)

	s := Summarize([]hubapi.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}})
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, "4.3", s.AverageRating)
}
