package review

import "smarthub/internal/hubapi"

type CreateReviewRequest struct {
	BookingID int64  `json:"bookingId" validate:"required,gt=0"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment" validate:"max=1000"`
}

// Summary is a provider's review list with the header figures.
type Summary struct {
	Reviews       []hubapi.Review `json:"reviews"`
	Count         int             `json:"count"`
	AverageRating string          `json:"averageRating"`
}
