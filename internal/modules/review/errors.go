package review

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid_request")
	ErrReviewNotAllowed = errors.New("review_not_allowed")
)
