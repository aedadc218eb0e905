package booking

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNoPendingBooking = errors.New("no pending booking")
	ErrNotPayable       = errors.New("booking is not awaiting payment")
)
