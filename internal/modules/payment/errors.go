package payment

import "errors"

var (
	ErrNoPendingPayment = errors.New("no payment information found")
	ErrMarkPaid         = errors.New("failed to update booking status")
)

// FieldError is a form check that failed; Message is shown as is.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}
