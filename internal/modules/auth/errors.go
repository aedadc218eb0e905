package auth

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrBadAuthReply = errors.New("backend returned an unusable session")
)
