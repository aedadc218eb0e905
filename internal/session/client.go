package session

import "github.com/google/uuid"

// NewClientID names a fresh browser namespace.
func NewClientID() string {
	return uuid.NewString()
}
