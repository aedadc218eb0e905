package auth

import (
	"context"

	"smarthub/internal/hubapi"
)

// Backend is what login and sign-up need from the hub API.
type Backend interface {
	Login(ctx context.Context, req hubapi.LoginRequest) (*hubapi.AuthResponse, error)
	Register(ctx context.Context, req hubapi.SignupRequest) (*hubapi.AuthResponse, error)
}
