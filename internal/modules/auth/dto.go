package auth

import "smarthub/internal/session"

type LoginRequest struct {
	Mobile   string `json:"mobile" validate:"required,mobile10"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=USER PROVIDER SERVICE_PROVIDER ADMIN"`
}

type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Mobile   string `json:"mobile" validate:"required,mobile10"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,strongpassword"`
	Role     string `json:"role" validate:"required,oneof=USER PROVIDER SERVICE_PROVIDER"`

	// provider extras
	ServiceType  string `json:"serviceType"`
	Experience   int    `json:"experience" validate:"gte=0"`
	Price        string `json:"price"`
	Availability string `json:"availability"`
	Location     string `json:"location"`
}

type ProfileUpdateRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Mobile   string `json:"mobile" validate:"omitempty,mobile10"`
}

// AuthResult is returned after login or sign-up. The page shows Message and
// navigates to RedirectURL after RedirectAfterMs.
type AuthResult struct {
	Message         string           `json:"message"`
	Session         *session.Session `json:"session"`
	RedirectURL     string           `json:"redirectUrl"`
	RedirectAfterMs int64            `json:"redirectAfterMs"`
}
