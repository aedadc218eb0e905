package provider

import (
	"smarthub/internal/hubapi"
	"smarthub/internal/modules/review"
)

type UpdateProfileRequest struct {
	FullName     string  `json:"fullName" validate:"omitempty,max=120"`
	Email        string  `json:"email" validate:"omitempty,email"`
	Mobile       string  `json:"mobile" validate:"omitempty,mobile10"`
	ServiceType  string  `json:"serviceType" validate:"omitempty,max=80"`
	Experience   int     `json:"experience" validate:"gte=0"`
	Price        float64 `json:"price" validate:"gte=0"`
	Availability string  `json:"availability" validate:"omitempty,max=200"`
	Location     string  `json:"location" validate:"omitempty,max=120"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACCEPTED REJECTED COMPLETED"`
}

type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// BookingRow is a booking request with the buttons the provider gets.
type BookingRow struct {
	hubapi.Booking
	StatusLabel string   `json:"statusLabel"`
	Actions     []string `json:"actions"`
}

type BookingsView struct {
	Bookings []BookingRow `json:"bookings"`
	Stats    Stats        `json:"stats"`
}

type DashboardView struct {
	Profile *hubapi.Provider `json:"profile"`
	Stats   Stats            `json:"stats"`
	Recent  []BookingRow     `json:"recent"`
	Reviews *review.Summary  `json:"reviews,omitempty"`
}

type StatusResult struct {
	Booking *hubapi.Booking `json:"booking"`
	Message string          `json:"message"`
}
