package hubapi

import (
	"context"
	"fmt"
)

func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*Booking, error) {
	var out Booking
	if err := c.post(ctx, "/api/bookings", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListUserBookings(ctx context.Context, userID int64) ([]Booking, error) {
	var out []Booking
	if err := c.get(ctx, fmt.Sprintf("/api/bookings/user/%d", userID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListProviderBookings(ctx context.Context, providerID int64) ([]Booking, error) {
	var out []Booking
	if err := c.get(ctx, fmt.Sprintf("/api/bookings/provider/%d", providerID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateBookingStatus is the single call site for booking transitions; the
// verb comes from WithStatusMethod.
func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID int64, status string) (*Booking, error) {
	var out Booking
	if err := c.do(ctx, c.statusMethod, fmt.Sprintf("/api/bookings/%d/status", bookingID), statusBody{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
