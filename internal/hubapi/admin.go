package hubapi

import (
	"context"
	"fmt"
)

func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	var out []Account
	if err := c.get(ctx, "/api/admin/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListAllProviders(ctx context.Context) ([]Provider, error) {
	var out []Provider
	if err := c.get(ctx, "/api/admin/providers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListAllBookings(ctx context.Context) ([]Booking, error) {
	var out []Booking
	if err := c.get(ctx, "/api/admin/bookings", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListComplaints(ctx context.Context) ([]Complaint, error) {
	var out []Complaint
	if err := c.get(ctx, "/api/admin/complaints", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateComplaint(ctx context.Context, complaintID int64, upd ComplaintUpdate) (*Complaint, error) {
	var out Complaint
	if err := c.put(ctx, fmt.Sprintf("/api/admin/complaints/%d", complaintID), upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
