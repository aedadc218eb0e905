package hubapi

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) SearchProviders(ctx context.Context, serviceType, location string) ([]Provider, error) {
	q := url.Values{}
	if serviceType != "" {
		q.Set("type", serviceType)
	}
	if location != "" {
		q.Set("location", location)
	}
	path := "/api/provider/search"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []Provider
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProviderProfile(ctx context.Context, providerID int64) (*Provider, error) {
	var out Provider
	if err := c.get(ctx, fmt.Sprintf("/api/provider/profile/%d", providerID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProviderProfile(ctx context.Context, providerID int64, upd ProviderUpdate) (*Provider, error) {
	var out Provider
	if err := c.put(ctx, fmt.Sprintf("/api/provider/profile/%d", providerID), upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListProviderReviews(ctx context.Context, providerID int64) ([]Review, error) {
	var out []Review
	if err := c.get(ctx, fmt.Sprintf("/api/provider/reviews/%d", providerID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateReview(ctx context.Context, req ReviewRequest) (*Review, error) {
	var out Review
	if err := c.post(ctx, "/api/review", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateComplaint(ctx context.Context, req ComplaintRequest) (*Complaint, error) {
	var out Complaint
	if err := c.post(ctx, "/api/complaints", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
