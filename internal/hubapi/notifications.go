package hubapi

import (
	"context"
	"fmt"
)

func (c *Client) ListNotifications(ctx context.Context, userID int64) ([]Notification, error) {
	var out []Notification
	if err := c.get(ctx, fmt.Sprintf("/api/notifications/%d", userID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	return c.patch(ctx, fmt.Sprintf("/api/notifications/%d/read", notificationID), nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context, userID int64) error {
	return c.patch(ctx, fmt.Sprintf("/api/notifications/%d/read-all", userID), nil, nil)
}
