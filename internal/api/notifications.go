package api

import (
	"context"
	"fmt"

	"github.com/altinukshini/cti-tui/internal/model"
)

func (c *Client) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	var list []model.Notification
	if err := c.Get(ctx, "user/notifications", &list); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string, read bool) error {
	body := map[string]any{"notificationId": id, "isRead": read}
	if err := c.Post(ctx, "user/notifications/read", body, nil); err != nil {
		return fmt.Errorf("mark notification %s: %w", id, err)
	}
	return nil
}
