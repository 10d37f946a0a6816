package mastodon

import (
	"context"
	"fmt"
)

// NotificationsClient reads and clears the user's notifications.
type NotificationsClient struct {
	client *Client
}

// Notifications returns the notifications API.
func (c *Client) Notifications() *NotificationsClient {
	return &NotificationsClient{client: c}
}

// List pages through the user's notifications.
func (n *NotificationsClient) List(ctx context.Context, filter NotificationsFilter) (*Page[Notification], error) {
	return getPage[Notification](ctx, n.client, "/api/v1/notifications", filter.ToValues())
}

// Get fetches a single notification by ID.
func (n *NotificationsClient) Get(ctx context.Context, id string) (*Notification, error) {
	return get[Notification](ctx, n.client, fmt.Sprintf("/api/v1/notifications/%s", id), nil)
}

// Clear deletes all notifications.
func (n *NotificationsClient) Clear(ctx context.Context) error {
	return postDiscard(ctx, n.client, "/api/v1/notifications/clear")
}
