//go:build !mastodon_1_0_0 && !mastodon_1_3_0 && !mastodon_2_0_0 && !mastodon_2_1_0 && !mastodon_2_3_0 && !mastodon_2_4_0 && !mastodon_2_4_2

package mastodon

import (
	"context"
	"fmt"
)

// Dismiss deletes a single notification.
func (n *NotificationsClient) Dismiss(ctx context.Context, id string) error {
	return postDiscard(ctx, n.client, fmt.Sprintf("/api/v1/notifications/%s/dismiss", id))
}
