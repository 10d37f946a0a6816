//go:build !mastodon_1_0_0 && !mastodon_1_3_0 && !mastodon_2_0_0 && !mastodon_2_1_0 && !mastodon_2_3_0 && !mastodon_2_4_0 && !mastodon_2_4_2 && !mastodon_2_6_0 && !mastodon_2_8_0 && !mastodon_2_8_1 && !mastodon_2_9_1 && !mastodon_3_0_0

package mastodon

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	httpx "github.com/fedigo-io/mastodon-client/internal/http"
)

// AnnouncementsClient reads instance-wide announcements.
type AnnouncementsClient struct {
	client *Client
}

// Announcements returns the announcements API.
func (c *Client) Announcements() *AnnouncementsClient {
	return &AnnouncementsClient{client: c}
}

// List fetches current announcements. withDismissed includes ones the user
// already read.
func (a *AnnouncementsClient) List(ctx context.Context, withDismissed bool) ([]Announcement, error) {
	var query url.Values
	if withDismissed {
		query = url.Values{"with_dismissed": []string{"true"}}
	}
	return getList[Announcement](ctx, a.client, "/api/v1/announcements", query)
}

// Dismiss marks an announcement as read.
func (a *AnnouncementsClient) Dismiss(ctx context.Context, id string) error {
	return postDiscard(ctx, a.client, fmt.Sprintf("/api/v1/announcements/%s/dismiss", id))
}

// React adds an emoji reaction to an announcement.
func (a *AnnouncementsClient) React(ctx context.Context, id, emojiName string) error {
	_, err := a.client.do(ctx, &httpx.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/api/v1/announcements/%s/reactions/%s", id, url.PathEscape(emojiName)),
	})
	return err
}

// Unreact removes an emoji reaction.
func (a *AnnouncementsClient) Unreact(ctx context.Context, id, emojiName string) error {
	return del(ctx, a.client, fmt.Sprintf("/api/v1/announcements/%s/reactions/%s", id, url.PathEscape(emojiName)))
}
