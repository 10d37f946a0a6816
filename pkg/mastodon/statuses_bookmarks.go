//go:build !mastodon_1_0_0 && !mastodon_1_3_0 && !mastodon_2_0_0 && !mastodon_2_1_0 && !mastodon_2_3_0 && !mastodon_2_4_0 && !mastodon_2_4_2 && !mastodon_2_6_0 && !mastodon_2_8_0 && !mastodon_2_8_1 && !mastodon_2_9_1 && !mastodon_3_0_0

package mastodon

import (
	"context"
	"fmt"
)

// Bookmark saves a status to the user's bookmarks.
func (s *StatusesClient) Bookmark(ctx context.Context, id string) (*Status, error) {
	return post[Status](ctx, s.client, fmt.Sprintf("/api/v1/statuses/%s/bookmark", id), nil)
}

// Unbookmark removes a status from the user's bookmarks.
func (s *StatusesClient) Unbookmark(ctx context.Context, id string) (*Status, error) {
	return post[Status](ctx, s.client, fmt.Sprintf("/api/v1/statuses/%s/unbookmark", id), nil)
}

// Bookmarks pages through the user's bookmarked statuses.
func (s *StatusesClient) Bookmarks(ctx context.Context, filter RangeFilter) (*Page[Status], error) {
	return getPage[Status](ctx, s.client, "/api/v1/bookmarks", filter.ToValues())
}
