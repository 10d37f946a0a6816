package mastodon

import (
	"context"
	"fmt"
	"net/url"
)

// TimelinesClient reads the reverse-chronological timelines.
type TimelinesClient struct {
	client *Client
}

// Timelines returns the timelines API.
func (c *Client) Timelines() *TimelinesClient {
	return &TimelinesClient{client: c}
}

// Home pages through the authenticated user's home timeline.
func (t *TimelinesClient) Home(ctx context.Context, filter RangeFilter) (*Page[Status], error) {
	return getPage[Status](ctx, t.client, "/api/v1/timelines/home", filter.ToValues())
}

// Public pages through the public timeline.
func (t *TimelinesClient) Public(ctx context.Context, filter TimelineFilter) (*Page[Status], error) {
	return getPage[Status](ctx, t.client, "/api/v1/timelines/public", filter.ToValues())
}

// Tag pages through the timeline of one hashtag (without the leading #).
func (t *TimelinesClient) Tag(ctx context.Context, hashtag string, filter TimelineFilter) (*Page[Status], error) {
	return getPage[Status](ctx, t.client, fmt.Sprintf("/api/v1/timelines/tag/%s", url.PathEscape(hashtag)), filter.ToValues())
}
