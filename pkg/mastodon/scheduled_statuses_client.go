//go:build !mastodon_1_0_0 && !mastodon_1_3_0 && !mastodon_2_0_0 && !mastodon_2_1_0 && !mastodon_2_3_0 && !mastodon_2_4_0 && !mastodon_2_4_2 && !mastodon_2_6_0

package mastodon

import (
	"context"
	"fmt"
	"time"
)

// ScheduledStatusesClient manages statuses queued for future publication.
type ScheduledStatusesClient struct {
	client *Client
}

// ScheduledStatuses returns the scheduled statuses API.
func (c *Client) ScheduledStatuses() *ScheduledStatusesClient {
	return &ScheduledStatusesClient{client: c}
}

// List pages through the user's scheduled statuses.
func (s *ScheduledStatusesClient) List(ctx context.Context, filter RangeFilter) (*Page[ScheduledStatus], error) {
	return getPage[ScheduledStatus](ctx, s.client, "/api/v1/scheduled_statuses", filter.ToValues())
}

// Get fetches one scheduled status by ID.
func (s *ScheduledStatusesClient) Get(ctx context.Context, id string) (*ScheduledStatus, error) {
	return get[ScheduledStatus](ctx, s.client, fmt.Sprintf("/api/v1/scheduled_statuses/%s", id), nil)
}

// Reschedule moves the publication time.
func (s *ScheduledStatusesClient) Reschedule(ctx context.Context, id string, at time.Time) (*ScheduledStatus, error) {
	body := map[string]string{"scheduled_at": at.Format(time.RFC3339)}
	return put[ScheduledStatus](ctx, s.client, fmt.Sprintf("/api/v1/scheduled_statuses/%s", id), body)
}

// Cancel removes a scheduled status before it publishes.
func (s *ScheduledStatusesClient) Cancel(ctx context.Context, id string) error {
	return del(ctx, s.client, fmt.Sprintf("/api/v1/scheduled_statuses/%s", id))
}
