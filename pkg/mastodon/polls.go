//go:build !mastodon_1_0_0 && !mastodon_1_3_0 && !mastodon_2_0_0 && !mastodon_2_1_0 && !mastodon_2_3_0 && !mastodon_2_4_0 && !mastodon_2_4_2 && !mastodon_2_6_0

package mastodon

import (
	"context"
	"fmt"
)

// PollsClient reads and votes on polls.
type PollsClient struct {
	client *Client
}

// Polls returns the polls API.
func (c *Client) Polls() *PollsClient {
	return &PollsClient{client: c}
}

// Get fetches a poll by ID.
func (p *PollsClient) Get(ctx context.Context, id string) (*Poll, error) {
	return get[Poll](ctx, p.client, fmt.Sprintf("/api/v1/polls/%s", id), nil)
}

// Vote casts votes on a poll. choices are zero-based option indexes.
func (p *PollsClient) Vote(ctx context.Context, id string, choices []int) (*Poll, error) {
	return post[Poll](ctx, p.client, fmt.Sprintf("/api/v1/polls/%s/votes", id), map[string][]int{"choices": choices})
}
