//go:build mastodon_1_0_0 || mastodon_1_3_0 || mastodon_2_0_0 || mastodon_2_1_0 || mastodon_2_3_0 || mastodon_2_4_0 || mastodon_2_4_2 || mastodon_2_6_0 || mastodon_2_8_0 || mastodon_2_8_1 || mastodon_2_9_1

package mastodon

import (
	"context"
	"fmt"
)

// Card fetches the preview card of a status. Later servers removed this
// endpoint; the card arrives inline on the status instead.
func (s *StatusesClient) Card(ctx context.Context, id string) (*Card, error) {
	return get[Card](ctx, s.client, fmt.Sprintf("/api/v1/statuses/%s/card", id), nil)
}
