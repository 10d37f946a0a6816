//go:build !mastodon_1_0_0 && !mastodon_1_3_0 && !mastodon_2_0_0 && !mastodon_2_1_0 && !mastodon_2_3_0 && !mastodon_2_4_0

package mastodon

import "context"

// QueryV2 runs a v2 search, where hashtags come back as full Tag entities.
func (s *SearchClient) QueryV2(ctx context.Context, q string, filter SearchFilter) (*SearchResultV2, error) {
	return get[SearchResultV2](ctx, s.client, "/api/v2/search", filter.toValues(q))
}
