//go:build mastodon_1_0_0 || mastodon_1_3_0 || mastodon_2_0_0 || mastodon_2_1_0 || mastodon_2_3_0 || mastodon_2_4_0 || mastodon_2_4_2 || mastodon_2_6_0 || mastodon_2_8_0 || mastodon_2_8_1 || mastodon_2_9_1

package mastodon

import "context"

// Query runs a v1 search, where hashtags come back as plain strings.
func (s *SearchClient) Query(ctx context.Context, q string, filter SearchFilter) (*SearchResult, error) {
	return get[SearchResult](ctx, s.client, "/api/v1/search", filter.toValues(q))
}
