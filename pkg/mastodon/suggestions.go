package mastodon

import (
	"context"
	"fmt"
)

// SuggestionsClient reads the server's follow suggestions.
type SuggestionsClient struct {
	client *Client
}

// Suggestions returns the suggestions API.
func (c *Client) Suggestions() *SuggestionsClient {
	return &SuggestionsClient{client: c}
}

// List fetches suggested accounts to follow.
func (s *SuggestionsClient) List(ctx context.Context) ([]Account, error) {
	return getList[Account](ctx, s.client, "/api/v1/suggestions", nil)
}

// Remove drops an account from the suggestions.
func (s *SuggestionsClient) Remove(ctx context.Context, accountID string) error {
	return del(ctx, s.client, fmt.Sprintf("/api/v1/suggestions/%s", accountID))
}
