//go:build !mastodon_1_0_0 && !mastodon_1_3_0 && !mastodon_2_0_0 && !mastodon_2_1_0 && !mastodon_2_3_0

package mastodon

import (
	"context"
	"fmt"
)

// FiltersClient manages server-side keyword filters.
type FiltersClient struct {
	client *Client
}

// Filters returns the filters API.
func (c *Client) Filters() *FiltersClient {
	return &FiltersClient{client: c}
}

// FilterParams creates or replaces a keyword filter.
type FilterParams struct {
	Phrase       string          `json:"phrase"`
	Context      []FilterContext `json:"context"`
	Irreversible *bool           `json:"irreversible,omitempty"`
	WholeWord    *bool           `json:"whole_word,omitempty"`
	// ExpiresIn is seconds from now; nil means the filter never expires.
	ExpiresIn *int `json:"expires_in,omitempty"`
}

// All fetches the user's filters.
func (f *FiltersClient) All(ctx context.Context) ([]Filter, error) {
	return getList[Filter](ctx, f.client, "/api/v1/filters", nil)
}

// Get fetches one filter by ID.
func (f *FiltersClient) Get(ctx context.Context, id string) (*Filter, error) {
	return get[Filter](ctx, f.client, fmt.Sprintf("/api/v1/filters/%s", id), nil)
}

// Create adds a filter.
func (f *FiltersClient) Create(ctx context.Context, params FilterParams) (*Filter, error) {
	return post[Filter](ctx, f.client, "/api/v1/filters", params)
}

// Update replaces a filter.
func (f *FiltersClient) Update(ctx context.Context, id string, params FilterParams) (*Filter, error) {
	return put[Filter](ctx, f.client, fmt.Sprintf("/api/v1/filters/%s", id), params)
}

// Delete removes a filter.
func (f *FiltersClient) Delete(ctx context.Context, id string) error {
	return del(ctx, f.client, fmt.Sprintf("/api/v1/filters/%s", id))
}
