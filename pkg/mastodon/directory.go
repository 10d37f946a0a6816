//go:build !mastodon_1_0_0 && !mastodon_1_3_0 && !mastodon_2_0_0 && !mastodon_2_1_0 && !mastodon_2_3_0 && !mastodon_2_4_0 && !mastodon_2_4_2 && !mastodon_2_6_0 && !mastodon_2_8_0 && !mastodon_2_8_1 && !mastodon_2_9_1

package mastodon

import "context"

// DirectoryClient reads the public profile directory.
type DirectoryClient struct {
	client *Client
}

// Directory returns the profile directory API.
func (c *Client) Directory() *DirectoryClient {
	return &DirectoryClient{client: c}
}

// List fetches discoverable accounts.
func (d *DirectoryClient) List(ctx context.Context, filter DirectoryFilter) ([]Account, error) {
	return getList[Account](ctx, d.client, "/api/v1/directory", filter.ToValues())
}
