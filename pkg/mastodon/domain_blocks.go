package mastodon

import (
	"context"
	"net/http"
	"net/url"

	httpx "github.com/fedigo-io/mastodon-client/internal/http"
)

// DomainBlocksClient manages the user's blocked domains.
type DomainBlocksClient struct {
	client *Client
}

// DomainBlocks returns the domain blocks API.
func (c *Client) DomainBlocks() *DomainBlocksClient {
	return &DomainBlocksClient{client: c}
}

// List pages through the blocked domains.
func (d *DomainBlocksClient) List(ctx context.Context, filter RangeFilter) (*Page[string], error) {
	return getPage[string](ctx, d.client, "/api/v1/domain_blocks", filter.ToValues())
}

// Block hides every account and status from a domain.
func (d *DomainBlocksClient) Block(ctx context.Context, domain string) error {
	_, err := d.client.do(ctx, &httpx.Request{
		Method: http.MethodPost,
		Path:   "/api/v1/domain_blocks",
		Body:   map[string]string{"domain": domain},
	})
	return err
}

// Unblock removes a domain block.
func (d *DomainBlocksClient) Unblock(ctx context.Context, domain string) error {
	query := url.Values{}
	query.Set("domain", domain)
	_, err := d.client.do(ctx, &httpx.Request{
		Method: http.MethodDelete,
		Path:   "/api/v1/domain_blocks",
		Query:  query,
	})
	return err
}
