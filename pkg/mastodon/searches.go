package mastodon

// SearchClient queries the instance's search endpoints. The methods that
// exist depend on the targeted generation: v1 search was removed from the
// API, v2 added later, and both coexist in some release lines.
type SearchClient struct {
	client *Client
}

// Search returns the search API.
func (c *Client) Search() *SearchClient {
	return &SearchClient{client: c}
}
