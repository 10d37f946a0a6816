package mastodon

import "context"

// InstanceClient reads public information about the server.
type InstanceClient struct {
	client *Client
}

// Instance returns the instance API.
func (c *Client) Instance() *InstanceClient {
	return &InstanceClient{client: c}
}

// Get fetches the instance description.
func (i *InstanceClient) Get(ctx context.Context) (*Instance, error) {
	return get[Instance](ctx, i.client, "/api/v1/instance", nil)
}

// Peers lists the domains this instance federates with.
func (i *InstanceClient) Peers(ctx context.Context) ([]string, error) {
	return getList[string](ctx, i.client, "/api/v1/instance/peers", nil)
}

// Activity returns weekly usage statistics.
func (i *InstanceClient) Activity(ctx context.Context) ([]Activity, error) {
	return getList[Activity](ctx, i.client, "/api/v1/instance/activity", nil)
}
