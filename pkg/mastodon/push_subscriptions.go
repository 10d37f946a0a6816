//go:build !mastodon_1_0_0 && !mastodon_1_3_0 && !mastodon_2_0_0 && !mastodon_2_1_0 && !mastodon_2_3_0

package mastodon

import "context"

// PushClient manages the Web Push subscription of the access token. Each
// token carries at most one subscription; creating a new one replaces it.
type PushClient struct {
	client *Client
}

// Push returns the Web Push API.
func (c *Client) Push() *PushClient {
	return &PushClient{client: c}
}

// PushSubscriptionParams registers a Web Push endpoint.
type PushSubscriptionParams struct {
	Subscription PushSubscriptionTarget `json:"subscription"`
	Data         *PushData              `json:"data,omitempty"`
}

// PushSubscriptionTarget is the endpoint and encryption keys of the
// receiving push server.
type PushSubscriptionTarget struct {
	Endpoint string   `json:"endpoint"`
	Keys     PushKeys `json:"keys"`
}

// PushData selects the alerts to deliver.
type PushData struct {
	Alerts *PushAlertsParams `json:"alerts,omitempty"`
}

// PushAlertsParams toggles alert types on a subscription.
type PushAlertsParams struct {
	Follow    *bool `json:"follow,omitempty"`
	Favourite *bool `json:"favourite,omitempty"`
	Reblog    *bool `json:"reblog,omitempty"`
	Mention   *bool `json:"mention,omitempty"`
	Poll      *bool `json:"poll,omitempty"`
}

// Subscribe registers (or replaces) the token's push subscription.
func (p *PushClient) Subscribe(ctx context.Context, params PushSubscriptionParams) (*PushSubscription, error) {
	return post[PushSubscription](ctx, p.client, "/api/v1/push/subscription", params)
}

// Get fetches the current subscription.
func (p *PushClient) Get(ctx context.Context) (*PushSubscription, error) {
	return get[PushSubscription](ctx, p.client, "/api/v1/push/subscription", nil)
}

// Update changes which alerts the subscription delivers.
func (p *PushClient) Update(ctx context.Context, data PushData) (*PushSubscription, error) {
	return put[PushSubscription](ctx, p.client, "/api/v1/push/subscription", map[string]PushData{"data": data})
}

// Unsubscribe removes the subscription.
func (p *PushClient) Unsubscribe(ctx context.Context) error {
	return del(ctx, p.client, "/api/v1/push/subscription")
}
