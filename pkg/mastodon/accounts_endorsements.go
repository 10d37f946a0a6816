//go:build !mastodon_1_0_0 && !mastodon_1_3_0 && !mastodon_2_0_0 && !mastodon_2_1_0 && !mastodon_2_3_0 && !mastodon_2_4_0 && !mastodon_2_4_2

package mastodon

import (
	"context"
	"fmt"
)

// Endorsements pages through the accounts the user features on their
// profile.
func (a *AccountsClient) Endorsements(ctx context.Context, filter RangeFilter) (*Page[Account], error) {
	return getPage[Account](ctx, a.client, "/api/v1/endorsements", filter.ToValues())
}

// Pin features an account on the user's profile.
func (a *AccountsClient) Pin(ctx context.Context, id string) (*Relationship, error) {
	return post[Relationship](ctx, a.client, fmt.Sprintf("/api/v1/accounts/%s/pin", id), nil)
}

// Unpin removes a featured account.
func (a *AccountsClient) Unpin(ctx context.Context, id string) (*Relationship, error) {
	return post[Relationship](ctx, a.client, fmt.Sprintf("/api/v1/accounts/%s/unpin", id), nil)
}
