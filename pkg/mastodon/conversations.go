//go:build !mastodon_1_0_0 && !mastodon_1_3_0 && !mastodon_2_0_0 && !mastodon_2_1_0 && !mastodon_2_3_0 && !mastodon_2_4_0 && !mastodon_2_4_2

package mastodon

import (
	"context"
	"fmt"
)

// ConversationsClient reads direct-message threads.
type ConversationsClient struct {
	client *Client
}

// Conversations returns the conversations API.
func (c *Client) Conversations() *ConversationsClient {
	return &ConversationsClient{client: c}
}

// List pages through the user's conversations.
func (cc *ConversationsClient) List(ctx context.Context, filter RangeFilter) (*Page[Conversation], error) {
	return getPage[Conversation](ctx, cc.client, "/api/v1/conversations", filter.ToValues())
}

// Delete removes a conversation from the listing.
func (cc *ConversationsClient) Delete(ctx context.Context, id string) error {
	return del(ctx, cc.client, fmt.Sprintf("/api/v1/conversations/%s", id))
}

// MarkRead marks a conversation as read.
func (cc *ConversationsClient) MarkRead(ctx context.Context, id string) (*Conversation, error) {
	return post[Conversation](ctx, cc.client, fmt.Sprintf("/api/v1/conversations/%s/read", id), nil)
}
