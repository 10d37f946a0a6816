//go:build !mastodon_1_0_0 && !mastodon_1_3_0 && !mastodon_2_0_0

package mastodon

import (
	"context"
	"fmt"
	"net/http"

	httpx "github.com/fedigo-io/mastodon-client/internal/http"
)

// ListsClient manages user-curated account lists.
type ListsClient struct {
	client *Client
}

// Lists returns the lists API.
func (c *Client) Lists() *ListsClient {
	return &ListsClient{client: c}
}

// All fetches the user's lists.
func (l *ListsClient) All(ctx context.Context) ([]List, error) {
	return getList[List](ctx, l.client, "/api/v1/lists", nil)
}

// Get fetches one list by ID.
func (l *ListsClient) Get(ctx context.Context, id string) (*List, error) {
	return get[List](ctx, l.client, fmt.Sprintf("/api/v1/lists/%s", id), nil)
}

// Create makes a new list with the given title.
func (l *ListsClient) Create(ctx context.Context, title string) (*List, error) {
	return post[List](ctx, l.client, "/api/v1/lists", map[string]string{"title": title})
}

// Rename changes a list's title.
func (l *ListsClient) Rename(ctx context.Context, id, title string) (*List, error) {
	return put[List](ctx, l.client, fmt.Sprintf("/api/v1/lists/%s", id), map[string]string{"title": title})
}

// Delete removes a list.
func (l *ListsClient) Delete(ctx context.Context, id string) error {
	return del(ctx, l.client, fmt.Sprintf("/api/v1/lists/%s", id))
}

// Accounts pages through the members of a list.
func (l *ListsClient) Accounts(ctx context.Context, id string, filter RangeFilter) (*Page[Account], error) {
	return getPage[Account](ctx, l.client, fmt.Sprintf("/api/v1/lists/%s/accounts", id), filter.ToValues())
}

// AddAccounts puts accounts on a list. Every account must already be
// followed.
func (l *ListsClient) AddAccounts(ctx context.Context, id string, accountIDs []string) error {
	_, err := l.client.do(ctx, &httpx.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/api/v1/lists/%s/accounts", id),
		Body:   map[string][]string{"account_ids": accountIDs},
	})
	return err
}

// RemoveAccounts takes accounts off a list.
func (l *ListsClient) RemoveAccounts(ctx context.Context, id string, accountIDs []string) error {
	_, err := l.client.do(ctx, &httpx.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/api/v1/lists/%s/accounts", id),
		Body:   map[string][]string{"account_ids": accountIDs},
	})
	return err
}

// List pages through the timeline of one list.
func (t *TimelinesClient) List(ctx context.Context, listID string, filter RangeFilter) (*Page[Status], error) {
	return getPage[Status](ctx, t.client, fmt.Sprintf("/api/v1/timelines/list/%s", listID), filter.ToValues())
}
