package mastodon

import (
	"context"
	"fmt"
)

// StatusesClient operates on statuses: posting, deleting, interacting, and
// reading their surroundings.
type StatusesClient struct {
	client *Client
}

// Statuses returns the statuses API.
func (c *Client) Statuses() *StatusesClient {
	return &StatusesClient{client: c}
}

// Get fetches a status by ID.
func (s *StatusesClient) Get(ctx context.Context, id string) (*Status, error) {
	return get[Status](ctx, s.client, fmt.Sprintf("/api/v1/statuses/%s", id), nil)
}

// Context fetches the thread around a status.
func (s *StatusesClient) Context(ctx context.Context, id string) (*Context, error) {
	return get[Context](ctx, s.client, fmt.Sprintf("/api/v1/statuses/%s/context", id), nil)
}

// RebloggedBy pages through the accounts that boosted a status.
func (s *StatusesClient) RebloggedBy(ctx context.Context, id string, filter RangeFilter) (*Page[Account], error) {
	return getPage[Account](ctx, s.client, fmt.Sprintf("/api/v1/statuses/%s/reblogged_by", id), filter.ToValues())
}

// FavouritedBy pages through the accounts that favourited a status.
func (s *StatusesClient) FavouritedBy(ctx context.Context, id string, filter RangeFilter) (*Page[Account], error) {
	return getPage[Account](ctx, s.client, fmt.Sprintf("/api/v1/statuses/%s/favourited_by", id), filter.ToValues())
}

// NewStatus is the payload for posting a status. Exactly one of Status or
// MediaIDs must be non-empty.
type NewStatus struct {
	Status      string      `json:"status,omitempty"`
	InReplyToID string      `json:"in_reply_to_id,omitempty"`
	MediaIDs    []string    `json:"media_ids,omitempty"`
	Sensitive   bool        `json:"sensitive,omitempty"`
	SpoilerText string      `json:"spoiler_text,omitempty"`
	Visibility  Visibility  `json:"visibility,omitempty"`
	Language    string      `json:"language,omitempty"`
	Poll        *PollParams `json:"poll,omitempty"`
	// ScheduledAt defers publication; the server answers with a
	// ScheduledStatus instead of a Status when it is set.
	ScheduledAt string `json:"scheduled_at,omitempty"`
}

// PollParams attaches a poll to a new status.
type PollParams struct {
	Options    []string `json:"options"`
	ExpiresIn  int      `json:"expires_in"`
	Multiple   bool     `json:"multiple,omitempty"`
	HideTotals bool     `json:"hide_totals,omitempty"`
}

// Create posts a new status.
func (s *StatusesClient) Create(ctx context.Context, status NewStatus) (*Status, error) {
	return post[Status](ctx, s.client, "/api/v1/statuses", status)
}

// Delete removes the user's own status.
func (s *StatusesClient) Delete(ctx context.Context, id string) error {
	return del(ctx, s.client, fmt.Sprintf("/api/v1/statuses/%s", id))
}

// Favourite marks a status as favourited.
func (s *StatusesClient) Favourite(ctx context.Context, id string) (*Status, error) {
	return post[Status](ctx, s.client, fmt.Sprintf("/api/v1/statuses/%s/favourite", id), nil)
}

// Unfavourite removes a favourite.
func (s *StatusesClient) Unfavourite(ctx context.Context, id string) (*Status, error) {
	return post[Status](ctx, s.client, fmt.Sprintf("/api/v1/statuses/%s/unfavourite", id), nil)
}

// Reblog boosts a status.
func (s *StatusesClient) Reblog(ctx context.Context, id string) (*Status, error) {
	return post[Status](ctx, s.client, fmt.Sprintf("/api/v1/statuses/%s/reblog", id), nil)
}

// Unreblog removes a boost.
func (s *StatusesClient) Unreblog(ctx context.Context, id string) (*Status, error) {
	return post[Status](ctx, s.client, fmt.Sprintf("/api/v1/statuses/%s/unreblog", id), nil)
}

// Pin pins the user's own status to their profile.
func (s *StatusesClient) Pin(ctx context.Context, id string) (*Status, error) {
	return post[Status](ctx, s.client, fmt.Sprintf("/api/v1/statuses/%s/pin", id), nil)
}

// Unpin removes a profile pin.
func (s *StatusesClient) Unpin(ctx context.Context, id string) (*Status, error) {
	return post[Status](ctx, s.client, fmt.Sprintf("/api/v1/statuses/%s/unpin", id), nil)
}

// Mute silences notifications for a conversation.
func (s *StatusesClient) Mute(ctx context.Context, id string) (*Status, error) {
	return post[Status](ctx, s.client, fmt.Sprintf("/api/v1/statuses/%s/mute", id), nil)
}

// Unmute re-enables notifications for a conversation.
func (s *StatusesClient) Unmute(ctx context.Context, id string) (*Status, error) {
	return post[Status](ctx, s.client, fmt.Sprintf("/api/v1/statuses/%s/unmute", id), nil)
}

// Favourites pages through the statuses the user has favourited.
func (s *StatusesClient) Favourites(ctx context.Context, filter RangeFilter) (*Page[Status], error) {
	return getPage[Status](ctx, s.client, "/api/v1/favourites", filter.ToValues())
}
