package mastodon

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// AccountsClient operates on accounts, relationships and follow requests.
type AccountsClient struct {
	client *Client
}

// Accounts returns the accounts API.
func (c *Client) Accounts() *AccountsClient {
	return &AccountsClient{client: c}
}

// Get fetches an account by ID.
func (a *AccountsClient) Get(ctx context.Context, id string) (*Account, error) {
	return get[Account](ctx, a.client, fmt.Sprintf("/api/v1/accounts/%s", id), nil)
}

// VerifyCredentials fetches the account behind the access token, including
// its Source block.
func (a *AccountsClient) VerifyCredentials(ctx context.Context) (*Account, error) {
	return get[Account](ctx, a.client, "/api/v1/accounts/verify_credentials", nil)
}

// UpdateCredentials patches the authenticated user's profile. Only the
// fields set on req go on the wire; everything else is left untouched
// server-side.
func (a *AccountsClient) UpdateCredentials(ctx context.Context, req UpdateCredentialsRequest) (*Account, error) {
	return patch[Account](ctx, a.client, "/api/v1/accounts/update_credentials", req)
}

// Followers pages through the accounts following the given account.
func (a *AccountsClient) Followers(ctx context.Context, id string, filter RangeFilter) (*Page[Account], error) {
	return getPage[Account](ctx, a.client, fmt.Sprintf("/api/v1/accounts/%s/followers", id), filter.ToValues())
}

// Following pages through the accounts the given account follows.
func (a *AccountsClient) Following(ctx context.Context, id string, filter RangeFilter) (*Page[Account], error) {
	return getPage[Account](ctx, a.client, fmt.Sprintf("/api/v1/accounts/%s/following", id), filter.ToValues())
}

// Statuses pages through an account's statuses.
func (a *AccountsClient) Statuses(ctx context.Context, id string, filter StatusesFilter) (*Page[Status], error) {
	return getPage[Status](ctx, a.client, fmt.Sprintf("/api/v1/accounts/%s/statuses", id), filter.ToValues())
}

// FollowRequest tunes a follow relationship.
type FollowRequest struct {
	// Reblogs controls whether the followed account's boosts show in the
	// home timeline. Nil keeps the server default.
	Reblogs *bool `json:"reblogs,omitempty"`
	// Notify asks for a notification when the account posts.
	Notify *bool `json:"notify,omitempty"`
}

// Follow follows an account (or files a request if it is locked).
func (a *AccountsClient) Follow(ctx context.Context, id string, req *FollowRequest) (*Relationship, error) {
	var body interface{}
	if req != nil {
		body = req
	}
	return post[Relationship](ctx, a.client, fmt.Sprintf("/api/v1/accounts/%s/follow", id), body)
}

// Unfollow stops following an account.
func (a *AccountsClient) Unfollow(ctx context.Context, id string) (*Relationship, error) {
	return post[Relationship](ctx, a.client, fmt.Sprintf("/api/v1/accounts/%s/unfollow", id), nil)
}

// Block blocks an account.
func (a *AccountsClient) Block(ctx context.Context, id string) (*Relationship, error) {
	return post[Relationship](ctx, a.client, fmt.Sprintf("/api/v1/accounts/%s/block", id), nil)
}

// Unblock unblocks an account.
func (a *AccountsClient) Unblock(ctx context.Context, id string) (*Relationship, error) {
	return post[Relationship](ctx, a.client, fmt.Sprintf("/api/v1/accounts/%s/unblock", id), nil)
}

// MuteRequest tunes a mute.
type MuteRequest struct {
	// Notifications also hides notifications from the account when true.
	Notifications *bool `json:"notifications,omitempty"`
	// Duration auto-expires the mute after the given number of seconds.
	Duration *int `json:"duration,omitempty"`
}

// Mute mutes an account.
func (a *AccountsClient) Mute(ctx context.Context, id string, req *MuteRequest) (*Relationship, error) {
	var body interface{}
	if req != nil {
		body = req
	}
	return post[Relationship](ctx, a.client, fmt.Sprintf("/api/v1/accounts/%s/mute", id), body)
}

// Unmute unmutes an account.
func (a *AccountsClient) Unmute(ctx context.Context, id string) (*Relationship, error) {
	return post[Relationship](ctx, a.client, fmt.Sprintf("/api/v1/accounts/%s/unmute", id), nil)
}

// Relationships reports how the authenticated user relates to each of the
// given accounts.
func (a *AccountsClient) Relationships(ctx context.Context, ids []string) ([]Relationship, error) {
	query := url.Values{}
	for _, id := range ids {
		query.Add("id[]", id)
	}
	return getList[Relationship](ctx, a.client, "/api/v1/accounts/relationships", query)
}

// Search finds accounts matching q. resolve asks the server to look up
// unknown remote accounts; limit caps results (zero keeps the default).
func (a *AccountsClient) Search(ctx context.Context, q string, limit int, resolve bool) ([]Account, error) {
	query := url.Values{}
	query.Set("q", q)
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if resolve {
		query.Set("resolve", "true")
	}
	return getList[Account](ctx, a.client, "/api/v1/accounts/search", query)
}

// Blocks pages through the accounts the user has blocked.
func (a *AccountsClient) Blocks(ctx context.Context, filter RangeFilter) (*Page[Account], error) {
	return getPage[Account](ctx, a.client, "/api/v1/blocks", filter.ToValues())
}

// Mutes pages through the accounts the user has muted.
func (a *AccountsClient) Mutes(ctx context.Context, filter RangeFilter) (*Page[Account], error) {
	return getPage[Account](ctx, a.client, "/api/v1/mutes", filter.ToValues())
}

// FollowRequests pages through pending incoming follow requests.
func (a *AccountsClient) FollowRequests(ctx context.Context, filter RangeFilter) (*Page[Account], error) {
	return getPage[Account](ctx, a.client, "/api/v1/follow_requests", filter.ToValues())
}

// AuthorizeFollowRequest accepts a pending follow request.
func (a *AccountsClient) AuthorizeFollowRequest(ctx context.Context, id string) error {
	return postDiscard(ctx, a.client, fmt.Sprintf("/api/v1/follow_requests/%s/authorize", id))
}

// RejectFollowRequest declines a pending follow request.
func (a *AccountsClient) RejectFollowRequest(ctx context.Context, id string) error {
	return postDiscard(ctx, a.client, fmt.Sprintf("/api/v1/follow_requests/%s/reject", id))
}

// UpdateCredentialsRequest is a partial profile update. Nil fields are
// omitted from the request entirely, which the server reads as "leave
// unchanged".
type UpdateCredentialsRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Note        *string `json:"note,omitempty"`
	// Avatar and Header are data URIs of the new images.
	Avatar       *string `json:"avatar,omitempty"`
	Header       *string `json:"header,omitempty"`
	Locked       *bool   `json:"locked,omitempty"`
	Bot          *bool   `json:"bot,omitempty"`
	Discoverable *bool   `json:"discoverable,omitempty"`

	Source *SourceParams `json:"source,omitempty"`

	FieldsAttributes []MetadataFieldParams `json:"fields_attributes,omitempty"`
}

// SourceParams updates posting defaults.
type SourceParams struct {
	Privacy   *Visibility `json:"privacy,omitempty"`
	Sensitive *bool       `json:"sensitive,omitempty"`
	Language  *string     `json:"language,omitempty"`
}

// MetadataFieldParams sets one profile metadata field.
type MetadataFieldParams struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
