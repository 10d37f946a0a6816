//go:build !mastodon_1_0_0 && !mastodon_1_3_0 && !mastodon_2_0_0 && !mastodon_2_1_0 && !mastodon_2_3_0 && !mastodon_2_4_0 && !mastodon_2_4_2 && !mastodon_2_6_0 && !mastodon_2_8_0 && !mastodon_2_8_1

package mastodon

import (
	"context"
	"fmt"
)

// AdminClient exposes the moderation API. The access token needs staff
// permissions; without them the server answers 403.
type AdminClient struct {
	client *Client
}

// Admin returns the moderation API.
func (c *Client) Admin() *AdminClient {
	return &AdminClient{client: c}
}

// Accounts pages through accounts in the moderation view.
func (a *AdminClient) Accounts(ctx context.Context, filter AdminAccountsFilter) (*Page[AdminAccount], error) {
	return getPage[AdminAccount](ctx, a.client, "/api/v1/admin/accounts", filter.ToValues())
}

// Account fetches the moderation view of one account.
func (a *AdminClient) Account(ctx context.Context, id string) (*AdminAccount, error) {
	return get[AdminAccount](ctx, a.client, fmt.Sprintf("/api/v1/admin/accounts/%s", id), nil)
}

// EnableAccount re-enables a disabled local account.
func (a *AdminClient) EnableAccount(ctx context.Context, id string) (*AdminAccount, error) {
	return post[AdminAccount](ctx, a.client, fmt.Sprintf("/api/v1/admin/accounts/%s/enable", id), nil)
}

// ApproveAccount accepts a pending registration.
func (a *AdminClient) ApproveAccount(ctx context.Context, id string) (*AdminAccount, error) {
	return post[AdminAccount](ctx, a.client, fmt.Sprintf("/api/v1/admin/accounts/%s/approve", id), nil)
}

// RejectAccount declines a pending registration.
func (a *AdminClient) RejectAccount(ctx context.Context, id string) (*AdminAccount, error) {
	return post[AdminAccount](ctx, a.client, fmt.Sprintf("/api/v1/admin/accounts/%s/reject", id), nil)
}

// UnsuspendAccount lifts a suspension.
func (a *AdminClient) UnsuspendAccount(ctx context.Context, id string) (*AdminAccount, error) {
	return post[AdminAccount](ctx, a.client, fmt.Sprintf("/api/v1/admin/accounts/%s/unsuspend", id), nil)
}

// Reports pages through reports in the moderation queue. resolved widens
// the listing to reports already acted on.
func (a *AdminClient) Reports(ctx context.Context, resolved bool, filter RangeFilter) (*Page[AdminReport], error) {
	query := filter.ToValues()
	if resolved {
		query.Set("resolved", "true")
	}
	return getPage[AdminReport](ctx, a.client, "/api/v1/admin/reports", query)
}

// Report fetches one report by ID.
func (a *AdminClient) Report(ctx context.Context, id string) (*AdminReport, error) {
	return get[AdminReport](ctx, a.client, fmt.Sprintf("/api/v1/admin/reports/%s", id), nil)
}

// AssignReport assigns a report to the current staff user.
func (a *AdminClient) AssignReport(ctx context.Context, id string) (*AdminReport, error) {
	return post[AdminReport](ctx, a.client, fmt.Sprintf("/api/v1/admin/reports/%s/assign_to_self", id), nil)
}

// UnassignReport releases a report.
func (a *AdminClient) UnassignReport(ctx context.Context, id string) (*AdminReport, error) {
	return post[AdminReport](ctx, a.client, fmt.Sprintf("/api/v1/admin/reports/%s/unassign", id), nil)
}

// ResolveReport closes a report.
func (a *AdminClient) ResolveReport(ctx context.Context, id string) (*AdminReport, error) {
	return post[AdminReport](ctx, a.client, fmt.Sprintf("/api/v1/admin/reports/%s/resolve", id), nil)
}

// ReopenReport reopens a resolved report.
func (a *AdminClient) ReopenReport(ctx context.Context, id string) (*AdminReport, error) {
	return post[AdminReport](ctx, a.client, fmt.Sprintf("/api/v1/admin/reports/%s/reopen", id), nil)
}
