package mastodon

import "context"

// ReportsClient files complaints against accounts.
type ReportsClient struct {
	client *Client
}

// Reports returns the reports API.
func (c *Client) Reports() *ReportsClient {
	return &ReportsClient{client: c}
}

// NewReport is the payload for filing a report.
type NewReport struct {
	AccountID string   `json:"account_id"`
	StatusIDs []string `json:"status_ids,omitempty"`
	Comment   string   `json:"comment,omitempty"`
	// Forward also sends the report to the origin server of a remote
	// account.
	Forward bool `json:"forward,omitempty"`
}

// List returns the reports filed by the authenticated account.
func (r *ReportsClient) List(ctx context.Context) ([]Report, error) {
	return getList[Report](ctx, r.client, "/api/v1/reports", nil)
}

// Create files a report.
func (r *ReportsClient) Create(ctx context.Context, report NewReport) (*Report, error) {
	return post[Report](ctx, r.client, "/api/v1/reports", report)
}
