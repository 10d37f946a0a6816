package mastodon

import (
	"context"
	"fmt"

	httpx "github.com/fedigo-io/mastodon-client/internal/http"
)

// MediaClient uploads and edits media attachments.
type MediaClient struct {
	client *Client
}

// Media returns the media API.
func (c *Client) Media() *MediaClient {
	return &MediaClient{client: c}
}

// UploadRequest is one media upload.
type UploadRequest struct {
	// Filename is the name reported in the multipart form.
	Filename string
	// Content is the raw file bytes.
	Content []byte
	// Description is alt text for the attachment.
	Description string
	// Focus is the crop point as "x,y", each axis in [-1, 1].
	Focus string
}

// Upload sends a file as multipart/form-data and returns the resulting
// attachment. The returned ID is what statuses reference in media_ids.
func (m *MediaClient) Upload(ctx context.Context, req UploadRequest) (*Attachment, error) {
	if err := m.client.requireAuth(); err != nil {
		return nil, err
	}
	fields := map[string]string{}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Focus != "" {
		fields["focus"] = req.Focus
	}
	files := map[string]httpx.FilePart{
		"file": {Filename: req.Filename, Content: req.Content},
	}

	resp, err := m.client.transport.PostMultipart(ctx, "/api/v1/media", fields, files)
	if err != nil {
		return nil, &NetworkError{URL: "/api/v1/media", Err: err}
	}
	if resp.StatusCode >= 400 {
		return nil, ClassifyResponse(resp.StatusCode, resp.Headers, resp.Body)
	}
	return decodeBody[Attachment](resp.Body)
}

// UpdateRequest edits the metadata of an uploaded attachment before it is
// attached to a status.
type UpdateRequest struct {
	Description *string `json:"description,omitempty"`
	Focus       *string `json:"focus,omitempty"`
}

// Update edits an attachment's description or focus.
func (m *MediaClient) Update(ctx context.Context, id string, req UpdateRequest) (*Attachment, error) {
	return put[Attachment](ctx, m.client, fmt.Sprintf("/api/v1/media/%s", id), req)
}
