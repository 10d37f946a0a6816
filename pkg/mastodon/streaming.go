package mastodon

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	httpx "github.com/fedigo-io/mastodon-client/internal/http"
)

// StreamingClient opens live event streams. Server-sent events is the
// default transport; the WebSocket variants use the single multiplexing
// endpoint instead.
type StreamingClient struct {
	client *Client
}

// Streaming returns the streaming API.
func (c *Client) Streaming() *StreamingClient {
	return &StreamingClient{client: c}
}

// User streams the authenticated user's home timeline and notifications.
func (s *StreamingClient) User(ctx context.Context) (*EventReader, error) {
	return s.open(ctx, "/api/v1/streaming/user", nil)
}

// Public streams the public timeline. local restricts it to this instance.
func (s *StreamingClient) Public(ctx context.Context, local bool) (*EventReader, error) {
	path := "/api/v1/streaming/public"
	if local {
		path += "/local"
	}
	return s.open(ctx, path, nil)
}

// Hashtag streams statuses carrying one hashtag (without the leading #).
func (s *StreamingClient) Hashtag(ctx context.Context, tag string, local bool) (*EventReader, error) {
	path := "/api/v1/streaming/hashtag"
	if local {
		path += "/local"
	}
	query := url.Values{}
	query.Set("tag", tag)
	return s.open(ctx, path, query)
}

// List streams the timeline of one list.
func (s *StreamingClient) List(ctx context.Context, listID string) (*EventReader, error) {
	query := url.Values{}
	query.Set("list", listID)
	return s.open(ctx, "/api/v1/streaming/list", query)
}

// Direct streams the user's direct messages.
func (s *StreamingClient) Direct(ctx context.Context) (*EventReader, error) {
	return s.open(ctx, "/api/v1/streaming/direct", nil)
}

func (s *StreamingClient) open(ctx context.Context, path string, query url.Values) (*EventReader, error) {
	body, err := s.client.transport.Stream(ctx, &httpx.Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
	if err != nil {
		var statusErr *httpx.StatusError
		if errors.As(err, &statusErr) {
			return nil, ClassifyResponse(statusErr.StatusCode, statusErr.Headers, statusErr.Body)
		}
		return nil, &NetworkError{URL: path, Err: err}
	}
	return newSSEReader(body), nil
}

// WebSocket opens the multiplexing WebSocket endpoint subscribed to one
// stream, e.g. "user", "public", "public:local" or "hashtag". extra carries
// stream arguments such as tag or list.
func (s *StreamingClient) WebSocket(ctx context.Context, stream string, extra url.Values) (*EventReader, error) {
	query := url.Values{}
	query.Set("stream", stream)
	for key, values := range extra {
		for _, v := range values {
			query.Add(key, v)
		}
	}

	conn, err := s.client.transport.DialWebSocket(ctx, "/api/v1/streaming", query)
	if err != nil {
		var statusErr *httpx.StatusError
		if errors.As(err, &statusErr) {
			return nil, ClassifyResponse(statusErr.StatusCode, statusErr.Headers, statusErr.Body)
		}
		return nil, &NetworkError{URL: "/api/v1/streaming", Err: err}
	}
	return newWebSocketReader(conn), nil
}

// Reconnecting wraps a stream in automatic reconnection with exponential
// backoff. After each successful reconnect the reader emits a GapEvent so
// the caller knows events may have been missed. The opener is invoked for
// the initial connection too.
//
//	reader := client.Streaming().Reconnecting(func(ctx context.Context) (*EventReader, error) {
//		return client.Streaming().User(ctx)
//	})
func (s *StreamingClient) Reconnecting(open func(context.Context) (*EventReader, error)) *ReconnectingReader {
	return newReconnectingReader(open)
}
