package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
)

// DialWebSocket opens a WebSocket against the instance, translating the
// base URL's scheme to ws/wss and authenticating through the access_token
// query parameter as the streaming API expects.
func (c *Client) DialWebSocket(ctx context.Context, path string, query url.Values) (*websocket.Conn, error) {
	parsed, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("parsing URL %q: %w", c.baseURL+path, err)
	}
	switch parsed.Scheme {
	case "http":
		parsed.Scheme = "ws"
	case "https":
		parsed.Scheme = "wss"
	}

	q := parsed.Query()
	for key, values := range query {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}
		if token != "" {
			q.Set("access_token", token)
		}
	}
	parsed.RawQuery = q.Encode()

	header := http.Header{}
	header.Set("User-Agent", c.userAgent)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, parsed.String(), header)
	if err != nil {
		if resp != nil {
			body, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			return nil, &StatusError{StatusCode: resp.StatusCode, Headers: resp.Header, Body: body}
		}
		return nil, err
	}
	return conn, nil
}
