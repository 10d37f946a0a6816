// Package mastodon is a typed client for the Mastodon REST and streaming
// APIs. The API surface it exposes is fixed at build time by selecting a
// target generation with a mastodon_X_Y_Z build tag; without a tag the
// newest supported generation is targeted. Endpoints outside the target
// generation do not exist at compile time, and response fields outside it
// are never populated.
package mastodon

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/fedigo-io/mastodon-client/internal/auth"
	httpx "github.com/fedigo-io/mastodon-client/internal/http"
)

// Client talks to one Mastodon instance. It is immutable after construction
// and safe for concurrent use.
type Client struct {
	transport     *httpx.Client
	logger        Logger
	authenticated bool
}

// New creates a Client for the instance at cfg.BaseURL.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	var tokens auth.TokenProvider
	if cfg.AccessToken != "" {
		tokens = auth.StaticToken(cfg.AccessToken)
	}

	opts := []httpx.Option{}
	if cfg.Logger != nil {
		opts = append(opts, httpx.WithLogger(cfg.Logger))
	}
	if cfg.Debug {
		opts = append(opts, httpx.WithDebug(true))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, httpx.WithUserAgent(cfg.UserAgent))
	}
	if cfg.RetryMax > 0 {
		opts = append(opts, httpx.WithRetryConfig(cfg.RetryMax, cfg.RetryWaitMin, cfg.RetryWaitMax))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, httpx.WithHTTPClient(cfg.HTTPClient))
	}

	return &Client{
		transport:     httpx.NewClient(cfg.BaseURL, tokens, opts...),
		logger:        cfg.Logger,
		authenticated: tokens != nil,
	}, nil
}

// requireAuth rejects mutating calls before they leave the process when no
// access token is configured. Reads go through regardless: some are public
// and the server's 401 classifies the rest.
func (c *Client) requireAuth() error {
	if !c.authenticated {
		return ErrAccessTokenRequired
	}
	return nil
}

// BaseURL returns the instance address the client talks to.
func (c *Client) BaseURL() string { return c.transport.BaseURL() }

// do executes a request, converts transport failures to *NetworkError and
// HTTP error statuses to the error taxonomy.
func (c *Client) do(ctx context.Context, req *httpx.Request) (*httpx.Response, error) {
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, &NetworkError{URL: req.Path, Err: err}
	}
	if resp.StatusCode >= 400 {
		return nil, ClassifyResponse(resp.StatusCode, resp.Headers, resp.Body)
	}
	return resp, nil
}

// get fetches path and decodes a single entity.
func get[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	resp, err := c.do(ctx, &httpx.Request{Method: http.MethodGet, Path: path, Query: query})
	if err != nil {
		return nil, err
	}
	return decodeBody[T](resp.Body)
}

// getList fetches path and decodes a plain, non-paginated entity list.
func getList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	resp, err := c.do(ctx, &httpx.Request{Method: http.MethodGet, Path: path, Query: query})
	if err != nil {
		return nil, err
	}
	items := []T{}
	if err := json.Unmarshal(resp.Body, &items); err != nil {
		return nil, asDecodeError(err)
	}
	return items, nil
}

// post sends a JSON body to path and decodes a single entity.
func post[T any](ctx context.Context, c *Client, path string, body interface{}) (*T, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, &httpx.Request{Method: http.MethodPost, Path: path, Body: body})
	if err != nil {
		return nil, err
	}
	return decodeBody[T](resp.Body)
}

// put sends a JSON body via PUT and decodes a single entity.
func put[T any](ctx context.Context, c *Client, path string, body interface{}) (*T, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, &httpx.Request{Method: http.MethodPut, Path: path, Body: body})
	if err != nil {
		return nil, err
	}
	return decodeBody[T](resp.Body)
}

// patch sends a JSON body via PATCH and decodes a single entity.
func patch[T any](ctx context.Context, c *Client, path string, body interface{}) (*T, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, &httpx.Request{Method: http.MethodPatch, Path: path, Body: body})
	if err != nil {
		return nil, err
	}
	return decodeBody[T](resp.Body)
}

// postDiscard issues a bodiless POST and discards any response body.
func postDiscard(ctx context.Context, c *Client, path string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	_, err := c.do(ctx, &httpx.Request{Method: http.MethodPost, Path: path})
	return err
}

// del issues a DELETE and discards any response body.
func del(ctx context.Context, c *Client, path string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	_, err := c.do(ctx, &httpx.Request{Method: http.MethodDelete, Path: path})
	return err
}

// decodeBody decodes a single entity, normalizing failures to *DecodeError.
func decodeBody[T any](body []byte) (*T, error) {
	out := new(T)
	if err := json.Unmarshal(body, out); err != nil {
		return nil, asDecodeError(err)
	}
	return out, nil
}

func asDecodeError(err error) error {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return err
	}
	return &DecodeError{Detail: "decoding response", Err: err}
}
