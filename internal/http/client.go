// Package http wraps the HTTP transport used by the Mastodon client: URL
// assembly against a fixed base address, JSON and multipart request bodies,
// bearer authentication, and optional debug logging. It performs no error
// classification and no decoding; callers get the raw status, headers, and
// body back.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fedigo-io/mastodon-client/internal/auth"
)

const defaultUserAgent = "fedigo-mastodon-client/1.0"

// Logger is the minimal structured logger the transport logs through.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes one HTTP call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string

	// RawBody, when set, is sent verbatim with ContentType instead of
	// JSON-encoding Body. Used for multipart uploads.
	RawBody     []byte
	ContentType string
}

// Response is the raw result of one HTTP call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client issues requests against a single base URL with a fixed credential.
// It is immutable after construction and safe for concurrent use.
type Client struct {
	baseURL   string
	tokens    auth.TokenProvider
	http      *retryablehttp.Client
	userAgent string
	logger    Logger
	debug     bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug logging.
func WithLogger(logger Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) { c.debug = debug }
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) { c.userAgent = userAgent }
}

// WithRetryConfig enables transparent retries of 429/5xx/connection failures.
// Retries are off unless the caller opts in; by default every failure is
// surfaced immediately so the caller can apply its own policy.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.http.RetryMax = maxRetries
		c.http.RetryWaitMin = waitMin
		c.http.RetryWaitMax = waitMax
	}
}

// WithHTTPClient substitutes the underlying *http.Client (custom TLS,
// proxies, test doubles).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http.HTTPClient = httpClient }
}

// NewClient creates a transport client for baseURL. A nil token provider
// sends unauthenticated requests.
func NewClient(baseURL string, tokens auth.TokenProvider, opts ...Option) *Client {
	retry := retryablehttp.NewClient()
	retry.RetryMax = 0
	retry.Logger = nil
	// The default error handler discards the final response once retries are
	// exhausted, which would turn a plain 429 or 5xx into an opaque "giving
	// up" error. Hand the last response back so callers can classify it.
	retry.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		tokens:    tokens,
		http:      retry,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// BaseURL returns the configured base address.
func (c *Client) BaseURL() string { return c.baseURL }

// Do executes one request and returns the raw response. The returned error
// covers transport and encoding failures only; HTTP error statuses come back
// as a normal Response for the caller to classify.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	var body []byte
	contentType := ""
	switch {
	case req.RawBody != nil:
		body = req.RawBody
		contentType = req.ContentType
	case req.Body != nil:
		body, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		contentType = "application/json"
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	if err := c.authorize(ctx, httpReq); err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"status": httpResp.StatusCode,
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

// Stream executes a request and hands back the live response body for
// long-lived reads (the streaming API). The caller owns the body and must
// close it.
func (c *Client) Stream(ctx context.Context, req *Request) (io.ReadCloser, error) {
	fullURL, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Accept", "text/event-stream")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if err := c.authorize(ctx, httpReq); err != nil {
		return nil, err
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(httpResp.Body)
		_ = httpResp.Body.Close()
		return nil, &StatusError{StatusCode: httpResp.StatusCode, Headers: httpResp.Header, Body: body}
	}
	return httpResp.Body, nil
}

// StatusError reports a non-200 answer to a stream open. The caller
// classifies it the same way as a regular response.
type StatusError struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d opening stream", e.StatusCode)
}

func (c *Client) authorize(ctx context.Context, req *retryablehttp.Request) error {
	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("getting token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

func (c *Client) buildURL(req *Request) (string, error) {
	var fullURL string
	if strings.HasPrefix(req.Path, "http://") || strings.HasPrefix(req.Path, "https://") {
		// Pagination cursors are absolute URLs handed back verbatim.
		fullURL = req.Path
	} else {
		fullURL = c.baseURL + req.Path
	}
	parsed, err := url.Parse(fullURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", fullURL, err)
	}
	if len(req.Query) > 0 {
		q := parsed.Query()
		for key, values := range req.Query {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		parsed.RawQuery = q.Encode()
	}
	return parsed.String(), nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// PostMultipart issues a POST with a multipart/form-data body. files maps
// form field name to (filename, content); fields carries plain form values.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files map[string]FilePart) (*Response, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("writing form field %q: %w", name, err)
		}
	}
	for name, part := range files {
		fw, err := writer.CreateFormFile(name, part.Filename)
		if err != nil {
			return nil, fmt.Errorf("creating form file %q: %w", name, err)
		}
		if _, err := fw.Write(part.Content); err != nil {
			return nil, fmt.Errorf("writing form file %q: %w", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}

	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		RawBody:     buf.Bytes(),
		ContentType: writer.FormDataContentType(),
	})
}

// FilePart is one file in a multipart upload.
type FilePart struct {
	Filename string
	Content  []byte
}
