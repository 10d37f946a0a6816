package mastodon

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Static errors for configuration and usage mistakes.
var (
	ErrBaseURLRequired     = errors.New("base URL is required")
	ErrAccessTokenRequired = errors.New("access token is required for this endpoint")
	ErrNoNextPage          = errors.New("no next page")
	ErrNoPrevPage          = errors.New("no previous page")
)

// APIError is an HTTP-level failure reported by the server. StatusCode
// distinguishes the classes the caller can branch on; Body carries the raw
// payload for anything the typed fields don't cover.
type APIError struct {
	StatusCode  int
	Body        []byte
	ErrorText   string
	Description string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.ErrorText != "" {
		if e.Description != "" {
			return fmt.Sprintf("%s: %s (status %d)", e.ErrorText, e.Description, e.StatusCode)
		}
		return fmt.Sprintf("%s (status %d)", e.ErrorText, e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", http.StatusText(e.StatusCode), e.StatusCode)
}

// RateLimitError is a 429 response. Reset is the time the limit window
// reopens, when the server disclosed one; zero otherwise.
type RateLimitError struct {
	APIError
	Reset time.Time
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.Reset.IsZero() {
		return fmt.Sprintf("rate limited (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("rate limited until %s (status %d)", e.Reset.Format(time.RFC3339), e.StatusCode)
}

// NetworkError is a transport-level failure: the request never produced an
// HTTP response. The executor does not retry these; the caller owns retry
// policy.
type NetworkError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError is a well-formed HTTP success whose body did not match the
// entity shape of the target generation. It is kept distinct from network
// and HTTP failures because it indicates drift between the declared shape
// and the actual server generation.
type DecodeError struct {
	Detail string
	Err    error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("malformed response: %s", e.Detail)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error { return e.Err }

// apiErrorPayload is the wire shape of a Mastodon error body.
type apiErrorPayload struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

// ClassifyResponse converts a non-2xx response into the error taxonomy.
// Rate-limit resets are read from X-RateLimit-Reset (RFC 3339) or
// Retry-After (delta seconds).
func ClassifyResponse(statusCode int, headers http.Header, body []byte) error {
	var payload apiErrorPayload
	_ = json.Unmarshal(body, &payload) // a plain-text body is still a valid error

	apiErr := APIError{
		StatusCode:  statusCode,
		Body:        body,
		ErrorText:   payload.Error,
		Description: payload.Description,
	}

	if statusCode == http.StatusTooManyRequests {
		return &RateLimitError{APIError: apiErr, Reset: parseRateLimitReset(headers)}
	}
	return &apiErr
}

func parseRateLimitReset(headers http.Header) time.Time {
	if v := headers.Get("X-RateLimit-Reset"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	if v := headers.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			return time.Now().Add(time.Duration(secs) * time.Second)
		}
	}
	return time.Time{}
}

// IsNotFound checks if the error is a 404 from the server.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// IsUnauthorized checks if the error is a 401 from the server.
func IsUnauthorized(err error) bool { return hasStatus(err, http.StatusUnauthorized) }

// IsForbidden checks if the error is a 403 from the server.
func IsForbidden(err error) bool { return hasStatus(err, http.StatusForbidden) }

// IsRateLimited checks if the error is a 429 from the server.
func IsRateLimited(err error) bool {
	rateErr := &RateLimitError{}
	return errors.As(err, &rateErr)
}

// IsServerError checks if the error is a 5xx from the server.
func IsServerError(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 && apiErr.StatusCode <= 599
	}
	return false
}

// RateLimitReset returns the disclosed reset time of a rate-limit error.
func RateLimitReset(err error) (time.Time, bool) {
	rateErr := &RateLimitError{}
	if errors.As(err, &rateErr) && !rateErr.Reset.IsZero() {
		return rateErr.Reset, true
	}
	return time.Time{}, false
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}
	return false
}
