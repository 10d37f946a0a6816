package mastodon

import (
	"net/http"
	"time"
)

// Logger is the structured logger used for debug output. It matches the
// transport's logger shape so any adapter works for both.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config holds everything needed to construct a Client.
type Config struct {
	// BaseURL is the root of the instance, e.g. "https://mastodon.example".
	// Required.
	BaseURL string

	// AccessToken is a pre-obtained OAuth bearer token. Empty means
	// unauthenticated; endpoints requiring auth will answer 401.
	AccessToken string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Logger receives debug output when Debug is set.
	Logger Logger
	Debug  bool

	// RetryMax enables transparent retry of 429/5xx/connection failures.
	// Zero (the default) disables retries; every failure surfaces
	// immediately and retry policy stays with the caller.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// HTTPClient substitutes the underlying *http.Client.
	HTTPClient *http.Client
}
