// Package auth supplies bearer credentials to the transport. The library
// never performs the OAuth handshake itself; callers obtain a token out of
// band and hand it over as an opaque string.
package auth

import "context"

// TokenProvider yields the bearer token to attach to a request. An empty
// token means the request goes out unauthenticated.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenProvider for a fixed, pre-obtained access token.
type StaticToken string

// Token implements TokenProvider.
func (t StaticToken) Token(ctx context.Context) (string, error) {
	return string(t), nil
}
