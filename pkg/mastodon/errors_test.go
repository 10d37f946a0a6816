package mastodon_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedigo-io/mastodon-client/pkg/mastodon"
)

func TestClassifyResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       string
		check      func(t *testing.T, err error)
	}{
		{
			name:       "404 not found",
			statusCode: http.StatusNotFound,
			body:       `{"error": "Record not found"}`,
			check: func(t *testing.T, err error) {
				assert.True(t, mastodon.IsNotFound(err))
				assert.False(t, mastodon.IsUnauthorized(err))
				assert.Contains(t, err.Error(), "Record not found")
			},
		},
		{
			name:       "401 unauthorized",
			statusCode: http.StatusUnauthorized,
			body:       `{"error": "The access token is invalid"}`,
			check: func(t *testing.T, err error) {
				assert.True(t, mastodon.IsUnauthorized(err))
			},
		},
		{
			name:       "403 forbidden",
			statusCode: http.StatusForbidden,
			body:       `{"error": "This action is not allowed"}`,
			check: func(t *testing.T, err error) {
				assert.True(t, mastodon.IsForbidden(err))
			},
		},
		{
			name:       "500 server error",
			statusCode: http.StatusInternalServerError,
			body:       ``,
			check: func(t *testing.T, err error) {
				assert.True(t, mastodon.IsServerError(err))
				assert.False(t, mastodon.IsNotFound(err))
			},
		},
		{
			name:       "plain text body still classifies",
			statusCode: http.StatusUnprocessableEntity,
			body:       `Validation failed`,
			check: func(t *testing.T, err error) {
				var apiErr *mastodon.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
				assert.Equal(t, []byte("Validation failed"), apiErr.Body)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := mastodon.ClassifyResponse(tt.statusCode, http.Header{}, []byte(tt.body))
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClassifyResponse_RateLimit(t *testing.T) {
	t.Parallel()

	t.Run("reset from X-RateLimit-Reset", func(t *testing.T) {
		t.Parallel()

		reset := time.Now().Add(5 * time.Minute).UTC().Truncate(time.Second)
		headers := http.Header{}
		headers.Set("X-RateLimit-Reset", reset.Format(time.RFC3339))

		err := mastodon.ClassifyResponse(http.StatusTooManyRequests, headers, []byte(`{"error": "Throttled"}`))
		assert.True(t, mastodon.IsRateLimited(err))

		got, ok := mastodon.RateLimitReset(err)
		require.True(t, ok)
		assert.True(t, got.Equal(reset))
	})

	t.Run("reset from Retry-After seconds", func(t *testing.T) {
		t.Parallel()

		headers := http.Header{}
		headers.Set("Retry-After", "30")

		err := mastodon.ClassifyResponse(http.StatusTooManyRequests, headers, nil)
		got, ok := mastodon.RateLimitReset(err)
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(30*time.Second), got, 2*time.Second)
	})

	t.Run("no reset disclosed", func(t *testing.T) {
		t.Parallel()

		err := mastodon.ClassifyResponse(http.StatusTooManyRequests, http.Header{}, nil)
		assert.True(t, mastodon.IsRateLimited(err))

		_, ok := mastodon.RateLimitReset(err)
		assert.False(t, ok)
	})
}

func TestNetworkErrorUnwraps(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("connection refused")
	err := &mastodon.NetworkError{URL: "/api/v1/timelines/home", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/api/v1/timelines/home")
	assert.False(t, mastodon.IsServerError(err))
}
