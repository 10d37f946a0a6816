package mastodon_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedigo-io/mastodon-client/pkg/mastodon"
)

func TestStatusesCreate(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/statuses", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "status")
		assert.Contains(t, body, "visibility")
		assert.NotContains(t, body, "spoiler_text")
		assert.NotContains(t, body, "scheduled_at")

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, statusJSON("42"))
	})

	client, _ := newTestClient(t, mux)

	status, err := client.Statuses().Create(context.Background(), mastodon.NewStatus{
		Status:     "hello fediverse",
		Visibility: mastodon.VisibilityUnlisted,
	})
	require.NoError(t, err)
	assert.Equal(t, "42", status.ID)
}

func TestStatusesInteractions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		call func(ctx context.Context, s *mastodon.StatusesClient) (*mastodon.Status, error)
	}{
		{
			name: "favourite",
			path: "/api/v1/statuses/42/favourite",
			call: func(ctx context.Context, s *mastodon.StatusesClient) (*mastodon.Status, error) {
				return s.Favourite(ctx, "42")
			},
		},
		{
			name: "reblog",
			path: "/api/v1/statuses/42/reblog",
			call: func(ctx context.Context, s *mastodon.StatusesClient) (*mastodon.Status, error) {
				return s.Reblog(ctx, "42")
			},
		},
		{
			name: "bookmark",
			path: "/api/v1/statuses/42/bookmark",
			call: func(ctx context.Context, s *mastodon.StatusesClient) (*mastodon.Status, error) {
				return s.Bookmark(ctx, "42")
			},
		},
		{
			name: "unpin",
			path: "/api/v1/statuses/42/unpin",
			call: func(ctx context.Context, s *mastodon.StatusesClient) (*mastodon.Status, error) {
				return s.Unpin(ctx, "42")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mux := http.NewServeMux()
			mux.HandleFunc(tt.path, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, statusJSON("42"))
			})

			client, _ := newTestClient(t, mux)

			status, err := tt.call(context.Background(), client.Statuses())
			require.NoError(t, err)
			assert.Equal(t, "42", status.ID)
		})
	}
}

func TestStatusesDelete(t *testing.T) {
	t.Parallel()

	var deleted bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/statuses/42", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		deleted = true
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "{}")
	})

	client, _ := newTestClient(t, mux)

	require.NoError(t, client.Statuses().Delete(context.Background(), "42"))
	assert.True(t, deleted)
}

func TestStatusesContext(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/statuses/42/context", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"ancestors": [%s], "descendants": [%s, %s]}`,
			statusJSON("40"), statusJSON("43"), statusJSON("44"))
	})

	client, _ := newTestClient(t, mux)

	thread, err := client.Statuses().Context(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, thread.Ancestors, 1)
	require.Len(t, thread.Descendants, 2)
	assert.Equal(t, "40", thread.Ancestors[0].ID)
}

func TestStatusesCreate_RateLimited(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/statuses", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", "60")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error": "Throttled"}`)
	})

	client, _ := newTestClient(t, mux)

	_, err := client.Statuses().Create(context.Background(), mastodon.NewStatus{Status: "x"})
	require.Error(t, err)
	assert.True(t, mastodon.IsRateLimited(err))
	_, ok := mastodon.RateLimitReset(err)
	assert.True(t, ok)
}

// A mutating call without a configured access token never reaches the
// server; it fails locally with the credential sentinel.
func TestStatusesCreate_NoTokenFailsBeforeRequest(t *testing.T) {
	t.Parallel()

	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client, err := mastodon.New(mastodon.Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Statuses().Create(context.Background(), mastodon.NewStatus{Status: "hello"})
	require.ErrorIs(t, err, mastodon.ErrAccessTokenRequired)
	assert.Zero(t, hits)
}
