package mastodon_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fedigo-io/mastodon-client/pkg/mastodon"
)

// compactJSON flattens a payload to one line, as streaming data frames need.
func compactJSON(s string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		panic(err)
	}
	return buf.String()
}

// statusJSON builds a minimal but complete status payload.
func statusJSON(id string) string {
	return fmt.Sprintf(`{
		"id": %q,
		"uri": "https://mastodon.example/users/trwnh/statuses/%s",
		"account": %s,
		"content": "<p>status %s</p>",
		"created_at": "2019-12-08T03:48:33.901Z",
		"reblogs_count": 0,
		"favourites_count": 0,
		"sensitive": false,
		"spoiler_text": "",
		"visibility": "public"
	}`, id, id, accountJSON, id)
}

// newTestClient wires a client against an httptest server handler.
func newTestClient(t *testing.T, handler http.Handler) (*mastodon.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := mastodon.New(mastodon.Config{
		BaseURL:     server.URL,
		AccessToken: "test-token",
	})
	require.NoError(t, err)

	return client, server
}
