package mastodon_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedigo-io/mastodon-client/pkg/mastodon"
)

func TestAccountsVerifyCredentials(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/accounts/verify_credentials", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, accountJSON)
	})

	client, _ := newTestClient(t, mux)

	account, err := client.Accounts().VerifyCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "trwnh", account.Username)
}

func TestAccountsFollow(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/accounts/14715/follow", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{"reblogs": false}, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "14715",
			"following": true,
			"followed_by": false,
			"blocking": false,
			"muting": false,
			"requested": false,
			"domain_blocking": false,
			"showing_reblogs": false
		}`)
	})

	client, _ := newTestClient(t, mux)

	reblogs := false
	rel, err := client.Accounts().Follow(context.Background(), "14715", &mastodon.FollowRequest{Reblogs: &reblogs})
	require.NoError(t, err)
	assert.True(t, rel.Following)
	assert.False(t, rel.ShowingReblogs.MustGet())
}

func TestAccountsUpdateCredentials_PartialUpdateWire(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/accounts/update_credentials", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)

		// Only the fields the caller set may appear on the wire.
		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body, 2)
		assert.Contains(t, body, "display_name")
		assert.Contains(t, body, "locked")
		assert.NotContains(t, body, "note")
		assert.NotContains(t, body, "bot")

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, accountJSON)
	})

	client, _ := newTestClient(t, mux)

	displayName := "new name"
	locked := true
	_, err := client.Accounts().UpdateCredentials(context.Background(), mastodon.UpdateCredentialsRequest{
		DisplayName: &displayName,
		Locked:      &locked,
	})
	require.NoError(t, err)
}

func TestAccountsRelationships(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/accounts/relationships", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"1", "2"}, r.URL.Query()["id[]"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"id": "1", "following": true, "followed_by": true, "blocking": false, "muting": false, "requested": false, "domain_blocking": false},
			{"id": "2", "following": false, "followed_by": false, "blocking": true, "muting": false, "requested": false, "domain_blocking": false}
		]`)
	})

	client, _ := newTestClient(t, mux)

	rels, err := client.Accounts().Relationships(context.Background(), []string{"1", "2"})
	require.NoError(t, err)
	require.Len(t, rels, 2)
	assert.True(t, rels[0].Following)
	assert.True(t, rels[1].Blocking)
	// Fields from later generations the server didn't send stay absent.
	assert.True(t, rels[0].Notifying.IsAbsent())
}

func TestAccountsGet_NotFound(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/accounts/999", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error": "Record not found"}`)
	})

	client, _ := newTestClient(t, mux)

	_, err := client.Accounts().Get(context.Background(), "999")
	require.Error(t, err)
	assert.True(t, mastodon.IsNotFound(err))
}
