package mastodon_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedigo-io/mastodon-client/pkg/mastodon"
)

func TestStreamingWebSocket(t *testing.T) {
	t.Parallel()

	upgrader := websocket.Upgrader{}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/streaming", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "user", r.URL.Query().Get("stream"))
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))

		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer func() { _ = conn.Close() }()

		envelope := map[string]string{
			"event":   "update",
			"payload": compactJSON(statusJSON("99")),
		}
		message, err := json.Marshal(envelope)
		require.NoError(t, err)
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, message))

		notification := map[string]string{
			"event":   "delete",
			"payload": "99",
		}
		message, err = json.Marshal(notification)
		require.NoError(t, err)
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, message))

		// Hold the connection until the client hangs up.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	client, _ := newTestClient(t, mux)

	reader, err := client.Streaming().WebSocket(context.Background(), "user", nil)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event, err := reader.NextEvent(ctx)
	require.NoError(t, err)
	update, ok := event.(mastodon.UpdateEvent)
	require.True(t, ok, "expected UpdateEvent, got %T", event)
	assert.Equal(t, "99", update.Status.ID)

	event, err = reader.NextEvent(ctx)
	require.NoError(t, err)
	del, ok := event.(mastodon.DeleteEvent)
	require.True(t, ok, "expected DeleteEvent, got %T", event)
	assert.Equal(t, "99", del.StatusID)
}
