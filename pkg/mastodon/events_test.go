package mastodon_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedigo-io/mastodon-client/pkg/mastodon"
)

// sseHandler streams the given pre-formatted frames and then keeps the
// connection open until the client goes away.
func sseHandler(frames string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = fmt.Fprint(w, frames)
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		<-r.Context().Done()
	})
}

func TestStreamingUser_DeliversTypedEvents(t *testing.T) {
	t.Parallel()

	frames := "" +
		":thump\n" +
		"event: update\ndata: " + compactJSON(statusJSON("77")) + "\n\n" +
		"event: delete\ndata: 77\n\n" +
		"event: annual_report\ndata: {\"year\": 2026}\n\n"

	mux := http.NewServeMux()
	mux.Handle("/api/v1/streaming/user", sseHandler(frames))
	client, _ := newTestClient(t, mux)

	reader, err := client.Streaming().User(context.Background())
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event, err := reader.NextEvent(ctx)
	require.NoError(t, err)
	update, ok := event.(mastodon.UpdateEvent)
	require.True(t, ok, "expected UpdateEvent, got %T", event)
	assert.Equal(t, "77", update.Status.ID)

	event, err = reader.NextEvent(ctx)
	require.NoError(t, err)
	del, ok := event.(mastodon.DeleteEvent)
	require.True(t, ok, "expected DeleteEvent, got %T", event)
	assert.Equal(t, "77", del.StatusID)

	// Event types outside the compiled surface come through untyped
	// instead of failing the stream.
	event, err = reader.NextEvent(ctx)
	require.NoError(t, err)
	unknown, ok := event.(mastodon.UnknownEvent)
	require.True(t, ok, "expected UnknownEvent, got %T", event)
	assert.Equal(t, "annual_report", unknown.Name)
	assert.JSONEq(t, `{"year": 2026}`, string(unknown.Payload))
}

func TestStreaming_MalformedFrameDoesNotKillStream(t *testing.T) {
	t.Parallel()

	frames := "" +
		"event: update\ndata: {not json at all\n\n" +
		"event: update\ndata: " + compactJSON(statusJSON("88")) + "\n\n"

	mux := http.NewServeMux()
	mux.Handle("/api/v1/streaming/user", sseHandler(frames))
	client, _ := newTestClient(t, mux)

	reader, err := client.Streaming().User(context.Background())
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = reader.NextEvent(ctx)
	var malformed *mastodon.MalformedEventError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "update", malformed.EventName)

	// The stream keeps going after the bad frame.
	event, err := reader.NextEvent(ctx)
	require.NoError(t, err)
	update, ok := event.(mastodon.UpdateEvent)
	require.True(t, ok)
	assert.Equal(t, "88", update.Status.ID)
}

func TestStreaming_CloseUnblocksNextEvent(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.Handle("/api/v1/streaming/user", sseHandler(":idle\n"))
	client, _ := newTestClient(t, mux)

	reader, err := client.Streaming().User(context.Background())
	require.NoError(t, err)

	result := make(chan error, 1)
	go func() {
		_, err := reader.NextEvent(context.Background())
		result <- err
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, reader.Close())

	select {
	case err := <-result:
		assert.ErrorIs(t, err, mastodon.ErrStreamClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("NextEvent did not unblock after Close")
	}

	// Every call after the stream ended keeps reporting closure.
	_, err = reader.NextEvent(context.Background())
	assert.ErrorIs(t, err, mastodon.ErrStreamClosed)
}

func TestStreaming_ContextCancelUnblocksNextEvent(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.Handle("/api/v1/streaming/user", sseHandler(":idle\n"))
	client, _ := newTestClient(t, mux)

	reader, err := client.Streaming().User(context.Background())
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err = reader.NextEvent(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStreaming_UnauthorizedOpenClassifies(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/streaming/user", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "The access token is invalid"}`))
	})
	client, _ := newTestClient(t, mux)

	_, err := client.Streaming().User(context.Background())
	require.Error(t, err)
	assert.True(t, mastodon.IsUnauthorized(err))
}
