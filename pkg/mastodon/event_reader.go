package mastodon

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// EventReader delivers events from one open stream. It is a single-consumer
// reader: NextEvent must not be called concurrently. Close may be called
// from any goroutine and unblocks a pending NextEvent.
type EventReader struct {
	frames chan eventFrame
	done   chan struct{}
	once   sync.Once
	closer io.Closer
}

type eventFrame struct {
	event Event
	err   error
}

// NextEvent blocks until the next event, a per-frame decode error, or the
// end of the stream. A *MalformedEventError covers only the offending
// frame; subsequent calls keep reading. After the stream ends every call
// returns ErrStreamClosed. Context cancellation returns ctx.Err() without
// consuming an event.
func (r *EventReader) NextEvent(ctx context.Context) (Event, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case frame, ok := <-r.frames:
		if !ok {
			return nil, ErrStreamClosed
		}
		return frame.event, frame.err
	}
}

// Close terminates the stream. It is idempotent and safe to call while
// another goroutine is blocked in NextEvent.
func (r *EventReader) Close() error {
	var err error
	r.once.Do(func() {
		close(r.done)
		err = r.closer.Close()
	})
	return err
}

func newEventReader(closer io.Closer) *EventReader {
	return &EventReader{
		frames: make(chan eventFrame),
		done:   make(chan struct{}),
		closer: closer,
	}
}

// deliver hands one frame to the consumer, giving up when the reader closes.
func (r *EventReader) deliver(frame eventFrame) bool {
	select {
	case r.frames <- frame:
		return true
	case <-r.done:
		return false
	}
}

// newSSEReader consumes a text/event-stream body in a background goroutine.
func newSSEReader(body io.ReadCloser) *EventReader {
	reader := newEventReader(body)
	go reader.readSSE(body)
	return reader
}

func (r *EventReader) readSSE(body io.Reader) {
	defer close(r.frames)

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var eventName string
	var data strings.Builder

	dispatch := func() {
		if eventName == "" && data.Len() == 0 {
			return
		}
		event, err := parseEvent(eventName, []byte(data.String()))
		if !r.deliver(eventFrame{event: event, err: err}) {
			return
		}
		eventName = ""
		data.Reset()
	}

	for scanner.Scan() {
		select {
		case <-r.done:
			return
		default:
		}

		line := scanner.Text()
		switch {
		case line == "":
			dispatch()
		case strings.HasPrefix(line, ":"):
			// Heartbeat comment, keeps the connection alive.
		case strings.HasPrefix(line, "event:"):
			eventName = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
	}
	// A final frame without a trailing blank line still counts.
	dispatch()
}

// wsEnvelope is the wire shape of one WebSocket streaming message. Payload
// is a JSON string holding the event's own JSON.
type wsEnvelope struct {
	Event   string `json:"event"`
	Payload string `json:"payload"`
}

// newWebSocketReader consumes a streaming WebSocket connection in a
// background goroutine.
func newWebSocketReader(conn *websocket.Conn) *EventReader {
	reader := newEventReader(conn)
	go reader.readWebSocket(conn)
	return reader
}

func (r *EventReader) readWebSocket(conn *websocket.Conn) {
	defer close(r.frames)

	for {
		select {
		case <-r.done:
			return
		default:
		}

		_, message, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var envelope wsEnvelope
		if err := json.Unmarshal(message, &envelope); err != nil {
			if !r.deliver(eventFrame{err: &MalformedEventError{Payload: message, Err: err}}) {
				return
			}
			continue
		}
		event, parseErr := parseEvent(envelope.Event, []byte(envelope.Payload))
		if !r.deliver(eventFrame{event: event, err: parseErr}) {
			return
		}
	}
}
