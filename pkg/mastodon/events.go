package mastodon

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrStreamClosed is returned by NextEvent after the stream ended, whether
// by Close or by the server hanging up.
var ErrStreamClosed = errors.New("event stream closed")

// MalformedEventError reports one undecodable frame. The stream itself
// stays usable; the next NextEvent call moves past the bad frame.
type MalformedEventError struct {
	EventName string
	Payload   []byte
	Err       error
}

// Error implements the error interface.
func (e *MalformedEventError) Error() string {
	if e.EventName != "" {
		return fmt.Sprintf("malformed %q event: %v", e.EventName, e.Err)
	}
	return fmt.Sprintf("malformed event frame: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *MalformedEventError) Unwrap() error { return e.Err }

// Event is one message from a streaming timeline. The concrete types are
// UpdateEvent, NotificationEvent, DeleteEvent, FiltersChangedEvent,
// UnknownEvent and GapEvent.
type Event interface {
	eventName() string
}

// UpdateEvent carries a new status on the watched timeline.
type UpdateEvent struct {
	Status Status
}

func (UpdateEvent) eventName() string { return "update" }

// NotificationEvent carries a new notification for the user.
type NotificationEvent struct {
	Notification Notification
}

func (NotificationEvent) eventName() string { return "notification" }

// DeleteEvent reports that a status was deleted.
type DeleteEvent struct {
	StatusID string
}

func (DeleteEvent) eventName() string { return "delete" }

// FiltersChangedEvent reports that the user's keyword filters changed and
// should be re-fetched.
type FiltersChangedEvent struct{}

func (FiltersChangedEvent) eventName() string { return "filters_changed" }

// UnknownEvent is an event type outside the target generation's surface.
// The raw payload is preserved; the stream is not interrupted.
type UnknownEvent struct {
	Name    string
	Payload []byte
}

func (UnknownEvent) eventName() string { return "unknown" }

// GapEvent is emitted by a reconnecting reader after it re-established the
// stream: events sent while disconnected were missed and the caller should
// backfill over the REST API if it needs them.
type GapEvent struct{}

func (GapEvent) eventName() string { return "gap" }

// parseEvent maps one named frame to its typed event. Unrecognized names
// become UnknownEvent rather than an error, so newer servers never break
// the stream.
func parseEvent(name string, payload []byte) (Event, error) {
	switch name {
	case "update":
		var status Status
		if err := json.Unmarshal(payload, &status); err != nil {
			return nil, &MalformedEventError{EventName: name, Payload: payload, Err: err}
		}
		return UpdateEvent{Status: status}, nil
	case "notification":
		var notification Notification
		if err := json.Unmarshal(payload, &notification); err != nil {
			return nil, &MalformedEventError{EventName: name, Payload: payload, Err: err}
		}
		return NotificationEvent{Notification: notification}, nil
	case "delete":
		// The payload is the bare status ID, not JSON.
		return DeleteEvent{StatusID: string(payload)}, nil
	case "filters_changed":
		return FiltersChangedEvent{}, nil
	default:
		return UnknownEvent{Name: name, Payload: payload}, nil
	}
}
