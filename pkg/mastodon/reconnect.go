package mastodon

import (
	"context"
	"errors"
	"sync"
	"time"
)

const (
	reconnectWaitMin = time.Second
	reconnectWaitMax = 30 * time.Second
)

// ReconnectingReader keeps a stream alive across disconnects. When the
// underlying stream ends it reopens with exponential backoff and emits a
// GapEvent before the first event of the new connection; the caller is
// responsible for backfilling whatever was missed.
//
// Like EventReader it is single-consumer: NextEvent must not be called
// concurrently. Close may be called from any goroutine.
type ReconnectingReader struct {
	open func(context.Context) (*EventReader, error)

	mu      sync.Mutex
	current *EventReader
	closed  bool
	done    chan struct{}
}

func newReconnectingReader(open func(context.Context) (*EventReader, error)) *ReconnectingReader {
	return &ReconnectingReader{
		open: open,
		done: make(chan struct{}),
	}
}

// NextEvent returns the next event, transparently reconnecting when the
// stream drops. Per-frame decode errors pass through unchanged. After
// Close every call returns ErrStreamClosed.
func (r *ReconnectingReader) NextEvent(ctx context.Context) (Event, error) {
	reader, err := r.reader(ctx)
	if err != nil {
		return nil, err
	}

	event, err := reader.NextEvent(ctx)
	if err == nil || !errors.Is(err, ErrStreamClosed) {
		return event, err
	}

	// Stream dropped: forget the dead reader and reconnect unless the
	// drop was our own Close.
	r.mu.Lock()
	if r.current == reader {
		r.current = nil
	}
	closed := r.closed
	r.mu.Unlock()
	if closed {
		return nil, ErrStreamClosed
	}
	if err := r.reconnect(ctx); err != nil {
		return nil, err
	}
	return GapEvent{}, nil
}

// Close shuts down the current stream and stops reconnection.
func (r *ReconnectingReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	close(r.done)
	if r.current != nil {
		return r.current.Close()
	}
	return nil
}

// reader returns the live stream, opening the first connection on demand.
func (r *ReconnectingReader) reader(ctx context.Context) (*EventReader, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrStreamClosed
	}
	if r.current != nil {
		reader := r.current
		r.mu.Unlock()
		return reader, nil
	}
	r.mu.Unlock()

	if err := r.reconnect(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	reader := r.current
	r.mu.Unlock()
	if reader == nil {
		return nil, ErrStreamClosed
	}
	return reader, nil
}

// reconnect retries r.open with exponential backoff until it succeeds, the
// context is cancelled, or the reader is closed.
func (r *ReconnectingReader) reconnect(ctx context.Context) error {
	wait := reconnectWaitMin
	for attempt := 0; ; attempt++ {
		reader, err := r.open(ctx)
		if err == nil {
			r.mu.Lock()
			if r.closed {
				r.mu.Unlock()
				_ = reader.Close()
				return ErrStreamClosed
			}
			r.current = reader
			r.mu.Unlock()
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-r.done:
			timer.Stop()
			return ErrStreamClosed
		case <-timer.C:
		}
		wait *= 2
		if wait > reconnectWaitMax {
			wait = reconnectWaitMax
		}
	}
}
