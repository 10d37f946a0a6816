package mastodon

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	httpx "github.com/fedigo-io/mastodon-client/internal/http"
)

// PageCursor is an opaque handle to a neighbouring page, taken verbatim from
// the Link response header. Cursors must not be constructed or modified by
// the caller; the server owns their format.
type PageCursor string

// Page is one window of a paginated collection, together with the cursors
// the server disclosed for its neighbours.
type Page[T any] struct {
	Items []T

	client *Client
	next   PageCursor
	prev   PageCursor
}

// HasNext reports whether the server disclosed a next (older) page.
func (p *Page[T]) HasNext() bool { return p.next != "" }

// HasPrev reports whether the server disclosed a previous (newer) page.
func (p *Page[T]) HasPrev() bool { return p.prev != "" }

// NextCursor returns the cursor of the next page, if any. It can be stored
// and resumed later with ResumePage.
func (p *Page[T]) NextCursor() (PageCursor, bool) { return p.next, p.next != "" }

// PrevCursor returns the cursor of the previous page, if any.
func (p *Page[T]) PrevCursor() (PageCursor, bool) { return p.prev, p.prev != "" }

// Next fetches the next page. It returns ErrNoNextPage when the server
// disclosed none.
func (p *Page[T]) Next(ctx context.Context) (*Page[T], error) {
	if p.next == "" {
		return nil, ErrNoNextPage
	}
	return fetchPage[T](ctx, p.client, string(p.next))
}

// Prev fetches the previous page. It returns ErrNoPrevPage when the server
// disclosed none.
func (p *Page[T]) Prev(ctx context.Context) (*Page[T], error) {
	if p.prev == "" {
		return nil, ErrNoPrevPage
	}
	return fetchPage[T](ctx, p.client, string(p.prev))
}

// ResumePage continues pagination from a cursor captured earlier with
// NextCursor or PrevCursor.
func ResumePage[T any](ctx context.Context, c *Client, cursor PageCursor) (*Page[T], error) {
	return fetchPage[T](ctx, c, string(cursor))
}

// Pager walks a paginated collection page by page in one direction (next).
type Pager[T any] struct {
	current *Page[T]
	started bool
}

// NewPager creates an iterator positioned before the given first page.
func NewPager[T any](first *Page[T]) *Pager[T] {
	return &Pager[T]{current: first}
}

// HasNext reports whether another page is available.
func (it *Pager[T]) HasNext() bool {
	if !it.started {
		return it.current != nil
	}
	return it.current != nil && it.current.HasNext()
}

// Next returns the items of the next page.
func (it *Pager[T]) Next(ctx context.Context) ([]T, error) {
	if !it.started {
		it.started = true
		if it.current == nil {
			return nil, ErrNoNextPage
		}
		return it.current.Items, nil
	}
	if it.current == nil || !it.current.HasNext() {
		return nil, ErrNoNextPage
	}
	page, err := it.current.Next(ctx)
	if err != nil {
		return nil, err
	}
	it.current = page
	return page.Items, nil
}

// All drains the iterator and returns every remaining item. Use with care
// on unbounded collections such as timelines.
func (it *Pager[T]) All(ctx context.Context) ([]T, error) {
	var all []T
	for it.HasNext() {
		items, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}
	return all, nil
}

// ForEach calls fn for every remaining item, stopping at the first error.
func (it *Pager[T]) ForEach(ctx context.Context, fn func(T) error) error {
	for it.HasNext() {
		items, err := it.Next(ctx)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := fn(item); err != nil {
				return err
			}
		}
	}
	return nil
}

// fetchPage performs a GET against a URL or path and decodes a page of T.
func fetchPage[T any](ctx context.Context, c *Client, path string) (*Page[T], error) {
	return getPage[T](ctx, c, path, nil)
}

// getPage performs a GET and decodes the body as a JSON array of T,
// extracting pagination cursors from the Link header.
func getPage[T any](ctx context.Context, c *Client, path string, query url.Values) (*Page[T], error) {
	resp, err := c.do(ctx, &httpx.Request{Method: http.MethodGet, Path: path, Query: query})
	if err != nil {
		return nil, err
	}
	return newPage[T](c, resp)
}

func newPage[T any](c *Client, resp *httpx.Response) (*Page[T], error) {
	items := []T{}
	if err := json.Unmarshal(resp.Body, &items); err != nil {
		return nil, &DecodeError{Detail: "decoding page items", Err: err}
	}
	next, prev := parseLinkHeader(resp.Headers.Get("Link"))
	return &Page[T]{
		Items:  items,
		client: c,
		next:   PageCursor(next),
		prev:   PageCursor(prev),
	}, nil
}

// parseLinkHeader extracts the next and prev relation targets from an RFC
// 8288 Link header. Relations other than next and prev are ignored, as is a
// missing or empty header.
func parseLinkHeader(header string) (next, prev string) {
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		segments := strings.Split(part, ";")
		if len(segments) < 2 {
			continue
		}
		target := strings.TrimSpace(segments[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}
		target = target[1 : len(target)-1]
		for _, param := range segments[1:] {
			param = strings.TrimSpace(param)
			switch strings.ToLower(param) {
			case `rel="next"`, `rel=next`:
				next = target
			case `rel="prev"`, `rel=prev`:
				prev = target
			}
		}
	}
	return next, prev
}
