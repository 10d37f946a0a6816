package mastodon_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedigo-io/mastodon-client/pkg/mastodon"
)

// pagedTimelineHandler serves three pages of one status each, linked
// through the Link header the way Mastodon paginates.
func pagedTimelineHandler(t *testing.T) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/timelines/home", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		base := "http://" + r.Host + "/api/v1/timelines/home"
		switch r.URL.Query().Get("max_id") {
		case "":
			w.Header().Set("Link", fmt.Sprintf(`<%s?max_id=3>; rel="next", <%s?min_id=3>; rel="prev"`, base, base))
			fmt.Fprintf(w, "[%s]", statusJSON("3"))
		case "3":
			w.Header().Set("Link", fmt.Sprintf(`<%s?max_id=2>; rel="next", <%s?min_id=2>; rel="prev"`, base, base))
			fmt.Fprintf(w, "[%s]", statusJSON("2"))
		case "2":
			// Last page: no next cursor.
			fmt.Fprintf(w, "[%s]", statusJSON("1"))
		default:
			t.Errorf("unexpected max_id %q", r.URL.Query().Get("max_id"))
			w.WriteHeader(http.StatusBadRequest)
		}
	})
	return mux
}

func TestPageNavigation(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, pagedTimelineHandler(t))
	ctx := context.Background()

	first, err := client.Timelines().Home(ctx, mastodon.RangeFilter{})
	require.NoError(t, err)
	require.Len(t, first.Items, 1)
	assert.Equal(t, "3", first.Items[0].ID)
	assert.True(t, first.HasNext())
	assert.True(t, first.HasPrev())

	second, err := first.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", second.Items[0].ID)

	third, err := second.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", third.Items[0].ID)
	assert.False(t, third.HasNext())

	_, err = third.Next(ctx)
	assert.ErrorIs(t, err, mastodon.ErrNoNextPage)
}

func TestPageCursorResume(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, pagedTimelineHandler(t))
	ctx := context.Background()

	first, err := client.Timelines().Home(ctx, mastodon.RangeFilter{})
	require.NoError(t, err)

	cursor, ok := first.NextCursor()
	require.True(t, ok)

	resumed, err := mastodon.ResumePage[mastodon.Status](ctx, client, cursor)
	require.NoError(t, err)
	assert.Equal(t, "2", resumed.Items[0].ID)
}

func TestPagerDrainsAllPages(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, pagedTimelineHandler(t))
	ctx := context.Background()

	first, err := client.Timelines().Home(ctx, mastodon.RangeFilter{})
	require.NoError(t, err)

	all, err := mastodon.NewPager(first).All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "3", all[0].ID)
	assert.Equal(t, "1", all[2].ID)
}

func TestPagerForEachStopsOnError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, pagedTimelineHandler(t))
	ctx := context.Background()

	first, err := client.Timelines().Home(ctx, mastodon.RangeFilter{})
	require.NoError(t, err)

	var seen int
	stop := fmt.Errorf("stop here")
	err = mastodon.NewPager(first).ForEach(ctx, func(mastodon.Status) error {
		seen++
		if seen == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, seen)
}

// An empty page that still carries a next cursor must not end iteration;
// only the absence of the cursor does.
func TestPagerContinuesPastEmptyPage(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/timelines/home", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		base := "http://" + r.Host + "/api/v1/timelines/home"
		switch r.URL.Query().Get("max_id") {
		case "":
			w.Header().Set("Link", fmt.Sprintf(`<%s?max_id=5>; rel="next"`, base))
			fmt.Fprintf(w, "[%s]", statusJSON("5"))
		case "5":
			// A gap in the timeline: nothing on this page, but more behind it.
			w.Header().Set("Link", fmt.Sprintf(`<%s?max_id=2>; rel="next"`, base))
			fmt.Fprint(w, "[]")
		case "2":
			fmt.Fprintf(w, "[%s]", statusJSON("1"))
		default:
			t.Errorf("unexpected max_id %q", r.URL.Query().Get("max_id"))
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	client, _ := newTestClient(t, mux)

	page, err := client.Timelines().Home(context.Background(), mastodon.RangeFilter{})
	require.NoError(t, err)

	all, err := mastodon.NewPager(page).All(context.Background())
	require.NoError(t, err)

	require.Len(t, all, 2)
	assert.Equal(t, "5", all[0].ID)
	assert.Equal(t, "1", all[1].ID)
}
