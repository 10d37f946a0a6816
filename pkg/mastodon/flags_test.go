package mastodon_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fedigo-io/mastodon-client/pkg/generation"
	"github.com/fedigo-io/mastodon-client/pkg/mastodon"
)

// Every capability flag referenced by an entity field must exist in the
// matrix; a dangling reference would fail every decode of that entity.
func TestEntityFlagTagsAreKnown(t *testing.T) {
	t.Parallel()

	entities := []interface{}{
		mastodon.Account{},
		mastodon.Status{},
		mastodon.Context{},
		mastodon.Attachment{},
		mastodon.Card{},
		mastodon.Notification{},
		mastodon.Relationship{},
		mastodon.Instance{},
		mastodon.Filter{},
		mastodon.Poll{},
		mastodon.List{},
		mastodon.Conversation{},
		mastodon.ScheduledStatus{},
		mastodon.Announcement{},
		mastodon.AdminAccount{},
		mastodon.AdminReport{},
		mastodon.SearchResult{},
		mastodon.SearchResultV2{},
		mastodon.PushSubscription{},
		mastodon.Report{},
	}

	seen := map[reflect.Type]bool{}
	for _, e := range entities {
		checkFlagTags(t, reflect.TypeOf(e), seen)
	}
}

// checkFlagTags walks t and every struct type reachable from its fields,
// asserting each flag tag names a flag the matrix introduces somewhere.
func checkFlagTags(t *testing.T, typ reflect.Type, seen map[reflect.Type]bool) {
	t.Helper()

	for typ.Kind() == reflect.Ptr || typ.Kind() == reflect.Slice || typ.Kind() == reflect.Map {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct || seen[typ] {
		return
	}
	seen[typ] = true

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if tag, ok := field.Tag.Lookup("flag"); ok {
			assert.True(t, generation.Known(generation.Flag(tag)),
				"%s.%s references unknown capability flag %q", typ.Name(), field.Name, tag)
		}
		checkFlagTags(t, field.Type, seen)
	}
}
