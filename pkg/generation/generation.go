// Package generation models the Mastodon server release lines tracked by this
// client and the capability flags each release introduces or retires.
//
// Exactly one generation is the build target. It is selected with a build tag
// of the form "mastodon_X_Y_Z" (for example `go build -tags mastodon_2_4_0`);
// each tag compiles one of the target_*.go files, which pins Target. Without
// a tag the newest tracked generation is targeted. Selecting two tags at once
// declares Target twice and fails the build.
//
// The rest of the module consults the matrix through Active: entity fields,
// enum variants, and endpoints are tied to a Flag, and a flag is active at
// the target generation iff it was introduced at or before it and not yet
// retired.
package generation

import (
	"fmt"
	"strconv"
	"strings"
)

// Generation identifies one tracked Mastodon release line. Generations are
// totally ordered; the zero value is invalid.
type Generation int

// The tracked release lines, oldest first.
const (
	V1_0_0 Generation = iota + 1
	V1_3_0
	V2_0_0
	V2_1_0
	V2_3_0
	V2_4_0
	V2_4_2
	V2_6_0
	V2_8_0
	V2_8_1
	V2_9_1
	V3_0_0
	V3_1_0
	V3_2_0
	V3_3_0
)

var names = map[Generation]string{
	V1_0_0: "1.0.0",
	V1_3_0: "1.3.0",
	V2_0_0: "2.0.0",
	V2_1_0: "2.1.0",
	V2_3_0: "2.3.0",
	V2_4_0: "2.4.0",
	V2_4_2: "2.4.2",
	V2_6_0: "2.6.0",
	V2_8_0: "2.8.0",
	V2_8_1: "2.8.1",
	V2_9_1: "2.9.1",
	V3_0_0: "3.0.0",
	V3_1_0: "3.1.0",
	V3_2_0: "3.2.0",
	V3_3_0: "3.3.0",
}

// All returns every tracked generation in ascending order.
func All() []Generation {
	out := make([]Generation, 0, len(names))
	for g := V1_0_0; g <= V3_3_0; g++ {
		out = append(out, g)
	}
	return out
}

// Oldest returns the oldest tracked generation.
func Oldest() Generation { return V1_0_0 }

// Newest returns the newest tracked generation.
func Newest() Generation { return V3_3_0 }

// Valid reports whether g is one of the tracked generations.
func (g Generation) Valid() bool {
	_, ok := names[g]
	return ok
}

// String returns the semantic version of the release line, e.g. "2.4.0".
func (g Generation) String() string {
	if s, ok := names[g]; ok {
		return s
	}
	return fmt.Sprintf("Generation(%d)", int(g))
}

// BuildTag returns the build tag that selects g, e.g. "mastodon_2_4_0".
func (g Generation) BuildTag() string {
	return "mastodon_" + strings.ReplaceAll(g.String(), ".", "_")
}

// Parse resolves a semantic version string like "2.4.0" to a tracked
// generation.
func Parse(s string) (Generation, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return 0, fmt.Errorf("generation %q: expected X.Y.Z", s)
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return 0, fmt.Errorf("generation %q: %w", s, err)
		}
	}
	for g, name := range names {
		if name == s {
			return g, nil
		}
	}
	return 0, fmt.Errorf("generation %q is not tracked", s)
}
