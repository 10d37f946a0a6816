package generation

import (
	"fmt"
	"sort"
)

// FlagSet is the set of capability flags active at one generation.
type FlagSet map[Flag]struct{}

// Has reports whether f is in the set.
func (s FlagSet) Has(f Flag) bool {
	_, ok := s[f]
	return ok
}

// Flags returns the members of the set in lexical order.
func (s FlagSet) Flags() []Flag {
	out := make([]Flag, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// activeSet is fixed at init from the compiled Target.
var activeSet FlagSet

func init() {
	if err := Validate(); err != nil {
		panic(fmt.Sprintf("generation: invalid capability matrix: %v", err))
	}
	set, err := Resolve(Target)
	if err != nil {
		panic(fmt.Sprintf("generation: resolving target %s: %v", Target, err))
	}
	activeSet = set
}

// Validate checks the matrix for authoring mistakes: a flag introduced twice,
// a flag retired without (or before) an introduction. It runs once at package
// init and panics on failure, so a broken table never reaches a request.
func Validate() error {
	return validateMatrix(matrix)
}

func validateMatrix(m map[Generation]delta) error {
	introduced := map[Flag]Generation{}
	retired := map[Flag]Generation{}
	for _, g := range All() {
		d := m[g]
		for _, f := range d.introduces {
			if prev, ok := introduced[f]; ok {
				return fmt.Errorf("flag %q introduced at both %s and %s", f, prev, g)
			}
			introduced[f] = g
		}
		for _, f := range d.retires {
			at, ok := introduced[f]
			if !ok {
				return fmt.Errorf("flag %q retired at %s but never introduced", f, g)
			}
			if g <= at {
				return fmt.Errorf("flag %q retired at %s, not after its introduction at %s", f, g, at)
			}
			if prev, ok := retired[f]; ok {
				return fmt.Errorf("flag %q retired at both %s and %s", f, prev, g)
			}
			retired[f] = g
		}
	}
	return nil
}

// Resolve returns the set of flags active at g: walk the generations from the
// oldest up to and including g, adding each one's introductions and then
// removing its retirements. Flags are uniquely named and retirement only
// removes a flag already present, so the result is deterministic.
func Resolve(g Generation) (FlagSet, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("generation %d is not tracked", int(g))
	}
	set := FlagSet{}
	for _, cur := range All() {
		if cur > g {
			break
		}
		d := matrix[cur]
		for _, f := range d.introduces {
			set[f] = struct{}{}
		}
		for _, f := range d.retires {
			delete(set, f)
		}
	}
	return set, nil
}

// Active reports whether f is available at the compiled target generation.
func Active(f Flag) bool {
	return activeSet.Has(f)
}

// ActiveSet returns the flags available at the compiled target generation.
func ActiveSet() FlagSet {
	out := make(FlagSet, len(activeSet))
	for f := range activeSet {
		out[f] = struct{}{}
	}
	return out
}

// IntroducedAt returns the generation that introduced f.
func IntroducedAt(f Flag) (Generation, bool) {
	for _, g := range All() {
		for _, cand := range matrix[g].introduces {
			if cand == f {
				return g, true
			}
		}
	}
	return 0, false
}

// RetiredAt returns the generation that retired f, if any.
func RetiredAt(f Flag) (Generation, bool) {
	for _, g := range All() {
		for _, cand := range matrix[g].retires {
			if cand == f {
				return g, true
			}
		}
	}
	return 0, false
}

// Known reports whether f appears anywhere in the matrix.
func Known(f Flag) bool {
	_, ok := IntroducedAt(f)
	return ok
}
