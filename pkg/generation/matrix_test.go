package generation_test

import (
	"testing"

	"github.com/fedigo-io/mastodon-client/pkg/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    generation.Generation
		wantErr bool
	}{
		{name: "baseline", input: "1.0.0", want: generation.V1_0_0},
		{name: "mid-range", input: "2.4.0", want: generation.V2_4_0},
		{name: "newest", input: "3.3.0", want: generation.V3_3_0},
		{name: "untracked", input: "2.5.0", wantErr: true},
		{name: "not a version", input: "banana", wantErr: true},
		{name: "two components", input: "2.4", wantErr: true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := generation.Parse(testCase.input)
			if testCase.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
			assert.Equal(t, testCase.input, got.String())
		})
	}
}

func TestBuildTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mastodon_2_4_0", generation.V2_4_0.BuildTag())
	assert.Equal(t, "mastodon_3_3_0", generation.V3_3_0.BuildTag())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	// The shipped matrix must be well-formed; init would have panicked
	// otherwise, but keep the explicit check so a regression reads clearly.
	require.NoError(t, generation.Validate())
}

// A flag introduced at G must be active at every tracked generation >= G and
// absent at every generation < G, until retired.
func TestResolve_Monotonic(t *testing.T) {
	t.Parallel()

	for _, g := range generation.All() {
		set, err := generation.Resolve(g)
		require.NoError(t, err)

		for _, f := range set.Flags() {
			intro, ok := generation.IntroducedAt(f)
			require.True(t, ok, "flag %q active but never introduced", f)
			assert.LessOrEqual(t, intro, g, "flag %q active at %s before its introduction", f, g)
		}
	}

	// Walk every flag across every generation and check the activity window.
	for _, g := range generation.All() {
		set, err := generation.Resolve(g)
		require.NoError(t, err)

		for _, later := range generation.All() {
			laterSet, err := generation.Resolve(later)
			require.NoError(t, err)

			for _, f := range set.Flags() {
				retired, wasRetired := generation.RetiredAt(f)
				if later < g {
					continue
				}
				if wasRetired && later >= retired {
					assert.False(t, laterSet.Has(f),
						"flag %q still active at %s after retirement at %s", f, later, retired)
				} else {
					assert.True(t, laterSet.Has(f),
						"flag %q introduced by %s but inactive at %s", f, g, later)
				}
			}
		}
	}
}

func TestResolve_Windows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		flag   generation.Flag
		target generation.Generation
		active bool
	}{
		{name: "filters before introduction", flag: generation.FlagFilters, target: generation.V2_3_0, active: false},
		{name: "filters at introduction", flag: generation.FlagFilters, target: generation.V2_4_0, active: true},
		{name: "filters after introduction", flag: generation.FlagFilters, target: generation.V3_3_0, active: true},
		{name: "search v1 at baseline", flag: generation.FlagSearchV1, target: generation.V1_0_0, active: true},
		{name: "search v1 just before retirement", flag: generation.FlagSearchV1, target: generation.V2_9_1, active: true},
		{name: "search v1 at retirement", flag: generation.FlagSearchV1, target: generation.V3_0_0, active: false},
		{name: "card endpoint retired", flag: generation.FlagStatusCardEndpoint, target: generation.V3_1_0, active: false},
		{name: "bookmarks three generations early", flag: generation.FlagBookmarks, target: generation.V2_8_0, active: false},
		{name: "bookmarks at introduction", flag: generation.FlagBookmarks, target: generation.V3_1_0, active: true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			set, err := generation.Resolve(testCase.target)
			require.NoError(t, err)
			assert.Equal(t, testCase.active, set.Has(testCase.flag))
		})
	}
}

func TestResolve_InvalidGeneration(t *testing.T) {
	t.Parallel()

	_, err := generation.Resolve(generation.Generation(0))
	require.Error(t, err)

	_, err = generation.Resolve(generation.Generation(99))
	require.Error(t, err)
}

func TestActiveSet_IsCopy(t *testing.T) {
	t.Parallel()

	a := generation.ActiveSet()
	delete(a, generation.FlagFilters)
	assert.True(t, generation.Active(generation.FlagFilters))
}

func TestTarget_DefaultIsNewest(t *testing.T) {
	t.Parallel()

	// Unit tests run without a mastodon_* tag, so the default target applies.
	assert.Equal(t, generation.Newest(), generation.Target)
}

func TestIntroducedAt(t *testing.T) {
	t.Parallel()

	got, ok := generation.IntroducedAt(generation.FlagPolls)
	require.True(t, ok)
	assert.Equal(t, generation.V2_8_0, got)

	_, ok = generation.IntroducedAt(generation.Flag("no-such-flag"))
	assert.False(t, ok)
	assert.False(t, generation.Known(generation.Flag("no-such-flag")))
}
