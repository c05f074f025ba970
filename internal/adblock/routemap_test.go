package adblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdHeavyPath_Static(t *testing.T) {
	cases := map[string]string{
		"/":           "/homepageadblock",
		"/football":   "/footballadblock",
		"/basketball": "/basketballadblock",
		"/tennis":     "/tennisadblock",
		"/ufc":        "/ufcadblock",
		"/rugby":      "/rugbyadblock",
		"/baseball":   "/baseballadblock",
	}
	for canonical, heavy := range cases {
		got, ok := AdHeavyPath(canonical)
		require.True(t, ok, canonical)
		assert.Equal(t, heavy, got)
	}
}

func TestAdHeavyPath_Match(t *testing.T) {
	got, ok := AdHeavyPath("/match/arsenal-vs-chelsea-live-2026-08-28")
	require.True(t, ok)
	assert.Equal(t, "/matchadblock/arsenal-vs-chelsea-live-2026-08-28", got)
}

func TestAdHeavyPath_AlreadyHeavyIsLoopGuard(t *testing.T) {
	_, ok := AdHeavyPath("/footballadblock")
	assert.False(t, ok)

	_, ok = AdHeavyPath("/matchadblock/some-slug")
	assert.False(t, ok)
}

func TestAdHeavyPath_UnknownPath(t *testing.T) {
	_, ok := AdHeavyPath("/about")
	assert.False(t, ok)

	// bare prefix with no slug
	_, ok = AdHeavyPath("/match/")
	assert.False(t, ok)
}

func TestCanonicalPath_RoundTrip(t *testing.T) {
	for _, canonical := range []string{"/", "/football", "/ufc", "/match/a-vs-b-live-2026-01-01"} {
		heavy, ok := AdHeavyPath(canonical)
		require.True(t, ok)
		back, ok := CanonicalPath(heavy)
		require.True(t, ok)
		assert.Equal(t, canonical, back)
	}
}

func TestCanonicalPath_NotHeavy(t *testing.T) {
	_, ok := CanonicalPath("/football")
	assert.False(t, ok)

	_, ok = CanonicalPath("/matchadblock/")
	assert.False(t, ok)
}

func TestIsAdHeavy(t *testing.T) {
	assert.True(t, IsAdHeavy("/homepageadblock"))
	assert.True(t, IsAdHeavy("/matchadblock/a-vs-b-live-2026-01-01"))
	assert.False(t, IsAdHeavy("/"))
	assert.False(t, IsAdHeavy("/match/a-vs-b-live-2026-01-01"))
}
