package firefoxkb_test

import (
	"testing"

	"github.com/cibere/firefoxkb"
	"github.com/stretchr/testify/assert"
)

func TestParseProfile(t *testing.T) {
	t.Parallel()

	t.Run("extracts single-character prefix", func(t *testing.T) {
		t.Parallel()

		profile := firefoxkb.ParseProfile("A|/path/to/profile")

		assert.Equal(t, "A", profile.Prefix)
		assert.Equal(t, "/path/to/profile", profile.Path)
	})

	t.Run("no separator at second position means no prefix", func(t *testing.T) {
		t.Parallel()

		profile := firefoxkb.ParseProfile("/path/to/profile")

		assert.Empty(t, profile.Prefix)
		assert.Equal(t, "/path/to/profile", profile.Path)
	})

	t.Run("separator later in the line is part of the path", func(t *testing.T) {
		t.Parallel()

		profile := firefoxkb.ParseProfile("/path/with|pipe")

		assert.Empty(t, profile.Prefix)
		assert.Equal(t, "/path/with|pipe", profile.Path)
	})

	t.Run("single-character line is a path", func(t *testing.T) {
		t.Parallel()

		profile := firefoxkb.ParseProfile("p")

		assert.Empty(t, profile.Prefix)
		assert.Equal(t, "p", profile.Path)
	})
}

func TestParseProfiles(t *testing.T) {
	t.Parallel()

	t.Run("splits on CRLF preserving order", func(t *testing.T) {
		t.Parallel()

		profiles := firefoxkb.ParseProfiles("/first\r\nw|/second")

		assert.Equal(t, []firefoxkb.Profile{
			{Path: "/first"},
			{Path: "/second", Prefix: "w"},
		}, profiles)
	})

	t.Run("tolerates bare LF", func(t *testing.T) {
		t.Parallel()

		profiles := firefoxkb.ParseProfiles("/first\n/second")

		assert.Len(t, profiles, 2)
	})

	t.Run("skips blank lines", func(t *testing.T) {
		t.Parallel()

		profiles := firefoxkb.ParseProfiles("/first\r\n\r\n/second\r\n")

		assert.Equal(t, []firefoxkb.Profile{
			{Path: "/first"},
			{Path: "/second"},
		}, profiles)
	})

	t.Run("empty setting yields no profiles", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, firefoxkb.ParseProfiles(""))
	})
}

func TestSettings(t *testing.T) {
	t.Parallel()

	t.Run("unconfigured when profile data is empty", func(t *testing.T) {
		t.Parallel()

		assert.False(t, firefoxkb.Settings{}.Configured())
	})

	t.Run("profiles come from the profile path data", func(t *testing.T) {
		t.Parallel()

		s := firefoxkb.Settings{ProfilePathData: "A|/path"}

		assert.True(t, s.Configured())
		assert.Equal(t, []firefoxkb.Profile{{Path: "/path", Prefix: "A"}}, s.Profiles())
	})
}
