package firefoxkb

import "strings"

// prefixSeparator splits an optional one-character keyword prefix from the
// profile path in a configured line, e.g. "w|C:\profiles\work".
const prefixSeparator = '|'

// Profile represents one configured bookmark source.
type Profile struct {
	// Filesystem location of the profile directory containing
	// places.sqlite.
	Path string `json:"path"`

	// Optional string prepended to every keyword loaded from this
	// profile, disambiguating keywords across profiles.
	Prefix string `json:"prefix,omitempty"`
}

// Validate returns an error if the profile contains invalid fields.
func (p Profile) Validate() error {
	if p.Path == "" {
		return Errorf(EINVALID, "profile path required")
	}
	return nil
}

// ParseProfile derives a Profile from one configured line. If the second
// character is the prefix separator, the first character is the keyword
// prefix and the remainder is the path; otherwise the whole line is the
// path and there is no prefix.
func ParseProfile(raw string) Profile {
	if len(raw) >= 2 && raw[1] == prefixSeparator {
		return Profile{Path: raw[2:], Prefix: raw[:1]}
	}
	return Profile{Path: raw}
}

// ParseProfiles splits the multi-line profile setting into profiles, one
// per line. The host stores the setting with CRLF line endings; bare LF is
// tolerated. Blank lines are skipped. Profile order is line order, which
// determines merge precedence in the cache (later lines win).
func ParseProfiles(raw string) []Profile {
	var profiles []Profile
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if line == "" {
			continue
		}
		profiles = append(profiles, ParseProfile(line))
	}
	return profiles
}
