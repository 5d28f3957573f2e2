package firefoxkb

// Settings holds the host-provided plugin configuration. The host delivers
// the current settings with every query, so values may change between
// requests without a restart.
type Settings struct {
	// Multi-line profile specification, one path per line, each with an
	// optional keyword prefix. Empty means the plugin is unconfigured.
	ProfilePathData string `json:"profile_path_data"`

	// Directory containing the Firefox executable. Empty means URLs open
	// with the host launcher's default browser instead of a specific
	// profile's Firefox instance.
	FirefoxDir string `json:"firefox_fp"`
}

// Configured reports whether a profile specification has been provided.
// Absence is a normal, user-actionable state, not an exceptional one.
func (s Settings) Configured() bool {
	return s.ProfilePathData != ""
}

// Profiles parses the profile specification into configured profiles.
func (s Settings) Profiles() []Profile {
	return ParseProfiles(s.ProfilePathData)
}
