package firefoxkb

import "context"

// Launcher is the host launcher API surface the plugin calls back into.
// It is an external collaborator with no state of its own.
type Launcher interface {
	// ShowMessage displays a transient notification to the user.
	ShowMessage(ctx context.Context, title, subtitle string) error

	// OpenSettings opens the host's settings dialog for this plugin.
	OpenSettings(ctx context.Context) error

	// OpenURL opens a URL with the host's default browser.
	OpenURL(ctx context.Context, url string) error
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	Copy(text string) error
}

// Browser launches browser processes outside the host launcher.
type Browser interface {
	// OpenProfile opens a URL in the Firefox instance belonging to a
	// specific profile directory.
	OpenProfile(ctx context.Context, firefoxDir, profilePath, url string) error

	// RevealFolder opens a folder in the system file manager.
	RevealFolder(ctx context.Context, path string) error
}
