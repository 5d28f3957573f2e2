// Package exec launches external processes for bookmark actions: Firefox
// instances bound to a profile and the system file manager.
package exec

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/cibere/firefoxkb"
)

// Ensure Browser implements firefoxkb.Browser.
var _ firefoxkb.Browser = (*Browser)(nil)

// Browser starts browser and file-manager processes. Processes are started
// detached; the plugin does not wait for them.
type Browser struct{}

// NewBrowser creates a new Browser.
func NewBrowser() *Browser {
	return &Browser{}
}

// OpenProfile opens a URL in the Firefox instance belonging to the given
// profile directory.
func (b *Browser) OpenProfile(ctx context.Context, firefoxDir, profilePath, url string) error {
	cmd := exec.CommandContext(ctx, filepath.Join(firefoxDir, firefoxExecutable()), url, "-profile", profilePath)
	if err := cmd.Start(); err != nil {
		return firefoxkb.Errorf(firefoxkb.EUNAVAILABLE, "unable to start firefox from %q: %v", firefoxDir, err)
	}
	// Firefox outlives the plugin; release it instead of waiting.
	return cmd.Process.Release()
}

// RevealFolder opens a folder in the system file manager.
func (b *Browser) RevealFolder(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, fileManager(), path)
	if err := cmd.Start(); err != nil {
		return firefoxkb.Errorf(firefoxkb.EUNAVAILABLE, "unable to open folder %q: %v", path, err)
	}
	return cmd.Process.Release()
}

func firefoxExecutable() string {
	if runtime.GOOS == "windows" {
		return "firefox.exe"
	}
	return "firefox"
}

func fileManager() string {
	switch runtime.GOOS {
	case "windows":
		return "explorer.exe"
	case "darwin":
		return "open"
	default:
		return "xdg-open"
	}
}
