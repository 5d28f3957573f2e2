package flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cibere/firefoxkb"
)

// messageTitle heads every host notification shown by the plugin.
const messageTitle = "Firefox Keyword Bookmarks"

// Plugin implements the launcher-facing behavior: queries, context menus
// and the actions the host invokes later. Errors become displayable
// results, never crashes; the process keeps serving and recovers once the
// configuration is fixed and a reload is triggered.
type Plugin struct {
	Cache     firefoxkb.BookmarkCache
	Launcher  firefoxkb.Launcher
	Clipboard firefoxkb.Clipboard
	Browser   firefoxkb.Browser
	Logger    *slog.Logger

	// Folder containing the plugin log file, for the open-log-folder
	// action.
	LogDir string

	// Last settings seen by Query. Actions run out of line from the
	// originating query and need them for reloads.
	mu       sync.Mutex
	settings firefoxkb.Settings
}

// Query answers one search request with zero or one matching bookmarks.
func (p *Plugin) Query(ctx context.Context, q Query) []Result {
	begin := time.Now()
	defer func() {
		p.Logger.Info("query handled", "duration", time.Since(begin))
	}()

	p.setSettings(q.Settings)

	if !q.Settings.Configured() {
		return []Result{unconfiguredResult()}
	}

	bookmark, err := p.Cache.Lookup(ctx, q.Settings.Profiles(), q.Search)
	if err != nil {
		return p.errorResults(err)
	}
	return []Result{p.bookmarkResult(bookmark, q.Settings)}
}

// ContextMenu returns the menu options for a previously returned result.
func (p *Plugin) ContextMenu(ctx context.Context, data ContextData) []Result {
	switch data.Kind {
	case KindBookmark:
		if data.Bookmark == nil {
			return nil
		}
		return bookmarkMenu(data.Bookmark)
	default:
		// Error results and anything unrecognized get the remediation
		// menu.
		return errorMenu()
	}
}

// Action dispatches a host-invoked action by method name. The returned
// ExecuteResponse tells the host whether to hide its window.
func (p *Plugin) Action(ctx context.Context, method string, params []json.RawMessage) (ExecuteResponse, error) {
	switch method {
	case "open_url":
		var firefoxDir, profilePath, url string
		if err := decodeParams(params, &firefoxDir, &profilePath, &url); err != nil {
			return ExecuteResponse{}, err
		}
		return ExecuteResponse{Hide: true}, p.openURL(ctx, firefoxDir, profilePath, url)

	case "copy_text":
		var text string
		if err := decodeParams(params, &text); err != nil {
			return ExecuteResponse{}, err
		}
		return ExecuteResponse{}, p.copyText(ctx, text)

	case "reload_cache":
		return ExecuteResponse{}, p.reloadCache(ctx)

	case "open_log_folder":
		p.Logger.Info("opening log folder", "path", p.LogDir)
		return ExecuteResponse{Hide: true}, p.Browser.RevealFolder(ctx, p.LogDir)

	case "open_settings":
		return ExecuteResponse{Hide: true}, p.Launcher.OpenSettings(ctx)

	case "open_guide":
		return ExecuteResponse{Hide: true}, p.Launcher.OpenURL(ctx, guideURL)

	default:
		return ExecuteResponse{}, firefoxkb.Errorf(firefoxkb.EINVALID, "unknown action %q", method)
	}
}

// openURL opens a bookmark destination: in the profile's own Firefox
// instance when a Firefox directory is configured, otherwise with the
// host's default browser.
func (p *Plugin) openURL(ctx context.Context, firefoxDir, profilePath, url string) error {
	if firefoxDir == "" {
		return p.Launcher.OpenURL(ctx, url)
	}
	p.Logger.Debug("opening url with profile", "profile", profilePath, "url", url)
	return p.Browser.OpenProfile(ctx, firefoxDir, profilePath, url)
}

func (p *Plugin) copyText(ctx context.Context, text string) error {
	if err := p.Clipboard.Copy(text); err != nil {
		return err
	}
	return p.Launcher.ShowMessage(ctx, messageTitle, fmt.Sprintf("Successfully copied %q", text))
}

// reloadCache rebuilds the cache from the profiles of the last seen
// settings and reports the outcome to the user.
func (p *Plugin) reloadCache(ctx context.Context) error {
	settings := p.currentSettings()
	if err := p.Cache.Reload(ctx, settings.Profiles()); err != nil {
		p.Logger.Error("cache reload failed", "error", err)
		return p.Launcher.ShowMessage(ctx, messageTitle, "Reload failed: "+firefoxkb.ErrorMessage(err))
	}
	return p.Launcher.ShowMessage(ctx, messageTitle, "Cache successfully reloaded")
}

// errorResults maps a lookup error to displayable results. A plain miss is
// zero results; everything else is a single actionable error row.
func (p *Plugin) errorResults(err error) []Result {
	switch firefoxkb.ErrorCode(err) {
	case firefoxkb.ENOTFOUND:
		return nil

	case firefoxkb.ENOTCONFIGURED:
		return []Result{unconfiguredResult()}

	case firefoxkb.EUNAVAILABLE:
		p.Logger.Error("query failed", "error", err)
		profilePath := ""
		var loadErr *firefoxkb.LoadError
		if errors.As(err, &loadErr) {
			profilePath = loadErr.ProfilePath
		}
		return []Result{{
			Title:       fmt.Sprintf("Error: Unable to open profile database file. Profile: %s", profilePath),
			Subtitle:    "Are you sure the profile exists and is correct? Click this to open settings menu.",
			Icon:        iconPath,
			Action:      &Action{Method: "open_settings"},
			ContextData: &ContextData{Kind: KindError},
		}}

	default:
		p.Logger.Error("query failed", "error", err)
		return []Result{{
			Title:       "Error: " + firefoxkb.ErrorMessage(err),
			Subtitle:    "Open context menu for more options",
			Icon:        iconPath,
			ContextData: &ContextData{Kind: KindError},
		}}
	}
}

func (p *Plugin) bookmarkResult(b *firefoxkb.Bookmark, settings firefoxkb.Settings) Result {
	return Result{
		Title:    b.Keyword,
		Subtitle: b.URL,
		Icon:     iconPath,
		Action: &Action{
			Method:     "open_url",
			Parameters: []any{settings.FirefoxDir, b.ProfilePath, b.URL},
		},
		ContextData: &ContextData{
			Kind: KindBookmark,
			Bookmark: &BookmarkContext{
				ProfilePath: b.ProfilePath,
				FirefoxDir:  settings.FirefoxDir,
				Keyword:     b.Keyword,
				URL:         b.URL,
			},
		},
	}
}

func (p *Plugin) setSettings(s firefoxkb.Settings) {
	p.mu.Lock()
	p.settings = s
	p.mu.Unlock()
}

func (p *Plugin) currentSettings() firefoxkb.Settings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings
}

func unconfiguredResult() Result {
	return Result{
		Title:       "Error: No profile data path given",
		Subtitle:    "Open context menu for more options",
		Icon:        iconPath,
		ContextData: &ContextData{Kind: KindError},
	}
}

func errorMenu() []Result {
	return []Result{
		{
			Title:  "Open Settings Menu",
			Icon:   iconPath,
			Action: &Action{Method: "open_settings"},
		},
		{
			Title:  "Open Guide",
			Icon:   iconPath,
			Action: &Action{Method: "open_guide"},
		},
	}
}

func bookmarkMenu(b *BookmarkContext) []Result {
	return []Result{
		{
			Title:  "Reload Cache",
			Icon:   iconPath,
			Action: &Action{Method: "reload_cache"},
		},
		{
			Title:    "Open Log Folder",
			Subtitle: "Open the plugin log folder in the file manager",
			Icon:     iconPath,
			Action:   &Action{Method: "open_log_folder"},
		},
		{
			Title:    "Copy Keyword",
			Subtitle: b.Keyword,
			Icon:     iconPath,
			Action:   &Action{Method: "copy_text", Parameters: []any{b.Keyword}},
		},
		{
			Title:    "Copy URL",
			Subtitle: b.URL,
			Icon:     iconPath,
			Action:   &Action{Method: "copy_text", Parameters: []any{b.URL}},
		},
	}
}

// decodeParams unmarshals positional string parameters. Missing trailing
// parameters are left at their zero value.
func decodeParams(params []json.RawMessage, dst ...*string) error {
	for i, d := range dst {
		if i >= len(params) {
			break
		}
		if err := json.Unmarshal(params[i], d); err != nil {
			return firefoxkb.Errorf(firefoxkb.EINVALID, "invalid action parameter %d: %v", i, err)
		}
	}
	return nil
}
