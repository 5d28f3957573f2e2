package flow_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/cibere/firefoxkb"
	"github.com/cibere/firefoxkb/flow"
	"github.com/cibere/firefoxkb/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func configuredSettings() firefoxkb.Settings {
	return firefoxkb.Settings{ProfilePathData: "/profiles/default"}
}

func TestPlugin_Query(t *testing.T) {
	t.Parallel()

	t.Run("reports missing configuration as an actionable result", func(t *testing.T) {
		t.Parallel()

		p := &flow.Plugin{Logger: discardLogger()}

		results := p.Query(context.Background(), flow.Query{Search: "go"})

		require.Len(t, results, 1)
		assert.Equal(t, "Error: No profile data path given", results[0].Title)
		require.NotNil(t, results[0].ContextData)
		assert.Equal(t, flow.KindError, results[0].ContextData.Kind)
	})

	t.Run("returns one result for a cache hit", func(t *testing.T) {
		t.Parallel()

		cache := &mock.BookmarkCache{
			LookupFn: func(ctx context.Context, profiles []firefoxkb.Profile, keyword string) (*firefoxkb.Bookmark, error) {
				require.Equal(t, []firefoxkb.Profile{{Path: "/profiles/default"}}, profiles)
				return &firefoxkb.Bookmark{Keyword: keyword, URL: "https://go.dev", ProfilePath: "/profiles/default"}, nil
			},
		}
		p := &flow.Plugin{Cache: cache, Logger: discardLogger()}

		results := p.Query(context.Background(), flow.Query{Search: "go", Settings: configuredSettings()})

		require.Len(t, results, 1)
		r := results[0]
		assert.Equal(t, "go", r.Title)
		assert.Equal(t, "https://go.dev", r.Subtitle)
		require.NotNil(t, r.Action)
		assert.Equal(t, "open_url", r.Action.Method)
		require.NotNil(t, r.ContextData)
		assert.Equal(t, flow.KindBookmark, r.ContextData.Kind)
		assert.Equal(t, "/profiles/default", r.ContextData.Bookmark.ProfilePath)
	})

	t.Run("returns zero results for a miss", func(t *testing.T) {
		t.Parallel()

		cache := &mock.BookmarkCache{
			LookupFn: func(ctx context.Context, profiles []firefoxkb.Profile, keyword string) (*firefoxkb.Bookmark, error) {
				return nil, firefoxkb.Errorf(firefoxkb.ENOTFOUND, "no bookmark for keyword %q", keyword)
			},
		}
		p := &flow.Plugin{Cache: cache, Logger: discardLogger()}

		results := p.Query(context.Background(), flow.Query{Search: "nope", Settings: configuredSettings()})

		assert.Empty(t, results)
	})

	t.Run("load failure names the failing profile and opens settings", func(t *testing.T) {
		t.Parallel()

		cache := &mock.BookmarkCache{
			LookupFn: func(ctx context.Context, profiles []firefoxkb.Profile, keyword string) (*firefoxkb.Bookmark, error) {
				return nil, &firefoxkb.LoadError{
					ProfilePath: "/profiles/broken",
					Err:         firefoxkb.Errorf(firefoxkb.EUNAVAILABLE, "locked"),
				}
			},
		}
		p := &flow.Plugin{Cache: cache, Logger: discardLogger()}

		results := p.Query(context.Background(), flow.Query{Search: "go", Settings: configuredSettings()})

		require.Len(t, results, 1)
		assert.Contains(t, results[0].Title, "/profiles/broken")
		require.NotNil(t, results[0].Action)
		assert.Equal(t, "open_settings", results[0].Action.Method)
	})
}

func TestPlugin_ContextMenu(t *testing.T) {
	t.Parallel()

	t.Run("error context offers settings and guide", func(t *testing.T) {
		t.Parallel()

		p := &flow.Plugin{Logger: discardLogger()}

		results := p.ContextMenu(context.Background(), flow.ContextData{Kind: flow.KindError})

		require.Len(t, results, 2)
		assert.Equal(t, "Open Settings Menu", results[0].Title)
		assert.Equal(t, "open_settings", results[0].Action.Method)
		assert.Equal(t, "Open Guide", results[1].Title)
		assert.Equal(t, "open_guide", results[1].Action.Method)
	})

	t.Run("bookmark context offers reload, log folder and copy actions", func(t *testing.T) {
		t.Parallel()

		p := &flow.Plugin{Logger: discardLogger()}
		data := flow.ContextData{
			Kind: flow.KindBookmark,
			Bookmark: &flow.BookmarkContext{
				ProfilePath: "/profiles/default",
				Keyword:     "go",
				URL:         "https://go.dev",
			},
		}

		results := p.ContextMenu(context.Background(), data)

		require.Len(t, results, 4)
		assert.Equal(t, "Reload Cache", results[0].Title)
		assert.Equal(t, "Open Log Folder", results[1].Title)
		assert.Equal(t, "Copy Keyword", results[2].Title)
		assert.Equal(t, []any{"go"}, results[2].Action.Parameters)
		assert.Equal(t, "Copy URL", results[3].Title)
		assert.Equal(t, []any{"https://go.dev"}, results[3].Action.Parameters)
	})

	t.Run("bookmark context without payload yields nothing", func(t *testing.T) {
		t.Parallel()

		p := &flow.Plugin{Logger: discardLogger()}

		assert.Empty(t, p.ContextMenu(context.Background(), flow.ContextData{Kind: flow.KindBookmark}))
	})
}

func rawParams(t *testing.T, values ...any) []json.RawMessage {
	t.Helper()
	params := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		params = append(params, raw)
	}
	return params
}

func TestPlugin_Action(t *testing.T) {
	t.Parallel()

	t.Run("open_url without a firefox dir uses the host browser", func(t *testing.T) {
		t.Parallel()

		var opened string
		launcher := &mock.Launcher{
			OpenURLFn: func(ctx context.Context, url string) error {
				opened = url
				return nil
			},
		}
		p := &flow.Plugin{Launcher: launcher, Logger: discardLogger()}

		resp, err := p.Action(context.Background(), "open_url", rawParams(t, "", "/profiles/default", "https://go.dev"))
		require.NoError(t, err)
		assert.True(t, resp.Hide)
		assert.Equal(t, "https://go.dev", opened)
	})

	t.Run("open_url with a firefox dir launches the profile's instance", func(t *testing.T) {
		t.Parallel()

		var gotDir, gotProfile, gotURL string
		browser := &mock.Browser{
			OpenProfileFn: func(ctx context.Context, firefoxDir, profilePath, url string) error {
				gotDir, gotProfile, gotURL = firefoxDir, profilePath, url
				return nil
			},
		}
		p := &flow.Plugin{Browser: browser, Logger: discardLogger()}

		_, err := p.Action(context.Background(), "open_url", rawParams(t, "/opt/firefox", "/profiles/default", "https://go.dev"))
		require.NoError(t, err)
		assert.Equal(t, "/opt/firefox", gotDir)
		assert.Equal(t, "/profiles/default", gotProfile)
		assert.Equal(t, "https://go.dev", gotURL)
	})

	t.Run("copy_text copies and confirms", func(t *testing.T) {
		t.Parallel()

		var copied, confirmed string
		clip := &mock.Clipboard{
			CopyFn: func(text string) error {
				copied = text
				return nil
			},
		}
		launcher := &mock.Launcher{
			ShowMessageFn: func(ctx context.Context, title, subtitle string) error {
				confirmed = subtitle
				return nil
			},
		}
		p := &flow.Plugin{Clipboard: clip, Launcher: launcher, Logger: discardLogger()}

		resp, err := p.Action(context.Background(), "copy_text", rawParams(t, "https://go.dev"))
		require.NoError(t, err)
		assert.False(t, resp.Hide)
		assert.Equal(t, "https://go.dev", copied)
		assert.Contains(t, confirmed, "https://go.dev")
	})

	t.Run("reload_cache uses the last seen settings", func(t *testing.T) {
		t.Parallel()

		var reloaded []firefoxkb.Profile
		cache := &mock.BookmarkCache{
			LookupFn: func(ctx context.Context, profiles []firefoxkb.Profile, keyword string) (*firefoxkb.Bookmark, error) {
				return nil, firefoxkb.Errorf(firefoxkb.ENOTFOUND, "no bookmark")
			},
			ReloadFn: func(ctx context.Context, profiles []firefoxkb.Profile) error {
				reloaded = profiles
				return nil
			},
		}
		var message string
		launcher := &mock.Launcher{
			ShowMessageFn: func(ctx context.Context, title, subtitle string) error {
				message = subtitle
				return nil
			},
		}
		p := &flow.Plugin{Cache: cache, Launcher: launcher, Logger: discardLogger()}

		// A query records the settings the later reload uses.
		p.Query(context.Background(), flow.Query{Search: "go", Settings: firefoxkb.Settings{ProfilePathData: "/a\r\nw|/b"}})

		_, err := p.Action(context.Background(), "reload_cache", nil)
		require.NoError(t, err)
		assert.Equal(t, []firefoxkb.Profile{{Path: "/a"}, {Path: "/b", Prefix: "w"}}, reloaded)
		assert.Equal(t, "Cache successfully reloaded", message)
	})

	t.Run("reload_cache failure is reported, not crashed on", func(t *testing.T) {
		t.Parallel()

		cache := &mock.BookmarkCache{
			ReloadFn: func(ctx context.Context, profiles []firefoxkb.Profile) error {
				return firefoxkb.Errorf(firefoxkb.ENOTCONFIGURED, "no profile data configured")
			},
		}
		var message string
		launcher := &mock.Launcher{
			ShowMessageFn: func(ctx context.Context, title, subtitle string) error {
				message = subtitle
				return nil
			},
		}
		p := &flow.Plugin{Cache: cache, Launcher: launcher, Logger: discardLogger()}

		_, err := p.Action(context.Background(), "reload_cache", nil)
		require.NoError(t, err)
		assert.Contains(t, message, "Reload failed")
	})

	t.Run("open_log_folder reveals the log dir", func(t *testing.T) {
		t.Parallel()

		var revealed string
		browser := &mock.Browser{
			RevealFolderFn: func(ctx context.Context, path string) error {
				revealed = path
				return nil
			},
		}
		p := &flow.Plugin{Browser: browser, Logger: discardLogger(), LogDir: "/var/log/firefoxkb"}

		_, err := p.Action(context.Background(), "open_log_folder", nil)
		require.NoError(t, err)
		assert.Equal(t, "/var/log/firefoxkb", revealed)
	})

	t.Run("unknown action is EINVALID", func(t *testing.T) {
		t.Parallel()

		p := &flow.Plugin{Logger: discardLogger()}

		_, err := p.Action(context.Background(), "bogus", nil)
		require.Error(t, err)
		assert.Equal(t, firefoxkb.EINVALID, firefoxkb.ErrorCode(err))
	})
}
