// Package flow implements the host launcher surface: line-delimited
// JSON-RPC over stdin/stdout, the query and context-menu handlers, and the
// actions the host invokes out of line from the originating query.
package flow

import (
	"github.com/cibere/firefoxkb"
)

// iconPath is the plugin icon shipped alongside the binary, relative to
// the plugin directory the host runs us in.
const iconPath = "Images/app.png"

// guideURL documents how to find the profile data path.
const guideURL = "https://github.com/cibere/Flow.Launcher.Plugin.FirefoxKeywordBookmarks?tab=readme-ov-file#how-to-get-profile-data-path"

// Query is one search request from the host. The host resends the current
// settings with every query, so configuration changes apply without a
// restart.
type Query struct {
	Search   string             `json:"search"`
	Settings firefoxkb.Settings `json:"settings"`
}

// Result is one displayable row returned to the host.
type Result struct {
	Title       string       `json:"title"`
	Subtitle    string       `json:"subTitle,omitempty"`
	Icon        string       `json:"icoPath,omitempty"`
	Action      *Action      `json:"jsonRPCAction,omitempty"`
	ContextData *ContextData `json:"contextData,omitempty"`
}

// Action names a plugin method the host invokes when the result is chosen.
type Action struct {
	Method     string `json:"method"`
	Parameters []any  `json:"parameters,omitempty"`
}

// QueryResponse wraps results for the host.
type QueryResponse struct {
	Result []Result `json:"result"`
}

// ExecuteResponse tells the host whether to hide its window after an
// action ran.
type ExecuteResponse struct {
	Hide bool `json:"hide"`
}

// ContextKind discriminates ContextData variants.
type ContextKind string

const (
	// KindError marks context data of a configuration-error result.
	KindError ContextKind = "error"

	// KindBookmark marks context data of a bookmark result.
	KindBookmark ContextKind = "bookmark"
)

// ContextData is the tagged payload a result carries for its context menu.
// The kind is selected explicitly; exactly one variant field is set.
type ContextData struct {
	Kind     ContextKind      `json:"kind"`
	Bookmark *BookmarkContext `json:"bookmark,omitempty"`
}

// BookmarkContext carries everything the bookmark context menu needs.
type BookmarkContext struct {
	ProfilePath string `json:"profilePath"`
	FirefoxDir  string `json:"firefoxDir,omitempty"`
	Keyword     string `json:"keyword"`
	URL         string `json:"url"`
}
