package firefoxkb

import "context"

// Bookmark represents one keyword bookmark resolved from a profile store.
// Values are immutable once constructed; the cache is their sole owner.
type Bookmark struct {
	// Full lookup key: profile prefix + raw keyword from the store.
	Keyword string `json:"keyword"`

	// Destination address associated with the keyword.
	URL string `json:"url"`

	// Path of the profile the bookmark was loaded from. Needed by
	// "open with this profile" actions.
	ProfilePath string `json:"profilePath"`
}

// Validate returns an error if the bookmark contains invalid fields.
func (b *Bookmark) Validate() error {
	if b.Keyword == "" {
		return Errorf(EINVALID, "bookmark keyword required")
	}
	if b.URL == "" {
		return Errorf(EINVALID, "bookmark URL required")
	}
	return nil
}

// BookmarkReader loads the keyword bookmarks of a single profile.
type BookmarkReader interface {
	// ReadBookmarks opens the profile's bookmark store and returns one
	// Bookmark per valid keyword record, keyed by full keyword.
	// Returns EUNAVAILABLE if the store cannot be opened or queried.
	ReadBookmarks(ctx context.Context, profile Profile) (map[string]*Bookmark, error)
}

// BookmarkCache serves exact-keyword lookups from a merged in-memory
// mapping across all configured profiles.
type BookmarkCache interface {
	// Lookup returns the bookmark for an exact keyword, lazily loading
	// the cache from the given profiles if no load has succeeded yet.
	// Returns ENOTFOUND if the keyword is absent.
	Lookup(ctx context.Context, profiles []Profile, keyword string) (*Bookmark, error)

	// Reload unconditionally rebuilds the cache from scratch. A
	// successful reload fully replaces the previous mapping.
	Reload(ctx context.Context, profiles []Profile) error

	// Loaded reports whether a load has succeeded since process start or
	// the last failed load attempt.
	Loaded() bool
}
