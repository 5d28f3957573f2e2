package mock

import (
	"context"

	"github.com/cibere/firefoxkb"
)

var _ firefoxkb.BookmarkReader = (*BookmarkReader)(nil)

// BookmarkReader is a mock implementation of firefoxkb.BookmarkReader.
type BookmarkReader struct {
	ReadBookmarksFn func(ctx context.Context, profile firefoxkb.Profile) (map[string]*firefoxkb.Bookmark, error)
}

func (r *BookmarkReader) ReadBookmarks(ctx context.Context, profile firefoxkb.Profile) (map[string]*firefoxkb.Bookmark, error) {
	return r.ReadBookmarksFn(ctx, profile)
}

var _ firefoxkb.BookmarkCache = (*BookmarkCache)(nil)

// BookmarkCache is a mock implementation of firefoxkb.BookmarkCache.
type BookmarkCache struct {
	LookupFn func(ctx context.Context, profiles []firefoxkb.Profile, keyword string) (*firefoxkb.Bookmark, error)
	ReloadFn func(ctx context.Context, profiles []firefoxkb.Profile) error
	LoadedFn func() bool
}

func (c *BookmarkCache) Lookup(ctx context.Context, profiles []firefoxkb.Profile, keyword string) (*firefoxkb.Bookmark, error) {
	return c.LookupFn(ctx, profiles, keyword)
}

func (c *BookmarkCache) Reload(ctx context.Context, profiles []firefoxkb.Profile) error {
	return c.ReloadFn(ctx, profiles)
}

func (c *BookmarkCache) Loaded() bool {
	return c.LoadedFn()
}
