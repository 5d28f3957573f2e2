// Package cache provides the in-memory bookmark cache merging all
// configured profiles.
package cache

import (
	"context"
	"maps"
	"sync"

	"github.com/cibere/firefoxkb"
	"golang.org/x/sync/singleflight"
)

// Compile-time interface verification.
var _ firefoxkb.BookmarkCache = (*Cache)(nil)

// Cache is an in-memory keyword index over one or more profile stores.
//
// The zero state is "not loaded", which is distinct from loaded-but-empty.
// A lookup against an unloaded cache triggers exactly one load; a failed
// load returns the cache to the unloaded state so the next lookup attempts
// a fresh load instead of serving broken state forever. There is no TTL
// and no background refresh; invalidation is on-demand only.
type Cache struct {
	reader firefoxkb.BookmarkReader

	// Collapses concurrent load attempts into a single rebuild.
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]*firefoxkb.Bookmark // nil until a load succeeds
}

// New creates a Cache reading profiles with the given reader.
func New(reader firefoxkb.BookmarkReader) *Cache {
	return &Cache{reader: reader}
}

// Lookup returns the bookmark for an exact keyword, loading the cache from
// the given profiles first if no load has succeeded yet. An absent keyword
// is reported as ENOTFOUND; only load failures carry other codes. Lookups
// against a loaded cache never block on a concurrent reload's store I/O,
// they only wait for the map swap itself.
func (c *Cache) Lookup(ctx context.Context, profiles []firefoxkb.Profile, keyword string) (*firefoxkb.Bookmark, error) {
	entries := c.snapshot()
	if entries == nil {
		if err := c.load(ctx, profiles); err != nil {
			return nil, err
		}
		entries = c.snapshot()
	}

	if b, ok := entries[keyword]; ok {
		return b, nil
	}
	return nil, firefoxkb.Errorf(firefoxkb.ENOTFOUND, "no bookmark for keyword %q", keyword)
}

// Reload unconditionally rebuilds the cache from scratch. A successful
// reload atomically replaces the previous mapping; it never merges with it.
func (c *Cache) Reload(ctx context.Context, profiles []firefoxkb.Profile) error {
	_, err, _ := c.group.Do("load", func() (any, error) {
		return nil, c.rebuild(ctx, profiles)
	})
	return err
}

// Loaded reports whether a load has succeeded since process start or the
// last failed load attempt.
func (c *Cache) Loaded() bool {
	return c.snapshot() != nil
}

// load performs the lazy load behind Lookup. Concurrent callers share a
// single rebuild; a caller that lost the race to a load that already
// finished sees its result without rebuilding again.
func (c *Cache) load(ctx context.Context, profiles []firefoxkb.Profile) error {
	_, err, _ := c.group.Do("load", func() (any, error) {
		if c.snapshot() != nil {
			return nil, nil
		}
		return nil, c.rebuild(ctx, profiles)
	})
	return err
}

// rebuild implements the load algorithm shared by lazy load and reload:
// read every profile in configured order and merge, later profiles
// overwriting earlier ones on duplicate keywords. Any failure invalidates
// the cache before returning, so a partial merge is never observable.
func (c *Cache) rebuild(ctx context.Context, profiles []firefoxkb.Profile) error {
	if len(profiles) == 0 {
		c.invalidate()
		return firefoxkb.Errorf(firefoxkb.ENOTCONFIGURED, "no profile data configured")
	}

	working := make(map[string]*firefoxkb.Bookmark)
	for _, profile := range profiles {
		loaded, err := c.reader.ReadBookmarks(ctx, profile)
		if err != nil {
			c.invalidate()
			return &firefoxkb.LoadError{ProfilePath: profile.Path, Err: err}
		}
		maps.Copy(working, loaded)
	}

	c.mu.Lock()
	c.entries = working
	c.mu.Unlock()
	return nil
}

func (c *Cache) snapshot() map[string]*firefoxkb.Bookmark {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries
}

func (c *Cache) invalidate() {
	c.mu.Lock()
	c.entries = nil
	c.mu.Unlock()
}
