// Package slog provides logging decorators for firefoxkb services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/cibere/firefoxkb"
)

// Ensure LoggingCache implements firefoxkb.BookmarkCache.
var _ firefoxkb.BookmarkCache = (*LoggingCache)(nil)

// LoggingCache wraps a BookmarkCache with timing and outcome logging.
type LoggingCache struct {
	next   firefoxkb.BookmarkCache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next firefoxkb.BookmarkCache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Lookup delegates to the wrapped cache, logging the outcome and duration.
func (c *LoggingCache) Lookup(ctx context.Context, profiles []firefoxkb.Profile, keyword string) (*firefoxkb.Bookmark, error) {
	begin := time.Now()
	bookmark, err := c.next.Lookup(ctx, profiles, keyword)

	outcome := "hit"
	switch {
	case firefoxkb.ErrorCode(err) == firefoxkb.ENOTFOUND:
		outcome = "miss"
	case err != nil:
		outcome = "error"
	}

	c.logger.Info("bookmark lookup",
		"keyword", keyword,
		"outcome", outcome,
		"duration", time.Since(begin),
	)
	if outcome == "error" {
		c.logger.Error("cache load failed", "error", err)
	}
	return bookmark, err
}

// Reload delegates to the wrapped cache, logging the duration.
func (c *LoggingCache) Reload(ctx context.Context, profiles []firefoxkb.Profile) error {
	begin := time.Now()
	err := c.next.Reload(ctx, profiles)
	if err != nil {
		c.logger.Error("cache reload failed",
			"profiles", len(profiles),
			"duration", time.Since(begin),
			"error", err,
		)
		return err
	}
	c.logger.Info("cache reloaded",
		"profiles", len(profiles),
		"duration", time.Since(begin),
	)
	return nil
}

// Loaded delegates to the wrapped cache.
func (c *LoggingCache) Loaded() bool {
	return c.next.Loaded()
}
