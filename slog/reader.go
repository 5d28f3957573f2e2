package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/cibere/firefoxkb"
)

// Ensure LoggingReader implements firefoxkb.BookmarkReader.
var _ firefoxkb.BookmarkReader = (*LoggingReader)(nil)

// LoggingReader wraps a BookmarkReader with per-profile scan logging.
type LoggingReader struct {
	next   firefoxkb.BookmarkReader
	logger *slog.Logger
}

// NewLoggingReader creates a new LoggingReader.
func NewLoggingReader(next firefoxkb.BookmarkReader, logger *slog.Logger) *LoggingReader {
	return &LoggingReader{next: next, logger: logger}
}

// ReadBookmarks delegates to the wrapped reader, logging the scan result.
func (r *LoggingReader) ReadBookmarks(ctx context.Context, profile firefoxkb.Profile) (map[string]*firefoxkb.Bookmark, error) {
	begin := time.Now()
	bookmarks, err := r.next.ReadBookmarks(ctx, profile)
	if err != nil {
		r.logger.Error("profile scan failed",
			"profile", profile.Path,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	r.logger.Info("profile scanned",
		"profile", profile.Path,
		"prefix", profile.Prefix,
		"bookmarks", len(bookmarks),
		"duration", time.Since(begin),
	)
	return bookmarks, nil
}
