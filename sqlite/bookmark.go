package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"

	"github.com/cibere/firefoxkb"
)

// placesFile is the bookmark store inside every Firefox profile directory.
const placesFile = "places.sqlite"

// Compile-time interface verification.
var _ firefoxkb.BookmarkReader = (*BookmarkReader)(nil)

// BookmarkReader implements firefoxkb.BookmarkReader against the
// places.sqlite database of a profile directory. It is a pure, stateless
// function of the profile it is given; each call opens and closes its own
// connection.
type BookmarkReader struct{}

// NewBookmarkReader creates a new BookmarkReader.
func NewBookmarkReader() *BookmarkReader {
	return &BookmarkReader{}
}

// ReadBookmarks enumerates the profile's keyword records, resolves each to
// its place URL and returns one bookmark per valid record, keyed by full
// keyword (profile prefix + raw keyword). Records with an empty keyword or
// an empty or missing URL are skipped, not errors. Any open or query
// failure is returned as EUNAVAILABLE naming the profile path, without
// retrying.
func (r *BookmarkReader) ReadBookmarks(ctx context.Context, profile firefoxkb.Profile) (map[string]*firefoxkb.Bookmark, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	db := NewDB(filepath.Join(profile.Path, placesFile))
	if err := db.Open(); err != nil {
		return nil, firefoxkb.Errorf(firefoxkb.EUNAVAILABLE, "unable to open profile database file (profile: %s): %v", profile.Path, err)
	}
	defer db.Close()

	// The join resolves each keyword record to its place record; keyword
	// records pointing at a missing place drop out, matching the "skip,
	// don't error" contract. Enumeration order is store order, so a
	// duplicate full keyword within one profile resolves to the later row.
	rows, err := db.QueryContext(ctx, `
		SELECT k.keyword, p.url
		FROM moz_keywords k
		JOIN moz_places p ON p.id = k.place_id
	`)
	if err != nil {
		return nil, firefoxkb.Errorf(firefoxkb.EUNAVAILABLE, "unable to query profile database file (profile: %s): %v", profile.Path, err)
	}
	defer rows.Close()

	bookmarks := make(map[string]*firefoxkb.Bookmark)
	for rows.Next() {
		var keyword, url sql.NullString
		if err := rows.Scan(&keyword, &url); err != nil {
			return nil, firefoxkb.Errorf(firefoxkb.EUNAVAILABLE, "unable to read profile database file (profile: %s): %v", profile.Path, err)
		}
		if keyword.String == "" || url.String == "" {
			continue
		}
		full := profile.Prefix + keyword.String
		bookmarks[full] = &firefoxkb.Bookmark{
			Keyword:     full,
			URL:         url.String,
			ProfilePath: profile.Path,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, firefoxkb.Errorf(firefoxkb.EUNAVAILABLE, "unable to read profile database file (profile: %s): %v", profile.Path, err)
	}

	return bookmarks, nil
}
