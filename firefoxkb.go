// Package firefoxkb implements a launcher plugin that maps user-typed
// keywords to Firefox keyword bookmarks. It reads keyword-to-URL mappings
// from the places.sqlite database of one or more configured profiles,
// merges them into an in-memory cache and answers exact-keyword lookups
// from the host launcher.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, flow/, clipboard/).
package firefoxkb
