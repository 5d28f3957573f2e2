// Package clipboard implements firefoxkb.Clipboard over the system
// clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/cibere/firefoxkb"
)

// Ensure Clipboard implements firefoxkb.Clipboard.
var _ firefoxkb.Clipboard = (*Clipboard)(nil)

// Clipboard writes text to the system clipboard.
type Clipboard struct{}

// New creates a new Clipboard.
func New() *Clipboard {
	return &Clipboard{}
}

// Copy writes text to the system clipboard.
func (c *Clipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}
