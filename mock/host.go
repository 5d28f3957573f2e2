package mock

import (
	"context"

	"github.com/cibere/firefoxkb"
)

var _ firefoxkb.Launcher = (*Launcher)(nil)

// Launcher is a mock implementation of firefoxkb.Launcher.
type Launcher struct {
	ShowMessageFn  func(ctx context.Context, title, subtitle string) error
	OpenSettingsFn func(ctx context.Context) error
	OpenURLFn      func(ctx context.Context, url string) error
}

func (l *Launcher) ShowMessage(ctx context.Context, title, subtitle string) error {
	return l.ShowMessageFn(ctx, title, subtitle)
}

func (l *Launcher) OpenSettings(ctx context.Context) error {
	return l.OpenSettingsFn(ctx)
}

func (l *Launcher) OpenURL(ctx context.Context, url string) error {
	return l.OpenURLFn(ctx, url)
}

var _ firefoxkb.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of firefoxkb.Clipboard.
type Clipboard struct {
	CopyFn func(text string) error
}

func (c *Clipboard) Copy(text string) error {
	return c.CopyFn(text)
}

var _ firefoxkb.Browser = (*Browser)(nil)

// Browser is a mock implementation of firefoxkb.Browser.
type Browser struct {
	OpenProfileFn  func(ctx context.Context, firefoxDir, profilePath, url string) error
	RevealFolderFn func(ctx context.Context, path string) error
}

func (b *Browser) OpenProfile(ctx context.Context, firefoxDir, profilePath, url string) error {
	return b.OpenProfileFn(ctx, firefoxDir, profilePath, url)
}

func (b *Browser) RevealFolder(ctx context.Context, path string) error {
	return b.RevealFolderFn(ctx, path)
}
