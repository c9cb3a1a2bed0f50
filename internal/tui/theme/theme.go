// Package theme holds the kiosk skins: color palettes plus the lipgloss
// styles built from them. The renderer never hard-codes colors; swapping the
// current theme reskins every screen.
package theme

import (
	"sync"
)

// Theme defines the color palette for the kiosk.
type Theme struct {
	Name   string
	IsDark bool

	// Brand colors
	Primary   string
	Secondary string
	Accent    string

	// Background hierarchy (dark→light on dark themes)
	BgCrust   string
	BgBase    string
	BgSurface string
	BgOverlay string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string
	// FgOnPrimary is text drawn on a Primary fill.
	FgOnPrimary string

	// Status colors
	Success string
	Warning string
	Error   string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}
