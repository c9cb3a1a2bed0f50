package testfixtures

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Initialize test environment
func init() {
	// Ascii profile keeps rendered output comparable across terminals
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for kiosk tests
const (
	TestTermWidth  = 100
	TestTermHeight = 34
)

// Plain strips ANSI sequences from rendered output.
func Plain(s string) string {
	return ansi.Strip(s)
}

// RenderPlain draws content onto a screen buffer of the given size and
// returns the visible text.
func RenderPlain(width, height int, content string) string {
	canvas := uv.NewScreenBuffer(width, height)
	uv.NewStyledString(content).Draw(canvas, canvas.Bounds())
	return ansi.Strip(canvas.Render())
}
