package kiosk

import (
	"strings"

	"github.com/mark3labs/remitkiosk/internal/tui/theme"
)

// Standard key representations for consistent hints across screens.
const (
	KeyEnter    = "enter"
	KeyEsc      = "esc"
	KeyDigits   = "0-9"
	KeyDot      = "."
	KeyBksp     = "⌫"
	KeyUpDown   = "↑/↓"
	KeyCurrency = "←/→"
	KeyCtrlE    = "ctrl+e"
	KeyCtrlL    = "ctrl+l"
	KeyCtrlC    = "ctrl+c"
)

// RenderHintBar renders key-description pairs separated by " . ".
// Example: RenderHintBar("enter", "verify", "esc", "back")
// Returns: "enter verify . esc back"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + s.HintSeparator.Render(".") + " ")
		}
		b.WriteString(s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1]))
	}
	return b.String()
}
