package kiosk

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/remitkiosk/internal/tui/theme"
)

const toastDuration = 4 * time.Second

// Toast shows a fault message in the bottom-right corner until it is
// dismissed by its timer.
type Toast struct {
	message string
	visible bool
	gen     int
}

// NewToast creates a new Toast component.
func NewToast() *Toast {
	return &Toast{}
}

// Show displays msg and schedules its dismissal. A newer toast outlives the
// timers of the ones it replaced.
func (t *Toast) Show(msg string) tea.Cmd {
	t.message = msg
	t.visible = true
	t.gen++
	gen := t.gen
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return ToastDismissMsg{Gen: gen}
	})
}

// Update handles messages for the toast component.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(ToastDismissMsg); ok && m.Gen == t.gen {
		t.visible = false
		t.message = ""
	}
	return nil
}

// Draw renders the toast above the footer, right-aligned.
func (t *Toast) Draw(scr uv.Screen, area uv.Rectangle) {
	if !t.visible || t.message == "" {
		return
	}

	style := theme.Current().S().Toast
	maxWidth := area.Dx() - 2
	content := style.Render(t.message)
	if lipgloss.Width(content) > maxWidth && maxWidth > 4 {
		content = style.Width(maxWidth).Render(t.message)
	}

	w := lipgloss.Width(content)
	h := lipgloss.Height(content)
	x := area.Max.X - w - 1
	y := area.Max.Y - h - 2
	if x < area.Min.X {
		x = area.Min.X
	}
	if y < area.Min.Y {
		y = area.Min.Y
	}
	uv.NewStyledString(content).Draw(scr, uv.Rect(x, y, w, h))
}

// IsVisible returns whether the toast is currently visible.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// Message returns the current toast message (empty if not visible).
func (t *Toast) Message() string {
	if !t.visible {
		return ""
	}
	return t.message
}
