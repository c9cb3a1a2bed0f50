package kiosk

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/remitkiosk/internal/i18n"
	"github.com/mark3labs/remitkiosk/internal/tui/theme"
	"github.com/mark3labs/remitkiosk/internal/wizard"
)

const brand = "REMIT KIOSK"

// renderHeader renders the brand on the left and kiosk identity on the right.
func (a *App) renderHeader() string {
	th := theme.Current()
	s := th.S()

	left := " " + theme.ApplyGradient(brand, th.Secondary, th.Accent)
	right := s.HeaderMeta.Render(fmt.Sprintf("%s %s · 🔒 %s ", a.t(i18n.KioskID), a.opts.KioskID, a.t(i18n.Encrypted)))

	return spread(a.width, left, right)
}

// renderSteps renders the four stage indicator. Welcome has no stage and
// shows an empty line.
func (a *App) renderSteps(step wizard.Step) string {
	stage := step.Stage()
	if stage < 0 {
		return ""
	}

	s := theme.Current().S()
	parts := make([]string, wizard.StageCount)
	for i := range parts {
		n := i + 1
		switch {
		case i < stage || step == wizard.StepSuccess:
			parts[i] = s.StepDone.Render(fmt.Sprintf("✓ %d", n))
		case i == stage:
			parts[i] = s.StepActive.Render(fmt.Sprintf("● %d", n))
		default:
			parts[i] = s.StepPending.Render(fmt.Sprintf("○ %d", n))
		}
	}

	sep := s.StepPending.Render(" ── ")
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, strings.Join(parts, sep))
}

// renderFooter renders end session (when offered), the language switch and
// the version.
func (a *App) renderFooter(v wizard.View) string {
	s := theme.Current().S()

	var left string
	if v.CanEnd {
		left = " " + s.HintKey.Render(KeyCtrlE) + " " + s.FooterLink.Render(a.t(i18n.EndSession))
	}

	version := a.opts.Version
	if version == "" {
		version = a.t(i18n.Ver)
	}
	right := s.HintKey.Render(KeyCtrlL) + " " + s.FooterLink.Render(a.t(i18n.Language)) +
		"  " + s.Muted.Render(version) + " "

	return spread(a.width, left, right)
}

// renderKeypad renders the on-screen numeric keypad. The decimal key is
// only live on the Amount step.
func renderKeypad(decimalKey bool) string {
	s := theme.Current().S()

	keyCell := func(label string, enabled bool) string {
		if enabled {
			return s.Key.Render(label)
		}
		return s.KeyDisabled.Render(label)
	}

	rows := [][]string{
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
		{".", "0", "⌫"},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, label := range row {
			cells[i] = keyCell(label, label != "." || decimalKey)
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// spread places left and right at opposite edges of width.
func spread(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
