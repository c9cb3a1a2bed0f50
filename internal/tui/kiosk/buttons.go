package kiosk

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/remitkiosk/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Secondary action
	ButtonDisabled                    // Guard not met
	ButtonPrimary                     // Primary action of the step
)

// Button is a single labelled action.
type Button struct {
	Label string
	State ButtonState
}

// RenderButtons renders the action bar centered in width.
func RenderButtons(width int, buttons ...Button) string {
	if len(buttons) == 0 {
		return ""
	}

	s := theme.Current().S()
	rendered := make([]string, 0, len(buttons))
	for _, btn := range buttons {
		switch btn.State {
		case ButtonDisabled:
			rendered = append(rendered, s.ButtonDisabled.Render(btn.Label))
		case ButtonPrimary:
			rendered = append(rendered, s.ButtonPrimary.Render(btn.Label))
		default:
			rendered = append(rendered, s.ButtonSecondary.Render(btn.Label))
		}
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rendered, "  "))
}

// backNext builds the standard Back / primary pair.
func backNext(back, next string, nextEnabled bool) []Button {
	state := ButtonPrimary
	if !nextEnabled {
		state = ButtonDisabled
	}
	return []Button{
		{Label: "← " + back, State: ButtonNormal},
		{Label: next + " →", State: state},
	}
}
