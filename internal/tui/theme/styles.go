package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the kiosk screens.
type Styles struct {
	// Header / footer
	HeaderBrand lipgloss.Style
	HeaderMeta  lipgloss.Style
	FooterLink  lipgloss.Style

	// Screen body
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Strong   lipgloss.Style
	Muted    lipgloss.Style
	Panel    lipgloss.Style
	Promo    lipgloss.Style

	// Input boxes
	Input            lipgloss.Style
	InputPlaceholder lipgloss.Style
	OtpCell          lipgloss.Style
	OtpCellFilled    lipgloss.Style

	// Keypad
	Key         lipgloss.Style
	KeyDisabled lipgloss.Style

	// Action buttons
	ButtonPrimary   lipgloss.Style
	ButtonSecondary lipgloss.Style
	ButtonDisabled  lipgloss.Style

	// Step indicator
	StepDone    lipgloss.Style
	StepActive  lipgloss.Style
	StepPending lipgloss.Style

	// Beneficiary list
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	// Feedback
	Success lipgloss.Style
	Error   lipgloss.Style
	Toast   lipgloss.Style

	// Hints
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style
}

func (t *Theme) buildStyles() *Styles {
	primary := lipgloss.Color(t.Primary)
	secondary := lipgloss.Color(t.Secondary)
	accent := lipgloss.Color(t.Accent)
	surface := lipgloss.Color(t.BgSurface)
	overlay := lipgloss.Color(t.BgOverlay)
	muted := lipgloss.Color(t.FgMuted)
	subtle := lipgloss.Color(t.FgSubtle)
	base := lipgloss.Color(t.FgBase)
	bright := lipgloss.Color(t.FgBright)
	onPrimary := lipgloss.Color(t.FgOnPrimary)

	button := lipgloss.NewStyle().Padding(0, 2).Bold(true)

	return &Styles{
		HeaderBrand: lipgloss.NewStyle().Foreground(accent).Bold(true),
		HeaderMeta:  lipgloss.NewStyle().Foreground(subtle),
		FooterLink:  lipgloss.NewStyle().Foreground(secondary).Underline(true),

		Title:    lipgloss.NewStyle().Foreground(bright).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(subtle),
		Label:    lipgloss.NewStyle().Foreground(muted),
		Value:    lipgloss.NewStyle().Foreground(base),
		Strong:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(overlay).
			Padding(0, 1),
		Promo: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Foreground(base).
			Padding(0, 2),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondary).
			Foreground(bright).
			Padding(0, 1),
		InputPlaceholder: lipgloss.NewStyle().Foreground(muted),
		OtpCell: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(overlay).
			Foreground(muted).
			Padding(0, 1),
		OtpCellFilled: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Foreground(bright).
			Bold(true).
			Padding(0, 1),

		Key: lipgloss.NewStyle().
			Background(surface).
			Foreground(bright).
			Bold(true).
			Padding(0, 2),
		KeyDisabled: lipgloss.NewStyle().
			Background(surface).
			Foreground(muted).
			Padding(0, 2),

		ButtonPrimary:   button.Background(primary).Foreground(onPrimary),
		ButtonSecondary: button.Background(overlay).Foreground(base),
		ButtonDisabled:  button.Background(surface).Foreground(muted).Bold(false),

		StepDone:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		StepActive:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		StepPending: lipgloss.NewStyle().Foreground(muted),

		ListItem: lipgloss.NewStyle().Foreground(base).PaddingLeft(2),
		ListItemSelected: lipgloss.NewStyle().
			Foreground(bright).
			Background(surface).
			Bold(true).
			PaddingLeft(1).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(accent),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)),
		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Error)).
			Foreground(bright).
			Padding(0, 1),

		HintKey:       lipgloss.NewStyle().Foreground(secondary),
		HintDesc:      lipgloss.NewStyle().Foreground(muted),
		HintSeparator: lipgloss.NewStyle().Foreground(overlay),
	}
}
