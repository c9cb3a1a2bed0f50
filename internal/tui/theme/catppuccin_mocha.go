package theme

// NewCatppuccinMocha creates the Catppuccin Mocha skin.
func NewCatppuccinMocha() *Theme {
	return &Theme{
		Name:   "mocha",
		IsDark: true,

		Primary:   "#cba6f7", // Mauve
		Secondary: "#89b4fa", // Blue
		Accent:    "#f9e2af", // Yellow

		BgCrust:   "#11111b",
		BgBase:    "#1e1e2e",
		BgSurface: "#313244", // Surface0
		BgOverlay: "#45475a", // Surface1

		FgMuted:     "#6c7086", // Overlay0
		FgSubtle:    "#a6adc8", // Subtext0
		FgBase:      "#cdd6f4", // Text
		FgBright:    "#f5e0dc", // Rosewater
		FgOnPrimary: "#1e1e2e",

		Success: "#a6e3a1",
		Warning: "#fab387",
		Error:   "#f38ba8",
	}
}
