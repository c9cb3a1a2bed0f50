package theme

// NewUnimoni creates the default kiosk skin: deep blue, sky and gold.
func NewUnimoni() *Theme {
	return &Theme{
		Name:   "unimoni",
		IsDark: true,

		Primary:   "#1e5bc6",
		Secondary: "#4fb3f6",
		Accent:    "#f5b700",

		BgCrust:   "#06132b",
		BgBase:    "#0b1f44",
		BgSurface: "#12306a",
		BgOverlay: "#1b3f85",

		FgMuted:     "#6f84ad",
		FgSubtle:    "#a3b5d6",
		FgBase:      "#e6eefb",
		FgBright:    "#ffffff",
		FgOnPrimary: "#ffffff",

		Success: "#2ecc71",
		Warning: "#f5b700",
		Error:   "#ff5c5c",
	}
}

// NewMidnight creates a low-glare skin for dim lobbies.
func NewMidnight() *Theme {
	return &Theme{
		Name:   "midnight",
		IsDark: true,

		Primary:   "#7aa2f7",
		Secondary: "#7dcfff",
		Accent:    "#bb9af7",

		BgCrust:   "#16161e",
		BgBase:    "#1a1b26",
		BgSurface: "#24283b",
		BgOverlay: "#414868",

		FgMuted:     "#565f89",
		FgSubtle:    "#9aa5ce",
		FgBase:      "#c0caf5",
		FgBright:    "#e0e6ff",
		FgOnPrimary: "#1a1b26",

		Success: "#9ece6a",
		Warning: "#e0af68",
		Error:   "#f7768e",
	}
}

// NewDesert creates a light, sand-toned skin.
func NewDesert() *Theme {
	return &Theme{
		Name:   "desert",
		IsDark: false,

		Primary:   "#b5541c",
		Secondary: "#2a7f8f",
		Accent:    "#d99a2b",

		BgCrust:   "#e9dcc3",
		BgBase:    "#f6ecd9",
		BgSurface: "#efe1c6",
		BgOverlay: "#e2cfa8",

		FgMuted:     "#9c8a6b",
		FgSubtle:    "#6e5d43",
		FgBase:      "#3b2f1e",
		FgBright:    "#1f170c",
		FgOnPrimary: "#fff8ec",

		Success: "#3f8f3a",
		Warning: "#c07a00",
		Error:   "#b3261e",
	}
}
