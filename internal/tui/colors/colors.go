package colors

import "github.com/charmbracelet/lipgloss"

// === Color Palette ===
// Rail red accents on a neutral base. Each color has a light and a dark
// variant; lipgloss picks one from the terminal background.
var (
	RailRed   = lipgloss.AdaptiveColor{Light: "#c50014", Dark: "#ff5f6d"}
	Teal      = lipgloss.AdaptiveColor{Light: "#00717a", Dark: "#5fd7d7"}
	Gold      = lipgloss.AdaptiveColor{Light: "#9a6700", Dark: "#f1c40f"}
	DarkGray  = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#1e1f26"} // Background
	Gray      = lipgloss.AdaptiveColor{Light: "#d0d0d0", Dark: "#44475a"} // Borders
	LightGray = lipgloss.AdaptiveColor{
		Light: "#4a4a4a",
		Dark:  "#a9b1d6",
	} // Labels and help
	White = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#f8f8f2"}
)

// === Semantic State Colors ===
var (
	StateError = lipgloss.AdaptiveColor{
		Light: "#d32f2f",
		Dark:  "#ff5555",
	}
	StateReady = lipgloss.AdaptiveColor{
		Light: "#2e7d32",
		Dark:  "#50fa7b",
	}
	StateDisabled = lipgloss.AdaptiveColor{
		Light: "#9e9e9e",
		Dark:  "#6272a4",
	}
)

// === Logo Gradient ===
var (
	LogoStart = lipgloss.Color("#ff5f6d")
	LogoEnd   = lipgloss.Color("#c50014")
)
