package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/splitfare/splitfare/internal/config"
	"github.com/splitfare/splitfare/internal/tui/colors"
)

// Layout
const (
	FormWidth  = 72
	InputWidth = 60
	LabelWidth = 22
	TextHeight = 5
)

// === Layout Styles ===
var (
	// Box around the whole form
	FormStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Gray).
			Padding(0, 1)

	// Border of the focused field
	FieldStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colors.Gray)

	FocusedFieldStyle = FieldStyle.
				BorderForeground(colors.RailRed)

	// === Text Styles ===

	LogoStyle = lipgloss.NewStyle().
			Foreground(colors.RailRed).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colors.LightGray).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colors.LightGray).
			Width(LabelWidth)

	FocusedLabelStyle = LabelStyle.
				Foreground(colors.Teal).
				Bold(true)

	OptionStyle = lipgloss.NewStyle().
			Foreground(colors.LightGray).
			Padding(0, 1)

	ActiveOptionStyle = lipgloss.NewStyle().
				Foreground(colors.DarkGray).
				Background(colors.RailRed).
				Padding(0, 1).
				Bold(true)

	// Call to action: ready, enabled but without a link yet, disabled
	ButtonReadyStyle = lipgloss.NewStyle().
				Foreground(colors.DarkGray).
				Background(colors.StateReady).
				Padding(0, 2).
				Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(colors.White).
			Background(colors.Gray).
			Padding(0, 2)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(colors.StateDisabled).
				Padding(0, 2)

	TargetStyle = lipgloss.NewStyle().
			Foreground(colors.Teal)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colors.StateError).
			Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(colors.Gold)
)

// ApplyTheme pins the light or dark variant of the palette. The adaptive
// theme leaves the choice to terminal detection.
func ApplyTheme(theme int) {
	switch theme {
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	}
}
