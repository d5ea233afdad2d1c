package ui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha (dark theme)
var mocha = struct {
	Mauve, Red, Peach, Yellow, Green, Blue lipgloss.Color
	Text, Overlay1                        lipgloss.Color
}{
	Mauve: "#cba6f7", Red: "#f38ba8", Peach: "#fab387", Yellow: "#f9e2af",
	Green: "#a6e3a1", Blue: "#89b4fa",
	Text: "#cdd6f4", Overlay1: "#7f849c",
}

// Catppuccin Latte (light theme)
var latte = struct {
	Mauve, Red, Peach, Yellow, Green, Blue lipgloss.Color
	Text, Overlay1                        lipgloss.Color
}{
	Mauve: "#8839ef", Red: "#d20f39", Peach: "#fe640b", Yellow: "#df8e1d",
	Green: "#40a02b", Blue: "#1e66f5",
	Text: "#4c4f69", Overlay1: "#8c8fa1",
}

// ThemePalette holds the current color scheme, used by the prompt and
// by diagnostic styling.
type ThemePalette struct {
	Mauve, Red, Peach, Yellow, Green, Blue lipgloss.Color
	Text, Overlay                          lipgloss.Color
}

var currentTheme ThemePalette

func init() {
	if DetectTheme() == ThemeDark {
		SetDarkTheme()
	} else {
		SetLightTheme()
	}
}

// SetDarkTheme switches to Catppuccin Mocha
func SetDarkTheme() {
	currentTheme = ThemePalette{
		Mauve: mocha.Mauve, Red: mocha.Red, Peach: mocha.Peach, Yellow: mocha.Yellow,
		Green: mocha.Green, Blue: mocha.Blue, Text: mocha.Text, Overlay: mocha.Overlay1,
	}
	refreshStyles()
}

// SetLightTheme switches to Catppuccin Latte
func SetLightTheme() {
	currentTheme = ThemePalette{
		Mauve: latte.Mauve, Red: latte.Red, Peach: latte.Peach, Yellow: latte.Yellow,
		Green: latte.Green, Blue: latte.Blue, Text: latte.Text, Overlay: latte.Overlay1,
	}
	refreshStyles()
}

// Semantic styles shared by diagnostics, the edit builtin's save
// confirmation, and the line numbers of unhighlighted file content.
var (
	MutedStyle   lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style
)

func refreshStyles() {
	MutedStyle = lipgloss.NewStyle().Foreground(currentTheme.Overlay)
	ErrorStyle = lipgloss.NewStyle().Foreground(currentTheme.Red).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(currentTheme.Peach)
	SuccessStyle = lipgloss.NewStyle().Foreground(currentTheme.Green)
}
