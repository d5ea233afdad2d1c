package ui

import "github.com/charmbracelet/lipgloss"

// Theme represents the user interface color theme
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DetectTheme returns the detected terminal theme (Dark or Light)
func DetectTheme() Theme {
	if lipgloss.HasDarkBackground() {
		return ThemeDark
	}
	return ThemeLight
}

// ResolveTheme maps a config theme preference to a concrete Theme,
// auto-detecting the terminal background when pref is "auto", empty,
// or anything else unrecognized.
func ResolveTheme(pref string) Theme {
	switch Theme(pref) {
	case ThemeDark:
		return ThemeDark
	case ThemeLight:
		return ThemeLight
	default:
		return DetectTheme()
	}
}

// ApplyTheme switches the active color palette to theme.
func ApplyTheme(theme Theme) {
	if theme == ThemeDark {
		SetDarkTheme()
	} else {
		SetLightTheme()
	}
}
