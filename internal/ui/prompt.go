package ui

import "github.com/charmbracelet/lipgloss"

// RenderPrompt renders the shell prompt. Its visible text is always
// exactly "<cwd>$ " — spec.md §6's exact format, no separator glyphs,
// no padding — wrapped in lipgloss foreground color only. Pure SGR
// color codes occupy zero printable columns, so this coloring never
// perturbs the line editor's buffer-length cursor arithmetic (see
// DESIGN.md); the teacher's Powerline prompt used background blocks
// and separator glyphs, which do occupy columns, so those are dropped
// here rather than silently breaking spec.md §4.E's repaint math.
func RenderPrompt(cwd string) string {
	cwdStyle := lipgloss.NewStyle().Foreground(currentTheme.Blue).Bold(true)
	dollarStyle := lipgloss.NewStyle().Foreground(currentTheme.Mauve)
	return cwdStyle.Render(cwd) + dollarStyle.Render("$") + " "
}
