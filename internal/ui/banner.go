package ui

import "github.com/charmbracelet/lipgloss"

// Banner renders title inside a rounded box using the active theme's accent
// color. With colors disabled the box is drawn without styling escapes.
func Banner(title string) string {
	theme := GetCurrentTheme()
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if ColorsEnabled() {
		style = style.Bold(true).BorderForeground(theme.Accent).Foreground(theme.Accent)
	}
	return style.Render(title)
}
