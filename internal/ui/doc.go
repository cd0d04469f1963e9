// Package ui provides theme and color support for terminal output.
// It defines ANSI color schemes, honors NO_COLOR, and renders boxed banners
// with lipgloss.
package ui
