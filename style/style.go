// Package style provides a functional API for composing and applying lipgloss-based styles.
package style

import (
	"github.com/biiclasses/bii/color"
	"github.com/charmbracelet/lipgloss"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function that applies the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Typographic helpers.
var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Section renders a self-check section banner in bold blue.
var Section = func(s string) string {
	return New().Bold(true).Foreground(color.Blue).Render(s)
}

// Passed and Failed render a self-check verdict.
var (
	Passed = func(s string) string { return New().Bold(true).Foreground(color.Green).Render(s) }
	Failed = func(s string) string { return New().Bold(true).Foreground(color.Red).Render(s) }
)

// Title renders a padded banner.
var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}
