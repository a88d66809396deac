package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var colorFailure = lipgloss.Color("#E1244C")

var styleErrorBox = lipgloss.NewStyle().
	Padding(0, 1).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(colorFailure)
var styleErrorTitle = lipgloss.NewStyle().Foreground(colorFailure).Bold(true)
var styleErrorText = lipgloss.NewStyle().Foreground(colorFailure).MaxWidth(100)
var styleHint = lipgloss.NewStyle().Faint(true)

func renderError(err error) string {
	return styleErrorBox.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			styleErrorTitle.Render("❌ linkup could not complete the command"),
			styleErrorText.Render(err.Error()),
			styleHint.Render("re-run with --log-level debug for request details"),
		),
	)
}
