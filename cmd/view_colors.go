package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var colorSuccess = lipgloss.Color("#00B785")

var styleHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("#407FF8")).Bold(true)
var styleHeading = lipgloss.NewStyle().Bold(true).MarginTop(1)
var styleSuccessBox = lipgloss.NewStyle().
	Padding(0, 1).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(colorSuccess)

func heading(format string, highlights ...string) string {
	args := make([]interface{}, 0, len(highlights))
	for _, h := range highlights {
		args = append(args, styleHighlight.Render(h))
	}
	return styleHeading.Render(fmt.Sprintf(format, args...))
}
