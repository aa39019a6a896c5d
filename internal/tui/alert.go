package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderAlert draws a blocking message box centered on the screen.
func renderAlert(width, height int, message string) string {
	bodyW := width / 2
	if bodyW < 30 {
		bodyW = 30
	}
	content := lipgloss.NewStyle().Width(bodyW).Render(message) + "\n\n" +
		helpDimStyle.Render("enter: ok")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modalStyle.Render(content))
}
