package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(visible, total int, filterLabel string, hints string, width int) string {
	left := fmt.Sprintf(" %d of %d articles", visible, total)
	if filterLabel != "All" {
		left += " · " + filterLabel
	}

	right := " " + hints + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
