package tui

import (
	"strings"

	"github.com/matheuskafuri/pageboard/internal/document"
	"github.com/matheuskafuri/pageboard/internal/textutil"
)

// cardHeight is the number of lines renderCard emits. renderList adds one
// blank line between cards.
const cardHeight = 4

func renderCard(c document.Card, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	marker := markerStyle(c.Category).Render(c.Category.Label())
	id := cardIDStyle.Render(" #" + c.ID)

	var title string
	if selected {
		title = cardSelectedStyle.Render("> " + textutil.Truncate(c.Title, width-4))
	} else {
		title = cardTitleStyle.Render("  " + textutil.Truncate(c.Title, width-4))
	}

	body := "  " + cardBodyStyle.Render(textutil.Truncate(c.Body, width-4))
	link := "  " + cardLinkStyle.Render("Read more...")

	return "  " + marker + id + "\n" + title + "\n" + body + "\n" + link
}

func renderList(cards []document.Card, cursor int, height int, width int) string {
	if len(cards) == 0 {
		return lipglossCenter("No articles to show", width, height)
	}

	visible := height / (cardHeight + 1)
	if visible < 1 {
		visible = 1
	}

	// Calculate scroll offset
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(cards) {
		end = len(cards)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderCard(cards[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
