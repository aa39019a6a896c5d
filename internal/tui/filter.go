package tui

import (
	"fmt"
	"strings"

	"github.com/matheuskafuri/pageboard/internal/category"
	"github.com/matheuskafuri/pageboard/internal/page"
)

// filterPanel is the cursor over the three checkboxes. The checkbox states
// themselves live in the controller's Filter.
type filterPanel struct {
	cursor int
}

func (f *filterPanel) left() {
	if f.cursor > 0 {
		f.cursor--
	}
}

func (f *filterPanel) right() {
	if f.cursor < len(category.All())-1 {
		f.cursor++
	}
}

func (f *filterPanel) current() category.Category {
	return category.All()[f.cursor]
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func (f *filterPanel) render(filter page.Filter, width int) string {
	var parts []string
	for i, c := range category.All() {
		checked, _ := filter.Checked(c)
		label := fmt.Sprintf("%d %s %s", i+1, checkbox(checked), c.Label())
		if i == f.cursor {
			parts = append(parts, fieldActiveLabelStyle.Render(label))
		} else {
			parts = append(parts, fieldLabelStyle.Render(label))
		}
	}

	content := panelTitleStyle.Render("Filter Articles") + "\n\n" +
		strings.Join(parts, "    ") + "\n\n" +
		helpDimStyle.Render("←/→ move  space toggle  1-3 toggle  esc close")

	return panelStyle.Width(panelWidth(width)).Render(content)
}

func panelWidth(width int) int {
	w := width - 4
	if w < 30 {
		w = 30
	}
	return w
}
