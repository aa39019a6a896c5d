package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/matheuskafuri/pageboard/internal/category"
	"github.com/matheuskafuri/pageboard/internal/page"
)

type formField int

const (
	fieldTitle formField = iota
	fieldCategory
	fieldBody
	fieldSubmit
	fieldCount
)

// addPanel holds the widgets of the add-article form. The selected category
// is kept in the controller's Form; title and body are copied there on submit.
type addPanel struct {
	title       textinput.Model
	body        textarea.Model
	field       formField
	radioCursor int
}

func newAddPanel() addPanel {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Prompt = ""
	ti.CharLimit = 0

	ta := textarea.New()
	ta.Placeholder = "Write the article…"
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(4)

	return addPanel{title: ti, body: ta}
}

// textFocused reports whether keystrokes belong to a text widget.
func (p *addPanel) textFocused() bool {
	return p.field == fieldTitle || p.field == fieldBody
}

func (p *addPanel) focus(f formField) tea.Cmd {
	p.field = (f + fieldCount) % fieldCount
	p.title.Blur()
	p.body.Blur()
	switch p.field {
	case fieldTitle:
		return p.title.Focus()
	case fieldBody:
		return p.body.Focus()
	}
	return nil
}

func (p *addPanel) blur() {
	p.title.Blur()
	p.body.Blur()
}

// fill copies the widget values into form.
func (p *addPanel) fill(form *page.Form) {
	form.Title = p.title.Value()
	form.Body = p.body.Value()
}

// reset mirrors form back into the widgets.
func (p *addPanel) reset(form page.Form) {
	p.title.SetValue(form.Title)
	p.body.SetValue(form.Body)
	p.radioCursor = 0
}

func (p *addPanel) updateText(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch p.field {
	case fieldTitle:
		p.title, cmd = p.title.Update(msg)
	case fieldBody:
		p.body, cmd = p.body.Update(msg)
	}
	return cmd
}

func radio(selected bool) string {
	if selected {
		return "(•)"
	}
	return "( )"
}

func (p *addPanel) render(form page.Form, width int) string {
	label := func(f formField, s string) string {
		if p.field == f {
			return fieldActiveLabelStyle.Render(s)
		}
		return fieldLabelStyle.Render(s)
	}

	var radios []string
	for i, c := range category.All() {
		text := fmt.Sprintf("%s %s", radio(form.Category == c), c.Label())
		if p.field == fieldCategory && i == p.radioCursor {
			radios = append(radios, fieldActiveLabelStyle.Render(text))
		} else {
			radios = append(radios, fieldLabelStyle.Render(text))
		}
	}

	submit := buttonStyle.Render("Add New Article")
	if p.field == fieldSubmit {
		submit = buttonActiveStyle.Render("Add New Article")
	}

	content := strings.Join([]string{
		panelTitleStyle.Render("Add New Article"),
		"",
		label(fieldTitle, "Title"),
		p.title.View(),
		"",
		label(fieldCategory, "Type"),
		strings.Join(radios, "    "),
		"",
		label(fieldBody, "Article"),
		p.body.View(),
		"",
		submit,
		helpDimStyle.Render("tab next field  space select type  ctrl+s submit  esc close"),
	}, "\n")

	return panelStyle.Width(panelWidth(width)).Render(content)
}
