package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/pageboard/internal/browser"
	"github.com/matheuskafuri/pageboard/internal/category"
	"github.com/matheuskafuri/pageboard/internal/config"
	"github.com/matheuskafuri/pageboard/internal/document"
	"github.com/matheuskafuri/pageboard/internal/page"
	"go.uber.org/zap"
)

type App struct {
	ctx  context.Context
	ctl  *page.Controller
	cfg  *config.Config
	log  *zap.Logger
	open func(string) error
	keys keyMap

	// visible cards in document order
	cards  []document.Card
	total  int
	cursor int

	width  int
	height int

	// Sub-components
	filter filterPanel
	add    addPanel

	// State
	alert string
	help  bool
	err   error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Ctl    *page.Controller
	Cfg    *config.Config
	Logger *zap.Logger
	// Open launches "Read more..." links; defaults to the system browser.
	Open func(string) error
}

// NewApp builds the UI over an initialized controller.
func NewApp(ctx context.Context, opts RunOpts) *App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	open := opts.Open
	if open == nil {
		open = browser.Open
	}
	cfg := opts.Cfg
	if cfg == nil {
		cfg = &config.Config{}
	}

	a := &App{
		ctx:  ctx,
		ctl:  opts.Ctl,
		cfg:  cfg,
		log:  log,
		open: open,
		keys: defaultKeyMap(),
		add:  newAddPanel(),
	}
	a.reload()
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// reload re-reads the document after a mutation.
func (a *App) reload() {
	all, err := a.ctl.Cards(a.ctx)
	if err != nil {
		a.err = err
		return
	}
	visible := make([]document.Card, 0, len(all))
	for _, c := range all {
		if !c.Hidden {
			visible = append(visible, c)
		}
	}
	a.total = len(all)
	a.cards = visible
	if a.cursor >= len(a.cards) {
		a.cursor = max(0, len(a.cards)-1)
	}
}

func openLinkCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		if err := open(url); err != nil {
			return linkErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.add.body.SetWidth(panelWidth(a.width) - 4)
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case linkErrMsg:
		a.err = msg.err
		return a, nil
	}

	// cursor blink and friends
	if a.ctl.Panel == page.PanelAdd {
		return a, a.add.updateText(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.alert != "" {
		if key.Matches(msg, a.keys.Dismiss) {
			a.alert = ""
		}
		return a, nil
	}

	if a.help {
		if key.Matches(msg, a.keys.Help, a.keys.Close, a.keys.Quit) {
			a.help = false
		}
		return a, nil
	}

	// plain letters go to the focused text field, not to the triggers
	typing := a.ctl.Panel == page.PanelAdd && a.add.textFocused() && msg.Type == tea.KeyRunes
	if !typing {
		switch {
		case key.Matches(msg, a.keys.FilterPanel):
			return a.toggleFilter()
		case key.Matches(msg, a.keys.AddPanel):
			return a.toggleAdd()
		}
	}

	switch a.ctl.Panel {
	case page.PanelFilter:
		return a.handleFilterKey(msg)
	case page.PanelAdd:
		return a.handleAddKey(msg)
	}
	return a.handleListKey(msg)
}

func (a *App) toggleFilter() (tea.Model, tea.Cmd) {
	a.ctl.ToggleFilterPanel()
	a.add.blur()
	return a, nil
}

func (a *App) toggleAdd() (tea.Model, tea.Cmd) {
	a.ctl.ToggleAddPanel()
	if a.ctl.Panel == page.PanelAdd {
		return a, a.add.focus(fieldTitle)
	}
	a.add.blur()
	return a, nil
}

func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.cards)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Open):
		return a, a.openSelected()
	case key.Matches(msg, a.keys.Help):
		a.help = true
	}
	return a, nil
}

func (a *App) openSelected() tea.Cmd {
	if len(a.cards) == 0 || a.cursor >= len(a.cards) {
		return nil
	}
	url, err := a.cfg.ResolveLink(a.cards[a.cursor].Link)
	if err != nil {
		a.err = err
		return nil
	}
	a.log.Debug("opening link", zap.String("id", a.cards[a.cursor].ID), zap.String("url", url))
	return openLinkCmd(a.open, url)
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Close):
		return a.toggleFilter()
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Left):
		a.filter.left()
	case key.Matches(msg, a.keys.Right):
		a.filter.right()
	case key.Matches(msg, a.keys.Toggle):
		a.toggleCheckbox(a.filter.current())
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.cards)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	default:
		if c, ok := categoryByDigit(msg.String()); ok {
			a.toggleCheckbox(c)
		}
	}
	return a, nil
}

// categoryByDigit maps "1".."3" to the categories in display order.
func categoryByDigit(s string) (category.Category, bool) {
	all := category.All()
	if len(s) != 1 || s[0] < '1' || int(s[0]-'1') >= len(all) {
		return "", false
	}
	return all[s[0]-'1'], true
}

func (a *App) toggleCheckbox(c category.Category) {
	a.ctl.Filter.Toggle(c)
	if err := a.ctl.ApplyFilter(a.ctx); err != nil {
		a.err = err
		return
	}
	a.reload()
}

func (a *App) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Close):
		return a.toggleAdd()
	case key.Matches(msg, a.keys.Submit):
		return a.submit()
	case key.Matches(msg, a.keys.NextField):
		return a, a.add.focus(a.add.field + 1)
	case key.Matches(msg, a.keys.PrevField):
		return a, a.add.focus(a.add.field - 1)
	}

	switch a.add.field {
	case fieldTitle, fieldBody:
		return a, a.add.updateText(msg)
	case fieldCategory:
		switch {
		case key.Matches(msg, a.keys.Left):
			if a.add.radioCursor > 0 {
				a.add.radioCursor--
			}
		case key.Matches(msg, a.keys.Right):
			if a.add.radioCursor < len(category.All())-1 {
				a.add.radioCursor++
			}
		case key.Matches(msg, a.keys.Toggle):
			a.ctl.Form.Category = category.All()[a.add.radioCursor]
		default:
			if c, ok := categoryByDigit(msg.String()); ok {
				a.ctl.Form.Category = c
				a.add.radioCursor = int(msg.String()[0] - '1')
			}
		}
	case fieldSubmit:
		if key.Matches(msg, a.keys.Toggle) {
			return a.submit()
		}
	}
	return a, nil
}

func (a *App) submit() (tea.Model, tea.Cmd) {
	a.add.fill(&a.ctl.Form)
	card, err := a.ctl.SubmitNewArticle(a.ctx)

	var verr *page.ValidationError
	if errors.As(err, &verr) {
		a.alert = verr.Message()
		return a, nil
	}
	if err != nil {
		a.err = err
		return a, nil
	}

	a.add.reset(a.ctl.Form)
	a.reload()
	if !card.Hidden {
		for i, c := range a.cards {
			if c.ID == card.ID {
				a.cursor = i
			}
		}
	}
	return a, a.add.focus(fieldTitle)
}

func (a *App) hints() string {
	switch a.ctl.Panel {
	case page.PanelFilter:
		return hints(a.keys.Toggle, a.keys.Close, a.keys.AddPanel)
	case page.PanelAdd:
		return hints(a.keys.NextField, a.keys.Submit, a.keys.Close)
	}
	return hints(a.keys.FilterPanel, a.keys.AddPanel, a.keys.Open, a.keys.Help, a.keys.Quit)
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  pageboard")
	}

	if a.alert != "" {
		return renderAlert(a.width, a.height, a.alert)
	}

	if a.help {
		return a.renderHelp()
	}

	// Header
	headerLeft := headerStyle.Render("pageboard")
	headerRight := headerHintStyle.Render("Filter Articles [f]   Add New Article [a] ")
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	var panel string
	switch a.ctl.Panel {
	case page.PanelFilter:
		panel = a.filter.render(a.ctl.Filter, a.width)
	case page.PanelAdd:
		panel = a.add.render(a.ctl.Form, a.width)
	}

	contentHeight := a.height - 2 - lipgloss.Height(panel)
	if panel == "" {
		contentHeight = a.height - 2
	}
	if contentHeight < cardHeight {
		contentHeight = cardHeight
	}

	list := renderList(a.cards, a.cursor, contentHeight, a.width-4)
	list = lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight).Render(list)

	status := renderStatusBar(len(a.cards), a.total, a.ctl.Filter.Label(), a.hints(), a.width)
	if a.err != nil {
		status = errorStyle.Render(a.err.Error())
	}

	parts := []string{header}
	if panel != "" {
		parts = append(parts, panel)
	}
	parts = append(parts, list, status)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("pageboard")
	dim := helpDimStyle

	help := title + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		dim.Render("Panels") + "\n" +
		"  f, ctrl+f      Show/hide the filter panel\n" +
		"  a, ctrl+n      Show/hide the add-article panel\n" +
		"  esc            Close the open panel\n\n" +
		dim.Render("Articles") + "\n" +
		"  j/k, ↑/↓       Move between articles\n" +
		"  o, enter       Open \"Read more...\"\n\n" +
		dim.Render("Filter Panel") + "\n" +
		"  ←/→, h/l       Move between checkboxes\n" +
		"  space/enter    Toggle checkbox\n" +
		"  1-3            Toggle checkbox by number\n\n" +
		dim.Render("Add Panel") + "\n" +
		"  tab/shift+tab  Move between fields\n" +
		"  space, 1-3     Pick the article type\n" +
		"  ctrl+s         Submit\n\n" +
		dim.Render("General") + "\n" +
		"  ?              Toggle this help\n" +
		"  q, ctrl+c      Quit"

	card := helpCardStyle.Render(strings.TrimRight(help, "\n"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application. The controller must already be initialized.
func Run(ctx context.Context, opts RunOpts) error {
	app := NewApp(ctx, opts)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
