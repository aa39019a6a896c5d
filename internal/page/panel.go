package page

// Panel is the panel currently shown. A single value means the filter and
// add panels can never be open together.
type Panel int

const (
	PanelNone Panel = iota
	PanelFilter
	PanelAdd
)

func (p Panel) String() string {
	switch p {
	case PanelFilter:
		return "filter"
	case PanelAdd:
		return "add"
	}
	return "none"
}

// ToggleFilter hides the add panel and flips the filter panel.
func (p Panel) ToggleFilter() Panel {
	if p == PanelFilter {
		return PanelNone
	}
	return PanelFilter
}

// ToggleAdd hides the filter panel and flips the add panel.
func (p Panel) ToggleAdd() Panel {
	if p == PanelAdd {
		return PanelNone
	}
	return PanelAdd
}
