package page

import (
	"strings"

	"github.com/matheuskafuri/pageboard/internal/category"
	"github.com/matheuskafuri/pageboard/internal/document"
)

// Filter holds the three category checkboxes.
type Filter struct {
	Opinion bool
	Recipe  bool
	Update  bool
}

// ShowAll returns a filter with every checkbox checked.
func ShowAll() Filter {
	return Filter{Opinion: true, Recipe: true, Update: true}
}

// Checked reports the checkbox state for c. known is false for tags outside
// the fixed categories.
func (f Filter) Checked(c category.Category) (checked, known bool) {
	switch c {
	case category.Opinion:
		return f.Opinion, true
	case category.Recipe:
		return f.Recipe, true
	case category.Update:
		return f.Update, true
	}
	return false, false
}

func (f *Filter) Set(c category.Category, checked bool) {
	switch c {
	case category.Opinion:
		f.Opinion = checked
	case category.Recipe:
		f.Recipe = checked
	case category.Update:
		f.Update = checked
	}
}

func (f *Filter) Toggle(c category.Category) {
	checked, known := f.Checked(c)
	if known {
		f.Set(c, !checked)
	}
}

func (f Filter) activeCategories() []category.Category {
	var out []category.Category
	for _, c := range category.All() {
		if checked, _ := f.Checked(c); checked {
			out = append(out, c)
		}
	}
	return out
}

// Label summarizes the checked categories for the status bar.
func (f Filter) Label() string {
	active := f.activeCategories()
	switch len(active) {
	case len(category.All()):
		return "All"
	case 0:
		return "None"
	}
	labels := make([]string, len(active))
	for i, c := range active {
		labels[i] = c.Label()
	}
	return strings.Join(labels, ", ")
}

// Plan computes the visibility changes needed for cards to match f.
// Cards with an unrecognized category are left as they are.
func Plan(cards []document.Card, f Filter) map[string]bool {
	changes := make(map[string]bool)
	for _, c := range cards {
		checked, known := f.Checked(c.Category)
		if !known {
			continue
		}
		if hidden := !checked; hidden != c.Hidden {
			changes[c.ID] = hidden
		}
	}
	return changes
}
