package page

import (
	"context"
	"errors"
	"testing"

	"github.com/matheuskafuri/pageboard/internal/category"
	"github.com/matheuskafuri/pageboard/internal/document"
)

func testController(t *testing.T, cards []document.Card) *Controller {
	t.Helper()
	doc, err := document.Open()
	if err != nil {
		t.Fatalf("opening document: %v", err)
	}
	t.Cleanup(func() { doc.Close() })

	for _, c := range cards {
		if err := doc.Append(context.Background(), c); err != nil {
			t.Fatalf("append %s: %v", c.ID, err)
		}
	}

	c := New(doc, Options{Filter: ShowAll()})
	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	return c
}

func threeCards() []document.Card {
	return []document.Card{
		{ID: "a1", Category: category.Opinion, Title: "Tabs", Body: "Tabs win."},
		{ID: "a2", Category: category.Recipe, Title: "Bread", Body: "Knead it."},
		{ID: "a3", Category: category.Update, Title: "v2", Body: "Out now."},
	}
}

func visibleIDs(t *testing.T, c *Controller) map[string]bool {
	t.Helper()
	cards, err := c.Cards(context.Background())
	if err != nil {
		t.Fatalf("cards: %v", err)
	}
	out := make(map[string]bool, len(cards))
	for _, card := range cards {
		out[card.ID] = !card.Hidden
	}
	return out
}

func TestInitHidesPanels(t *testing.T) {
	c := testController(t, threeCards())
	c.Panel = PanelAdd
	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	if c.Panel != PanelNone {
		t.Errorf("expected no panel after init, got %v", c.Panel)
	}
}

func TestToggleFilterTwice(t *testing.T) {
	c := testController(t, nil)

	c.ToggleFilterPanel()
	if c.Panel != PanelFilter {
		t.Fatalf("expected filter panel shown, got %v", c.Panel)
	}
	c.ToggleFilterPanel()
	if c.Panel != PanelNone {
		t.Errorf("expected no panel after second toggle, got %v", c.Panel)
	}
}

func TestPanelsMutuallyExclusive(t *testing.T) {
	type step struct {
		filter bool
		want   Panel
	}
	tests := []struct {
		name  string
		steps []step
	}{
		{"filter then add", []step{{true, PanelFilter}, {false, PanelAdd}}},
		{"add then filter", []step{{false, PanelAdd}, {true, PanelFilter}}},
		{"add twice", []step{{false, PanelAdd}, {false, PanelNone}}},
		{"filter add add", []step{{true, PanelFilter}, {false, PanelAdd}, {false, PanelNone}}},
		{"add filter filter", []step{{false, PanelAdd}, {true, PanelFilter}, {true, PanelNone}}},
	}
	for _, tt := range tests {
		var p Panel
		for i, s := range tt.steps {
			if s.filter {
				p = p.ToggleFilter()
			} else {
				p = p.ToggleAdd()
			}
			if p != s.want {
				t.Errorf("%s: step %d: got %v, want %v", tt.name, i, p, s.want)
			}
		}
	}
}

func TestUncheckHidesOnlyThatCategory(t *testing.T) {
	for _, cat := range category.All() {
		c := testController(t, threeCards())

		c.Filter.Set(cat, false)
		if err := c.ApplyFilter(context.Background()); err != nil {
			t.Fatalf("apply: %v", err)
		}
		cards, err := c.Cards(context.Background())
		if err != nil {
			t.Fatalf("cards: %v", err)
		}
		for _, card := range cards {
			if wantHidden := card.Category == cat; card.Hidden != wantHidden {
				t.Errorf("unchecked %s: card %s hidden=%v, want %v", cat, card.ID, card.Hidden, wantHidden)
			}
		}

		c.Filter.Set(cat, true)
		if err := c.ApplyFilter(context.Background()); err != nil {
			t.Fatalf("apply: %v", err)
		}
		for id, visible := range visibleIDs(t, c) {
			if !visible {
				t.Errorf("rechecked %s: card %s still hidden", cat, id)
			}
		}
	}
}

func TestApplyFilterIdempotent(t *testing.T) {
	c := testController(t, threeCards())
	c.Filter = Filter{Opinion: true}

	if err := c.ApplyFilter(context.Background()); err != nil {
		t.Fatalf("apply: %v", err)
	}
	first := visibleIDs(t, c)
	if err := c.ApplyFilter(context.Background()); err != nil {
		t.Fatalf("apply: %v", err)
	}
	second := visibleIDs(t, c)

	for id, v := range first {
		if second[id] != v {
			t.Errorf("card %s changed between passes: %v -> %v", id, v, second[id])
		}
	}

	cards, _ := c.Cards(context.Background())
	if changes := Plan(cards, c.Filter); len(changes) != 0 {
		t.Errorf("expected no pending changes, got %v", changes)
	}
}

func TestUnknownCategoryUntouched(t *testing.T) {
	cards := append(threeCards(),
		document.Card{ID: "a4", Category: "gossip", Title: "Psst", Body: "Heard it."},
		document.Card{ID: "a5", Category: "gossip", Title: "Shh", Body: "Quiet.", Hidden: true},
	)
	c := testController(t, cards)
	c.Filter = Filter{}

	if err := c.ApplyFilter(context.Background()); err != nil {
		t.Fatalf("apply: %v", err)
	}
	got := visibleIDs(t, c)
	if !got["a4"] {
		t.Error("visible card with unknown category should stay visible")
	}
	if got["a5"] {
		t.Error("hidden card with unknown category should stay hidden")
	}
	for _, id := range []string{"a1", "a2", "a3"} {
		if got[id] {
			t.Errorf("card %s should be hidden with every box unchecked", id)
		}
	}
}

func TestSubmitValidationOrder(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want error
		msg  string
	}{
		{"empty title", Form{Title: "", Category: category.Recipe, Body: "x"}, ErrMissingTitle, "Please enter a title."},
		{"blank title", Form{Title: "   ", Category: category.Recipe, Body: "x"}, ErrMissingTitle, "Please enter a title."},
		{"title before category", Form{}, ErrMissingTitle, "Please enter a title."},
		{"no category", Form{Title: "Soup", Body: "x"}, ErrMissingCategory, "Please pick an article type."},
		{"category before body", Form{Title: "Soup"}, ErrMissingCategory, "Please pick an article type."},
		{"blank body", Form{Title: "Soup", Category: category.Recipe, Body: " \n\t"}, ErrMissingBody, "Please enter some article text."},
	}
	for _, tt := range tests {
		c := testController(t, threeCards())
		c.Form = tt.form

		_, err := c.SubmitNewArticle(context.Background())
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected *ValidationError, got %T", tt.name, err)
			continue
		}
		if verr.Message() != tt.msg {
			t.Errorf("%s: message %q, want %q", tt.name, verr.Message(), tt.msg)
		}
		if c.Form != tt.form {
			t.Errorf("%s: form changed on failure: %+v", tt.name, c.Form)
		}

		n, err := c.doc.Count(context.Background())
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if n != 3 {
			t.Errorf("%s: expected no card appended, have %d", tt.name, n)
		}
	}
}

func TestSubmitAppendsCard(t *testing.T) {
	c := testController(t, threeCards())
	c.Form = Form{Title: "  Soup ", Category: category.Recipe, Body: "Warm it up\n"}

	card, err := c.SubmitNewArticle(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	cards, err := c.Cards(context.Background())
	if err != nil {
		t.Fatalf("cards: %v", err)
	}
	if len(cards) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(cards))
	}
	last := cards[3]
	if last.ID != "a4" || card.ID != "a4" {
		t.Errorf("expected id a4, got %s (returned %s)", last.ID, card.ID)
	}
	if last.Category.Label() != "Recipe" {
		t.Errorf("expected marker Recipe, got %q", last.Category.Label())
	}
	if last.Title != "Soup" {
		t.Errorf("expected heading Soup, got %q", last.Title)
	}
	if last.Body != "Warm it up" {
		t.Errorf("expected paragraph %q, got %q", "Warm it up", last.Body)
	}
	if last.Link != document.DefaultLink {
		t.Errorf("expected link %q, got %q", document.DefaultLink, last.Link)
	}
	if last.Hidden {
		t.Error("new recipe card should be visible while Recipe is checked")
	}
	if c.Form != (Form{}) {
		t.Errorf("expected cleared form, got %+v", c.Form)
	}
}

func TestSubmitRespectsActiveFilter(t *testing.T) {
	c := testController(t, threeCards())
	c.Filter.Set(category.Recipe, false)
	if err := c.ApplyFilter(context.Background()); err != nil {
		t.Fatalf("apply: %v", err)
	}

	c.Form = Form{Title: "Soup", Category: category.Recipe, Body: "Warm it up"}
	card, err := c.SubmitNewArticle(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !card.Hidden {
		t.Error("returned card should report hidden")
	}
	if visibleIDs(t, c)[card.ID] {
		t.Error("new recipe card should be hidden while Recipe is unchecked")
	}
}

func TestSequentialIDs(t *testing.T) {
	initial := threeCards()
	c := testController(t, initial)

	for k := 1; k <= 5; k++ {
		c.Form = Form{Title: "t", Category: category.Update, Body: "b"}
		card, err := c.SubmitNewArticle(context.Background())
		if err != nil {
			t.Fatalf("submit %d: %v", k, err)
		}
		if want := CardID(len(initial) + k); card.ID != want {
			t.Errorf("card %d: id %s, want %s", k, card.ID, want)
		}
	}
}

func TestFilterLabel(t *testing.T) {
	tests := []struct {
		f    Filter
		want string
	}{
		{ShowAll(), "All"},
		{Filter{}, "None"},
		{Filter{Opinion: true, Update: true}, "Opinion, Update"},
		{Filter{Recipe: true}, "Recipe"},
	}
	for _, tt := range tests {
		if got := tt.f.Label(); got != tt.want {
			t.Errorf("%+v.Label() = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestFilterToggle(t *testing.T) {
	f := ShowAll()
	f.Toggle(category.Update)
	if f.Update {
		t.Error("expected Update unchecked")
	}
	f.Toggle("gossip")
	if f != (Filter{Opinion: true, Recipe: true}) {
		t.Errorf("unknown toggle changed filter: %+v", f)
	}
}
