package document

import (
	"context"
	"errors"
	"testing"

	"github.com/matheuskafuri/pageboard/internal/category"
)

func testDoc(t *testing.T) *Document {
	t.Helper()
	d, err := Open()
	if err != nil {
		t.Fatalf("opening test document: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func sampleCards() []Card {
	return []Card{
		{ID: "a1", Category: category.Opinion, Title: "Tabs", Body: "Tabs are better."},
		{ID: "a2", Category: category.Recipe, Title: "Soup", Body: "Warm it up"},
		{ID: "a3", Category: category.Update, Title: "v2", Body: "Released."},
	}
}

func seed(t *testing.T, d *Document, cards []Card) {
	t.Helper()
	for _, c := range cards {
		if err := d.Append(context.Background(), c); err != nil {
			t.Fatalf("append %s: %v", c.ID, err)
		}
	}
}

func TestAppendAndCards(t *testing.T) {
	d := testDoc(t)
	seed(t, d, sampleCards())

	got, err := d.Cards(context.Background(), QueryOpts{})
	if err != nil {
		t.Fatalf("cards: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(got))
	}
	for i, want := range []string{"a1", "a2", "a3"} {
		if got[i].ID != want {
			t.Errorf("card %d: expected %s, got %s", i, want, got[i].ID)
		}
	}
	if got[1].Link != DefaultLink {
		t.Errorf("expected default link %q, got %q", DefaultLink, got[1].Link)
	}
	if got[1].Category != category.Recipe {
		t.Errorf("expected recipe, got %q", got[1].Category)
	}
}

func TestAppendDuplicateID(t *testing.T) {
	d := testDoc(t)
	seed(t, d, sampleCards())

	err := d.Append(context.Background(), Card{ID: "a2", Category: category.Update, Title: "x", Body: "y"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestCount(t *testing.T) {
	d := testDoc(t)
	n, err := d.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("expected empty document, got %d", n)
	}

	seed(t, d, sampleCards())
	if err := d.SetHidden(context.Background(), map[string]bool{"a1": true}); err != nil {
		t.Fatalf("set hidden: %v", err)
	}

	n, err = d.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("hidden cards still count: expected 3, got %d", n)
	}
}

func TestSetHiddenAndVisibleOnly(t *testing.T) {
	d := testDoc(t)
	seed(t, d, sampleCards())

	if err := d.SetHidden(context.Background(), map[string]bool{"a1": true, "a3": true}); err != nil {
		t.Fatalf("set hidden: %v", err)
	}

	got, err := d.Cards(context.Background(), QueryOpts{VisibleOnly: true})
	if err != nil {
		t.Fatalf("cards: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a2" {
		t.Fatalf("expected only a2 visible, got %v", got)
	}

	if err := d.SetHidden(context.Background(), map[string]bool{"a1": false}); err != nil {
		t.Fatalf("set hidden: %v", err)
	}
	got, err = d.Cards(context.Background(), QueryOpts{VisibleOnly: true})
	if err != nil {
		t.Fatalf("cards: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 visible cards, got %d", len(got))
	}
}

func TestQueryCategory(t *testing.T) {
	d := testDoc(t)
	seed(t, d, sampleCards())

	got, err := d.Cards(context.Background(), QueryOpts{Category: category.Update})
	if err != nil {
		t.Fatalf("cards: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a3" {
		t.Errorf("expected only a3, got %v", got)
	}
}

func TestUnknownCategoryRoundTrip(t *testing.T) {
	d := testDoc(t)
	seed(t, d, []Card{{ID: "a1", Category: "gossip", Title: "t", Body: "b"}})

	got, err := d.Cards(context.Background(), QueryOpts{})
	if err != nil {
		t.Fatalf("cards: %v", err)
	}
	if got[0].Category != "gossip" || got[0].Category.Known() {
		t.Errorf("expected unknown tag to be kept, got %q", got[0].Category)
	}
}
