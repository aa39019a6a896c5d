// Package page implements the page controller: the panel toggler, the
// category filter and the article creator, over a card document.
package page

import (
	"context"
	"fmt"

	"github.com/matheuskafuri/pageboard/internal/category"
	"github.com/matheuskafuri/pageboard/internal/document"
	"go.uber.org/zap"
)

// Store is the document the controller reads and mutates.
type Store interface {
	Append(ctx context.Context, c document.Card) error
	Cards(ctx context.Context, opts document.QueryOpts) ([]document.Card, error)
	Count(ctx context.Context) (int, error)
	SetHidden(ctx context.Context, changes map[string]bool) error
}

// Options configures a Controller.
type Options struct {
	Logger *zap.Logger
	// Link is the "Read more..." destination of created cards.
	Link   string
	Filter Filter
}

type Controller struct {
	doc  Store
	log  *zap.Logger
	link string

	Panel  Panel
	Filter Filter
	Form   Form
}

func New(doc Store, opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	link := opts.Link
	if link == "" {
		link = document.DefaultLink
	}
	return &Controller{
		doc:    doc,
		log:    log,
		link:   link,
		Filter: opts.Filter,
	}
}

// Init hides both panels and runs the first filter pass. It must complete
// before any input is handled.
func (c *Controller) Init(ctx context.Context) error {
	c.Panel = PanelNone
	if err := c.ApplyFilter(ctx); err != nil {
		return fmt.Errorf("initial filter: %w", err)
	}
	return nil
}

func (c *Controller) ToggleFilterPanel() {
	c.Panel = c.Panel.ToggleFilter()
	c.log.Debug("panel toggled", zap.String("trigger", "filter"), zap.Stringer("panel", c.Panel))
}

func (c *Controller) ToggleAddPanel() {
	c.Panel = c.Panel.ToggleAdd()
	c.log.Debug("panel toggled", zap.String("trigger", "add"), zap.Stringer("panel", c.Panel))
}

// ApplyFilter sets every card's visibility from the current checkboxes.
func (c *Controller) ApplyFilter(ctx context.Context) error {
	cards, err := c.doc.Cards(ctx, document.QueryOpts{})
	if err != nil {
		return err
	}
	changes := Plan(cards, c.Filter)
	if err := c.doc.SetHidden(ctx, changes); err != nil {
		return fmt.Errorf("applying filter: %w", err)
	}
	c.log.Debug("filter applied",
		zap.String("filter", c.Filter.Label()),
		zap.Int("cards", len(cards)),
		zap.Int("changed", len(changes)),
	)
	return nil
}

// SubmitNewArticle validates the form, appends the new card and clears the
// form. On a validation failure it returns a *ValidationError and changes
// nothing.
func (c *Controller) SubmitNewArticle(ctx context.Context) (document.Card, error) {
	if err := c.Form.Validate(); err != nil {
		c.log.Info("article rejected", zap.Error(err))
		return document.Card{}, err
	}

	count, err := c.doc.Count(ctx)
	if err != nil {
		return document.Card{}, err
	}
	card, err := NewCard(c.Form, count, c.link)
	if err != nil {
		return document.Card{}, err
	}
	if err := c.doc.Append(ctx, card); err != nil {
		return document.Card{}, err
	}
	c.Form = Form{}
	c.log.Info("article added",
		zap.String("id", card.ID),
		zap.String("category", string(card.Category)),
	)

	if err := c.ApplyFilter(ctx); err != nil {
		return card, err
	}
	// reflect the visibility the filter just assigned
	if checked, known := c.Filter.Checked(card.Category); known {
		card.Hidden = !checked
	}
	return card, nil
}

// Cards returns all cards in document order, hidden ones included.
func (c *Controller) Cards(ctx context.Context) ([]document.Card, error) {
	return c.doc.Cards(ctx, document.QueryOpts{})
}

// CardsOf returns the cards tagged cat in document order, or only the shown
// ones when visibleOnly is set.
func (c *Controller) CardsOf(ctx context.Context, cat category.Category, visibleOnly bool) ([]document.Card, error) {
	return c.doc.Cards(ctx, document.QueryOpts{Category: cat, VisibleOnly: visibleOnly})
}

// VisibleCards returns the cards currently shown.
func (c *Controller) VisibleCards(ctx context.Context) ([]document.Card, error) {
	return c.doc.Cards(ctx, document.QueryOpts{VisibleOnly: true})
}
