package document

import "github.com/matheuskafuri/pageboard/internal/category"

// DefaultLink is the "Read more..." destination of every card.
const DefaultLink = "moreDetails.html"

type Card struct {
	ID       string
	Category category.Category
	Title    string
	Body     string
	Link     string
	Hidden   bool
}

type QueryOpts struct {
	Category    category.Category
	VisibleOnly bool
}
