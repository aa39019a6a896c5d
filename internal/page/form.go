package page

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matheuskafuri/pageboard/internal/category"
	"github.com/matheuskafuri/pageboard/internal/document"
)

var (
	ErrMissingTitle    = errors.New("missing title")
	ErrMissingCategory = errors.New("missing category")
	ErrMissingBody     = errors.New("missing body")
)

// ValidationError names the first form field that failed validation.
type ValidationError struct {
	Field string
	err   error
}

func (e *ValidationError) Error() string { return e.err.Error() }
func (e *ValidationError) Unwrap() error { return e.err }

// Message is the text shown to the user in the alert.
func (e *ValidationError) Message() string {
	switch e.err {
	case ErrMissingTitle:
		return "Please enter a title."
	case ErrMissingCategory:
		return "Please pick an article type."
	case ErrMissingBody:
		return "Please enter some article text."
	}
	return e.err.Error()
}

// Form is the add-article form.
type Form struct {
	Title    string
	Body     string
	Category category.Category
}

// Validate checks title, category and body in that order and stops at the
// first failure.
func (f Form) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return &ValidationError{Field: "title", err: ErrMissingTitle}
	}
	if !f.Category.Known() {
		return &ValidationError{Field: "category", err: ErrMissingCategory}
	}
	if strings.TrimSpace(f.Body) == "" {
		return &ValidationError{Field: "body", err: ErrMissingBody}
	}
	return nil
}

// CardID returns the identifier of the card at the given 1-based position.
func CardID(seq int) string {
	return fmt.Sprintf("a%d", seq)
}

// NewCard builds the card that follows count existing cards.
func NewCard(f Form, count int, link string) (document.Card, error) {
	if err := f.Validate(); err != nil {
		return document.Card{}, err
	}
	if link == "" {
		link = document.DefaultLink
	}
	return document.Card{
		ID:       CardID(count + 1),
		Category: f.Category,
		Title:    strings.TrimSpace(f.Title),
		Body:     strings.TrimSpace(f.Body),
		Link:     link,
	}, nil
}
