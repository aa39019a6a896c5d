package category

import (
	"fmt"
	"strings"
	"unicode"
)

// Category is the storage tag of an article card.
type Category string

const (
	Opinion Category = "opinion"
	Recipe  Category = "recipe"
	Update  Category = "update"
)

// All returns every known category in display order.
func All() []Category {
	return []Category{Opinion, Recipe, Update}
}

// Label returns the human-readable marker shown on a card.
func (c Category) Label() string {
	switch c {
	case Opinion:
		return "Opinion"
	case Recipe:
		return "Recipe"
	case Update:
		return "Update"
	}
	return string(c)
}

// Known reports whether c is one of the fixed categories.
func (c Category) Known() bool {
	switch c {
	case Opinion, Recipe, Update:
		return true
	}
	return false
}

// Parse maps a tag or label (case-insensitive) to a Category.
func Parse(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	c := Category(s)
	if c.Known() {
		return c, true
	}
	return "", false
}

// Aliases maps short CLI flags to categories.
var Aliases = map[string]Category{
	"o":    Opinion,
	"op":   Opinion,
	"r":    Recipe,
	"food": Recipe,
	"u":    Update,
	"news": Update,
}

// Resolve maps a CLI alias or category name to a Category.
func Resolve(alias string) (Category, error) {
	if c, ok := Parse(alias); ok {
		return c, nil
	}
	if c, ok := Aliases[strings.ToLower(strings.TrimSpace(alias))]; ok {
		return c, nil
	}
	valid := make([]string, 0, len(All()))
	for _, c := range All() {
		valid = append(valid, string(c))
	}
	return "", fmt.Errorf("unknown category %q (valid: %s)", alias, strings.Join(valid, ", "))
}

var keywords = map[Category][]string{
	Opinion: {
		"opinion", "think", "believe", "should", "why", "editorial", "column",
		"argue", "view", "take", "review", "rant",
	},
	Recipe: {
		"recipe", "cook", "bake", "soup", "sauce", "oven", "ingredient",
		"dinner", "breakfast", "salad", "bread", "minutes", "stir",
	},
	Update: {
		"update", "release", "announce", "news", "changelog", "version",
		"launch", "today", "new", "maintenance", "schedule",
	},
}

// Classify picks a category from title and body keywords.
// Title matches count double. Returns Update when nothing matches.
func Classify(title, body string) Category {
	titleTokens := tokenize(title)
	bodyTokens := tokenize(body)

	var best Category
	bestScore := 0
	for _, c := range All() {
		score := 0
		for _, kw := range keywords[c] {
			for _, t := range titleTokens {
				if strings.HasPrefix(t, kw) {
					score += 2
				}
			}
			for _, t := range bodyTokens {
				if strings.HasPrefix(t, kw) {
					score++
				}
			}
		}
		// ties keep the earlier category
		if score > bestScore {
			bestScore = score
			best = c
		}
	}

	if bestScore == 0 {
		return Update
	}
	return best
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
