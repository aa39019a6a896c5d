// Package textutil holds the string clean-up shared by the seed feed and the
// card list.
package textutil

import "strings"

// Squash collapses every run of whitespace, newlines included, into a single
// space and trims the ends.
func Squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate squashes s and cuts it to at most n runes, marking the cut with an
// ellipsis when there is room for one.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	s = Squash(s)
	if r := []rune(s); len(r) > n {
		if n <= 3 {
			return string(r[:n])
		}
		return string(r[:n-3]) + "..."
	}
	return s
}

// StripHTML drops anything between angle brackets and squashes the rest.
func StripHTML(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return Squash(b.String())
}
