// Package feed turns a local RSS or Atom file into seed articles.
package feed

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matheuskafuri/pageboard/internal/category"
	"github.com/matheuskafuri/pageboard/internal/config"
	"github.com/matheuskafuri/pageboard/internal/textutil"
	"github.com/mmcdole/gofeed"
)

const maxBody = 300

type Parser struct {
	parser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{parser: gofeed.NewParser()}
}

// ParseFile reads the feed at path.
func (p *Parser) ParseFile(path string) ([]config.Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed feed: %w", err)
	}
	defer f.Close()
	return p.Parse(f)
}

func (p *Parser) Parse(r io.Reader) ([]config.Article, error) {
	feed, err := p.parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing seed feed: %w", err)
	}

	articles := make([]config.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := strings.TrimSpace(textutil.StripHTML(item.Title))
		if title == "" {
			continue
		}

		body := item.Description
		if body == "" {
			body = item.Content
		}
		body = textutil.Truncate(textutil.StripHTML(body), maxBody)

		articles = append(articles, config.Article{
			Category: itemCategory(item.Categories, title, body),
			Title:    title,
			Body:     body,
		})
	}
	return articles, nil
}

// itemCategory picks the first recognized tag. Items whose tags are all
// unrecognized keep the first one as is; untagged items are classified by
// keywords.
func itemCategory(tags []string, title, body string) string {
	for _, t := range tags {
		if c, ok := category.Parse(t); ok {
			return string(c)
		}
	}
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			return t
		}
	}
	return string(category.Classify(title, body))
}
