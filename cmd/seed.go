package cmd

import (
	"context"
	"fmt"

	"github.com/matheuskafuri/pageboard/internal/category"
	"github.com/matheuskafuri/pageboard/internal/config"
	"github.com/matheuskafuri/pageboard/internal/document"
	"github.com/matheuskafuri/pageboard/internal/feed"
	"github.com/matheuskafuri/pageboard/internal/logging"
	"github.com/matheuskafuri/pageboard/internal/page"
	"go.uber.org/zap"
)

// session is everything one run of the page needs.
type session struct {
	cfg *config.Config
	log *zap.Logger
	doc *document.Document
	ctl *page.Controller
}

func (s *session) Close() {
	s.doc.Close()
	s.log.Sync()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	path := cfg.LogFile
	if flagDebug && path == "" {
		path = config.LogPath()
	}
	return logging.New(path, flagDebug)
}

// openSession loads config, builds the initial page and initializes the
// controller.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagSeed != "" {
		cfg.SeedFeed = flagSeed
	}

	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	doc, err := document.Open()
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}

	s := &session{cfg: cfg, log: log, doc: doc}
	if err := seedDocument(ctx, doc, cfg, log); err != nil {
		s.Close()
		return nil, err
	}

	var filter page.Filter
	for _, c := range category.All() {
		filter.Set(c, cfg.Checked(c))
	}
	s.ctl = page.New(doc, page.Options{Logger: log, Link: cfg.Link(), Filter: filter})
	if err := s.ctl.Init(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// seedDocument appends the configured articles, then the seed feed items.
func seedDocument(ctx context.Context, doc *document.Document, cfg *config.Config, log *zap.Logger) error {
	articles := cfg.Articles
	if cfg.SeedFeed != "" {
		seeded, err := feed.NewParser().ParseFile(cfg.SeedFeed)
		if err != nil {
			return err
		}
		log.Info("seed feed loaded", zap.String("path", cfg.SeedFeed), zap.Int("articles", len(seeded)))
		articles = append(articles[:len(articles):len(articles)], seeded...)
	}

	for i, a := range articles {
		// unrecognized tags are kept so the filter leaves those cards alone
		cat, ok := category.Parse(a.Category)
		if !ok {
			cat = category.Category(a.Category)
		}
		card := document.Card{
			ID:       page.CardID(i + 1),
			Category: cat,
			Title:    a.Title,
			Body:     a.Body,
			Link:     cfg.Link(),
		}
		if err := doc.Append(ctx, card); err != nil {
			return fmt.Errorf("seeding articles: %w", err)
		}
	}
	return nil
}
