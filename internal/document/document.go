package document

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/matheuskafuri/pageboard/internal/category"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrDuplicateID is returned when a card with the same ID already exists.
var ErrDuplicateID = errors.New("duplicate card id")

// Document holds the cards of one page session. It is in-memory only and
// disappears when closed.
type Document struct {
	db *sql.DB
}

func Open() (*Document, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	d := &Document{db: db}
	if err := d.init(); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

func (d *Document) init() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS cards (
			seq      INTEGER PRIMARY KEY AUTOINCREMENT,
			id       TEXT NOT NULL UNIQUE,
			category TEXT NOT NULL,
			title    TEXT NOT NULL,
			body     TEXT NOT NULL,
			link     TEXT NOT NULL,
			hidden   INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_cards_category ON cards(category);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (d *Document) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Append adds c as the last card of the document.
func (d *Document) Append(ctx context.Context, c Card) error {
	if c.Link == "" {
		c.Link = DefaultLink
	}
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO cards (id, category, title, body, link, hidden)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.ID, string(c.Category), c.Title, c.Body, c.Link, c.Hidden)
	if err != nil {
		var serr *sqlite.Error
		if errors.As(err, &serr) && serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return fmt.Errorf("appending card %s: %w", c.ID, ErrDuplicateID)
		}
		return fmt.Errorf("appending card %s: %w", c.ID, err)
	}
	return nil
}

// Cards returns cards in document order.
func (d *Document) Cards(ctx context.Context, opts QueryOpts) ([]Card, error) {
	var (
		where []string
		args  []interface{}
	)

	if opts.Category != "" {
		where = append(where, "category = ?")
		args = append(args, string(opts.Category))
	}
	if opts.VisibleOnly {
		where = append(where, "hidden = 0")
	}

	query := "SELECT id, category, title, body, link, hidden FROM cards"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY seq ASC"

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying cards: %w", err)
	}
	defer rows.Close()

	var cards []Card
	for rows.Next() {
		var (
			c   Card
			cat string
		)
		if err := rows.Scan(&c.ID, &cat, &c.Title, &c.Body, &c.Link, &c.Hidden); err != nil {
			return nil, fmt.Errorf("scanning card: %w", err)
		}
		c.Category = category.Category(cat)
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// Count returns the number of cards, hidden ones included.
func (d *Document) Count(ctx context.Context) (int, error) {
	var n int
	if err := d.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cards").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cards: %w", err)
	}
	return n, nil
}

// SetHidden updates the visibility of the given cards in one transaction.
func (d *Document) SetHidden(ctx context.Context, changes map[string]bool) error {
	if len(changes) == 0 {
		return nil
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "UPDATE cards SET hidden = ? WHERE id = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for id, hidden := range changes {
		if _, err := stmt.ExecContext(ctx, hidden, id); err != nil {
			return fmt.Errorf("updating card %s: %w", id, err)
		}
	}

	return tx.Commit()
}
