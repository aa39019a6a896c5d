package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/matheuskafuri/pageboard/internal/category"
	"github.com/matheuskafuri/pageboard/internal/document"
	"github.com/matheuskafuri/pageboard/internal/page"
	"github.com/spf13/cobra"
)

var (
	flagHide  []string
	flagAll   bool
	flagOnly  string
	flagTitle string
	flagType  string
	flagBody  string
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Print the initial page's cards",
	Long: `Build the page from config and seed feed, apply the filter and print the cards.

Use --hide to uncheck categories (opinion, recipe, update or their aliases)
and --only to list a single category.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		if err := uncheck(cmd.Context(), s.ctl, flagHide); err != nil {
			return err
		}
		var only category.Category
		if flagOnly != "" {
			if only, err = category.Resolve(flagOnly); err != nil {
				return fmt.Errorf("invalid --only value: %w", err)
			}
		}
		return printCards(cmd.Context(), cmd.OutOrStdout(), s.ctl, only, flagAll)
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an article to the initial page and print the result",
	Long: `Submit one article through the add form without opening the UI.

Fails with the same validation messages the form shows.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		if err := uncheck(cmd.Context(), s.ctl, flagHide); err != nil {
			return err
		}
		card, err := submit(cmd.Context(), s.ctl, flagTitle, flagType, flagBody)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s).\n", card.ID, visibility(card))
		return printCards(cmd.Context(), cmd.OutOrStdout(), s.ctl, "", flagAll)
	},
}

func init() {
	for _, c := range []*cobra.Command{cardsCmd, addCmd} {
		c.Flags().StringSliceVar(&flagHide, "hide", nil, "categories to uncheck in the filter")
		c.Flags().BoolVar(&flagAll, "all", false, "include hidden cards")
	}
	cardsCmd.Flags().StringVar(&flagOnly, "only", "", "list only this category")
	addCmd.Flags().StringVar(&flagTitle, "title", "", "article title")
	addCmd.Flags().StringVar(&flagType, "type", "", "article type: opinion, recipe, update or an alias")
	addCmd.Flags().StringVar(&flagBody, "body", "", "article text")
}

func uncheck(ctx context.Context, ctl *page.Controller, names []string) error {
	if len(names) == 0 {
		return nil
	}
	for _, n := range names {
		c, err := category.Resolve(n)
		if err != nil {
			return fmt.Errorf("invalid --hide value: %w", err)
		}
		ctl.Filter.Set(c, false)
	}
	return ctl.ApplyFilter(ctx)
}

// submit fills the form the same way the UI does and submits it. typ accepts
// the same aliases as --hide; an empty or unknown type leaves the category
// unselected.
func submit(ctx context.Context, ctl *page.Controller, title, typ, body string) (document.Card, error) {
	form := page.Form{Title: title, Body: body}
	if c, err := category.Resolve(typ); err == nil {
		form.Category = c
	}
	ctl.Form = form

	card, err := ctl.SubmitNewArticle(ctx)
	var verr *page.ValidationError
	if errors.As(err, &verr) {
		return card, errors.New(verr.Message())
	}
	return card, err
}

func visibility(c document.Card) string {
	if c.Hidden {
		return "hidden"
	}
	return "visible"
}

// printCards lists the shown cards, or every card when all is set. A non-empty
// only restricts the listing to that category.
func printCards(ctx context.Context, w io.Writer, ctl *page.Controller, only category.Category, all bool) error {
	var (
		cards []document.Card
		err   error
	)
	switch {
	case only != "":
		cards, err = ctl.CardsOf(ctx, only, !all)
	case all:
		cards, err = ctl.Cards(ctx)
	default:
		cards, err = ctl.VisibleCards(ctx)
	}
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range cards {
		line := fmt.Sprintf("%s\t%s\t%s", c.ID, c.Category.Label(), c.Title)
		if all && c.Hidden {
			line += "\t(hidden)"
		}
		fmt.Fprintln(tw, line)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d card(s), filter: %s\n", len(cards), ctl.Filter.Label())
	return nil
}
