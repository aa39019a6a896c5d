package cmd

import (
	"github.com/matheuskafuri/pageboard/internal/tui"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	return tui.Run(ctx, tui.RunOpts{
		Ctl:    s.ctl,
		Cfg:    s.cfg,
		Logger: s.log,
	})
}
