package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagSeed   string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "pageboard",
	Short: "Terminal article page with filters and a quick add form",
	Long:  "pageboard shows a page of article cards you can filter by category and extend with new articles. Nothing is saved between runs.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "local RSS/Atom file to append to the initial articles")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "write debug logs (to log_file, or the state dir)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(addCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pageboard %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
