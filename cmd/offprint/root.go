package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/offprint/internal/cli"
	"github.com/jackzampolin/offprint/version"
)

var (
	cfgFile      string
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "offprint",
	Short: "Extract page ranges from PDFs by their printed page numbers",
	Long: `Offprint copies a subset of pages out of a PDF into a new document.

Page ranges refer to the page numbers printed on the pages themselves,
which offprint detects from the embedded text and interpolates across
unnumbered pages. When a document carries no detectable numbering (or with
--physical), ranges fall back to physical page positions.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.offprint/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&outputFormat, "output", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cli.SetOutputFormat(outputFormat)

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	}

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
