package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/offprint/internal/cli"
	"github.com/jackzampolin/offprint/version"
)

var outputFormat string

var rootCmd = &cobra.Command{
	Use:   "chemtab",
	Short: "Export the transcribed rare-earth nitrate solubility tables",
	Long: `Chemtab exports the hand-transcribed solubility measurements for the
rare-earth nitrates (Sc, Y, La, Ce, Pr) from IUPAC Solubility Data
Series volume 13, with solubilities normalized to mass percent.`,
	Version: version.GitRelease,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chemtab %s\n", version.GitRelease)
		fmt.Printf("  Go:     %s\n", version.GoInfo)
		fmt.Printf("  Commit: %s\n", version.GitCommit)
		fmt.Printf("  Date:   %s\n", version.GitCommitDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&outputFormat, "output", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cli.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}
