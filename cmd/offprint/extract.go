package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/offprint/internal/cli"
	"github.com/jackzampolin/offprint/internal/config"
	"github.com/jackzampolin/offprint/internal/extract"
	"github.com/jackzampolin/offprint/internal/pagenum"
)

var (
	extractPages    string
	extractOut      string
	extractPhysical bool
	extractForce    bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <input.pdf>",
	Short: "Copy a range of pages into a new PDF",
	Long: `Extract copies the requested pages of a PDF into a new document.

The --pages expression lists printed page numbers: single numbers and
inclusive ranges, comma separated, e.g. "2-5, 17-20, 25". Pages with no
printed number are matched by interpolating between detected neighbors.
With --physical (or when no printed numbers can be detected at all) the
expression refers to 1-based physical positions instead.`,
	Example: `  offprint extract census-1914.pdf --pages "130-145"
  offprint extract scan.pdf --pages "1-3, 9" -o chapter1.pdf --physical`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		input := args[0]
		out := extractOut
		if out == "" {
			out = defaultOutputPath(input, cfg.Output.Suffix)
		}

		result, err := extract.Extract(cmd.Context(), extract.Request{
			InputPath:  input,
			OutputPath: out,
			Pages:      extractPages,
			Physical:   extractPhysical,
			Force:      extractForce,
			ScanOptions: pagenum.ScanOptions{
				HeaderLines: cfg.Scan.HeaderLines,
				MaxNumber:   cfg.Scan.MaxNumber,
			},
			InterpolateOptions: pagenum.InterpolateOptions{
				MaxGap:    cfg.Interpolate.MaxGap,
				Tolerance: cfg.Interpolate.Tolerance,
			},
			Logger: slog.Default(),
		})
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}

		return cli.Output(result)
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractPages, "pages", "p", "", "page range expression, e.g. \"2-5, 17-20, 25\" (required)")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "output PDF path (default: <input>_filtered.pdf)")
	extractCmd.Flags().BoolVar(&extractPhysical, "physical", false, "treat page numbers as 1-based physical positions")
	extractCmd.Flags().BoolVar(&extractForce, "force", false, "overwrite the output file if it exists")
	_ = extractCmd.MarkFlagRequired("pages")
}

// defaultOutputPath derives the output file name from the input, e.g.
// "census-1914.pdf" becomes "census-1914_filtered.pdf".
func defaultOutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(input, ext)
	if ext == "" {
		ext = ".pdf"
	}
	return stem + suffix + ext
}
