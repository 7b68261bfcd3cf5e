package main

import (
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/offprint/internal/cli"
	"github.com/jackzampolin/offprint/internal/config"
	"github.com/jackzampolin/offprint/internal/pagenum"
	"github.com/jackzampolin/offprint/internal/pdf"
)

// scanPage is one line of the scan report.
type scanPage struct {
	Physical int  `json:"physical" yaml:"physical"` // 1-based position in the file
	Printed  int  `json:"printed" yaml:"printed"`
	Inferred bool `json:"inferred" yaml:"inferred"` // true when interpolated, false when read off the page
}

// scanReport summarizes the printed page numbering of a document.
type scanReport struct {
	Input      string     `json:"input" yaml:"input"`
	TotalPages int        `json:"total_pages" yaml:"total_pages"`
	Detected   int        `json:"detected" yaml:"detected"`
	Mapped     int        `json:"mapped" yaml:"mapped"`
	Pages      []scanPage `json:"pages" yaml:"pages"`
}

var scanCmd = &cobra.Command{
	Use:   "scan <input.pdf>",
	Short: "Report the printed page numbers detected in a PDF",
	Long: `Scan runs page number detection and interpolation without extracting
anything, and reports which physical page carries which printed number.
Useful for checking how a document will be interpreted before running
extract.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		doc, err := pdf.Open(args[0])
		if err != nil {
			return err
		}
		defer doc.Close()

		total := doc.PageCount()
		opts := pagenum.ScanOptions{
			HeaderLines: cfg.Scan.HeaderLines,
			MaxNumber:   cfg.Scan.MaxNumber,
		}
		detected := pagenum.Scan(cmd.Context(), total, doc.Text, opts, slog.Default())
		mapped := pagenum.Interpolate(detected, total, pagenum.InterpolateOptions{
			MaxGap:    cfg.Interpolate.MaxGap,
			Tolerance: cfg.Interpolate.Tolerance,
		})

		report := scanReport{
			Input:      args[0],
			TotalPages: total,
			Detected:   len(detected),
			Mapped:     len(mapped),
		}
		idxs := make([]int, 0, len(mapped))
		for idx := range mapped {
			idxs = append(idxs, idx)
		}
		sort.Ints(idxs)
		for _, idx := range idxs {
			_, direct := detected[idx]
			report.Pages = append(report.Pages, scanPage{
				Physical: idx + 1,
				Printed:  mapped[idx],
				Inferred: !direct,
			})
		}

		return cli.Output(report)
	},
}
