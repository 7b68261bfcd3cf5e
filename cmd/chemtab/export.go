package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/offprint/internal/chem"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the solubility tables to a file",
	Long: `Export writes every transcribed measurement as one row, converting
experimentally reported solubilities (g salt per 100 g water) to mass
percent alongside the raw values.`,
	Example: `  chemtab export
  chemtab export --format xlsx --out solubility.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := exportOut
		if out == "" {
			out = "SDS-13_solubility_data." + exportFormat
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer f.Close()

		data := chem.SolubilityData()
		var write func(io.Writer, []chem.Measurement) error
		switch exportFormat {
		case "csv":
			write = chem.WriteCSV
		case "xlsx":
			write = chem.WriteXLSX
		default:
			return fmt.Errorf("unknown format %q (want csv or xlsx)", exportFormat)
		}
		if err := write(f, data); err != nil {
			return err
		}

		fmt.Printf("wrote %d measurements to %s\n", len(data), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "output format: csv or xlsx")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default: SDS-13_solubility_data.<format>)")
}
