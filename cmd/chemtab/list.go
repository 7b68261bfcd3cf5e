package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/offprint/internal/chem"
	"github.com/jackzampolin/offprint/internal/cli"
)

// listRow is the compact per-measurement view for the list command.
type listRow struct {
	Salt        string  `json:"salt" yaml:"salt"`
	TempC       float64 `json:"temp_c" yaml:"temp_c"`
	MassPercent float64 `json:"mass_percent,omitempty" yaml:"mass_percent,omitempty"`
	Molality    float64 `json:"molality" yaml:"molality"`
	SolidPhase  string  `json:"solid_phase" yaml:"solid_phase"`
	Reference   string  `json:"reference" yaml:"reference"`
	Year        string  `json:"year" yaml:"year"`
}

var listSalt string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the solubility measurements",
	RunE: func(cmd *cobra.Command, args []string) error {
		var rows []listRow
		for _, m := range chem.SolubilityData() {
			if listSalt != "" && m.Salt != listSalt {
				continue
			}
			mp, _ := m.MassPercent()
			rows = append(rows, listRow{
				Salt:        m.Salt,
				TempC:       m.TempC,
				MassPercent: mp,
				Molality:    m.Molality,
				SolidPhase:  m.SolidPhase,
				Reference:   m.Reference,
				Year:        m.Year,
			})
		}
		return cli.Output(rows)
	},
}

func init() {
	listCmd.Flags().StringVar(&listSalt, "salt", "", "only list measurements for one salt, e.g. \"Y(NO3)3\"")
}
