package chem

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// csvHeader matches the column layout the tables have always been
// published with.
var csvHeader = []string{
	"Salt",
	"CAS_Number",
	"Temperature_C",
	"Mass_Saturated_Solution_g",
	"Mass_Oxide_g",
	"Solubility_g_per_100g_H2O_old_masses",
	"Solubility_g_per_100g_H2O_new_masses",
	"Solubility_mass_percent",
	"Solubility_mol_per_kg",
	"Solid_Phase",
	"Reference",
	"Journal",
	"Year",
	"Additional_Conditions",
}

// row renders a measurement as CSV cells. Unreported values become empty
// cells.
func row(m Measurement) []string {
	massPercent := ""
	if mp, ok := m.MassPercent(); ok {
		massPercent = strconv.FormatFloat(mp, 'f', -1, 64)
	}

	return []string{
		m.Salt,
		m.CAS,
		strconv.FormatFloat(m.TempC, 'f', -1, 64),
		optFloat(m.MassSatdG),
		optFloat(m.MassOxideG),
		optFloat(m.SolOld),
		optFloat(m.SolNew),
		massPercent,
		optFloat(m.Molality),
		m.SolidPhase,
		m.Reference,
		m.Journal,
		m.Year,
		m.Notes,
	}
}

func optFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV writes the measurements as CSV with a header row.
func WriteCSV(w io.Writer, data []Measurement) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, m := range data {
		if err := cw.Write(row(m)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the measurements as an XLSX workbook.
func WriteXLSX(w io.Writer, data []Measurement) error {
	f := excelize.NewFile()
	const sheet = "Solubility"

	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range csvHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for r, m := range data {
		for c, v := range row(m) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	// Widen the text-heavy columns.
	_ = f.SetColWidth(sheet, "A", "B", 14)
	_ = f.SetColWidth(sheet, "J", "J", 22)
	_ = f.SetColWidth(sheet, "K", "K", 42)
	_ = f.SetColWidth(sheet, "L", "L", 28)
	_ = f.SetColWidth(sheet, "N", "N", 32)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
