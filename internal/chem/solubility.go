// Package chem holds hand-transcribed rare-earth nitrate solubility
// reference tables and their export to CSV and XLSX.
//
// The measurements were transcribed from the IUPAC Solubility Data Series
// volume on rare earth nitrates. Sources report solubility in two formats:
// grams of solute per 100 g of water (which needs conversion) and mass
// percent (used as-is).
package chem

import "math"

// Format identifies how a source reported solubility.
type Format string

const (
	// FormatExperimental rows carry raw experimental data with solubility
	// in g solute / 100 g water; mass percent must be derived.
	FormatExperimental Format = "experimental"
	// FormatMassPercent rows report mass percent directly.
	FormatMassPercent Format = "mass_percent"
)

// Measurement is one solubility data point from the literature.
// Float fields hold zero when the source did not report the value; none of
// the reported quantities are ever zero, so the zero value is unambiguous.
type Measurement struct {
	Salt       string  // e.g. "Y(NO3)3"
	CAS        string  // CAS registry number, bracketed as printed
	TempC      float64 // Temperature in °C
	MassSatdG  float64 // Mass of saturated solution sample, g
	MassOxideG float64 // Mass of oxide recovered, g
	SolOld     float64 // Solubility under 1925 atomic masses, g/100 g water
	SolNew     float64 // Solubility under 1977 IUPAC atomic masses; mass% for FormatMassPercent rows
	Molality   float64 // mol/kg
	SolidPhase string  // Equilibrium solid phase
	Reference  string  // Authors
	Journal    string
	Year       string
	Format     Format
	Notes      string
}

// MassPercentFromGPer100g converts g solute / 100 g water to mass percent,
// rounded to two decimals.
func MassPercentFromGPer100g(g float64) float64 {
	return math.Round(g/(g+100)*100*100) / 100
}

// MassPercent returns the measurement's solubility as mass percent.
// Experimental rows are converted from g/100 g water; mass-percent rows
// pass through. Returns false when the source reported no solubility value.
func (m Measurement) MassPercent() (float64, bool) {
	if m.SolNew == 0 {
		return 0, false
	}
	if m.Format == FormatExperimental {
		return MassPercentFromGPer100g(m.SolNew), true
	}
	return m.SolNew, true
}
