// Package cost projects the annual energy savings of upgrading the lighting
// columns scheduled for change.
package cost

import (
	"math"

	"github.com/dustin/go-humanize"

	"github.com/RoyCoates/EGM722Project/pkg/analytics"
	"github.com/RoyCoates/EGM722Project/pkg/spec"
)

// SavingsRow is the projected saving at one junction.
type SavingsRow struct {
	Junction     string  `json:"junction"`
	Scheduled    int     `json:"scheduled"`
	AnnualSaving float64 `json:"annual_saving"`
	Formatted    string  `json:"formatted"`
}

// Report is the savings table for the top junctions.
type Report struct {
	Rows []SavingsRow `json:"rows"`

	Summary struct {
		Scheduled      int     `json:"scheduled"`
		AnnualSaving   float64 `json:"annual_saving"`
		Formatted      string  `json:"formatted"`
		PerLampPerYear float64 `json:"per_lamp_per_year"`
	} `json:"summary"`
}

// PerLampPerYear is the saving of one upgraded lamp over a year.
func PerLampPerYear(s spec.SavingsDef) float64 {
	return s.PerLampPerHour * s.HoursPerDay * s.DaysPerYear
}

// AnnualSaving projects the yearly saving for a number of upgraded lamps,
// rounded to cents.
func AnnualSaving(scheduled int, s spec.SavingsDef) float64 {
	return roundCents(float64(scheduled) * PerLampPerYear(s))
}

// Estimate builds the savings table for the first n summaries (all when
// n <= 0), keeping their order.
func Estimate(summaries []analytics.JunctionSummary, s spec.SavingsDef, n int) *Report {
	report := &Report{}
	for _, j := range analytics.Top(summaries, n) {
		saving := AnnualSaving(j.Scheduled, s)
		report.Rows = append(report.Rows, SavingsRow{
			Junction:     j.DisplayName(),
			Scheduled:    j.Scheduled,
			AnnualSaving: saving,
			Formatted:    FormatCurrency(s.CurrencySymbol, saving),
		})
		report.Summary.Scheduled += j.Scheduled
	}
	report.Summary.AnnualSaving = AnnualSaving(report.Summary.Scheduled, s)
	report.Summary.Formatted = FormatCurrency(s.CurrencySymbol, report.Summary.AnnualSaving)
	report.Summary.PerLampPerYear = PerLampPerYear(s)
	return report
}

// FormatCurrency renders an amount as symbol, comma-grouped thousands and
// two decimals, e.g. €1,314.00.
func FormatCurrency(symbol string, amount float64) string {
	if amount < 0 {
		return "-" + symbol + humanize.FormatFloat(CurrencyFormat, -amount)
	}
	return symbol + humanize.FormatFloat(CurrencyFormat, amount)
}

func roundCents(v float64) float64 {
	return math.Round(v*CentsPerUnit) / CentsPerUnit
}
