package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/RoyCoates/EGM722Project/pkg/cost"
)

// SavingsSheet is the worksheet holding the savings table.
const SavingsSheet = "Projected Savings"

// SavingsHeaders are the column titles of the savings table.
var SavingsHeaders = []string{"Junction", "No. of Upgraded Lighting Columns", "Annual Savings"}

// WriteSavingsWorkbook writes the savings report to an XLSX workbook: a
// shaded header row, one row per junction and a total row.
func WriteSavingsWorkbook(path string, r *cost.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SavingsSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#f0f0f0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating total style: %w", err)
	}

	rows := [][]any{{SavingsHeaders[0], SavingsHeaders[1], SavingsHeaders[2]}}
	for _, s := range r.Rows {
		rows = append(rows, []any{s.Junction, s.Scheduled, s.Formatted})
	}
	rows = append(rows, []any{"Total", r.Summary.Scheduled, r.Summary.Formatted})

	for i, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SavingsSheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	last := len(rows)
	styles := []struct {
		from, to string
		style    int
	}{
		{"A1", "C1", header},
		{fmt.Sprintf("A%d", last), fmt.Sprintf("C%d", last), bold},
	}
	for _, st := range styles {
		if err := f.SetCellStyle(SavingsSheet, st.from, st.to, st.style); err != nil {
			return fmt.Errorf("styling %s:%s: %w", st.from, st.to, err)
		}
	}

	for col, width := range map[string]float64{"A": 14, "B": 34, "C": 18} {
		if err := f.SetColWidth(SavingsSheet, col, col, width); err != nil {
			return fmt.Errorf("sizing column %s: %w", col, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}
