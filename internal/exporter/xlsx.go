package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"matchday/pkg/contracts/domain"
)

// sheetName is the sheet exported workbooks are written to.
const sheetName = "Matches"

// WriteXLSX writes the matches as an Excel workbook with a header row.
func WriteXLSX(w io.Writer, matches []domain.Match) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, m := range matches {
		row := []interface{}{
			m.League,
			m.HomeTeam,
			m.AwayTeam,
			m.Date.Format(dateLayout),
			m.HomeGoals,
			m.AwayGoals,
			m.HomeFouls,
			m.AwayFouls,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
