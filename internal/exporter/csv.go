// Package exporter writes the filtered fixture list as downloadable CSV or
// Excel files.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"matchday/pkg/contracts/domain"
)

// dateLayout is the date format used in exported files.
const dateLayout = "2006-01-02"

// columns is the export header, matching the source workbook layout.
var columns = []string{
	"League", "Home Team", "Away Team", "Date",
	"Home Goals", "Away Goals", "Home Fouls", "Away Fouls",
}

// WriteCSV writes the matches as CSV with a header row.
func WriteCSV(w io.Writer, matches []domain.Match) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i, m := range matches {
		record := []string{
			m.League,
			m.HomeTeam,
			m.AwayTeam,
			m.Date.Format(dateLayout),
			strconv.Itoa(m.HomeGoals),
			strconv.Itoa(m.AwayGoals),
			strconv.Itoa(m.HomeFouls),
			strconv.Itoa(m.AwayFouls),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
