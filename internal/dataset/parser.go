package dataset

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"matchday/pkg/contracts/domain"
)

// Column headers expected in the source sheet. Matching is case-insensitive
// and tolerant of surrounding whitespace; column order is not assumed.
var requiredColumns = []string{
	"league", "hometeam", "awayteam", "date",
	"homegoals", "awaygoals", "homefouls", "awayfouls",
}

// ParseWorkbook reads a match results Excel workbook and extracts the
// fixtures. It prefers the configured sheet name and falls back to scanning
// every sheet for one whose header row carries the expected columns.
func ParseWorkbook(path, sheet string) ([]domain.Match, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var rows [][]string
	var sheetName string

	if sheet != "" {
		if candidate, err := f.GetRows(sheet); err == nil {
			rows = candidate
			sheetName = sheet
		}
	}
	if sheetName == "" {
		for _, name := range f.GetSheetList() {
			candidate, err := f.GetRows(name)
			if err != nil || len(candidate) == 0 {
				continue
			}
			if _, err := mapColumns(candidate[0]); err == nil {
				rows = candidate
				sheetName = name
				break
			}
		}
	}
	if sheetName == "" {
		return nil, fmt.Errorf("could not find a match data sheet in %s", path)
	}

	slog.Debug("found match data sheet",
		slog.String("sheet_name", sheetName),
		slog.Int("total_rows", len(rows)))

	return MatchesFromRows(rows)
}

// MatchesFromRows converts raw sheet rows (header row first) into fixtures.
// Rows missing a team name are skipped; malformed numeric cells parse to
// zero rather than failing the whole load, matching the tolerance of the
// source data.
func MatchesFromRows(rows [][]string) ([]domain.Match, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet is empty")
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	cell := func(row []string, name string) string {
		idx := columns[name]
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	matches := make([]domain.Match, 0, len(rows)-1)
	for i, row := range rows[1:] {
		home := cell(row, "hometeam")
		away := cell(row, "awayteam")
		if home == "" || away == "" {
			continue
		}

		date, err := parseDate(cell(row, "date"))
		if err != nil {
			slog.Warn("skipping row with unparseable date",
				slog.Int("row_number", i+2),
				slog.String("value", cell(row, "date")))
			continue
		}

		matches = append(matches, domain.Match{
			League:    cell(row, "league"),
			HomeTeam:  home,
			AwayTeam:  away,
			Date:      date,
			HomeGoals: parseCount(cell(row, "homegoals")),
			AwayGoals: parseCount(cell(row, "awaygoals")),
			HomeFouls: parseCount(cell(row, "homefouls")),
			AwayFouls: parseCount(cell(row, "awayfouls")),
		})
	}

	return matches, nil
}

// mapColumns maps header names to column positions. All required columns
// must be present.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
		if key != "" {
			columns[key] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("could not find required column: %s", name)
		}
	}
	return columns, nil
}

// dateLayouts covers the formats excelize and exported sheets produce for
// date cells, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/2006",
	time.RFC3339,
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date cell")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	// Unformatted cells surface as Excel serial day numbers.
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", value)
}

func parseCount(value string) int {
	n, _ := strconv.Atoi(strings.ReplaceAll(value, ",", ""))
	if n < 0 {
		return 0
	}
	return n
}
