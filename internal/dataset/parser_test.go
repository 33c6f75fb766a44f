package dataset

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestMatchesFromRows(t *testing.T) {
	header := []string{"League", "HomeTeam", "AwayTeam", "Date", "HomeGoals", "AwayGoals", "HomeFouls", "AwayFouls"}

	tests := []struct {
		name    string
		rows    [][]string
		want    int
		wantErr string
	}{
		{
			name:    "empty sheet",
			rows:    nil,
			wantErr: "sheet is empty",
		},
		{
			name:    "missing column",
			rows:    [][]string{{"League", "HomeTeam", "AwayTeam", "Date"}},
			wantErr: "required column",
		},
		{
			name: "valid rows",
			rows: [][]string{
				header,
				{"LeagueA", "TeamX", "TeamY", "2024-01-01", "2", "1", "3", "2"},
				{"LeagueA", "TeamY", "TeamX", "2024-01-08", "0", "0", "1", "1"},
			},
			want: 2,
		},
		{
			name: "rows without team names are skipped",
			rows: [][]string{
				header,
				{"LeagueA", "TeamX", "TeamY", "2024-01-01", "2", "1", "3", "2"},
				{"LeagueA", "", "TeamY", "2024-01-08", "0", "0", "1", "1"},
				{},
			},
			want: 1,
		},
		{
			name: "unparseable dates are skipped",
			rows: [][]string{
				header,
				{"LeagueA", "TeamX", "TeamY", "not a date", "2", "1", "3", "2"},
				{"LeagueA", "TeamY", "TeamX", "2024-01-08", "0", "0", "1", "1"},
			},
			want: 1,
		},
		{
			name: "header order does not matter",
			rows: [][]string{
				{"Date", "AwayTeam", "HomeTeam", "League", "AwayGoals", "HomeGoals", "AwayFouls", "HomeFouls"},
				{"2024-01-01", "TeamY", "TeamX", "LeagueA", "1", "2", "2", "3"},
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := MatchesFromRows(tt.rows)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, matches, tt.want)
		})
	}
}

func TestMatchesFromRows_FieldMapping(t *testing.T) {
	rows := [][]string{
		{"League", "HomeTeam", "AwayTeam", "Date", "HomeGoals", "AwayGoals", "HomeFouls", "AwayFouls"},
		{"LeagueA", "TeamX", "TeamY", "2024-01-01", "2", "1", "3", "2"},
	}

	matches, err := MatchesFromRows(rows)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, "LeagueA", m.League)
	assert.Equal(t, "TeamX", m.HomeTeam)
	assert.Equal(t, "TeamY", m.AwayTeam)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), m.Date)
	assert.Equal(t, 2, m.HomeGoals)
	assert.Equal(t, 1, m.AwayGoals)
	assert.Equal(t, 3, m.HomeFouls)
	assert.Equal(t, 2, m.AwayFouls)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{"iso", "2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), false},
		{"excelize default", "01-15-24", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), false},
		{"slash", "1/15/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), false},
		{"serial number", "45306", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), false},
		{"empty", "", time.Time{}, true},
		{"garbage", "matchday", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 3, parseCount("3"))
	assert.Equal(t, 1200, parseCount("1,200"))
	assert.Equal(t, 0, parseCount(""))
	assert.Equal(t, 0, parseCount("n/a"))
	assert.Equal(t, 0, parseCount("-2"))
}

func TestParseWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match_data.xlsx")
	writeWorkbook(t, path, "Sheet1")

	matches, err := ParseWorkbook(path, "Sheet1")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "TeamX", matches[0].HomeTeam)
}

func TestParseWorkbook_SheetFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match_data.xlsx")
	writeWorkbook(t, path, "Fixtures")

	// Configured sheet is missing; the parser scans for a sheet with the
	// expected header row.
	matches, err := ParseWorkbook(path, "Sheet1")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestParseWorkbook_MissingFile(t *testing.T) {
	_, err := ParseWorkbook(filepath.Join(t.TempDir(), "missing.xlsx"), "Sheet1")
	assert.Error(t, err)
}

func writeWorkbook(t *testing.T, path, sheet string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}

	rows := [][]interface{}{
		{"League", "HomeTeam", "AwayTeam", "Date", "HomeGoals", "AwayGoals", "HomeFouls", "AwayFouls"},
		{"LeagueA", "TeamX", "TeamY", "2024-01-01", 2, 1, 3, 2},
		{"LeagueA", "TeamY", "TeamX", "2024-01-08", 0, 0, 1, 1},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	require.NoError(t, f.SaveAs(path))
}
