package dataset

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"matchday/pkg/contracts/domain"
)

// Source reads the full match dataset from its backing spreadsheet.
type Source interface {
	// Load reads every fixture. It is called once at startup and again on
	// explicit reload.
	Load(ctx context.Context) ([]domain.Match, error)
	// Describe returns a human-readable identifier for logging and the
	// dataset snapshot.
	Describe() string
}

// FileSource reads the dataset from a local Excel workbook.
type FileSource struct {
	Path  string
	Sheet string
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) ([]domain.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ParseWorkbook(s.Path, s.Sheet)
}

// Describe implements Source.
func (s *FileSource) Describe() string {
	return "file:" + s.Path
}

// SheetSource reads the dataset from a published Google Sheet through the
// Sheets API. The sheet must carry the same header row as the local
// workbook format.
type SheetSource struct {
	SpreadsheetID string
	Range         string
	APIKey        string
}

// Load implements Source.
func (s *SheetSource) Load(ctx context.Context) ([]domain.Match, error) {
	svc, err := sheets.NewService(ctx, option.WithAPIKey(s.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	readRange := s.Range
	if readRange == "" {
		readRange = "Sheet1!A:H"
	}

	resp, err := svc.Spreadsheets.Values.Get(s.SpreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet %s: %w", s.SpreadsheetID, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}

	return MatchesFromRows(rows)
}

// Describe implements Source.
func (s *SheetSource) Describe() string {
	return "sheet:" + s.SpreadsheetID
}
