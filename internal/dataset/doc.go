// Package dataset loads the match results spreadsheet into memory and keeps
// it cached for the lifetime of the process. The dataset is read once from a
// local Excel workbook or a published Google Sheet, normalized into
// domain.Match records, and never mutated afterwards; an explicit Reload is
// the only invalidation.
package dataset
