// Package sheet models the spreadsheet the orders live in: a grid of string
// cells where row 1 is the header and every other row is a record.
package sheet

import (
	"context"
	"errors"
)

var ErrCellNotFound = errors.New("sheet: cell not found")

// Cell is a 1-based position plus its value.
type Cell struct {
	Row   int
	Col   int
	Value string
}

// Record is a data row keyed by the header names.
type Record struct {
	Row    int
	Values map[string]string
}

func (r Record) Get(key string) string {
	return r.Values[key]
}

// Table is the row-oriented store the application reads and writes.
type Table interface {
	// EnsureHeader writes header into row 1 when the sheet is empty.
	EnsureHeader(ctx context.Context, header []string) error
	AppendRow(ctx context.Context, values []string) error
	AllRecords(ctx context.Context) ([]Record, error)
	// Find returns the first data cell holding value, scanning rows then
	// columns. The header row is never matched.
	// col restricts the search to one column; 0 searches every column.
	Find(ctx context.Context, value string, col int) (*Cell, error)
	UpdateCell(ctx context.Context, row, col int, value string) error
}

func buildRecords(grid [][]string) []Record {
	if len(grid) == 0 {
		return nil
	}
	header := grid[0]
	records := make([]Record, 0, len(grid)-1)
	for i, row := range grid[1:] {
		values := make(map[string]string, len(header))
		for c, name := range header {
			if name == "" {
				continue
			}
			if c < len(row) {
				values[name] = row[c]
			} else {
				values[name] = ""
			}
		}
		records = append(records, Record{Row: i + 2, Values: values})
	}
	return records
}
