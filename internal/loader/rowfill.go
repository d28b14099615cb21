// Package loader reads the tabular input sources (event definitions,
// persons, age-event templates, fixed payments) and converts them into
// validated domain values. The engine never sees raw rows.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
)

// RowFiller implements the forward-fill convention of the input tables: a
// blank cell in one of the declared columns inherits the value from the
// previous row, and cells still blank after the fill receive a per-column
// default. Columns outside the declared set never inherit; a blank amount or
// date stays blank and fails at the parser. The first row seeds the fill
// state.
type RowFiller struct {
	columns  []string
	prev     map[string]string
	defaults map[string]string
}

// NewRowFiller returns a filler that forward-fills only the given columns.
func NewRowFiller(columns ...string) *RowFiller {
	return &RowFiller{columns: columns, defaults: make(map[string]string)}
}

// SetDefault registers the value a column falls back to when both the cell
// and its predecessor are blank.
func (f *RowFiller) SetDefault(column, value string) {
	f.defaults[column] = value
}

// Fill mutates row in place, inheriting blank declared cells from the
// previous row and then applying defaults.
func (f *RowFiller) Fill(row map[string]string) {
	if f.prev == nil {
		f.prev = make(map[string]string, len(f.columns))
		for _, k := range f.columns {
			f.prev[k] = row[k]
		}
	} else {
		for _, k := range f.columns {
			if row[k] == "" {
				row[k] = f.prev[k]
			} else {
				f.prev[k] = row[k]
			}
		}
	}

	for k, def := range f.defaults {
		if row[k] == "" {
			row[k] = def
		}
	}
}

// readRows reads a headed CSV into one map per data row, keyed by the header
// names.
func readRows(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			row[col] = rec[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
