// Copyright 2025 The csvb Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package csvtable converts raw CSV text lines into rectangular tables.
package csvtable

import "strconv"

// Table provides read-only access to parsed CSV data. Every row holds
// exactly ColumnCount fields: rows shorter than the widest input row are
// right-padded with empty fields when the table is built. A Table is
// immutable once built; loading another file produces a new Table.
type Table struct {
	headers []string
	rows    [][]string
}

// Build parses every line through ParseLine, in input order, and assembles
// a rectangular Table. Column headers are synthesized as "col1".."colN"
// where N is the widest parsed row.
//
// Returns ErrEmptyFile when lines is empty. A file whose every line is
// blank is not empty: it produces a Table with one row per line and zero
// columns. Build never fails for any other input.
func Build(lines []string) (*Table, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyFile
	}

	// Parse everything first, then size the output rows once the final
	// width is known.
	parsed := make([][]string, len(lines))
	width := 0
	for i, line := range lines {
		parsed[i] = ParseLine(line)
		if len(parsed[i]) > width {
			width = len(parsed[i])
		}
	}

	t := &Table{
		headers: make([]string, width),
		rows:    make([][]string, len(parsed)),
	}
	for i := range t.headers {
		t.headers[i] = "col" + strconv.Itoa(i+1)
	}
	for i, fields := range parsed {
		row := make([]string, width)
		copy(row, fields)
		t.rows[i] = row
	}
	return t, nil
}

// RowCount returns the total number of rows in the table.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnCount returns the total number of columns in the table.
func (t *Table) ColumnCount() int {
	return len(t.headers)
}

// Headers returns a copy of the synthesized column headers.
func (t *Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// ColumnName returns the header of the column at the given index.
// Returns ErrInvalidColumn if col is out of range.
func (t *Table) ColumnName(col int) (string, error) {
	if col < 0 || col >= len(t.headers) {
		return "", ErrInvalidColumn
	}
	return t.headers[col], nil
}

// Cell returns the value at the given zero-based row and column.
// Returns ErrInvalidRow or ErrInvalidColumn if an index is out of range.
func (t *Table) Cell(row, col int) (string, error) {
	if row < 0 || row >= len(t.rows) {
		return "", ErrInvalidRow
	}
	if col < 0 || col >= len(t.headers) {
		return "", ErrInvalidColumn
	}
	return t.rows[row][col], nil
}

// Row returns a copy of all values in the given zero-based row.
// Returns ErrInvalidRow if row is out of range.
func (t *Table) Row(row int) ([]string, error) {
	if row < 0 || row >= len(t.rows) {
		return nil, ErrInvalidRow
	}
	out := make([]string, len(t.rows[row]))
	copy(out, t.rows[row])
	return out, nil
}
