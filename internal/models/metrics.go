package models

import "time"

// Provenance columns added to every loaded metrics table.
const (
	ColumnFolder  = "model"
	ColumnDataset = "metrics_file"
	ColumnLabel   = "label"
)

// Table is a metrics table read from a CSV file: a header plus rows of raw cells.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ColumnIndex returns the position of name in the header, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the cell of row i in column name. Short rows yield "".
func (t *Table) Value(i int, name string) string {
	idx := t.ColumnIndex(name)
	if idx < 0 || i < 0 || i >= len(t.Rows) || idx >= len(t.Rows[i]) {
		return ""
	}
	return t.Rows[i][idx]
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}

// WithColumn returns a copy of the table with a constant column appended.
// An existing column of the same name is overwritten instead.
func (t *Table) WithColumn(name, value string) *Table {
	out := t.Clone()
	idx := out.ColumnIndex(name)
	if idx < 0 {
		out.Columns = append(out.Columns, name)
		idx = len(out.Columns) - 1
	}
	for i, row := range out.Rows {
		for len(row) < len(out.Columns) {
			row = append(row, "")
		}
		row[idx] = value
		out.Rows[i] = row
	}
	return out
}

type InstantKind int

const (
	InstantMissing InstantKind = iota
	InstantTime
	InstantOrdinal
)

func (k InstantKind) String() string {
	switch k {
	case InstantTime:
		return "time"
	case InstantOrdinal:
		return "ordinal"
	default:
		return "missing"
	}
}

// Instant is the parsed value of a table's time column.
type Instant struct {
	Kind    InstantKind `json:"kind"`
	Time    time.Time   `json:"time,omitempty"`
	Ordinal float64     `json:"ordinal,omitempty"`
}

func (i Instant) IsMissing() bool {
	return i.Kind == InstantMissing
}

type TimeConfig struct {
	Column     string // name of the time column
	Resolution string // "", 1m, 5m, 1h
	Alignment  string // floor, ceil, round
}
