package table

import (
	"math"
	"strconv"

	"github.com/samber/lo"
)

// Kind is the declared type of a column, fixed at load time and carried
// through every stage so filtering and scaling always agree on which
// columns are numeric.
type Kind int

const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Column holds one named, typed column. Numeric columns store float64
// values with NaN marking missing cells; categorical columns store strings
// with "" marking missing cells. Exactly one of Floats/Strings is populated.
type Column struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Strings []string
}

// Len returns the row count of the column.
func (c *Column) Len() int {
	if c.Kind == Numeric {
		return len(c.Floats)
	}
	return len(c.Strings)
}

// IsMissing reports whether row i holds a missing value.
func (c *Column) IsMissing(i int) bool {
	if c.Kind == Numeric {
		return math.IsNaN(c.Floats[i])
	}
	return c.Strings[i] == ""
}

// Missing returns the number of missing cells.
func (c *Column) Missing() int {
	n := 0
	for i := 0; i < c.Len(); i++ {
		if c.IsMissing(i) {
			n++
		}
	}
	return n
}

// MissingPercent returns missing cells as a percentage of the row count.
// An empty column reports 0.
func (c *Column) MissingPercent() float64 {
	l := c.Len()
	if l == 0 {
		return 0
	}
	return float64(c.Missing()) * 100.0 / float64(l)
}

// Clone returns a deep copy of the column.
func (c *Column) Clone() *Column {
	cp := &Column{Name: c.Name, Kind: c.Kind}
	if c.Floats != nil {
		cp.Floats = make([]float64, len(c.Floats))
		copy(cp.Floats, c.Floats)
	}
	if c.Strings != nil {
		cp.Strings = make([]string, len(c.Strings))
		copy(cp.Strings, c.Strings)
	}
	return cp
}

// FormatCell renders cell i for persistence or display; missing cells
// render as "".
func FormatCell(c *Column, i int) string {
	if c.IsMissing(i) {
		return ""
	}
	if c.Kind == Numeric {
		return strconv.FormatFloat(c.Floats[i], 'g', -1, 64)
	}
	return c.Strings[i]
}

// Table is an ordered collection of named, typed columns with a fixed row
// count. Rows have no identity beyond position.
type Table struct {
	Name string // source file base name, informational only
	cols []*Column
	rows int
}

// New returns an empty table expecting the given row count.
func New(name string, rows int) *Table {
	return &Table{Name: name, rows: rows}
}

// Rows returns the row count.
func (t *Table) Rows() int { return t.rows }

// Columns returns the columns in order. Callers must not reorder the slice.
func (t *Table) Columns() []*Column { return t.cols }

// Names returns column names in order.
func (t *Table) Names() []string {
	return lo.Map(t.cols, func(c *Column, _ int) string { return c.Name })
}

// Column returns the named column, or ErrColumnNotFound.
func (t *Table) Column(name string) (*Column, error) {
	for _, c := range t.cols {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, ErrColumnNotFound
}

// Append adds a column. The column length must match the table row count;
// appending to an empty table fixes the row count.
func (t *Table) Append(c *Column) {
	if len(t.cols) == 0 && t.rows == 0 {
		t.rows = c.Len()
	}
	t.cols = append(t.cols, c)
}

// Without returns a new table holding deep copies of every column except
// the named ones, preserving order. Names that do not occur are ignored.
func (t *Table) Without(names ...string) *Table {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	out := New(t.Name, t.rows)
	for _, c := range t.cols {
		if drop[c.Name] {
			continue
		}
		out.Append(c.Clone())
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	return t.Without()
}
