// Package export bridges Tables into gota dataframes for CSV emission and
// terminal-friendly describe views.
package export

import (
	"io"

	"github.com/go-gota/gota/dataframe"

	"github.com/KaramelBytes/aquaprep-cli/internal/table"
)

// Records renders the table as a header row plus one string record per row,
// missing cells as "".
func Records(t *table.Table) [][]string {
	cols := t.Columns()
	out := make([][]string, 0, t.Rows()+1)
	out = append(out, t.Names())
	for i := 0; i < t.Rows(); i++ {
		rec := make([]string, len(cols))
		for j, c := range cols {
			rec[j] = table.FormatCell(c, i)
		}
		out = append(out, rec)
	}
	return out
}

// Frame converts the table into a gota dataframe. Types are not re-detected;
// the Table schema is already authoritative and the frame is only used for
// rendering.
func Frame(t *table.Table) dataframe.DataFrame {
	return dataframe.LoadRecords(Records(t), dataframe.DetectTypes(false))
}

// WriteCSV writes the table as CSV through gota.
func WriteCSV(w io.Writer, t *table.Table) error {
	return Frame(t).WriteCSV(w)
}

// Describe returns gota's per-column describe view as text.
func Describe(t *table.Table) string {
	return Frame(t).Describe().String()
}
