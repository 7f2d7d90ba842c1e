// Package load reads and writes tabular datasets as XLSX workbooks or
// CSV/TSV files, inferring a typed schema (numeric vs categorical) once at
// load time.
package load

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/aquaprep-cli/internal/table"
)

// Options controls reading behavior.
type Options struct {
	// SheetName selects a worksheet by name; empty means use SheetIndex.
	SheetName string
	// SheetIndex is a 1-based worksheet index (Sheet1 == 1). <=0 means 1.
	SheetIndex int
	// Delimiter for CSV. If 0, auto-detects from the file extension.
	Delimiter rune
	// Numeric parsing locale. If DecimalSeparator is 0, auto-detect per value.
	DecimalSeparator   rune
	ThousandsSeparator rune
	// MaxRows limits rows read; 0 means unlimited.
	MaxRows int
}

// DefaultOptions returns reasonable defaults for small operational datasets.
func DefaultOptions() Options {
	return Options{SheetIndex: 1, MaxRows: 100000}
}

// ErrUnsupported indicates a file extension no reader or writer handles.
var ErrUnsupported = errors.New("unsupported table format")

// ReadTable loads the file at path into a Table, choosing the reader by
// extension. A missing file surfaces the os error (wrapping fs.ErrNotExist);
// unparseable content surfaces a *table.FormatError.
func ReadTable(path string, opt Options) (*table.Table, error) {
	switch ext(path) {
	case ".xlsx":
		return readXLSX(path, opt)
	case ".csv", ".tsv":
		return readCSV(path, opt)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
	}
}

// WriteTable persists the table at path, choosing the writer by extension.
// The write is atomic: a temp file is renamed into place, so a failed run
// never truncates an existing file.
func WriteTable(path string, t *table.Table) error {
	switch ext(path) {
	case ".xlsx":
		return writeXLSX(path, t)
	case ".csv", ".tsv":
		return writeCSV(path, t)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
	}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
