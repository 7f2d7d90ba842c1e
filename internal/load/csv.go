package load

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KaramelBytes/aquaprep-cli/internal/table"
	"github.com/KaramelBytes/aquaprep-cli/internal/utils"
)

func readCSV(path string, opt Options) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(f)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delim

	rec, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &table.FormatError{Path: path, Err: errors.New("empty file")}
		}
		return nil, &table.FormatError{Path: path, Err: err}
	}
	// r.ReuseRecord means rec is overwritten by the next Read; copy it like
	// the data rows below.
	header := make([]string, len(rec))
	copy(header, rec)
	maxRows := opt.MaxRows
	if maxRows <= 0 {
		maxRows = int(^uint(0) >> 1)
	}
	var rows [][]string
	for len(rows) < maxRows {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &table.FormatError{Path: path, Err: fmt.Errorf("row %d: %w", len(rows)+2, err)}
		}
		cp := make([]string, len(rec))
		copy(cp, rec)
		rows = append(rows, cp)
	}
	return buildTable(path, header, rows, opt), nil
}

func writeCSV(path string, t *table.Table) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		w.Comma = '\t'
	}
	if err := w.Write(t.Names()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	cols := t.Columns()
	rec := make([]string, len(cols))
	for i := 0; i < t.Rows(); i++ {
		for j, c := range cols {
			rec[j] = table.FormatCell(c, i)
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
