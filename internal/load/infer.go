package load

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/KaramelBytes/aquaprep-cli/internal/table"
)

// buildTable materializes raw string records into a typed Table. The kind of
// each column is decided once, by majority vote of its parseable cells, and
// fixed into the schema; later stages never re-inspect cell types.
func buildTable(path string, header []string, rows [][]string, opt Options) *table.Table {
	ncol := len(header)
	t := table.New(filepath.Base(path), len(rows))

	// pad short rows so every column sees the full row count
	for i, row := range rows {
		if len(row) < ncol {
			tmp := make([]string, ncol)
			copy(tmp, row)
			rows[i] = tmp
		}
	}

	for j := 0; j < ncol; j++ {
		numCnt, txtCnt := 0, 0
		for _, row := range rows {
			v := strings.TrimSpace(row[j])
			if v == "" {
				continue
			}
			if _, ok := parseNumeric(v, opt); ok {
				numCnt++
			} else {
				txtCnt++
			}
		}
		c := &table.Column{Name: strings.TrimSpace(header[j])}
		if numCnt >= txtCnt && numCnt > 0 {
			c.Kind = table.Numeric
			c.Floats = make([]float64, len(rows))
			for i, row := range rows {
				v := strings.TrimSpace(row[j])
				if x, ok := parseNumeric(v, opt); ok {
					c.Floats[i] = x
				} else {
					// empty or a stray non-numeric token: treated as missing
					c.Floats[i] = math.NaN()
				}
			}
		} else {
			c.Kind = table.Categorical
			c.Strings = make([]string, len(rows))
			for i, row := range rows {
				c.Strings[i] = strings.TrimSpace(row[j])
			}
		}
		t.Append(c)
	}
	return t
}

// parseNumeric parses a cell as a float, tolerating locale separators.
// If no decimal separator is configured it auto-detects per value.
func parseNumeric(s string, opt Options) (float64, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, false
	}
	raw = strings.ReplaceAll(raw, " ", " ")
	raw = strings.TrimSpace(raw)
	dec := opt.DecimalSeparator
	thou := opt.ThousandsSeparator
	if dec == 0 {
		cpos := strings.LastIndex(raw, ",")
		dpos := strings.LastIndex(raw, ".")
		if cpos >= 0 && dpos >= 0 {
			if cpos > dpos {
				dec = ','
				thou = '.'
			} else {
				dec = '.'
				thou = ','
			}
		} else if cpos >= 0 {
			dec = ','
		} else {
			dec = '.'
		}
	}
	if thou == 0 {
		for _, sep := range []rune{',', '.', ' '} {
			if sep != dec {
				raw = strings.ReplaceAll(raw, string(sep), "")
			}
		}
	} else if thou != dec {
		raw = strings.ReplaceAll(raw, string(thou), "")
	}
	if dec != '.' {
		raw = strings.ReplaceAll(raw, string(dec), ".")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
