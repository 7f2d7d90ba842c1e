package load

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/aquaprep-cli/internal/table"
)

var csvRows = []string{
	"WaterworksName,PrimaryTrigger,Stages,InflowRate,DisinfectantDose",
	"Northside,manual,3,120.5,1.2",
	"Eastvale,timer,2,98.1,",
	"Westbrook,,4,,1.5",
	"Lakefield,manual,3,101.3,1.1",
}

func writeCSVFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plants.csv")
	if err := os.WriteFile(path, []byte(strings.Join(csvRows, "\n")), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestReadCSVInfersSchema(t *testing.T) {
	tbl, err := ReadTable(writeCSVFixture(t), DefaultOptions())
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if tbl.Rows() != 4 {
		t.Fatalf("Rows() = %d, want 4", tbl.Rows())
	}
	wantKinds := map[string]table.Kind{
		"WaterworksName":   table.Categorical,
		"PrimaryTrigger":   table.Categorical,
		"Stages":           table.Numeric,
		"InflowRate":       table.Numeric,
		"DisinfectantDose": table.Numeric,
	}
	for name, kind := range wantKinds {
		c, err := tbl.Column(name)
		if err != nil {
			t.Fatalf("column %s: %v", name, err)
		}
		if c.Kind != kind {
			t.Errorf("column %s kind = %s, want %s", name, c.Kind, kind)
		}
	}

	inflow, _ := tbl.Column("InflowRate")
	if !math.IsNaN(inflow.Floats[2]) {
		t.Errorf("missing numeric cell should be NaN, got %v", inflow.Floats[2])
	}
	if inflow.Missing() != 1 {
		t.Errorf("InflowRate missing = %d, want 1", inflow.Missing())
	}
	trigger, _ := tbl.Column("PrimaryTrigger")
	if trigger.Missing() != 1 {
		t.Errorf("PrimaryTrigger missing = %d, want 1", trigger.Missing())
	}
}

func TestReadTableNotFound(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "nope.csv"), DefaultOptions())
	if err == nil {
		t.Fatal("want error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want fs.ErrNotExist, got %v", err)
	}
}

func TestReadTableUnsupportedExtension(t *testing.T) {
	_, err := ReadTable("plants.parquet", DefaultOptions())
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("want ErrUnsupported, got %v", err)
	}
}

func TestReadXLSXGarbageIsFormatError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("this is not a zip archive"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := ReadTable(path, DefaultOptions())
	var fe *table.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("want *table.FormatError, got %v", err)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	orig, err := ReadTable(writeCSVFixture(t), DefaultOptions())
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	out := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteTable(out, orig); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	back, err := ReadTable(out, DefaultOptions())
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}
	assertSameShape(t, orig, back)
}

func TestLocaleNumericParsing(t *testing.T) {
	opt := DefaultOptions()
	opt.DecimalSeparator = ','
	opt.ThousandsSeparator = '.'
	if x, ok := parseNumeric("1.234,5", opt); !ok || x != 1234.5 {
		t.Fatalf("parseNumeric(1.234,5) = %v/%v, want 1234.5", x, ok)
	}
	if x, ok := parseNumeric("0,5", opt); !ok || x != 0.5 {
		t.Fatalf("parseNumeric(0,5) = %v/%v, want 0.5", x, ok)
	}
	if _, ok := parseNumeric("surface", opt); ok {
		t.Fatal("parseNumeric accepted non-numeric token")
	}
}

func assertSameShape(t *testing.T, a, b *table.Table) {
	t.Helper()
	if a.Rows() != b.Rows() {
		t.Fatalf("row count %d != %d", a.Rows(), b.Rows())
	}
	an, bn := a.Names(), b.Names()
	if len(an) != len(bn) {
		t.Fatalf("column count %d != %d", len(an), len(bn))
	}
	for i := range an {
		if an[i] != bn[i] {
			t.Fatalf("column %d: %q != %q", i, an[i], bn[i])
		}
	}
	for _, name := range an {
		ca, _ := a.Column(name)
		cb, err := b.Column(name)
		if err != nil {
			t.Fatalf("column %s lost in round trip", name)
		}
		if ca.Kind != cb.Kind {
			t.Fatalf("column %s kind %s != %s", name, ca.Kind, cb.Kind)
		}
		for i := 0; i < ca.Len(); i++ {
			if table.FormatCell(ca, i) != table.FormatCell(cb, i) {
				t.Fatalf("column %s row %d: %q != %q", name, i, table.FormatCell(ca, i), table.FormatCell(cb, i))
			}
		}
	}
}
