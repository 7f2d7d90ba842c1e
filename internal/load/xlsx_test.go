package load

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/aquaprep-cli/internal/table"
)

func fixtureTable() *table.Table {
	t := table.New("plant.xlsx", 0)
	t.Append(&table.Column{
		Name: "WaterworksName", Kind: table.Categorical,
		Strings: []string{"Northside", "Eastvale", "Westbrook"},
	})
	t.Append(&table.Column{
		Name: "GravityPressureMixed", Kind: table.Categorical,
		Strings: []string{"gravity", "", "mixed"},
	})
	t.Append(&table.Column{
		Name: "InflowRate", Kind: table.Numeric,
		Floats: []float64{120.5, math.NaN(), 101.25},
	})
	t.Append(&table.Column{
		Name: "Stages", Kind: table.Numeric,
		Floats: []float64{3, 2, 4},
	})
	return t
}

func TestXLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plant.xlsx")
	orig := fixtureTable()
	if err := WriteTable(path, orig); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	back, err := ReadTable(path, DefaultOptions())
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	assertSameShape(t, orig, back)

	// missing cells survive as missing
	rate, _ := back.Column("InflowRate")
	if rate.Kind != table.Numeric {
		t.Fatalf("InflowRate kind = %s, want numeric", rate.Kind)
	}
	if !math.IsNaN(rate.Floats[1]) {
		t.Fatalf("missing numeric cell came back as %v", rate.Floats[1])
	}
	mixed, _ := back.Column("GravityPressureMixed")
	if mixed.Strings[1] != "" {
		t.Fatalf("missing categorical cell came back as %q", mixed.Strings[1])
	}
}

func TestXLSXSheetSelectionByName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plant.xlsx")
	if err := WriteTable(path, fixtureTable()); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	opt := DefaultOptions()
	opt.SheetName = "Sheet1"
	if _, err := ReadTable(path, opt); err != nil {
		t.Fatalf("read by sheet name: %v", err)
	}
	opt.SheetName = "Results"
	if _, err := ReadTable(path, opt); err == nil {
		t.Fatal("want error for unknown sheet name")
	}
}

func TestCellRef(t *testing.T) {
	cases := []struct {
		col, row int
		want     string
	}{
		{0, 1, "A1"},
		{1, 2, "B2"},
		{25, 1, "Z1"},
		{26, 3, "AA3"},
		{27, 10, "AB10"},
	}
	for _, tc := range cases {
		if got := cellRef(tc.col, tc.row); got != tc.want {
			t.Errorf("cellRef(%d,%d) = %s, want %s", tc.col, tc.row, got, tc.want)
		}
		if got := colIndexFromRef(tc.want); got != tc.col {
			t.Errorf("colIndexFromRef(%s) = %d, want %d", tc.want, got, tc.col)
		}
	}
}
