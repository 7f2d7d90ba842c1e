package export

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/KaramelBytes/aquaprep-cli/internal/table"
)

func sampleTable() *table.Table {
	t := table.New("plant.xlsx", 0)
	t.Append(&table.Column{Name: "WaterworksName", Kind: table.Categorical,
		Strings: []string{"Northside", "Eastvale"}})
	t.Append(&table.Column{Name: "InflowRate", Kind: table.Numeric,
		Floats: []float64{120.5, math.NaN()}})
	return t
}

func TestRecords(t *testing.T) {
	recs := Records(sampleTable())
	if len(recs) != 3 {
		t.Fatalf("records = %d, want 3 (header + 2 rows)", len(recs))
	}
	if recs[0][0] != "WaterworksName" || recs[0][1] != "InflowRate" {
		t.Fatalf("header = %v", recs[0])
	}
	if recs[1][1] != "120.5" {
		t.Fatalf("numeric cell = %q, want 120.5", recs[1][1])
	}
	if recs[2][1] != "" {
		t.Fatalf("missing cell = %q, want \"\"", recs[2][1])
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTable()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "WaterworksName,InflowRate") {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "Northside,120.5") {
		t.Fatalf("row missing from output: %q", out)
	}
}
