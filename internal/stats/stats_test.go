package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/aquaprep-cli/internal/table"
)

func TestRunningMatchesDirectComputation(t *testing.T) {
	vals := []float64{0.5, 0.6, 0.55, 0.7, 0.65, 0.68, 0.52, 0.75, 3.0}
	var r Running
	for _, v := range vals {
		r.Add(v)
	}
	require.Equal(t, len(vals), r.Count())

	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(len(vals))
	var ss float64
	for _, v := range vals {
		ss += (v - mean) * (v - mean)
	}
	std := math.Sqrt(ss / float64(len(vals)-1))

	assert.InDelta(t, mean, r.Mean(), 1e-12)
	assert.InDelta(t, std, r.Std(), 1e-12)
	assert.Equal(t, 0.5, r.Min())
	assert.Equal(t, 3.0, r.Max())
}

func TestMeanStdSkipsMissing(t *testing.T) {
	mean, std, n := MeanStd([]float64{2, math.NaN(), 4, math.NaN()})
	assert.Equal(t, 2, n)
	assert.InDelta(t, 3.0, mean, 1e-12)
	assert.InDelta(t, math.Sqrt2, std, 1e-12)
}

func TestMeanStdDegenerateInputs(t *testing.T) {
	_, std, n := MeanStd([]float64{5})
	assert.Equal(t, 1, n)
	assert.Zero(t, std)

	_, std, n = MeanStd([]float64{5, 5, 5, 5})
	assert.Equal(t, 4, n)
	assert.Zero(t, std)

	_, _, n = MeanStd(nil)
	assert.Zero(t, n)
}

func TestSummarize(t *testing.T) {
	tbl := table.New("plant.xlsx", 0)
	tbl.Append(&table.Column{Name: "Flow", Kind: table.Numeric, Floats: []float64{1, 2, 3, math.NaN()}})
	tbl.Append(&table.Column{Name: "AerationType", Kind: table.Categorical, Strings: []string{"surface", "surface", "diffused", ""}})

	sums := Summarize(tbl)
	require.Len(t, sums, 2)

	flow := sums[0]
	assert.Equal(t, "Flow", flow.Name)
	assert.Equal(t, 3, flow.NonNull)
	assert.InDelta(t, 25.0, flow.MissingPct, 1e-12)
	assert.InDelta(t, 2.0, flow.Mean, 1e-12)

	aer := sums[1]
	assert.Equal(t, table.Categorical, aer.Kind)
	assert.Equal(t, 2, aer.Unique)
	require.NotEmpty(t, aer.TopValues)
	assert.Equal(t, "surface", aer.TopValues[0].Value)
	assert.Equal(t, 2, aer.TopValues[0].Count)
}

func TestMarkdownMentionsEveryColumn(t *testing.T) {
	tbl := table.New("plant.xlsx", 0)
	tbl.Append(&table.Column{Name: "Stages", Kind: table.Numeric, Floats: []float64{1, 2}})
	tbl.Append(&table.Column{Name: "PrimaryTrigger", Kind: table.Categorical, Strings: []string{"manual", "timer"}})

	md := Markdown(tbl, Summarize(tbl))
	assert.Contains(t, md, "Stages")
	assert.Contains(t, md, "PrimaryTrigger")
	assert.Contains(t, md, "Rows: 2")
}
