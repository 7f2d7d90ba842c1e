package stats

import (
	"math"

	"github.com/KaramelBytes/aquaprep-cli/internal/table"
)

// Running accumulates count, mean, variance (Welford), min and max in a
// single pass.
type Running struct {
	n    int
	mean float64
	m2   float64
	min  float64
	max  float64
}

// Add folds x into the accumulator. NaN inputs are ignored so missing cells
// never pollute the statistics.
func (r *Running) Add(x float64) {
	if math.IsNaN(x) {
		return
	}
	r.n++
	if r.n == 1 {
		r.min = x
		r.max = x
	} else {
		if x < r.min {
			r.min = x
		}
		if x > r.max {
			r.max = x
		}
	}
	delta := x - r.mean
	r.mean += delta / float64(r.n)
	r.m2 += delta * (x - r.mean)
}

// Count returns the number of non-missing values seen.
func (r *Running) Count() int { return r.n }

// Mean returns the running mean, or 0 with no values.
func (r *Running) Mean() float64 { return r.mean }

// Std returns the sample standard deviation, or 0 with fewer than two values.
func (r *Running) Std() float64 {
	if r.n < 2 {
		return 0
	}
	return math.Sqrt(r.m2 / float64(r.n-1))
}

// Min returns the smallest value seen, or 0 with no values.
func (r *Running) Min() float64 { return r.min }

// Max returns the largest value seen, or 0 with no values.
func (r *Running) Max() float64 { return r.max }

// MeanStd computes mean and sample standard deviation over the non-NaN
// entries of vals, returning how many entries contributed.
func MeanStd(vals []float64) (mean, std float64, n int) {
	var r Running
	for _, v := range vals {
		r.Add(v)
	}
	return r.Mean(), r.Std(), r.Count()
}

// ColumnStats summarizes a numeric column.
type ColumnStats struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
	Std   float64
}

// DescribeColumn computes single-pass stats for a numeric column.
// Categorical columns yield a zero ColumnStats.
func DescribeColumn(c *table.Column) ColumnStats {
	if c.Kind != table.Numeric {
		return ColumnStats{}
	}
	var r Running
	for _, v := range c.Floats {
		r.Add(v)
	}
	return ColumnStats{Count: r.Count(), Min: r.Min(), Max: r.Max(), Mean: r.Mean(), Std: r.Std()}
}
