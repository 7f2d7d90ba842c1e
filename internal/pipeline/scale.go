package pipeline

import (
	"context"
	"fmt"
	"math"

	"github.com/KaramelBytes/aquaprep-cli/internal/stats"
	"github.com/KaramelBytes/aquaprep-cli/internal/table"
)

// ScaledColumn records the fit parameters used for one column.
type ScaledColumn struct {
	Name string  `json:"name"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// StandardScale standardizes every numeric column to zero mean and unit
// variance, each column fit independently from its own non-missing values.
// Column selection follows the schema established at load time, never
// re-inspection of cell values. Categorical columns pass through unchanged;
// missing cells stay missing. A constant column (zero variance, or fewer
// than two values) fails with *table.DegenerateColumnError instead of
// emitting NaN or Inf.
type StandardScale struct {
	scaled []ScaledColumn
}

func NewStandardScale() *StandardScale { return &StandardScale{} }

func (s *StandardScale) Name() string { return "standard-scale" }

func (s *StandardScale) Apply(_ context.Context, t *table.Table) (*table.Table, error) {
	s.scaled = nil
	out := table.New(t.Name, t.Rows())
	for _, c := range t.Columns() {
		if c.Kind != table.Numeric {
			out.Append(c.Clone())
			continue
		}
		mean, std, n := stats.MeanStd(c.Floats)
		if n < 2 || std == 0 {
			return nil, &table.DegenerateColumnError{Column: c.Name}
		}
		sc := &table.Column{Name: c.Name, Kind: table.Numeric, Floats: make([]float64, len(c.Floats))}
		for i, v := range c.Floats {
			if math.IsNaN(v) {
				sc.Floats[i] = math.NaN()
				continue
			}
			sc.Floats[i] = (v - mean) / std
		}
		out.Append(sc)
		s.scaled = append(s.scaled, ScaledColumn{Name: c.Name, Mean: mean, Std: std})
	}
	return out, nil
}

// Scaled returns the per-column fit parameters from the last Apply.
func (s *StandardScale) Scaled() []ScaledColumn { return s.scaled }

// Notes implements Noter for run reports.
func (s *StandardScale) Notes() []string {
	notes := make([]string, len(s.scaled))
	for i, sc := range s.scaled {
		notes[i] = fmt.Sprintf("scaled %s (mean %.4g, std %.4g)", sc.Name, sc.Mean, sc.Std)
	}
	return notes
}
