package pipeline

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/KaramelBytes/aquaprep-cli/internal/table"
)

// DefaultThreshold is the missing-percent cutoff used when none is
// configured.
const DefaultThreshold = 50.0

// DroppedColumn records a column removed by DropMissing.
type DroppedColumn struct {
	Name       string  `json:"name"`
	MissingPct float64 `json:"missing_pct"`
}

// DropMissing removes every column whose missing-value percentage strictly
// exceeds Threshold. Columns at exactly the threshold are retained.
// Surviving columns are untouched and keep their order. Dropping zero
// columns, or all of them, is not an error.
type DropMissing struct {
	Threshold float64
	dropped   []DroppedColumn
}

// NewDropMissing returns the stage with the given missing-percent threshold;
// thresholds below zero fall back to DefaultThreshold.
func NewDropMissing(threshold float64) *DropMissing {
	if threshold < 0 {
		threshold = DefaultThreshold
	}
	return &DropMissing{Threshold: threshold}
}

func (s *DropMissing) Name() string { return "drop-missing" }

func (s *DropMissing) Apply(_ context.Context, t *table.Table) (*table.Table, error) {
	s.dropped = nil
	for _, c := range t.Columns() {
		if pct := c.MissingPercent(); pct > s.Threshold {
			s.dropped = append(s.dropped, DroppedColumn{Name: c.Name, MissingPct: pct})
		}
	}
	names := lo.Map(s.dropped, func(d DroppedColumn, _ int) string { return d.Name })
	return t.Without(names...), nil
}

// Dropped returns the columns removed by the last Apply.
func (s *DropMissing) Dropped() []DroppedColumn { return s.dropped }

// Notes implements Noter for run reports.
func (s *DropMissing) Notes() []string {
	return lo.Map(s.dropped, func(d DroppedColumn, _ int) string {
		return fmt.Sprintf("dropped %s (%.1f%% missing)", d.Name, d.MissingPct)
	})
}
