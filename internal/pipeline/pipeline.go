// Package pipeline composes table transformations into a one-shot batch run.
// Stages pass Tables explicitly; no stage reads or writes files, so there is
// no hidden on-disk intermediate state between stages.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/aquaprep-cli/internal/table"
)

// Stage is a transformation applied to a Table. Apply returns a new Table
// and must not mutate its input.
type Stage interface {
	Name() string
	Apply(ctx context.Context, t *table.Table) (*table.Table, error)
}

// Pipeline runs stages in order. A run either completes or fails outright;
// there is no retry and no partial-success reporting beyond the stages
// already recorded in the report.
type Pipeline struct {
	stages []Stage
}

func New() *Pipeline { return &Pipeline{} }

func (p *Pipeline) Add(s Stage) *Pipeline {
	p.stages = append(p.stages, s)
	return p
}

// Report describes a pipeline run.
type Report struct {
	RunID    string        `json:"run_id"`
	Input    string        `json:"input"`
	Rows     int           `json:"rows"`
	Stages   []StageResult `json:"stages"`
	Duration time.Duration `json:"duration_ns"`
}

// StageResult records the outcome of one stage.
type StageResult struct {
	Stage   string   `json:"stage"`
	Columns int      `json:"columns"`
	Notes   []string `json:"notes,omitempty"`
}

// Noter lets a stage attach human-readable notes to the run report.
type Noter interface {
	Notes() []string
}

// Run applies every stage in order and returns the final Table with a run
// report. On stage failure the error names the stage; the report covers the
// stages that completed, so callers can tell an incomplete run apart.
func (p *Pipeline) Run(ctx context.Context, t *table.Table) (*table.Table, *Report, error) {
	rep := &Report{RunID: uuid.NewString(), Input: t.Name, Rows: t.Rows()}
	start := time.Now()
	cur := t
	for _, s := range p.stages {
		var err error
		cur, err = s.Apply(ctx, cur)
		if err != nil {
			rep.Duration = time.Since(start)
			return nil, rep, fmt.Errorf("stage %s: %w", s.Name(), err)
		}
		res := StageResult{Stage: s.Name(), Columns: len(cur.Columns())}
		if n, ok := s.(Noter); ok {
			res.Notes = n.Notes()
		}
		rep.Stages = append(rep.Stages, res)
	}
	rep.Duration = time.Since(start)
	return cur, rep, nil
}
