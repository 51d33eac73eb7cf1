// Package dataset assembles per-cohort frames into the combined dataset
// handed to downstream analysis stages.
package dataset

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okian/cohortsim/internal/domain/cohort"
	"github.com/okian/cohortsim/internal/domain/frame"
	"github.com/okian/cohortsim/pkg/metrics"
)

// Dataset is the assembled handoff payload: the combined frame, the cohort
// table that generated it, and a unique run identifier.
type Dataset struct {
	RunID   string
	Frame   *frame.Frame
	Cohorts []cohort.Spec
}

// New wraps an assembled frame and its generating cohort table, attaching a
// fresh run id.
func New(f *frame.Frame, cohorts []cohort.Spec) *Dataset {
	return &Dataset{
		RunID:   uuid.New().String(),
		Frame:   f,
		Cohorts: cohorts,
	}
}

// Concat row-concatenates the given frames in order. All inputs must share
// an identical schema (names, kinds, ordering); any difference fails loudly
// rather than producing a table with missing entries. Row order within and
// across inputs is preserved, so per-cohort blocks stay contiguous.
func Concat(frames ...*frame.Frame) (*frame.Frame, error) {
	start := time.Now()

	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: no frames to assemble", ErrEmptyAssembly)
	}

	first := frames[0]
	total := first.NumRows()
	for i, f := range frames[1:] {
		if same, detail := frame.SameSchema(first, f); !same {
			metrics.RecordSchemaMismatch()
			return nil, fmt.Errorf("%w: frame %d: %s", ErrSchemaMismatch, i+1, detail)
		}
		total += f.NumRows()
	}

	schema := first.Schema()
	cols := make([]frame.Column, len(schema))
	for c, ct := range schema {
		col := frame.Column{Name: ct.Name, Kind: ct.Kind}
		switch ct.Kind {
		case frame.Float:
			vals := make([]float64, 0, total)
			for _, f := range frames {
				xs, err := f.Floats(ct.Name)
				if err != nil {
					return nil, err
				}
				vals = append(vals, xs...)
			}
			col.Floats = vals
		case frame.String:
			vals := make([]string, 0, total)
			for _, f := range frames {
				xs, err := f.Strings(ct.Name)
				if err != nil {
					return nil, err
				}
				vals = append(vals, xs...)
			}
			col.Strings = vals
		case frame.Int:
			vals := make([]int, 0, total)
			for _, f := range frames {
				xs, err := f.Ints(ct.Name)
				if err != nil {
					return nil, err
				}
				vals = append(vals, xs...)
			}
			col.Ints = vals
		}
		cols[c] = col
	}

	combined, err := frame.New(cols...)
	if err != nil {
		return nil, err
	}

	metrics.RecordDatasetAssembled()
	metrics.UpdateDatasetRows(combined.NumRows())
	metrics.ObserveAssemblyDuration(time.Since(start).Seconds())

	return combined, nil
}
