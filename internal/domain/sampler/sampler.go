// Package sampler draws correlated synthetic observations for a single
// cohort: the four survey variables come from a zero-mean multivariate
// normal distribution parameterized by the cohort's correlation matrix, and
// firm size is an independent uniform integer draw within the cohort bounds.
package sampler

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/okian/cohortsim/internal/domain/cohort"
	"github.com/okian/cohortsim/internal/domain/frame"
	"github.com/okian/cohortsim/pkg/metrics"
)

// Rows generated between context cancellation checks.
const ctxCheckInterval = 256

// Generator produces per-cohort observation frames from an injected
// pseudorandom source. Injecting the source keeps generation deterministic
// under a fixed seed instead of leaning on process-global random state.
type Generator struct {
	src rand.Source
}

// New creates a Generator. Without options the source is seeded from the
// wall clock, so repeated runs differ.
func New(opts ...Option) *Generator {
	g := &Generator{
		src: rand.NewSource(uint64(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Sample generates exactly spec.SampleCount observations for the cohort.
// The returned frame has six columns: the four continuous survey variables,
// the constant cohort label, and the uniform firm-size integer.
func (g *Generator) Sample(ctx context.Context, spec cohort.Spec) (*frame.Frame, error) {
	start := time.Now()

	if err := spec.Validate(); err != nil {
		metrics.RecordSpecValidationError()
		return nil, err
	}

	mu := make([]float64, cohort.NumVariables)
	dist, ok := distmv.NewNormal(mu, spec.CorrMatrix(), g.src)
	if !ok {
		// Cholesky factorization failed: the matrix is not positive
		// definite, so there is no valid joint distribution to draw from.
		metrics.RecordSamplingError()
		return nil, fmt.Errorf("%w: cohort %q", ErrNotPositiveDefinite, spec.Name)
	}

	rng := rand.New(g.src)
	n := spec.SampleCount
	width := spec.SizeMax - spec.SizeMin

	vars := make([][]float64, cohort.NumVariables)
	for j := range vars {
		vars[j] = make([]float64, n)
	}
	labels := make([]string, n)
	sizes := make([]int, n)

	buf := make([]float64, cohort.NumVariables)
	for i := 0; i < n; i++ {
		if i%ctxCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("sampling cohort %q cancelled: %w", spec.Name, ctx.Err())
			default:
			}
		}

		dist.Rand(buf)
		for j := range buf {
			vars[j][i] = buf[j]
		}
		labels[i] = spec.Name
		sizes[i] = spec.SizeMin + rng.Intn(width)
	}

	cols := make([]frame.Column, 0, cohort.NumVariables+2)
	for j, name := range cohort.VariableNames {
		cols = append(cols, frame.Column{Name: name, Kind: frame.Float, Floats: vars[j]})
	}
	cols = append(cols,
		frame.Column{Name: cohort.LabelColumn, Kind: frame.String, Strings: labels},
		frame.Column{Name: cohort.FirmSizeColumn, Kind: frame.Int, Ints: sizes},
	)

	f, err := frame.New(cols...)
	if err != nil {
		metrics.RecordSamplingError()
		return nil, err
	}

	metrics.RecordCohortSampled()
	metrics.AddObservations(n)
	metrics.ObserveSamplingDuration(time.Since(start).Seconds())

	return f, nil
}
