// Package regress defines the extension point for the analysis stages that
// consume an assembled dataset. The module itself implements no fitting or
// plotting; implementations are supplied by the embedding analysis code.
package regress

import (
	"context"

	"github.com/okian/cohortsim/internal/domain/cohort"
	"github.com/okian/cohortsim/internal/domain/dataset"
)

// Model formulas the assembled dataset is guaranteed to support: a pooled
// interaction model, or one simple model per cohort subset.
const (
	PooledFormula  = "int_qui ~ job_sat + firm_size + job_sat:firm_size"
	GroupedFormula = "int_qui ~ job_sat"
)

// Fitter fits a moderated regression (pooled with interaction term) or a set
// of per-cohort simple regressions over the assembled dataset. The cohort
// table provides the label-to-size-range mapping grouped fits key on.
type Fitter interface {
	Fit(ctx context.Context, ds *dataset.Dataset, cohorts []cohort.Spec) error
}

// SlopePlotter renders how the estimated slope of job satisfaction on intent
// to quit varies with firm size.
type SlopePlotter interface {
	Plot(ctx context.Context, ds *dataset.Dataset, cohorts []cohort.Spec) error
}
