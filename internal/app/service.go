// Package service orchestrates one generation run: sampling every configured
// cohort, assembling the combined dataset, and handing it to an optional
// downstream analysis stage.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/cohortsim/internal/domain/cohort"
	"github.com/okian/cohortsim/internal/domain/dataset"
	"github.com/okian/cohortsim/internal/domain/frame"
	"github.com/okian/cohortsim/internal/domain/regress"
	"github.com/okian/cohortsim/internal/domain/sampler"
	"github.com/okian/cohortsim/pkg/logger"
)

// Service drives the cohort sample generator and dataset assembler.
type Service struct {
	mu sync.RWMutex

	// Configuration
	cohorts     []cohort.Spec
	sampleCount int
	seed        uint64
	fitter      regress.Fitter

	// Run bookkeeping
	runs         int
	lastRunID    string
	lastRows     int
	lastDuration time.Duration

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithCohorts replaces the default cohort table.
func WithCohorts(specs []cohort.Spec) Option {
	return func(s *Service) {
		if len(specs) > 0 {
			s.cohorts = specs
		}
	}
}

// WithSampleCount overrides every cohort's sample count.
func WithSampleCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.sampleCount = count
		}
	}
}

// WithSeed fixes the pseudorandom seed for deterministic runs. Zero keeps
// the time-derived default.
func WithSeed(seed uint64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithFitter installs the downstream analysis stage invoked on the
// assembled dataset.
func WithFitter(f regress.Fitter) Option {
	return func(s *Service) {
		s.fitter = f
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with the default five-cohort table.
func New(opts ...Option) *Service {
	s := &Service{
		cohorts: cohort.Defaults(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Generate runs one batch: validate the cohort table, sample every cohort
// sequentially, concatenate the frames in order, and invoke the fitter when
// one is installed. Any failure aborts the run and propagates.
func (s *Service) Generate(ctx context.Context) (*dataset.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.logger == nil {
		s.logger = logger.Get()
	}

	start := time.Now()

	specs := make([]cohort.Spec, len(s.cohorts))
	copy(specs, s.cohorts)
	if s.sampleCount > 0 {
		for i := range specs {
			specs[i].SampleCount = s.sampleCount
		}
	}

	if err := cohort.ValidateSet(specs); err != nil {
		return nil, fmt.Errorf("cohort table rejected: %w", err)
	}

	genOpts := []sampler.Option{}
	if s.seed != 0 {
		genOpts = append(genOpts, sampler.WithSeed(s.seed))
	}
	gen := sampler.New(genOpts...)

	s.logger.Info(ctx, "generating cohort samples",
		logger.Int("cohorts", len(specs)),
		logger.Uint64("seed", s.seed),
	)

	frames := make([]*frame.Frame, 0, len(specs))
	for _, spec := range specs {
		f, err := gen.Sample(ctx, spec)
		if err != nil {
			return nil, fmt.Errorf("sampling cohort %q failed: %w", spec.Name, err)
		}
		s.logger.Debug(ctx, "cohort sampled",
			logger.String("cohort", spec.Name),
			logger.Int("rows", f.NumRows()),
		)
		frames = append(frames, f)
	}

	combined, err := dataset.Concat(frames...)
	if err != nil {
		return nil, fmt.Errorf("dataset assembly failed: %w", err)
	}

	ds := dataset.New(combined, specs)

	if s.fitter != nil {
		if err := s.fitter.Fit(ctx, ds, specs); err != nil {
			return nil, fmt.Errorf("downstream fit failed: %w", err)
		}
	}

	s.runs++
	s.lastRunID = ds.RunID
	s.lastRows = combined.NumRows()
	s.lastDuration = time.Since(start)

	s.logger.Info(ctx, "dataset assembled",
		logger.String("runID", ds.RunID),
		logger.Int("rows", combined.NumRows()),
		logger.Int("columns", combined.NumCols()),
		logger.Duration("took", s.lastDuration),
	)

	return ds, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"cohorts":        len(s.cohorts),
		"sampleOverride": s.sampleCount,
		"seed":           s.seed,
		"runs":           s.runs,
		"lastRunID":      s.lastRunID,
		"lastRows":       s.lastRows,
		"lastDurationMs": s.lastDuration.Milliseconds(),
	}
}
