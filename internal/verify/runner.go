package verify

import (
	"context"
	"fmt"
	"log"
	"time"

	app "github.com/okian/cohortsim/internal/app"
	"github.com/okian/cohortsim/internal/config"
	"github.com/okian/cohortsim/internal/domain/cohort"
)

// Run executes one verification pass: generate a seeded dataset and check
// the empirical per-cohort moments against the cohort table.
func Run(ctx context.Context, cfg *Config) error {
	stats := &Stats{StartTime: time.Now()}

	specs := cohort.Defaults()
	if cfg.CohortFile != "" {
		loaded, err := config.LoadCohorts(ctx, cfg.CohortFile)
		if err != nil {
			return fmt.Errorf("loading cohort table: %w", err)
		}
		specs = loaded
	}

	log.Printf("📊 Probing %d cohorts with %d samples each (seed %d, tolerance %.3f)",
		len(specs), cfg.SampleCount, cfg.Seed, cfg.Tolerance)

	svc := app.New(
		app.WithCohorts(specs),
		app.WithSeed(cfg.Seed),
		app.WithSampleCount(cfg.SampleCount),
	)

	ds, err := svc.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	stats.RowsGenerated = ds.Frame.NumRows()

	if err := verifyDataset(ds, cfg, stats); err != nil {
		return err
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	log.Printf("📈 Probe finished in %s: %d cohorts, %d checks passed, %d failed",
		stats.Duration, stats.CohortsChecked, stats.ChecksPassed, stats.ChecksFailed)

	if stats.ChecksFailed > 0 {
		return fmt.Errorf("%w: %d of %d checks failed",
			ErrVerificationFailed, stats.ChecksFailed, stats.ChecksPassed+stats.ChecksFailed)
	}

	log.Println("✅ All cohorts within tolerance")
	return nil
}
