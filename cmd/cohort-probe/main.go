package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/cohortsim/internal/verify"
)

// Default configuration constants.
const (
	defaultSeed      = 42
	defaultSamples   = 10000
	defaultTolerance = 0.05
	defaultTimeout   = 5 * time.Minute
)

func main() {
	var (
		seed       = flag.Uint64("seed", defaultSeed, "Pseudorandom seed for the generation run")
		samples    = flag.Int("samples", defaultSamples, "Observations per cohort")
		tolerance  = flag.Float64("tolerance", defaultTolerance, "Allowed deviation for means and correlations")
		cohortFile = flag.String("cohorts", "", "YAML cohort table overriding the built-in defaults")
		logFile    = flag.String("log", "", "Log file for probe output (default: probe_log_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		verify.ShowHelp()
		return
	}

	// Setup logging
	if err := verify.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	// Create probe configuration
	config := &verify.Config{
		Seed:        *seed,
		SampleCount: *samples,
		Tolerance:   *tolerance,
		CohortFile:  *cohortFile,
		LogFile:     *logFile,
		Verbose:     *verbose,
	}

	// Run the probe
	if err := verify.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Probe failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
