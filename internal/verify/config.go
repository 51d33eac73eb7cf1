// Package verify is a statistical self-check harness: it generates a seeded
// dataset and compares the empirical per-cohort moments against the
// configured cohort table.
package verify

import "time"

// Config holds configuration for a verification run.
type Config struct {
	Seed        uint64  // Pseudorandom seed for the generation run
	SampleCount int     // Observations per cohort
	Tolerance   float64 // Allowed deviation for means and correlations
	CohortFile  string  // Optional YAML cohort table
	LogFile     string  // Log file for verification output
	Verbose     bool    // Enable verbose logging
}

// Stats holds verification statistics.
type Stats struct {
	CohortsChecked int
	ChecksPassed   int
	ChecksFailed   int
	RowsGenerated  int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}
