package verify

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/cohortsim/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "probe_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the cohort probe tool.
func ShowHelp() {
	os.Stdout.WriteString(`Cohortsim Probe Tool
====================

Generates a seeded synthetic dataset and verifies that per-cohort sample
means and correlation matrices converge to the configured cohort table.

Usage:
  go run cmd/cohort-probe/main.go [options]

Options:
  -seed uint
        Pseudorandom seed for the generation run (default 42)
  -samples int
        Observations per cohort (default 10000)
  -tolerance float
        Allowed deviation for means and correlations (default 0.05)
  -cohorts string
        YAML cohort table overriding the built-in defaults
  -log string
        Log file for probe output (default: probe_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Probe the default cohort table
  go run cmd/cohort-probe/main.go

  # Tighter tolerance with a bigger draw
  go run cmd/cohort-probe/main.go -samples 50000 -tolerance 0.02

  # Probe a custom cohort table
  go run cmd/cohort-probe/main.go -cohorts cohorts.yaml -verbose
`)
}
