package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	app "github.com/okian/cohortsim/internal/app"
	"github.com/okian/cohortsim/internal/config"
	"github.com/okian/cohortsim/internal/domain/cohort"
	"github.com/okian/cohortsim/pkg/logger"
	"github.com/okian/cohortsim/pkg/metrics"
)

// HTTP server timeout constants for the optional metrics endpoint.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Cohort table: built-in defaults or a configured YAML table.
	specs := cohort.Defaults()
	if cfg.CohortFile != "" {
		specs, err = config.LoadCohorts(ctx, cfg.CohortFile)
		if err != nil {
			loggerInstance.Error(ctx, "failed to load cohort table", logger.String("path", cfg.CohortFile), logger.Error(err))
			return
		}
		loggerInstance.Info(ctx, "loaded cohort table", logger.String("path", cfg.CohortFile), logger.Int("cohorts", len(specs)))
	}

	// Optionally expose Prometheus metrics while the run is in flight.
	var metricsSrv *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
		metricsSrv = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
		}
		go func() {
			loggerInstance.Info(ctx, "serving metrics", logger.String("addr", cfg.MetricsAddr))
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				loggerInstance.Warn(ctx, "metrics server failed", logger.Error(err))
			}
		}()
	}

	// Build and run the generation service.
	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithCohorts(specs),
		app.WithSeed(cfg.Seed),
		app.WithSampleCount(cfg.SampleCount),
	)

	ds, err := svc.Generate(ctx)
	if err != nil {
		loggerInstance.Error(ctx, "generation run failed", logger.Error(err))
	} else {
		loggerInstance.Info(ctx, "generation run complete",
			logger.String("runID", ds.RunID),
			logger.Int("rows", ds.Frame.NumRows()),
			logger.Int("cohorts", len(ds.Cohorts)),
		)
	}

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			loggerInstance.Warn(ctx, "metrics server shutdown failed", logger.Error(err))
		}
	}
}
