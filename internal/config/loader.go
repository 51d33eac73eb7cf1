package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/cohortsim/internal/domain/cohort"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if COHORTSIM_CONFIG is set
//  3. env (prefix COHORTSIM_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("COHORTSIM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: COHORTSIM_SEED, COHORTSIM_SAMPLE_COUNT, ...
	// Keys are lowered with underscores preserved to match the koanf tags.
	envProvider := env.Provider("COHORTSIM_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "cohortsim_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if cfg.SampleCount < 0 {
		return nil, fmt.Errorf("%w: sample_count must not be negative", ErrInvalidConfig)
	}
	return &cfg, nil
}

// LoadCohorts reads a cohort table from a YAML file. The file carries a
// top-level "cohorts" list mirroring cohort.Spec. The table is validated
// before being returned.
func LoadCohorts(_ context.Context, path string) ([]cohort.Spec, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCohortFile, err)
	}

	var specs []cohort.Spec
	if err := k.UnmarshalWithConf("cohorts", &specs, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCohortFile, err)
	}

	if err := cohort.ValidateSet(specs); err != nil {
		return nil, err
	}
	return specs, nil
}
