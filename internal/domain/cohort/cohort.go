// Package cohort defines the static configuration describing each simulated
// firm-size cohort: its label, the correlation structure among the survey
// variables, the employer headcount range, and the number of observations
// to draw.
package cohort

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// NumVariables is the number of continuous survey variables per observation.
const NumVariables = 4

// symmetryTolerance bounds the allowed asymmetry between mirrored matrix
// entries; YAML round-trips can introduce tiny float noise.
const symmetryTolerance = 1e-9

// VariableNames lists the continuous columns in generation order:
// job satisfaction, intent to quit, age, organizational tenure.
var VariableNames = []string{"job_sat", "int_qui", "age", "org_tnr"}

// Column names for the two attached columns.
const (
	LabelColumn    = "cohort"
	FirmSizeColumn = "firm_size"
)

// Spec is the immutable configuration for one cohort.
type Spec struct {
	// Name is the categorical label attached to every observation.
	Name string `koanf:"name"`

	// Corr is the 4x4 correlation matrix among the survey variables,
	// used directly as the covariance of the multivariate normal draw.
	Corr [][]float64 `koanf:"corr"`

	// SizeMin and SizeMax bound the uniform firm-size draw, half-open
	// [SizeMin, SizeMax). Both are employer headcounts.
	SizeMin int `koanf:"size_min"`
	SizeMax int `koanf:"size_max"`

	// SampleCount is the number of observations to generate.
	SampleCount int `koanf:"sample_count"`
}

// Validate checks the spec's shape constraints: a 4x4 symmetric matrix with
// unit diagonal and entries in [-1, 1], positive half-open size bounds, and a
// positive sample count. Positive semi-definiteness is deliberately not
// checked here; it surfaces as a sampling failure.
func (s Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty cohort name", ErrInvalidSpec)
	}
	if err := s.validateMatrix(); err != nil {
		return err
	}
	if s.SizeMin <= 0 || s.SizeMax <= s.SizeMin {
		return fmt.Errorf("%w: cohort %q size range [%d, %d)", ErrInvalidSizeRange, s.Name, s.SizeMin, s.SizeMax)
	}
	if s.SampleCount <= 0 {
		return fmt.Errorf("%w: cohort %q sample count %d", ErrInvalidSampleCount, s.Name, s.SampleCount)
	}
	return nil
}

func (s Spec) validateMatrix() error {
	if len(s.Corr) != NumVariables {
		return fmt.Errorf("%w: cohort %q has %d rows, want %d", ErrInvalidMatrix, s.Name, len(s.Corr), NumVariables)
	}
	for i, row := range s.Corr {
		if len(row) != NumVariables {
			return fmt.Errorf("%w: cohort %q row %d has %d entries, want %d", ErrInvalidMatrix, s.Name, i, len(row), NumVariables)
		}
		for j, v := range row {
			if math.IsNaN(v) || v < -1 || v > 1 {
				return fmt.Errorf("%w: cohort %q entry (%d,%d)=%v outside [-1, 1]", ErrInvalidMatrix, s.Name, i, j, v)
			}
		}
		if math.Abs(row[i]-1) > symmetryTolerance {
			return fmt.Errorf("%w: cohort %q diagonal entry (%d,%d)=%v, want 1", ErrInvalidMatrix, s.Name, i, i, row[i])
		}
	}
	for i := 0; i < NumVariables; i++ {
		for j := i + 1; j < NumVariables; j++ {
			if math.Abs(s.Corr[i][j]-s.Corr[j][i]) > symmetryTolerance {
				return fmt.Errorf("%w: cohort %q entries (%d,%d) and (%d,%d) differ", ErrInvalidMatrix, s.Name, i, j, j, i)
			}
		}
	}
	return nil
}

// CorrMatrix returns the correlation matrix as a gonum symmetric matrix.
// Callers should Validate first; malformed specs panic here.
func (s Spec) CorrMatrix() *mat.SymDense {
	data := make([]float64, NumVariables*NumVariables)
	for i := 0; i < NumVariables; i++ {
		for j := 0; j < NumVariables; j++ {
			data[i*NumVariables+j] = s.Corr[i][j]
		}
	}
	return mat.NewSymDense(NumVariables, data)
}

// ValidateSet validates every spec in the table and additionally requires
// labels to be unique, since downstream grouped analysis keys rows by label.
func ValidateSet(specs []Spec) error {
	if len(specs) == 0 {
		return fmt.Errorf("%w: empty cohort table", ErrInvalidSpec)
	}
	seen := make(map[string]struct{}, len(specs))
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return err
		}
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}
