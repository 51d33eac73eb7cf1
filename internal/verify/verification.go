package verify

import (
	"log"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/okian/cohortsim/internal/domain/cohort"
	"github.com/okian/cohortsim/internal/domain/dataset"
)

// verifyDataset checks every cohort's empirical moments and firm-size bounds
// against its spec, tallying results into stats.
func verifyDataset(ds *dataset.Dataset, cfg *Config, stats *Stats) error {
	labels, err := ds.Frame.Strings(cohort.LabelColumn)
	if err != nil {
		return err
	}
	sizes, err := ds.Frame.Ints(cohort.FirmSizeColumn)
	if err != nil {
		return err
	}

	vars := make([][]float64, cohort.NumVariables)
	for j, name := range cohort.VariableNames {
		xs, err := ds.Frame.Floats(name)
		if err != nil {
			return err
		}
		vars[j] = xs
	}

	for _, spec := range ds.Cohorts {
		rows := rowsWithLabel(labels, spec.Name)
		stats.CohortsChecked++

		checkRowCount(spec, len(rows), stats)
		checkSizeBounds(spec, rows, sizes, stats)
		checkMeans(spec, rows, vars, cfg, stats)
		checkCorrelations(spec, rows, vars, cfg, stats)
	}

	return nil
}

func rowsWithLabel(labels []string, name string) []int {
	var rows []int
	for i, l := range labels {
		if l == name {
			rows = append(rows, i)
		}
	}
	return rows
}

func checkRowCount(spec cohort.Spec, got int, stats *Stats) {
	if got == spec.SampleCount {
		stats.ChecksPassed++
		return
	}
	stats.ChecksFailed++
	log.Printf("❌ cohort %q: %d rows, want %d", spec.Name, got, spec.SampleCount)
}

func checkSizeBounds(spec cohort.Spec, rows []int, sizes []int, stats *Stats) {
	for _, i := range rows {
		if sizes[i] < spec.SizeMin || sizes[i] >= spec.SizeMax {
			stats.ChecksFailed++
			log.Printf("❌ cohort %q: firm size %d outside [%d, %d)", spec.Name, sizes[i], spec.SizeMin, spec.SizeMax)
			return
		}
	}
	stats.ChecksPassed++
}

func checkMeans(spec cohort.Spec, rows []int, vars [][]float64, cfg *Config, stats *Stats) {
	for j, name := range cohort.VariableNames {
		vals := gather(vars[j], rows)
		mean := stat.Mean(vals, nil)
		if math.Abs(mean) <= cfg.Tolerance {
			stats.ChecksPassed++
			if cfg.Verbose {
				log.Printf("   cohort %q %s mean %.4f", spec.Name, name, mean)
			}
			continue
		}
		stats.ChecksFailed++
		log.Printf("❌ cohort %q: %s mean %.4f exceeds tolerance %.3f", spec.Name, name, mean, cfg.Tolerance)
	}
}

func checkCorrelations(spec cohort.Spec, rows []int, vars [][]float64, cfg *Config, stats *Stats) {
	n := len(rows)
	if n == 0 {
		return
	}

	data := make([]float64, n*cohort.NumVariables)
	for r, i := range rows {
		for j := 0; j < cohort.NumVariables; j++ {
			data[r*cohort.NumVariables+j] = vars[j][i]
		}
	}
	x := mat.NewDense(n, cohort.NumVariables, data)

	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, x, nil)

	for i := 0; i < cohort.NumVariables; i++ {
		for j := i + 1; j < cohort.NumVariables; j++ {
			got := corr.At(i, j)
			want := spec.Corr[i][j]
			if math.Abs(got-want) <= cfg.Tolerance {
				stats.ChecksPassed++
				if cfg.Verbose {
					log.Printf("   cohort %q corr(%s, %s) %.4f (want %.2f)",
						spec.Name, cohort.VariableNames[i], cohort.VariableNames[j], got, want)
				}
				continue
			}
			stats.ChecksFailed++
			log.Printf("❌ cohort %q: corr(%s, %s) %.4f deviates from %.2f by more than %.3f",
				spec.Name, cohort.VariableNames[i], cohort.VariableNames[j], got, want, cfg.Tolerance)
		}
	}
}

func gather(xs []float64, rows []int) []float64 {
	out := make([]float64, len(rows))
	for k, i := range rows {
		out[k] = xs[i]
	}
	return out
}
