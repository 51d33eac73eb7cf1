package sampler_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/okian/cohortsim/internal/domain/cohort"
	"github.com/okian/cohortsim/internal/domain/sampler"
	. "github.com/smartystreets/goconvey/convey"
)

func microSpec() cohort.Spec {
	return cohort.Spec{
		Name: "micro",
		Corr: [][]float64{
			{1, -0.40, -0.03, 0.11},
			{-0.40, 1, -0.05, -0.09},
			{-0.03, -0.05, 1, 0.05},
			{0.11, -0.09, 0.05, 1},
		},
		SizeMin:     1,
		SizeMax:     5,
		SampleCount: 1000,
	}
}

func TestSampleMicroCohort(t *testing.T) {
	Convey("Given a seeded generator and the micro cohort spec", t, func() {
		gen := sampler.New(sampler.WithSeed(42))
		spec := microSpec()

		f, err := gen.Sample(context.Background(), spec)
		So(err, ShouldBeNil)

		Convey("Then the frame has 1000 rows and the six columns in order", func() {
			So(f.NumRows(), ShouldEqual, 1000)
			So(f.NumCols(), ShouldEqual, 6)

			schema := f.Schema()
			names := make([]string, len(schema))
			for i, ct := range schema {
				names[i] = ct.Name
			}
			So(names, ShouldResemble, []string{"job_sat", "int_qui", "age", "org_tnr", "cohort", "firm_size"})
		})

		Convey("Then the label column is uniformly the cohort name", func() {
			labels, err := f.Strings(cohort.LabelColumn)
			So(err, ShouldBeNil)
			for _, l := range labels {
				So(l, ShouldEqual, "micro")
			}
		})

		Convey("Then every firm size lies in the half-open range [1, 5)", func() {
			sizes, err := f.Ints(cohort.FirmSizeColumn)
			So(err, ShouldBeNil)
			for _, s := range sizes {
				So(s, ShouldBeGreaterThanOrEqualTo, 1)
				So(s, ShouldBeLessThan, 5)
			}
		})

		Convey("Then the continuous columns contain no missing values", func() {
			for _, name := range cohort.VariableNames {
				xs, err := f.Floats(name)
				So(err, ShouldBeNil)
				So(len(xs), ShouldEqual, 1000)
				for _, x := range xs {
					So(math.IsNaN(x), ShouldBeFalse)
					So(math.IsInf(x, 0), ShouldBeFalse)
				}
			}
		})
	})
}

func TestSampleDeterminism(t *testing.T) {
	Convey("Given two generators sharing a seed", t, func() {
		spec := microSpec()

		a, err := sampler.New(sampler.WithSeed(7)).Sample(context.Background(), spec)
		So(err, ShouldBeNil)
		b, err := sampler.New(sampler.WithSeed(7)).Sample(context.Background(), spec)
		So(err, ShouldBeNil)

		Convey("Then they produce identical output", func() {
			for _, name := range cohort.VariableNames {
				xa, err := a.Floats(name)
				So(err, ShouldBeNil)
				xb, err := b.Floats(name)
				So(err, ShouldBeNil)
				So(xa, ShouldResemble, xb)
			}

			sa, err := a.Ints(cohort.FirmSizeColumn)
			So(err, ShouldBeNil)
			sb, err := b.Ints(cohort.FirmSizeColumn)
			So(err, ShouldBeNil)
			So(sa, ShouldResemble, sb)
		})
	})
}

func TestSampleConvergence(t *testing.T) {
	Convey("Given a large seeded draw from the micro cohort", t, func() {
		spec := microSpec()
		spec.SampleCount = 10000

		f, err := sampler.New(sampler.WithSeed(1)).Sample(context.Background(), spec)
		So(err, ShouldBeNil)

		cols := make([][]float64, cohort.NumVariables)
		for j, name := range cohort.VariableNames {
			xs, err := f.Floats(name)
			So(err, ShouldBeNil)
			cols[j] = xs
		}

		Convey("Then sample means are close to zero", func() {
			for _, xs := range cols {
				So(stat.Mean(xs, nil), ShouldAlmostEqual, 0, 0.05)
			}
		})

		Convey("Then the sample correlation matrix is close to the spec", func() {
			data := make([]float64, spec.SampleCount*cohort.NumVariables)
			for i := 0; i < spec.SampleCount; i++ {
				for j := 0; j < cohort.NumVariables; j++ {
					data[i*cohort.NumVariables+j] = cols[j][i]
				}
			}
			x := mat.NewDense(spec.SampleCount, cohort.NumVariables, data)

			var corr mat.SymDense
			stat.CorrelationMatrix(&corr, x, nil)

			for i := 0; i < cohort.NumVariables; i++ {
				for j := 0; j < cohort.NumVariables; j++ {
					So(corr.At(i, j), ShouldAlmostEqual, spec.Corr[i][j], 0.05)
				}
			}
		})
	})
}

func TestSampleFailures(t *testing.T) {
	Convey("Given a generator", t, func() {
		gen := sampler.New(sampler.WithSeed(3))

		Convey("When the matrix is symmetric but not positive definite", func() {
			spec := microSpec()
			spec.Corr = [][]float64{
				{1, 0.9, 0.9, 0},
				{0.9, 1, -0.9, 0},
				{0.9, -0.9, 1, 0},
				{0, 0, 0, 1},
			}

			_, err := gen.Sample(context.Background(), spec)
			So(errors.Is(err, sampler.ErrNotPositiveDefinite), ShouldBeTrue)
		})

		Convey("When the spec itself is malformed", func() {
			spec := microSpec()
			spec.SampleCount = -1

			_, err := gen.Sample(context.Background(), spec)
			So(errors.Is(err, cohort.ErrInvalidSampleCount), ShouldBeTrue)
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := gen.Sample(ctx, microSpec())
			So(err, ShouldNotBeNil)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}
