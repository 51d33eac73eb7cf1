package cohort_test

import (
	"errors"
	"testing"

	"github.com/okian/cohortsim/internal/domain/cohort"
	. "github.com/smartystreets/goconvey/convey"
)

func validSpec() cohort.Spec {
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

func TestSpecValidate(t *testing.T) {
	Convey("Given a well-formed cohort spec", t, func() {
		spec := validSpec()

		Convey("Then it should validate", func() {
			So(spec.Validate(), ShouldBeNil)
		})

		Convey("When the name is empty", func() {
			spec.Name = ""
			So(errors.Is(spec.Validate(), cohort.ErrInvalidSpec), ShouldBeTrue)
		})

		Convey("When the matrix is not 4x4", func() {
			spec.Corr = spec.Corr[:3]
			So(errors.Is(spec.Validate(), cohort.ErrInvalidMatrix), ShouldBeTrue)
		})

		Convey("When a row is ragged", func() {
			spec.Corr[2] = []float64{-0.03, -0.05, 1}
			So(errors.Is(spec.Validate(), cohort.ErrInvalidMatrix), ShouldBeTrue)
		})

		Convey("When the diagonal is not one", func() {
			spec.Corr[1][1] = 0.9
			So(errors.Is(spec.Validate(), cohort.ErrInvalidMatrix), ShouldBeTrue)
		})

		Convey("When an entry leaves [-1, 1]", func() {
			spec.Corr[0][1] = -1.2
			spec.Corr[1][0] = -1.2
			So(errors.Is(spec.Validate(), cohort.ErrInvalidMatrix), ShouldBeTrue)
		})

		Convey("When the matrix is asymmetric", func() {
			spec.Corr[0][1] = -0.40
			spec.Corr[1][0] = 0.40
			So(errors.Is(spec.Validate(), cohort.ErrInvalidMatrix), ShouldBeTrue)
		})

		Convey("When the size range is inverted", func() {
			spec.SizeMin = 10
			spec.SizeMax = 5
			So(errors.Is(spec.Validate(), cohort.ErrInvalidSizeRange), ShouldBeTrue)
		})

		Convey("When the size range starts at zero", func() {
			spec.SizeMin = 0
			So(errors.Is(spec.Validate(), cohort.ErrInvalidSizeRange), ShouldBeTrue)
		})

		Convey("When the sample count is not positive", func() {
			spec.SampleCount = 0
			So(errors.Is(spec.Validate(), cohort.ErrInvalidSampleCount), ShouldBeTrue)
		})
	})
}

func TestCorrMatrix(t *testing.T) {
	Convey("Given a validated spec", t, func() {
		spec := validSpec()
		m := spec.CorrMatrix()

		Convey("Then the symmetric matrix mirrors the configuration", func() {
			So(m.SymmetricDim(), ShouldEqual, cohort.NumVariables)
			So(m.At(0, 1), ShouldEqual, -0.40)
			So(m.At(1, 0), ShouldEqual, -0.40)
			So(m.At(3, 3), ShouldEqual, 1.0)
		})
	})
}

func TestValidateSet(t *testing.T) {
	Convey("Given the default cohort table", t, func() {
		specs := cohort.Defaults()

		Convey("Then it has five cohorts with distinct labels", func() {
			So(len(specs), ShouldEqual, 5)
			So(cohort.ValidateSet(specs), ShouldBeNil)
		})

		Convey("Then every cohort uses the reference sample count", func() {
			for _, s := range specs {
				So(s.SampleCount, ShouldEqual, cohort.DefaultSampleCount)
			}
		})

		Convey("When two cohorts share a label", func() {
			specs[1].Name = specs[3].Name
			So(errors.Is(cohort.ValidateSet(specs), cohort.ErrDuplicateName), ShouldBeTrue)
		})

		Convey("When the table is empty", func() {
			So(errors.Is(cohort.ValidateSet(nil), cohort.ErrInvalidSpec), ShouldBeTrue)
		})
	})
}

func TestVariableNames(t *testing.T) {
	Convey("Given the variable name list", t, func() {
		Convey("Then it matches the four survey variables in order", func() {
			So(cohort.VariableNames, ShouldResemble, []string{"job_sat", "int_qui", "age", "org_tnr"})
		})
	})
}
