package frame_test

import (
	"errors"
	"testing"

	"github.com/okian/cohortsim/internal/domain/frame"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFrameNew(t *testing.T) {
	Convey("Given well-formed columns", t, func() {
		f, err := frame.New(
			frame.Column{Name: "x", Kind: frame.Float, Floats: []float64{1, 2, 3}},
			frame.Column{Name: "label", Kind: frame.String, Strings: []string{"a", "b", "c"}},
			frame.Column{Name: "n", Kind: frame.Int, Ints: []int{4, 5, 6}},
		)

		Convey("Then the frame is built with the expected shape", func() {
			So(err, ShouldBeNil)
			So(f.NumRows(), ShouldEqual, 3)
			So(f.NumCols(), ShouldEqual, 3)
		})

		Convey("And columns are retrievable by name and kind", func() {
			xs, err := f.Floats("x")
			So(err, ShouldBeNil)
			So(xs, ShouldResemble, []float64{1, 2, 3})

			labels, err := f.Strings("label")
			So(err, ShouldBeNil)
			So(labels, ShouldResemble, []string{"a", "b", "c"})

			ns, err := f.Ints("n")
			So(err, ShouldBeNil)
			So(ns, ShouldResemble, []int{4, 5, 6})
		})

		Convey("And a kind mismatch is reported", func() {
			_, err := f.Floats("label")
			So(errors.Is(err, frame.ErrColumnKind), ShouldBeTrue)
		})

		Convey("And a missing column is reported", func() {
			_, err := f.Column("nope")
			So(errors.Is(err, frame.ErrNoSuchColumn), ShouldBeTrue)
		})
	})

	Convey("Given malformed columns", t, func() {
		Convey("When no columns are provided", func() {
			_, err := frame.New()
			So(errors.Is(err, frame.ErrInvalidFrame), ShouldBeTrue)
		})

		Convey("When columns are ragged", func() {
			_, err := frame.New(
				frame.Column{Name: "x", Kind: frame.Float, Floats: []float64{1, 2}},
				frame.Column{Name: "y", Kind: frame.Float, Floats: []float64{1}},
			)
			So(errors.Is(err, frame.ErrInvalidFrame), ShouldBeTrue)
		})

		Convey("When column names collide", func() {
			_, err := frame.New(
				frame.Column{Name: "x", Kind: frame.Float, Floats: []float64{1}},
				frame.Column{Name: "x", Kind: frame.Int, Ints: []int{1}},
			)
			So(errors.Is(err, frame.ErrInvalidFrame), ShouldBeTrue)
		})
	})
}

func TestSameSchema(t *testing.T) {
	Convey("Given two frames", t, func() {
		a, err := frame.New(
			frame.Column{Name: "x", Kind: frame.Float, Floats: []float64{1}},
			frame.Column{Name: "n", Kind: frame.Int, Ints: []int{1}},
		)
		So(err, ShouldBeNil)

		Convey("When schemas match", func() {
			b, err := frame.New(
				frame.Column{Name: "x", Kind: frame.Float, Floats: []float64{2, 3}},
				frame.Column{Name: "n", Kind: frame.Int, Ints: []int{2, 3}},
			)
			So(err, ShouldBeNil)

			same, _ := frame.SameSchema(a, b)
			So(same, ShouldBeTrue)
		})

		Convey("When a column is missing", func() {
			b, err := frame.New(
				frame.Column{Name: "x", Kind: frame.Float, Floats: []float64{2}},
			)
			So(err, ShouldBeNil)

			same, detail := frame.SameSchema(a, b)
			So(same, ShouldBeFalse)
			So(detail, ShouldContainSubstring, "column count")
		})

		Convey("When a column changes kind", func() {
			b, err := frame.New(
				frame.Column{Name: "x", Kind: frame.Float, Floats: []float64{2}},
				frame.Column{Name: "n", Kind: frame.Float, Floats: []float64{2}},
			)
			So(err, ShouldBeNil)

			same, detail := frame.SameSchema(a, b)
			So(same, ShouldBeFalse)
			So(detail, ShouldContainSubstring, `column "n"`)
		})
	})
}
