package fit

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/gogpu/ink"
)

func sample(c ink.CubicBez, n int) ([]ink.Point, []float64) {
	pts := make([]ink.Point, n)
	ts := make([]float64, n)
	for i := range pts {
		ts[i] = float64(i) / float64(n-1)
		pts[i] = c.Eval(ts[i])
	}
	return pts, ts
}

func TestParameterize(t *testing.T) {
	tests := []struct {
		name  string
		chord []ink.Point
		want  []float64
	}{
		{"empty", nil, []float64{}},
		{"single", []ink.Point{ink.Pt(1, 1)}, []float64{0}},
		{"even", []ink.Point{ink.Pt(0, 0), ink.Pt(1, 0), ink.Pt(2, 0)}, []float64{0, 0.5, 1}},
		{"uneven", []ink.Point{ink.Pt(0, 0), ink.Pt(3, 0), ink.Pt(3, 1)}, []float64{0, 0.75, 1}},
		{"zero length", []ink.Point{ink.Pt(2, 2), ink.Pt(2, 2), ink.Pt(2, 2)}, []float64{0, 0.5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parameterize(tt.chord)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("ts[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLeastSquaresFit_ReproducesCubic(t *testing.T) {
	curves := []ink.CubicBez{
		ink.NewCubicBez(ink.Pt(0, 0), ink.Pt(30, 80), ink.Pt(90, -40), ink.Pt(120, 30)),
		ink.NewCubicBez(ink.Pt(10, 10), ink.Pt(10, 60), ink.Pt(60, 60), ink.Pt(60, 10)),
		ink.NewCubicBez(ink.Pt(-5, 3), ink.Pt(0, 0), ink.Pt(4, 9), ink.Pt(7, -2)),
	}
	for _, want := range curves {
		pts, ts := sample(want, 20)
		got, err := LeastSquaresFit(pts, ts)
		if err != nil {
			t.Fatalf("LeastSquaresFit: %v", err)
		}
		if got.P0 != want.P0 || got.P3 != want.P3 {
			t.Errorf("endpoints = %v,%v, want exactly %v,%v", got.P0, got.P3, want.P0, want.P3)
		}
		if !got.P1.Approx(want.P1, 1e-6) || !got.P2.Approx(want.P2, 1e-6) {
			t.Errorf("handles = %v,%v, want %v,%v", got.P1, got.P2, want.P1, want.P2)
		}
	}
}

func TestLeastSquaresFit_ShortChord(t *testing.T) {
	chord := []ink.Point{ink.Pt(0, 0), ink.Pt(5, 5), ink.Pt(40, 0)}
	got, err := LeastSquaresFit(chord, Parameterize(chord))
	if err != nil {
		t.Fatalf("LeastSquaresFit: %v", err)
	}
	if got.P1 != ink.Pt(10, 0) || got.P2 != ink.Pt(30, 0) {
		t.Errorf("handles = %v,%v, want (10,0),(30,0)", got.P1, got.P2)
	}
}

func TestLeastSquaresFit_Degenerate(t *testing.T) {
	// every parameter at an endpoint leaves the inner handles unconstrained
	chord := []ink.Point{ink.Pt(0, 0), ink.Pt(0, 0), ink.Pt(8, 0), ink.Pt(8, 0)}
	ts := []float64{0, 0, 1, 1}
	got, err := LeastSquaresFit(chord, ts)
	if !errors.Is(err, ErrFitFailed) {
		t.Fatalf("error = %v, want ErrFitFailed", err)
	}
	if !errors.Is(err, ink.ErrSingular) {
		t.Errorf("error = %v, want it to wrap ErrSingular", err)
	}
	if got.P1 != ink.Pt(2, 0) || got.P2 != ink.Pt(6, 0) {
		t.Errorf("fallback handles = %v,%v", got.P1, got.P2)
	}

	if _, err := LeastSquaresFit(nil, nil); !errors.Is(err, ErrFitFailed) {
		t.Errorf("empty chord error = %v, want ErrFitFailed", err)
	}
	if _, err := LeastSquaresFit(make([]ink.Point, 5), []float64{0, 1}); !errors.Is(err, ErrFitFailed) {
		t.Errorf("mismatched parameters error = %v, want ErrFitFailed", err)
	}
}

func TestDetectCorners(t *testing.T) {
	tests := []struct {
		name  string
		chord []ink.Point
		want  []int
	}{
		{"straight", []ink.Point{ink.Pt(0, 0), ink.Pt(10, 0), ink.Pt(20, 0), ink.Pt(30, 0)}, nil},
		{"right angle", []ink.Point{ink.Pt(0, 0), ink.Pt(50, 0), ink.Pt(50, 50)}, []int{1}},
		{"gentle", []ink.Point{ink.Pt(0, 0), ink.Pt(10, 0), ink.Pt(20, 2), ink.Pt(30, 5)}, nil},
		{"zigzag", []ink.Point{ink.Pt(0, 0), ink.Pt(10, 10), ink.Pt(20, 0), ink.Pt(30, 10)}, []int{1, 2}},
		{"coincident", []ink.Point{ink.Pt(0, 0), ink.Pt(0, 0), ink.Pt(0, 10)}, nil},
		{"too short", []ink.Point{ink.Pt(0, 0), ink.Pt(1, 1)}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCorners(tt.chord); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetectCorners = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitChord(t *testing.T) {
	chord := []ink.Point{ink.Pt(0, 0), ink.Pt(1, 0), ink.Pt(2, 0), ink.Pt(3, 0), ink.Pt(4, 0)}
	got := SplitChord(chord, []int{1, 3})
	want := [][]ink.Point{
		{ink.Pt(0, 0), ink.Pt(1, 0)},
		{ink.Pt(1, 0), ink.Pt(2, 0), ink.Pt(3, 0)},
		{ink.Pt(3, 0), ink.Pt(4, 0)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitChord = %v, want %v", got, want)
	}
	got[0][0] = ink.Pt(9, 9)
	if chord[0] != ink.Pt(0, 0) {
		t.Error("pieces alias the input chord")
	}
	if whole := SplitChord(chord, nil); len(whole) != 1 || len(whole[0]) != len(chord) {
		t.Errorf("no indices: %v", whole)
	}
}

func TestSplitChord_IrregularIndices(t *testing.T) {
	chord := []ink.Point{ink.Pt(0, 0), ink.Pt(1, 0), ink.Pt(2, 0), ink.Pt(3, 0), ink.Pt(4, 0)}
	tests := []struct {
		name    string
		indices []int
		sizes   []int
	}{
		{"unsorted", []int{3, 1}, []int{2, 3, 2}},
		{"duplicates", []int{2, 2}, []int{3, 3}},
		{"endpoints", []int{0, 4}, []int{5}},
		{"out of range", []int{-3, 2, 9}, []int{3, 3}},
		{"empty chord", []int{1}, []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := chord
			if tt.name == "empty chord" {
				in = nil
			}
			got := SplitChord(in, tt.indices)
			if len(got) != len(tt.sizes) {
				t.Fatalf("got %d pieces, want %d: %v", len(got), len(tt.sizes), got)
			}
			for i, n := range tt.sizes {
				if len(got[i]) != n {
					t.Errorf("piece %d has %d points, want %d", i, len(got[i]), n)
				}
			}
		})
	}
}

func TestFitStroke_RightAngle(t *testing.T) {
	chord := []ink.Point{ink.Pt(0, 0), ink.Pt(50, 0), ink.Pt(50, 50)}
	got := FitStroke(chord)
	if len(got) != 2 {
		t.Fatalf("FitStroke returned %d curves, want 2", len(got))
	}
	if got[0].Start() != ink.Pt(0, 0) || got[0].End() != ink.Pt(50, 0) {
		t.Errorf("first curve spans %v-%v", got[0].Start(), got[0].End())
	}
	if got[1].Start() != ink.Pt(50, 0) || got[1].End() != ink.Pt(50, 50) {
		t.Errorf("second curve spans %v-%v", got[1].Start(), got[1].End())
	}
}

func TestFitStroke_Smooth(t *testing.T) {
	want := ink.NewCubicBez(ink.Pt(0, 0), ink.Pt(40, 60), ink.Pt(100, 60), ink.Pt(140, 0))
	pts, _ := sample(want, 40)
	got := FitStroke(pts)
	if len(got) != 1 {
		t.Fatalf("FitStroke returned %d curves, want 1", len(got))
	}
	ts := Parameterize(pts)
	if _, worst := MaxErrorPoint(pts, ts, got[0]); worst > 5 {
		t.Errorf("max error %v too large", worst)
	}
	if FitStroke(nil) != nil {
		t.Error("FitStroke(nil) should be nil")
	}
}
