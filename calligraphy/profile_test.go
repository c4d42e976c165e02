package calligraphy

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/ink"
)

func TestWidthProfile_At(t *testing.T) {
	tests := []struct {
		name    string
		profile WidthProfile
		t       float64
		want    float64
	}{
		{"I start", SegmentI, 0, 1},
		{"I middle", SegmentI, 0.5, 0.7},
		{"I quarter eases", SegmentI, 0.25, 0.85},
		{"I end", SegmentI, 1, 1},
		{"II start", SegmentII, 0, 1},
		{"II quarter", SegmentII, 0.25, 0.9},
		{"II end", SegmentII, 1, 0.2},
		{"II end drift", SegmentII, 1 + 1e-12, 0.2},
		{"III start", SegmentIII, 0, 0.2},
		{"III three quarters", SegmentIII, 0.75, 0.9},
		{"III start drift", SegmentIII, -1e-12, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.profile.At(tt.t)
			if err != nil {
				t.Fatalf("At(%v): %v", tt.t, err)
			}
			if !approx(got, tt.want, 1e-12) {
				t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestWidthProfile_OutOfDomain(t *testing.T) {
	for _, v := range []float64{-0.5, 1.1, math.NaN()} {
		if _, err := SegmentII.At(v); !errors.Is(err, ErrOutOfDomain) {
			t.Errorf("At(%v) err = %v, want ErrOutOfDomain", v, err)
		}
	}
	var zero WidthProfile
	if !zero.IsZero() {
		t.Error("zero profile not IsZero")
	}
	if _, err := zero.At(0); !errors.Is(err, ErrOutOfDomain) {
		t.Errorf("zero profile At(0) err = %v", err)
	}
}

func TestWidthProfile_Clamped(t *testing.T) {
	tests := []struct {
		profile WidthProfile
		t, want float64
	}{
		{SegmentII, 1.5, 0.2},
		{SegmentII, -1, 1},
		{SegmentIII, 2, 1},
		{SegmentIII, -2, 0.2},
		{SegmentII, 0.5, 0.8},
		{WidthProfile{}, 0.5, 1},
	}
	for _, tt := range tests {
		if got := tt.profile.Clamped(tt.t); !approx(got, tt.want, 1e-12) {
			t.Errorf("Clamped(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestWidthProfile_KnotsCopied(t *testing.T) {
	knots := []Knot{{0, 1}, {1, 2}}
	p := NewWidthProfile(Linear, knots...)
	knots[1].Value = 9
	if v, _ := p.At(1); v != 2 {
		t.Errorf("profile aliases caller knots: At(1) = %v", v)
	}
	got := p.Knots()
	got[0].Value = 9
	if v, _ := p.At(0); v != 1 {
		t.Errorf("Knots exposes internal storage: At(0) = %v", v)
	}
	if p.Interpolation() != Linear || SegmentI.Interpolation() != Cosine {
		t.Error("interpolation mismatch")
	}
}

func TestKind_Template(t *testing.T) {
	tests := []struct {
		kind       Kind
		start, end ShapeID
		profile    WidthProfile
	}{
		{Dian, C1, ShapeNone, WidthProfile{}},
		{Hen, C2, C3, SegmentI},
		{Shu1, C4, C5, SegmentI},
		{Shu2, C4, ShapeNone, SegmentII},
		{Na, C6, C7, SegmentI},
		{Other, C4, ShapeNone, SegmentII},
	}
	for _, tt := range tests {
		tmpl := tt.kind.Template()
		if tmpl.Kind != tt.kind || tmpl.Start != tt.start || tmpl.End != tt.end {
			t.Errorf("%v template = %+v", tt.kind, tmpl)
		}
		if tmpl.HasEnd() != (tt.end != ShapeNone) {
			t.Errorf("%v HasEnd = %v", tt.kind, tmpl.HasEnd())
		}
		if tmpl.Profile.IsZero() != tt.profile.IsZero() {
			t.Errorf("%v profile zero = %v", tt.kind, tmpl.Profile.IsZero())
		}
		if !tmpl.Profile.IsZero() && tmpl.Profile.Clamped(1) != tt.profile.Clamped(1) {
			t.Errorf("%v profile end = %v", tt.kind, tmpl.Profile.Clamped(1))
		}
	}
}

func TestRibbon(t *testing.T) {
	c := lineSeg(0, 0, 40, 0)
	flat := NewWidthProfile(Linear, Knot{0, 1}, Knot{1, 1})
	pts := Ribbon(c, flat, 10, 4)
	if len(pts) != 22 {
		t.Fatalf("len = %d, want 22", len(pts))
	}
	for i, p := range pts[:11] {
		if !approx(p.Y, -5, 1e-9) {
			t.Errorf("left[%d] = %v, want y=-5", i, p)
		}
	}
	for i, p := range pts[11:] {
		if !approx(p.Y, 5, 1e-9) {
			t.Errorf("right[%d] = %v, want y=5", i, p)
		}
	}
	if !pointNear(pts[0], ink.Pt(0, -5)) || !pointNear(pts[10], ink.Pt(40, -5)) {
		t.Errorf("left edge runs %v to %v", pts[0], pts[10])
	}
	if !pointNear(pts[11], ink.Pt(40, 5)) || !pointNear(pts[21], ink.Pt(0, 5)) {
		t.Errorf("right edge runs %v to %v", pts[11], pts[21])
	}
}

func TestRibbon_FollowsProfile(t *testing.T) {
	c := lineSeg(0, 0, 100, 0)
	pts := Ribbon(c, SegmentII, 10, 4)
	n := len(pts) / 2
	startHalf := math.Abs(pts[0].Y)
	endHalf := math.Abs(pts[n-1].Y)
	if !approx(startHalf, 5, 1e-9) || !approx(endHalf, 1, 1e-9) {
		t.Errorf("half widths = %v..%v, want 5..1", startHalf, endHalf)
	}
}

func TestRibbon_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		c    ink.CubicBez
		res  float64
	}{
		{"point", ink.NewCubicBez(ink.Pt(3, 3), ink.Pt(3, 3), ink.Pt(3, 3), ink.Pt(3, 3)), 4},
		{"coincident handle", ink.NewCubicBez(ink.Pt(0, 0), ink.Pt(0, 0), ink.Pt(30, 0), ink.Pt(30, 0)), 4},
		{"bad resolution", lineSeg(0, 0, 10, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := Ribbon(tt.c, SegmentI, 8, tt.res)
			if len(pts) < 4 || len(pts)%2 != 0 {
				t.Fatalf("len = %d", len(pts))
			}
			for i, p := range pts {
				if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
					t.Fatalf("point %d not finite: %v", i, p)
				}
			}
		})
	}
}
