// Package fit approximates a polyline ("chord") of pointer samples with
// cubic Bezier segments.
//
// A chord is split at sharp corners and each piece is fitted with a single
// cubic whose endpoints are pinned to the piece's endpoints and whose inner
// control points minimize the squared distance to the samples at their
// chord-length parameters.
package fit

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/ink"
)

// ErrFitFailed is returned when the least-squares system has no unique
// solution. The curve returned alongside it is still usable.
var ErrFitFailed = errors.New("fit: least-squares fit failed")

// CornerThreshold is the largest angle, in degrees, between the vectors to
// a point's neighbours at which the point is treated as a corner.
const CornerThreshold = 135.0

// Parameterize returns the chord-length parameter of every point: the
// arclength up to the point divided by the total arclength. The first
// value is 0 and the last 1. A chord of zero length is spread evenly.
func Parameterize(chord []ink.Point) []float64 {
	ts := make([]float64, len(chord))
	if len(chord) < 2 {
		return ts
	}
	for i := 1; i < len(chord); i++ {
		ts[i] = ts[i-1] + chord[i].Distance(chord[i-1])
	}
	total := ts[len(ts)-1]
	if total == 0 {
		for i := range ts {
			ts[i] = float64(i) / float64(len(ts)-1)
		}
		return ts
	}
	for i := 1; i < len(ts); i++ {
		ts[i] /= total
	}
	return ts
}

// LeastSquaresFit fits a cubic to chord at parameters ts with the
// endpoints fixed. Chords of fewer than four points get handles at a
// quarter and three quarters of the way between the endpoints.
//
// When the normal equations are singular the quarter-handle curve is
// returned together with an error wrapping ErrFitFailed.
func LeastSquaresFit(chord []ink.Point, ts []float64) (ink.CubicBez, error) {
	if len(chord) == 0 {
		return ink.CubicBez{}, fmt.Errorf("%w: empty chord", ErrFitFailed)
	}
	fallback := straightFit(chord)
	if len(chord) < 4 {
		return fallback, nil
	}
	if len(ts) != len(chord) {
		return fallback, fmt.Errorf("%w: %d parameters for %d points", ErrFitFailed, len(ts), len(chord))
	}

	sx, sy := normalEquations(chord, ts)
	xs, err := ink.SolveLinear(sx)
	if err != nil {
		return fallback, fmt.Errorf("%w: x: %w", ErrFitFailed, err)
	}
	ys, err := ink.SolveLinear(sy)
	if err != nil {
		return fallback, fmt.Errorf("%w: y: %w", ErrFitFailed, err)
	}
	c := ink.NewCubicBez(chord[0], ink.Pt(xs[0], ys[0]), ink.Pt(xs[1], ys[1]), chord[len(chord)-1])
	if !finite(c) {
		return fallback, fmt.Errorf("%w: non-finite control points", ErrFitFailed)
	}
	return c, nil
}

func straightFit(chord []ink.Point) ink.CubicBez {
	p0, p3 := chord[0], chord[len(chord)-1]
	return ink.NewCubicBez(p0, p0.Lerp(p3, 0.25), p0.Lerp(p3, 0.75), p3)
}

// normalEquations builds the augmented 2x3 systems for the x and y
// coordinates of the two inner control points.
func normalEquations(chord []ink.Point, ts []float64) (sx, sy [][]float64) {
	var c00, c01, c11, c02x, c02y, c12x, c12y float64
	p0, p3 := chord[0], chord[len(chord)-1]
	for i, t := range ts {
		mt := 1 - t
		b0 := mt * mt * mt
		b3 := t * t * t
		rx := chord[i].X - b0*p0.X - b3*p3.X
		ry := chord[i].Y - b0*p0.Y - b3*p3.Y

		c00 += 3 * t * t * mt * mt * mt * mt
		c01 += 3 * t * t * t * mt * mt * mt
		c11 += 3 * t * t * t * t * mt * mt
		c02x += t * mt * mt * rx
		c02y += t * mt * mt * ry
		c12x += t * t * mt * rx
		c12y += t * t * mt * ry
	}
	sx = [][]float64{{c00, c01, c02x}, {c01, c11, c12x}}
	sy = [][]float64{{c00, c01, c02y}, {c01, c11, c12y}}
	return sx, sy
}

func finite(c ink.CubicBez) bool {
	for _, p := range c.Points() {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

// DetectCorners returns the indices of interior points where the chord
// turns sharply: the angle between the vectors to the previous and next
// points is at most CornerThreshold degrees. Points with a coincident
// neighbour are never corners.
func DetectCorners(chord []ink.Point) []int {
	var corners []int
	for i := 1; i < len(chord)-1; i++ {
		back := chord[i-1].Sub(chord[i])
		ahead := chord[i+1].Sub(chord[i])
		if back.IsZero() || ahead.IsZero() {
			continue
		}
		angle := math.Abs(back.Angle() - ahead.Angle())
		if angle > math.Pi {
			angle = 2*math.Pi - angle
		}
		if ink.Degrees(angle) <= CornerThreshold {
			corners = append(corners, i)
		}
	}
	return corners
}

// SplitChord splits chord at the given indices. Indices are taken in
// ascending order; duplicates and indices that are not interior points
// are ignored. Adjacent pieces share their split point. The pieces are
// copies.
func SplitChord(chord []ink.Point, indices []int) [][]ink.Point {
	cuts := interior(indices, len(chord))
	pieces := make([][]ink.Point, 0, len(cuts)+1)
	from := 0
	for _, i := range cuts {
		pieces = append(pieces, clone(chord[from:i+1]))
		from = i
	}
	return append(pieces, clone(chord[from:]))
}

// interior returns the sorted, distinct indices strictly inside [0, n).
func interior(indices []int, n int) []int {
	cuts := make([]int, 0, len(indices))
	for _, i := range indices {
		if i > 0 && i < n-1 {
			cuts = append(cuts, i)
		}
	}
	slices.Sort(cuts)
	return slices.Compact(cuts)
}

func clone(pts []ink.Point) []ink.Point {
	return append([]ink.Point(nil), pts...)
}

// FitStroke splits chord at its corners and fits one cubic per piece.
// A piece whose fit fails is approximated by a straight cubic.
func FitStroke(chord []ink.Point) []ink.CubicBez {
	if len(chord) == 0 {
		return nil
	}
	corners := DetectCorners(chord)
	pieces := SplitChord(chord, corners)
	curves := make([]ink.CubicBez, 0, len(pieces))
	for i, piece := range pieces {
		c, err := LeastSquaresFit(piece, Parameterize(piece))
		if err != nil {
			ink.Logger().Debug("fit: using straight segment",
				"piece", i, "points", len(piece), "err", err)
		}
		curves = append(curves, c)
	}
	ink.Logger().Debug("fit: stroke fitted",
		"points", len(chord), "corners", len(corners), "segments", len(curves))
	return curves
}
