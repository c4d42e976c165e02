package fit

import (
	"math"

	"github.com/gogpu/ink"
)

// SumSquaredError returns the sum of squared distances between each chord
// point and the curve evaluated at its parameter.
func SumSquaredError(chord []ink.Point, ts []float64, c ink.CubicBez) float64 {
	var sum float64
	for i, t := range ts[:min(len(ts), len(chord))] {
		sum += chord[i].DistanceSq(c.Eval(t))
	}
	return sum
}

// MaxErrorPoint returns the index of the chord point farthest from the
// curve at its parameter, and that distance. It returns (0, 0) when every
// point lies on the curve.
func MaxErrorPoint(chord []ink.Point, ts []float64, c ink.CubicBez) (int, float64) {
	idx, worst := 0, 0.0
	for i, t := range ts[:min(len(ts), len(chord))] {
		if d := chord[i].Distance(c.Eval(t)); d > worst {
			idx, worst = i, d
		}
	}
	return idx, worst
}

// SplitAt fits the two halves of chord on either side of index i. Both
// halves contain chord[i]. i is clamped to the chord; an empty chord
// yields zero curves.
func SplitAt(chord []ink.Point, i int) (first, second ink.CubicBez) {
	if len(chord) == 0 {
		return first, second
	}
	i = min(max(i, 0), len(chord)-1)
	a, b := chord[:i+1], chord[i:]
	first, _ = LeastSquaresFit(a, Parameterize(a))
	second, _ = LeastSquaresFit(b, Parameterize(b))
	return first, second
}

// BestSplit returns the interior index at which splitting chord into two
// fitted halves gives the least total squared error, and that error.
// Chords of fewer than three points have no interior index; BestSplit
// then returns -1 and +Inf.
func BestSplit(chord []ink.Point) (int, float64) {
	best, bestErr := -1, math.Inf(1)
	for i := 1; i < len(chord)-1; i++ {
		a, b := chord[:i+1], chord[i:]
		ta, tb := Parameterize(a), Parameterize(b)
		ca, _ := LeastSquaresFit(a, ta)
		cb, _ := LeastSquaresFit(b, tb)
		if e := SumSquaredError(a, ta, ca) + SumSquaredError(b, tb, cb); e < bestErr {
			best, bestErr = i, e
		}
	}
	return best, bestErr
}

// ChordSegmentByLength returns the leading points of chord up to, but not
// including, the first point at which the arclength reaches length. A
// chord shorter than length is returned whole.
func ChordSegmentByLength(chord []ink.Point, length float64) []ink.Point {
	var dist float64
	i := 0
	for dist < length {
		i++
		if i >= len(chord) {
			return chord
		}
		dist += chord[i].Distance(chord[i-1])
	}
	return chord[:i]
}

// SampleChord drops samples closer than minDist to the last kept one.
// The final sample is always kept so the chord ends where the input does.
func SampleChord(points []ink.Point, minDist float64) []ink.Point {
	if len(points) < 2 {
		return clone(points)
	}
	out := []ink.Point{points[0]}
	for _, p := range points[1 : len(points)-1] {
		if p.Distance(out[len(out)-1]) >= minDist {
			out = append(out, p)
		}
	}
	if last := points[len(points)-1]; last != out[len(out)-1] {
		out = append(out, last)
	}
	return out
}
