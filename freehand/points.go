package freehand

import "github.com/gogpu/ink"

// NoPressure marks an input sample recorded without pressure.
const NoPressure = -1.0

// Default pressures for samples recorded without one.
const (
	firstPointPressure = 0.25
	pointPressure      = 0.5
)

// InputPoint is a raw pointer sample. Pressure is in [0, 1]; any negative
// value means the device reported none.
type InputPoint struct {
	X, Y     float64
	Pressure float64
}

// Pt returns an InputPoint without pressure.
func Pt(x, y float64) InputPoint {
	return InputPoint{X: x, Y: y, Pressure: NoPressure}
}

// PtP returns an InputPoint with pressure.
func PtP(x, y, pressure float64) InputPoint {
	return InputPoint{X: x, Y: y, Pressure: pressure}
}

// Point returns the position of the sample.
func (p InputPoint) Point() ink.Point {
	return ink.Pt(p.X, p.Y)
}

// HasPressure reports whether the sample carries a pressure value.
func (p InputPoint) HasPressure() bool {
	return p.Pressure >= 0
}

func (p InputPoint) pressureOr(def float64) float64 {
	if p.HasPressure() {
		return p.Pressure
	}
	return def
}

// StrokePoint is a resampled point ready for outlining.
type StrokePoint struct {
	Point    ink.Point
	Pressure float64

	// Vector is the unit vector from this point back to the previous one.
	Vector ink.Vec2

	// Distance is the distance to the previous point.
	Distance float64

	// RunningLength is the arclength from the first point.
	RunningLength float64
}

// StrokePoints streamlines raw input into StrokePoints.
//
// Each point is interpolated toward the previous resampled point, points
// that land on the previous one are dropped, and non-final points are
// skipped until the stroke has travelled at least opts.Size. A stroke of
// two samples is subdivided into five so tapers have something to work
// with; a single sample gets a companion one unit away diagonally.
func StrokePoints(points []InputPoint, opts Options) []StrokePoint {
	if len(points) == 0 {
		return nil
	}

	pts := points
	if len(pts) == 2 {
		pts = subdivide(pts[0], pts[1])
	}
	if len(pts) == 1 {
		p := pts[0]
		pts = []InputPoint{p, {X: p.X + 1, Y: p.Y + 1, Pressure: p.Pressure}}
	}

	t := 0.15 + (1-opts.Streamline)*0.85

	out := make([]StrokePoint, 1, len(pts))
	out[0] = StrokePoint{
		Point:    pts[0].Point(),
		Pressure: pts[0].pressureOr(firstPointPressure),
	}

	var (
		reachedMinLength bool
		runningLength    float64
		last             = len(pts) - 1
	)
	prev := out[0]
	for i := 1; i < len(pts); i++ {
		var point ink.Point
		if opts.Last && i == last {
			point = pts[i].Point()
		} else {
			point = prev.Point.Lerp(pts[i].Point(), t)
		}
		if point == prev.Point {
			continue
		}

		distance := point.Distance(prev.Point)
		runningLength += distance

		// wait until the stroke leaves the noise around its first point
		if i < last && !reachedMinLength {
			if runningLength < opts.Size {
				continue
			}
			reachedMinLength = true
		}

		// distinct points always have a direction
		vector, _ := prev.Point.Sub(point).Normalize()
		prev = StrokePoint{
			Point:         point,
			Pressure:      pts[i].pressureOr(pointPressure),
			Vector:        vector,
			Distance:      distance,
			RunningLength: runningLength,
		}
		out = append(out, prev)
	}

	if len(out) > 1 {
		out[0].Vector = out[1].Vector
	}
	return out
}

// subdivide returns a and four evenly spaced points toward b, ending at b.
// The new samples carry no pressure unless both ends have one.
func subdivide(a, b InputPoint) []InputPoint {
	pts := make([]InputPoint, 0, 5)
	pts = append(pts, a)
	for i := 1; i < 5; i++ {
		t := float64(i) / 4
		p := a.Point().Lerp(b.Point(), t)
		pressure := NoPressure
		if a.HasPressure() && b.HasPressure() {
			pressure = a.Pressure + (b.Pressure-a.Pressure)*t
		}
		pts = append(pts, InputPoint{X: p.X, Y: p.Y, Pressure: pressure})
	}
	return pts
}
