package ink

import "math"

// Curve types for stroke geometry.

// Rect represents an axis-aligned rectangle.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// BoundsOf returns the bounding rectangle of the given points.
// The zero Rect is returned for an empty slice.
func BoundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r = r.Union(Rect{Min: p, Max: p})
	}
	return r
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Intersects reports whether r and other overlap or touch.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// DeCasteljau evaluates the Bezier curve of arbitrary order defined by ps
// at parameter t. Valid for t in [0, 1]; other values extrapolate.
// It returns the zero Point for an empty control polygon.
func DeCasteljau(ps []Point, t float64) Point {
	switch len(ps) {
	case 0:
		return Point{}
	case 1:
		return ps[0]
	}
	var buf [4]Point
	work := buf[:0]
	if len(ps) > len(buf) {
		work = make([]Point, 0, len(ps))
	}
	work = append(work, ps...)
	mt := 1 - t
	// weighted form keeps both endpoints exact
	for n := len(work) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			work[i] = Point{
				X: mt*work[i].X + t*work[i+1].X,
				Y: mt*work[i].Y + t*work[i+1].Y,
			}
		}
	}
	return work[0]
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

const (
	// derivStep is the parameter step of the finite difference derivative.
	derivStep = 0.001

	// lengthSamples is the number of polyline segments used by Length.
	lengthSamples = 50

	// arclengthSteps is the number of parameter steps (0.01 each) of the
	// arclength march in ParamAtLength and ParamAtLengthFromEnd.
	arclengthSteps = 100
)

// CubicBez represents a cubic Bezier curve.
// P0 and P3 are the anchors, P1 and P2 the tangent handles.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Points returns the control points in order.
func (c CubicBez) Points() [4]Point {
	return [4]Point{c.P0, c.P1, c.P2, c.P3}
}

// Start returns the starting point of the curve.
func (c CubicBez) Start() Point {
	return c.P0
}

// End returns the ending point of the curve.
func (c CubicBez) End() Point {
	return c.P3
}

// Eval evaluates the curve at parameter t using de Casteljau's algorithm.
// Eval(0) is exactly P0 and Eval(1) is exactly P3.
func (c CubicBez) Eval(t float64) Point {
	pts := c.Points()
	return DeCasteljau(pts[:], t)
}

// Deriv approximates the derivative at t with a central difference of
// step 0.001. Within one step of either end the difference is taken
// one-sided over two steps so the curve is never sampled outside [0, 1].
func (c CubicBez) Deriv(t float64) Vec2 {
	var t0, t1 float64
	switch {
	case t < derivStep:
		t0, t1 = t, t+2*derivStep
	case 1-t < derivStep:
		t0, t1 = t-2*derivStep, t
	default:
		t0, t1 = t-derivStep, t+derivStep
	}
	return c.Eval(t1).Sub(c.Eval(t0)).Div(t1 - t0)
}

// Tangent returns the unit tangent at t.
// It returns ErrUndefinedDirection when the derivative vanishes.
func (c CubicBez) Tangent(t float64) (Vec2, error) {
	return c.Deriv(t).Normalize()
}

// Length returns the arclength approximated by a 50-segment polyline
// sampled uniformly in parameter space.
func (c CubicBez) Length() float64 {
	var length float64
	prev := c.P0
	for i := 1; i <= lengthSamples; i++ {
		p := c.Eval(float64(i) / lengthSamples)
		length += prev.Distance(p)
		prev = p
	}
	return length
}

// ParamAtLength returns the parameter reached after travelling l units
// along the curve from its start. The march advances t in steps of 0.01
// accumulating chord length; it saturates at 1 instead of extrapolating,
// and returns 1 for any l >= Length(). The result is non-decreasing in l.
func (c CubicBez) ParamAtLength(l float64) float64 {
	if l <= 0 {
		return 0
	}
	if l >= c.Length() {
		return 1
	}
	var acc float64
	prev := c.P0
	i := 0
	for acc < l {
		p := c.Eval(float64(i) / arclengthSteps)
		acc += prev.Distance(p)
		prev = p
		i++
		if i >= arclengthSteps {
			return 1
		}
	}
	return float64(i) / arclengthSteps
}

// ParamAtLengthFromEnd returns the parameter reached after travelling l
// units backwards from the end of the curve. It saturates at 0 and
// returns 0 for any l >= Length(). The result is non-increasing in l.
func (c CubicBez) ParamAtLengthFromEnd(l float64) float64 {
	if l <= 0 {
		return 1
	}
	if l >= c.Length() {
		return 0
	}
	var acc float64
	prev := c.P3
	i := 0
	for acc < l {
		p := c.Eval(1 - float64(i)/arclengthSteps)
		acc += prev.Distance(p)
		prev = p
		i++
		if i >= arclengthSteps {
			return 0
		}
	}
	return 1 - float64(i)/arclengthSteps
}

// BoundingBox returns the bounding box of the control polygon, which
// always contains the curve.
func (c CubicBez) BoundingBox() Rect {
	pts := c.Points()
	return BoundsOf(pts[:])
}

// Transform applies an affine transformation to the control points.
func (c CubicBez) Transform(m Matrix) CubicBez {
	return CubicBez{
		P0: m.TransformPoint(c.P0),
		P1: m.TransformPoint(c.P1),
		P2: m.TransformPoint(c.P2),
		P3: m.TransformPoint(c.P3),
	}
}

// Reversed returns the curve traversed from end to start.
func (c CubicBez) Reversed() CubicBez {
	return CubicBez{P0: c.P3, P1: c.P2, P2: c.P1, P3: c.P0}
}
