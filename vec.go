package ink

import (
	"errors"
	"math"
)

// ErrUndefinedDirection is returned when a zero-length vector is normalized.
var ErrUndefinedDirection = errors.New("ink: undefined direction for zero-length vector")

// Vec2 represents a 2D displacement vector.
// Unlike Point which represents a position, Vec2 represents a direction and magnitude.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSq returns the squared length of the vector.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// It returns ErrUndefinedDirection for the zero vector; the returned
// vector is then the zero vector and must not be used as a direction.
func (v Vec2) Normalize() (Vec2, error) {
	length := v.Length()
	if length == 0 {
		return Vec2{}, ErrUndefinedDirection
	}
	return Vec2{X: v.X / length, Y: v.Y / length}, nil
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Rotate returns the vector rotated by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle returns the direction of the vector in radians, reduced to [0, 2π).
// The zero vector has angle 0.
func (v Vec2) Angle() float64 {
	// x + 0 turns -0 into +0: atan2(0, -0) is π, not 0.
	x := v.X + 0
	return ReduceAngle(math.Atan2(v.Y, x))
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

// ToPoint converts Vec2 to Point.
func (v Vec2) ToPoint() Point {
	return Point(v)
}

// ReduceAngle maps an angle in radians onto [0, 2π).
func ReduceAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	r := a - math.Floor(a/twoPi)*twoPi
	if r >= twoPi {
		r = 0
	}
	return r
}

// ReduceAngleDeg maps an angle in degrees onto [0, 360).
func ReduceAngleDeg(a float64) float64 {
	r := a - math.Floor(a/360)*360
	if r >= 360 {
		r = 0
	}
	return r
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
