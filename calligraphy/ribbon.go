package calligraphy

import (
	"math"

	"github.com/gogpu/ink"
)

// DefaultResolution is the arclength between ribbon samples.
const DefaultResolution = 4.0

// Ribbon returns the polygon of a variable-width band along c: the left
// edge from start to end followed by the right edge from end to start.
// The half width at parameter t is profile(t)*width/2; samples are spaced
// about resolution apart, with at least one interval.
func Ribbon(c ink.CubicBez, profile WidthProfile, width, resolution float64) []ink.Point {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	n := int(math.Round(c.Length() / resolution))
	if n < 1 {
		n = 1
	}

	left := make([]ink.Point, 0, n+1)
	right := make([]ink.Point, 0, n+1)

	// reflect the first handle so the first sample faces along the curve
	current := c.P0.Add(c.P0.Sub(c.P1))
	normal := fallbackNormal(c)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		center := c.Eval(t)
		if d, err := perpCW(center.Sub(current)).Normalize(); err == nil {
			normal = d
		}
		offset := normal.Mul(profile.Clamped(t) * width / 2)
		left = append(left, center.Add(offset))
		right = append(right, center.Add(offset.Neg()))
		current = center
	}

	out := left
	for i := len(right) - 1; i >= 0; i-- {
		out = append(out, right[i])
	}
	return out
}

// perpCW rotates v a quarter turn the other way from ink.Vec2.Perp.
func perpCW(v ink.Vec2) ink.Vec2 {
	return ink.V2(v.Y, -v.X)
}

// fallbackNormal is used while the curve has not yet moved from its start.
func fallbackNormal(c ink.CubicBez) ink.Vec2 {
	if d, err := perpCW(c.P3.Sub(c.P0)).Normalize(); err == nil {
		return d
	}
	return ink.Vec2{}
}
