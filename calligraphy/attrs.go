package calligraphy

import (
	"math"

	"github.com/gogpu/ink"
)

// AngleProbeDistance is how far along a segment, in arclength, its start
// and end directions are measured.
const AngleProbeDistance = 20.0

// Field selects a numeric attribute for a predicate.
type Field int

const (
	// FieldStartAngle is a segment's start direction in degrees.
	FieldStartAngle Field = iota + 1
	// FieldEndAngle is a segment's end direction in degrees.
	FieldEndAngle
	// FieldLength is a segment's arclength.
	FieldLength
	// FieldInAngle is the direction in degrees in which a joint is entered.
	FieldInAngle
	// FieldOutAngle is the direction in degrees in which a joint is left.
	FieldOutAngle
	// FieldBetweenAngle is the signed turn at a joint; see InnerAngle.
	FieldBetweenAngle
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldStartAngle:
		return "startAngle"
	case FieldEndAngle:
		return "endAngle"
	case FieldLength:
		return "length"
	case FieldInAngle:
		return "inAngle"
	case FieldOutAngle:
		return "outAngle"
	case FieldBetweenAngle:
		return "betweenAngle"
	default:
		return "unknown"
	}
}

// Attributes describes a segment or a joint between two segments.
// A field that was never set does not satisfy any predicate.
type Attributes struct {
	values [FieldBetweenAngle + 1]float64
	set    uint8

	// StartPoint and EndPoint are the ends of a segment.
	StartPoint, EndPoint ink.Point

	// Point is the position of a joint.
	Point ink.Point
}

// Set returns a copy of a with field f set to v.
func (a Attributes) Set(f Field, v float64) Attributes {
	if f < FieldStartAngle || f > FieldBetweenAngle {
		return a
	}
	a.values[f] = v
	a.set |= 1 << f
	return a
}

// Value returns the value of field f and whether it was set.
func (a Attributes) Value(f Field) (float64, bool) {
	if f < FieldStartAngle || f > FieldBetweenAngle || a.set&(1<<f) == 0 {
		return 0, false
	}
	return a.values[f], true
}

func (a Attributes) get(f Field) float64 {
	v, _ := a.Value(f)
	return v
}

// StartAngle returns the start direction in degrees.
func (a Attributes) StartAngle() float64 { return a.get(FieldStartAngle) }

// EndAngle returns the end direction in degrees.
func (a Attributes) EndAngle() float64 { return a.get(FieldEndAngle) }

// Length returns the segment arclength.
func (a Attributes) Length() float64 { return a.get(FieldLength) }

// InAngle returns the joint entry direction in degrees.
func (a Attributes) InAngle() float64 { return a.get(FieldInAngle) }

// OutAngle returns the joint exit direction in degrees.
func (a Attributes) OutAngle() float64 { return a.get(FieldOutAngle) }

// BetweenAngle returns the signed joint turn in degrees.
func (a Attributes) BetweenAngle() float64 { return a.get(FieldBetweenAngle) }

// StartAngle returns the direction in degrees, in [0, 360), from the start
// of c to the point AngleProbeDistance along it.
func StartAngle(c ink.CubicBez) float64 {
	p := c.Eval(c.ParamAtLength(AngleProbeDistance))
	return ink.Degrees(p.Sub(c.Start()).Angle())
}

// EndAngle returns the direction in degrees, in [0, 360), from the point
// AngleProbeDistance before the end of c to its end.
func EndAngle(c ink.CubicBez) float64 {
	p := c.Eval(c.ParamAtLengthFromEnd(AngleProbeDistance))
	return ink.Degrees(c.End().Sub(p).Angle())
}

// SegmentAttributes measures a single segment.
func SegmentAttributes(c ink.CubicBez) Attributes {
	a := Attributes{StartPoint: c.Start(), EndPoint: c.End()}
	return a.
		Set(FieldStartAngle, StartAngle(c)).
		Set(FieldEndAngle, EndAngle(c)).
		Set(FieldLength, c.Length())
}

// JointAttributes measures the joint where in ends and out begins.
func JointAttributes(in, out ink.CubicBez) Attributes {
	inAngle := EndAngle(in)
	outAngle := StartAngle(out)
	a := Attributes{Point: in.End()}
	return a.
		Set(FieldInAngle, inAngle).
		Set(FieldOutAngle, outAngle).
		Set(FieldBetweenAngle, InnerAngle(inAngle, outAngle))
}

// InnerAngle returns the turn at a joint entered at inAngle and left at
// outAngle, both in degrees. The magnitude is the angle between the
// reversed entry direction and the exit direction; the sign tells which
// side the exit lies on. Rule tables are tuned to these exact branches.
func InnerAngle(inAngle, outAngle float64) float64 {
	in := ink.ReduceAngleDeg(inAngle + 180)
	ang := math.Abs(smallerAngleDeg(in - outAngle))
	if in > outAngle {
		if in-180 < outAngle {
			return ang
		}
		return -ang
	}
	if outAngle-180 < in {
		return -ang
	}
	return ang
}

// smallerAngleDeg folds an angle difference onto [-180, 180].
func smallerAngleDeg(a float64) float64 {
	switch {
	case a > 180:
		return 360 - a
	case a < -180:
		return -360 - a
	}
	return a
}
