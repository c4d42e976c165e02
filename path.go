package ink

import (
	"strconv"
	"strings"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is the vector path handed to a drawing surface.
// Surfaces fill it with the nonzero rule.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// Polygon returns a closed path through pts.
// An empty slice yields an empty path.
func Polygon(pts []Point) *Path {
	p := &Path{elements: make([]PathElement, 0, len(pts)+1)}
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.Close()
	return p
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to pt.
func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(ctrl, pt Point) {
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(ctrl1, ctrl2, pt Point) {
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Transform returns a copy of the path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.MoveTo(m.TransformPoint(e.Point))
		case LineTo:
			result.LineTo(m.TransformPoint(e.Point))
		case QuadTo:
			result.QuadTo(m.TransformPoint(e.Control), m.TransformPoint(e.Point))
		case CubicTo:
			result.CubicTo(m.TransformPoint(e.Control1), m.TransformPoint(e.Control2), m.TransformPoint(e.Point))
		case Close:
			result.Close()
		}
	}
	return result
}

// SVG returns the path as SVG path data with coordinates rounded to two
// decimals, which keeps exported strokes compact.
func (p *Path) SVG() string {
	var sb strings.Builder
	for _, elem := range p.elements {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			sb.WriteString("M ")
			writeSVGPoint(&sb, e.Point)
		case LineTo:
			sb.WriteString("L ")
			writeSVGPoint(&sb, e.Point)
		case QuadTo:
			sb.WriteString("Q ")
			writeSVGPoint(&sb, e.Control)
			sb.WriteByte(' ')
			writeSVGPoint(&sb, e.Point)
		case CubicTo:
			sb.WriteString("C ")
			writeSVGPoint(&sb, e.Control1)
			sb.WriteByte(' ')
			writeSVGPoint(&sb, e.Control2)
			sb.WriteByte(' ')
			writeSVGPoint(&sb, e.Point)
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func writeSVGPoint(sb *strings.Builder, pt Point) {
	sb.WriteString(FormatCoord(pt.X))
	sb.WriteByte(',')
	sb.WriteString(FormatCoord(pt.Y))
}

// FormatCoord formats an SVG coordinate with at most two decimals and no
// trailing zeros. Negative zero prints as "0".
func FormatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		elements: make([]PathElement, len(p.elements)),
		start:    p.start,
		current:  p.current,
	}
	copy(result.elements, p.elements)
	return result
}
