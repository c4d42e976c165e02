package ink

// Area returns the signed area enclosed by the path, integrating x*dy
// exactly over lines and curves. With y pointing down it is positive for
// clockwise paths. Open subpaths are treated as closed.
func (p *Path) Area() float64 {
	var area float64
	var current, start Point
	open := false

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				area += lineArea(current, start)
			}
			start, current, open = e.Point, e.Point, true
		case LineTo:
			area += lineArea(current, e.Point)
			current = e.Point
		case QuadTo:
			area += quadArea(current, e.Control, e.Point)
			current = e.Point
		case CubicTo:
			area += cubicArea(current, e.Control1, e.Control2, e.Point)
			current = e.Point
		case Close:
			area += lineArea(current, start)
			current, open = start, false
		}
	}
	if open {
		area += lineArea(current, start)
	}
	return area
}

func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

func quadArea(p0, p1, p2 Point) float64 {
	return (p0.X*(2*p1.Y+p2.Y) + p1.X*(-p0.Y+p2.Y) + p2.X*(-2*p1.Y-p0.Y)) / 6.0
}

func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// ControlBounds returns the bounding box of every point and control point
// of the path. It contains the path but may be larger than its tight
// bounds. An empty path yields the zero Rect.
func (p *Path) ControlBounds() Rect {
	var pts []Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case QuadTo:
			pts = append(pts, e.Control, e.Point)
		case CubicTo:
			pts = append(pts, e.Control1, e.Control2, e.Point)
		}
	}
	return BoundsOf(pts)
}
