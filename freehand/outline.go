package freehand

import (
	"math"

	"github.com/gogpu/ink"
)

const (
	// pressureRate is how quickly simulated pressure follows its target.
	pressureRate = 0.275

	// fixedPi sweeps fans slightly past a half turn so that they overlap
	// the outline they close.
	fixedPi = math.Pi + 0.0001

	cornerSteps   = 13
	startCapSteps = 13
	endCapSteps   = 29
	dotSteps      = 13

	// pressureWindow is how many leading points seed the initial pressure.
	pressureWindow = 10

	// endNoise is the distance from the end inside which points are
	// ignored, except the final one.
	endNoise = 3

	minRadius = 0.01
)

// Outline returns the closed polygon around points. The polygon runs along
// the left side, around the end cap, back along the right side and around
// the start cap. It returns nil for empty input or a non-positive size.
func Outline(points []StrokePoint, opts Options) []ink.Point {
	if len(points) == 0 || opts.Size <= 0 {
		return nil
	}

	b := newOutliner(points, opts)
	b.sides()
	if dot, ok := b.dot(); ok {
		return dot
	}
	startCap, endCap := b.caps()

	out := make([]ink.Point, 0, len(b.left)+len(endCap)+len(b.right)+len(startCap))
	out = append(out, b.left...)
	out = append(out, endCap...)
	for i := len(b.right) - 1; i >= 0; i-- {
		out = append(out, b.right[i])
	}
	out = append(out, startCap...)
	return out
}

// outliner holds the state of one Outline call.
type outliner struct {
	points []StrokePoint
	opts   Options

	easing     ink.Easing
	startEase  ink.Easing
	endEase    ink.Easing
	total      float64
	minDistSq  float64
	radius     float64
	firstR     float64
	haveFirstR bool

	left, right []ink.Point
}

func newOutliner(points []StrokePoint, opts Options) *outliner {
	last := points[len(points)-1]
	easing := opts.Easing.Or(ink.EaseLinear)
	return &outliner{
		points:    points,
		opts:      opts,
		easing:    easing,
		startEase: opts.Start.Easing.Or(ink.EaseOutQuad),
		endEase:   opts.End.Easing.Or(ink.EaseOutCubic),
		total:     last.RunningLength,
		minDistSq: (opts.Size * opts.Smoothing) * (opts.Size * opts.Smoothing),
		radius:    strokeRadius(opts.Size, opts.Thinning, last.Pressure, easing),
	}
}

// strokeRadius maps a pressure to a radius.
func strokeRadius(size, thinning, pressure float64, easing ink.Easing) float64 {
	return size * easing(0.5-thinning*(0.5-pressure))
}

// simulate moves prev toward the pressure implied by the spacing of a
// point: widely spaced points mean a fast, light stroke.
func simulate(prev, distance, size float64) float64 {
	sp := math.Min(1, distance/size)
	rp := math.Min(1, 1-sp)
	return math.Min(1, prev+(rp-prev)*(sp*pressureRate))
}

// initialPressure averages the first few pressures so that strokes do
// not start fat.
func (b *outliner) initialPressure() float64 {
	acc := b.points[0].Pressure
	n := min(len(b.points), pressureWindow)
	for _, p := range b.points[:n] {
		pressure := p.Pressure
		if b.opts.SimulatePressure {
			pressure = simulate(acc, p.Distance, b.opts.Size)
		}
		acc = (acc + pressure) / 2
	}
	return acc
}

// per is the perpendicular used for side offsets; subtracting it gives
// the left side.
func per(v ink.Vec2) ink.Vec2 {
	return ink.V2(v.Y, -v.X)
}

// sides collects the left and right offset points.
func (b *outliner) sides() {
	pts := b.points
	n := len(pts)
	prevPressure := b.initialPressure()
	prevVector := pts[0].Vector
	pl := pts[0].Point
	pr := pl

	for i, sp := range pts {
		if i < n-1 && b.total-sp.RunningLength < endNoise {
			continue
		}

		pressure := sp.Pressure
		if b.opts.Thinning != 0 {
			if b.opts.SimulatePressure {
				pressure = simulate(prevPressure, sp.Distance, b.opts.Size)
			}
			b.radius = strokeRadius(b.opts.Size, b.opts.Thinning, pressure, b.easing)
		} else {
			b.radius = b.opts.Size / 2
		}
		if !b.haveFirstR {
			b.firstR = b.radius
			b.haveFirstR = true
		}

		b.radius = math.Max(minRadius, b.radius*b.taper(sp.RunningLength))

		if i == n-1 {
			offset := per(sp.Vector).Mul(b.radius)
			b.left = append(b.left, sp.Point.Add(offset.Neg()))
			b.right = append(b.right, sp.Point.Add(offset))
			continue
		}

		nextVector := pts[i+1].Vector
		nextDot := sp.Vector.Dot(nextVector)

		if nextDot < 0 {
			// sharp turn: fan around the point instead of offsetting it
			offset := per(prevVector).Mul(b.radius)
			l0 := sp.Point.Add(offset.Neg())
			r0 := sp.Point.Add(offset)
			var tl, tr ink.Point
			for k := 0; k <= cornerSteps; k++ {
				t := float64(k) / cornerSteps
				tl = l0.RotateAround(sp.Point, fixedPi*t)
				tr = r0.RotateAround(sp.Point, -fixedPi*t)
				b.left = append(b.left, tl)
				b.right = append(b.right, tr)
			}
			pl, pr = tl, tr
			continue
		}

		offset := per(nextVector.Lerp(sp.Vector, nextDot)).Mul(b.radius)
		tl := sp.Point.Add(offset.Neg())
		if i <= 1 || pl.DistanceSq(tl) > b.minDistSq {
			b.left = append(b.left, tl)
			pl = tl
		}
		tr := sp.Point.Add(offset)
		if i <= 1 || pr.DistanceSq(tr) > b.minDistSq {
			b.right = append(b.right, tr)
			pr = tr
		}

		prevPressure = pressure
		prevVector = sp.Vector
	}
}

// taper returns the radius factor at the given running length.
func (b *outliner) taper(running float64) float64 {
	ts, te := 1.0, 1.0
	if running < b.opts.Start.Taper {
		ts = b.startEase(running / b.opts.Start.Taper)
	}
	if b.total-running < b.opts.End.Taper {
		te = b.endEase((b.total - running) / b.opts.End.Taper)
	}
	return math.Min(ts, te)
}

func (b *outliner) firstPoint() ink.Point {
	return b.points[0].Point
}

func (b *outliner) lastPoint() ink.Point {
	if len(b.points) > 1 {
		return b.points[len(b.points)-1].Point
	}
	return b.points[0].Point.Add(ink.V2(1, 1))
}

// dot returns a filled circle for a stroke that never left its first
// point. ok is false when the stroke should be outlined normally.
func (b *outliner) dot() ([]ink.Point, bool) {
	if !b.opts.DotStrokes || len(b.points) != 1 {
		return nil, false
	}
	if b.opts.tapered() && !b.opts.Last {
		return nil, false
	}

	first := b.firstPoint()
	r := b.radius
	if b.haveFirstR && b.firstR != 0 {
		r = b.firstR
	}
	dir, _ := per(first.Sub(b.lastPoint())).Normalize()
	start := first.Add(dir.Mul(-r))

	out := make([]ink.Point, 0, dotSteps)
	for k := 1; k <= dotSteps; k++ {
		t := float64(k) / dotSteps
		out = append(out, start.RotateAround(first, fixedPi*2*t))
	}
	return out, true
}

// caps returns the start and end caps. A single point that was not drawn
// as a dot gets no caps.
func (b *outliner) caps() (startCap, endCap []ink.Point) {
	n := len(b.points)
	if b.opts.DotStrokes && n == 1 {
		return nil, nil
	}
	startTaper := b.opts.Start.Taper > 0
	endTaper := b.opts.End.Taper > 0
	first := b.firstPoint()
	last := b.lastPoint()

	switch {
	case startTaper || (endTaper && n == 1):
	case b.opts.Start.Cap:
		startCap = make([]ink.Point, 0, startCapSteps)
		for k := 1; k <= startCapSteps; k++ {
			t := float64(k) / startCapSteps
			startCap = append(startCap, b.right[0].RotateAround(first, fixedPi*t))
		}
	default:
		corners := b.left[0].Sub(b.right[0])
		a := corners.Mul(0.5)
		c := corners.Mul(0.51)
		startCap = []ink.Point{
			first.Add(a.Neg()),
			first.Add(c.Neg()),
			first.Add(c),
			first.Add(a),
		}
	}

	direction := per(b.points[n-1].Vector.Neg())
	switch {
	case endTaper || (startTaper && n == 1):
		endCap = []ink.Point{last}
	case b.opts.End.Cap:
		start := last.Add(direction.Mul(b.radius))
		endCap = make([]ink.Point, 0, endCapSteps)
		for k := 1; k <= endCapSteps; k++ {
			t := float64(k) / endCapSteps
			endCap = append(endCap, start.RotateAround(last, fixedPi*3*t))
		}
	default:
		endCap = []ink.Point{
			last.Add(direction.Mul(b.radius)),
			last.Add(direction.Mul(b.radius * 0.99)),
			last.Add(direction.Mul(-b.radius * 0.99)),
			last.Add(direction.Mul(-b.radius)),
		}
	}
	return startCap, endCap
}
