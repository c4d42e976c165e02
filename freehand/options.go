package freehand

import "github.com/gogpu/ink"

// EndOptions configures one end of a stroke.
type EndOptions struct {
	// Cap draws a round cap when true and a flat notch when false.
	// Ignored when the end is tapered.
	Cap bool

	// Taper is the distance over which the stroke narrows to nothing.
	// Zero disables tapering.
	Taper float64

	// Easing shapes the taper. nil uses the end's default easing.
	Easing ink.Easing
}

// Options controls both the resampler and the outline builder.
type Options struct {
	// Size is the base diameter of the stroke. Default: 16
	Size float64

	// Thinning is the effect of pressure on the diameter, roughly in [-1, 1].
	// Zero gives a constant width of Size. Default: 0.5
	Thinning float64

	// Smoothing softens the outline edges by dropping offset points closer
	// than Size*Smoothing to the previous one. Default: 0.5
	Smoothing float64

	// Streamline pulls each resampled point toward the previous one.
	// Default: 0.5
	Streamline float64

	// SimulatePressure derives pressure from point spacing instead of the
	// recorded pressure. Default: true
	SimulatePressure bool

	// Easing is applied to pressure before computing the radius.
	// nil means identity.
	Easing ink.Easing

	// Start configures the first end. Default easing: ink.EaseOutQuad
	Start EndOptions

	// End configures the last end. Default easing: ink.EaseOutCubic
	End EndOptions

	// Last marks the stroke as complete: the final input point is used
	// unmodified and tapered single points still become dots.
	Last bool

	// DotStrokes renders a stroke that collapses to one point as a filled
	// circle instead of an outline with caps. Default: true
	DotStrokes bool
}

// DefaultOptions returns Options with default settings.
func DefaultOptions() Options {
	return Options{
		Size:             16,
		Thinning:         0.5,
		Smoothing:        0.5,
		Streamline:       0.5,
		SimulatePressure: true,
		Easing:           ink.EaseLinear,
		Start:            EndOptions{Cap: true, Easing: ink.EaseOutQuad},
		End:              EndOptions{Cap: true, Easing: ink.EaseOutCubic},
		DotStrokes:       true,
	}
}

// PenOptions returns the preset used for pen input: a little more thinning
// than the defaults and a sine easing on pressure.
func PenOptions(size float64) Options {
	return DefaultOptions().
		WithSize(size).
		WithThinning(0.6).
		WithEasing(ink.EaseOutSine)
}

// WithSize returns a copy of the Options with the given diameter.
func (o Options) WithSize(size float64) Options {
	o.Size = size
	return o
}

// WithThinning returns a copy of the Options with the given thinning.
func (o Options) WithThinning(thinning float64) Options {
	o.Thinning = thinning
	return o
}

// WithSmoothing returns a copy of the Options with the given smoothing.
func (o Options) WithSmoothing(smoothing float64) Options {
	o.Smoothing = smoothing
	return o
}

// WithStreamline returns a copy of the Options with the given streamline.
func (o Options) WithStreamline(streamline float64) Options {
	o.Streamline = streamline
	return o
}

// WithSimulatePressure returns a copy of the Options with pressure
// simulation switched on or off.
func (o Options) WithSimulatePressure(simulate bool) Options {
	o.SimulatePressure = simulate
	return o
}

// WithEasing returns a copy of the Options with the given pressure easing.
func (o Options) WithEasing(e ink.Easing) Options {
	o.Easing = e
	return o
}

// WithStart returns a copy of the Options with the given start settings.
func (o Options) WithStart(start EndOptions) Options {
	o.Start = start
	return o
}

// WithEnd returns a copy of the Options with the given end settings.
func (o Options) WithEnd(end EndOptions) Options {
	o.End = end
	return o
}

// WithTaper returns a copy of the Options tapering the start and end over
// the given distances.
func (o Options) WithTaper(start, end float64) Options {
	o.Start.Taper = start
	o.End.Taper = end
	return o
}

// WithLast returns a copy of the Options with the completion flag set.
func (o Options) WithLast(last bool) Options {
	o.Last = last
	return o
}

// WithDotStrokes returns a copy of the Options with dot rendering switched
// on or off.
func (o Options) WithDotStrokes(dots bool) Options {
	o.DotStrokes = dots
	return o
}

func (o Options) tapered() bool {
	return o.Start.Taper > 0 || o.End.Taper > 0
}
