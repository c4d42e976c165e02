package calligraphy

import (
	"errors"
	"math"
)

// ErrOutOfDomain is returned when a width profile is sampled outside the
// parameters it was defined over.
var ErrOutOfDomain = errors.New("calligraphy: parameter outside width profile")

// domainSlack absorbs parameters that overshoot the ends of a profile
// through floating-point drift.
const domainSlack = 1e-9

// Interpolation selects how a profile blends between knots.
type Interpolation int

const (
	// Linear blends knots with a straight line.
	Linear Interpolation = iota
	// Cosine blends knots with a half cosine, easing in and out of each.
	Cosine
)

// Knot is a width factor at a curve parameter.
type Knot struct {
	T, Value float64
}

// WidthProfile maps a curve parameter to a width factor by interpolating
// between knots with ascending T. The zero value has no knots and fails
// every lookup.
type WidthProfile struct {
	interp Interpolation
	knots  []Knot
}

// NewWidthProfile returns a profile over the given knots.
func NewWidthProfile(interp Interpolation, knots ...Knot) WidthProfile {
	return WidthProfile{interp: interp, knots: append([]Knot(nil), knots...)}
}

// Built-in profiles.
var (
	// SegmentI swells at both ends and pinches in the middle.
	SegmentI = NewWidthProfile(Cosine, Knot{0, 1}, Knot{0.5, 0.7}, Knot{1, 1})
	// SegmentII starts full and thins out toward the end.
	SegmentII = NewWidthProfile(Linear, Knot{0, 1}, Knot{0.5, 0.8}, Knot{1, 0.2})
	// SegmentIII starts thin and grows to full width.
	SegmentIII = NewWidthProfile(Linear, Knot{0, 0.2}, Knot{0.5, 0.8}, Knot{1, 1})
)

// Interpolation returns how the profile blends between knots.
func (p WidthProfile) Interpolation() Interpolation { return p.interp }

// Knots returns a copy of the knots.
func (p WidthProfile) Knots() []Knot { return append([]Knot(nil), p.knots...) }

// IsZero reports whether the profile has no knots.
func (p WidthProfile) IsZero() bool { return len(p.knots) == 0 }

// At returns the width factor at t. t == 0 yields the first knot's value;
// otherwise t must fall in (first.T, last.T]. Parameters within 1e-9 of
// either end are clamped onto it.
func (p WidthProfile) At(t float64) (float64, error) {
	if len(p.knots) == 0 {
		return 0, ErrOutOfDomain
	}
	if t == 0 {
		return p.knots[0].Value, nil
	}
	first, last := p.knots[0], p.knots[len(p.knots)-1]
	switch {
	case t > last.T && t <= last.T+domainSlack:
		t = last.T
	case t <= first.T && t >= first.T-domainSlack:
		return first.Value, nil
	}
	for i := 1; i < len(p.knots); i++ {
		k0, k1 := p.knots[i-1], p.knots[i]
		if t > k0.T && t <= k1.T {
			mu := (t - k0.T) / (k1.T - k0.T)
			return p.blend(k0.Value, k1.Value, mu), nil
		}
	}
	return 0, ErrOutOfDomain
}

// Clamped returns the width factor at t, using the nearest end of the
// profile when t is outside it. A profile without knots yields 1.
func (p WidthProfile) Clamped(t float64) float64 {
	if v, err := p.At(t); err == nil {
		return v
	}
	if len(p.knots) == 0 {
		return 1
	}
	if t < p.knots[0].T {
		return p.knots[0].Value
	}
	return p.knots[len(p.knots)-1].Value
}

func (p WidthProfile) blend(y0, y1, mu float64) float64 {
	if p.interp == Cosine {
		mu = (1 - math.Cos(mu*math.Pi)) / 2
	}
	return y0*(1-mu) + y1*mu
}
