package ink

import "math"

// Easing maps a normalized progress value in [0, 1] onto [0, 1].
type Easing func(t float64) float64

// EaseLinear is the identity easing.
func EaseLinear(t float64) float64 { return t }

// EaseOutQuad decelerates quadratically: t(2-t).
func EaseOutQuad(t float64) float64 { return t * (2 - t) }

// EaseOutCubic decelerates cubically: (t-1)³+1.
func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

// EaseOutSine decelerates along a quarter sine wave.
func EaseOutSine(t float64) float64 { return math.Sin(t * math.Pi / 2) }

// EaseInOutSine accelerates then decelerates along a half cosine wave.
func EaseInOutSine(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }

// Or returns e, or fallback when e is nil.
func (e Easing) Or(fallback Easing) Easing {
	if e == nil {
		return fallback
	}
	return e
}
