// Package freehand turns pointer samples into variable-width ink outlines.
//
// The pipeline has two stages:
//
//	StrokePoints  streamline raw samples, drop noise, track arclength
//	Outline       offset both sides by a pressure-driven radius, add caps
//
// Stroke runs both. The result is a closed polygon suitable for filling
// with the nonzero rule; SVGPath and OutlinePath convert it for surfaces.
package freehand

import "github.com/gogpu/ink"

// Stroke returns the outline polygon for raw input points.
func Stroke(points []InputPoint, opts Options) []ink.Point {
	sp := StrokePoints(points, opts)
	outline := Outline(sp, opts)
	ink.Logger().Debug("freehand: stroke outlined",
		"input", len(points), "resampled", len(sp), "outline", len(outline))
	return outline
}
