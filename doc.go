// Package ink provides the geometry kernel for turning pointer samples into
// renderable ink.
//
// # Overview
//
// ink converts raw pointer input into vector geometry that a drawing surface
// can fill. It has two pipelines that share this kernel:
//
//   - freehand: resamples input points and builds a closed, variable-width
//     outline polygon with tapers, caps and sharp-corner fans.
//   - fit + calligraphy: splits a chord at its corners, fits a cubic Bezier
//     to every piece and decorates the pieces with pre-authored brush corner
//     shapes and width profiles.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/ink"
//		"github.com/gogpu/ink/freehand"
//	)
//
//	outline := freehand.Stroke(samples, freehand.DefaultOptions())
//	path := ink.Polygon(outline)
//
// # Architecture
//
// The library is organized into:
//   - Kernel (this package): Point, Vec2, CubicBez, Matrix, Path, SolveLinear
//   - freehand: stroke point resampler and outline builder
//   - fit: corner detection and least-squares cubic fitting
//   - calligraphy: rule tables, corner shapes, width profiles, draw instructions
//   - raster: reference drawing surface on golang.org/x/image/vector
//
// Every pipeline is a pure function of its input. Callers rerun a pipeline on
// the complete point buffer after each append instead of amending output.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians unless a name says degrees
package ink

// Version is the current version of the library.
const Version = "0.1.0"
