// Package calligraphy decorates fitted stroke segments with brush shapes.
//
// A stroke is a sequence of cubic Bezier segments, usually produced by
// package fit. The Engine measures each segment and each joint between
// segments (directions in degrees, lengths, turns), runs the measurements
// through ordered rule tables, and emits drawing instructions:
//
//   - ShapeInstruction places a CornerShape from a Registry at a stroke
//     end or joint, rotated to follow the stroke and scaled to its width.
//   - SegmentInstruction draws a segment as a band whose width follows a
//     WidthProfile along the curve.
//
// Rule tables are first-match-wins. A table that matches nothing leaves
// the corresponding end or joint undecorated, and the engine falls back
// to a tapering width profile for the adjacent segment.
//
// Angles follow screen coordinates: 0 points right and 90 points down.
package calligraphy
