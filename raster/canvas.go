// Package raster draws ink outlines, paths and calligraphy instructions
// onto surfaces.
//
// Canvas renders into an *image.RGBA with anti-aliasing through
// golang.org/x/image/vector. SVG collects the same geometry as SVG path
// elements. Both implement Surface, and Draw replays calligraphy
// instructions onto any Surface.
//
// Usage:
//
//	c := raster.NewCanvas(400, 300, raster.WithInk(raster.Black))
//	c.FillPolygon(freehand.Stroke(points, freehand.DefaultOptions()))
//	err := c.SavePNG("stroke.png")
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/calligraphy"
)

// Surface receives filled geometry. Fills use the nonzero rule.
type Surface interface {
	FillPolygon(pts []ink.Point)
	FillPath(p *ink.Path)
}

// Draw replays instructions onto s. Shapes are filled as paths and
// segments as ribbon polygons sampled every resolution units.
func Draw(s Surface, ins []calligraphy.Instruction, resolution float64) {
	for _, in := range ins {
		switch in := in.(type) {
		case calligraphy.ShapeInstruction:
			if in.Shape == nil {
				continue
			}
			s.FillPath(in.Path())
		case calligraphy.SegmentInstruction:
			s.FillPolygon(in.Polygon(resolution))
		}
	}
}

// CanvasOption configures a Canvas during creation.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	ink        Color
	background Color
	resolution float64
}

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		ink:        Black,
		background: White,
		resolution: calligraphy.DefaultResolution,
	}
}

// WithInk sets the fill color.
func WithInk(c Color) CanvasOption {
	return func(o *canvasOptions) { o.ink = c }
}

// WithBackground sets the color the canvas is cleared to.
func WithBackground(c Color) CanvasOption {
	return func(o *canvasOptions) { o.background = c }
}

// WithResolution sets the ribbon sampling distance used by
// DrawInstructions. Non-positive values are ignored.
func WithResolution(r float64) CanvasOption {
	return func(o *canvasOptions) {
		if r > 0 {
			o.resolution = r
		}
	}
}

// Canvas is an anti-aliased raster Surface.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img  *image.RGBA
	ras  *vector.Rasterizer
	src  *image.Uniform
	opts canvasOptions
}

// NewCanvas creates a canvas of the given size cleared to the
// background color.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:  vector.NewRasterizer(width, height),
		src:  image.NewUniform(o.ink),
		opts: o,
	}
	c.Clear()
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image returns the backing image. It is updated in place by later fills.
func (c *Canvas) Image() *image.RGBA { return c.img }

// SetInk changes the fill color for subsequent fills.
func (c *Canvas) SetInk(col Color) {
	c.opts.ink = col
	c.src = image.NewUniform(col)
}

// Clear fills the whole canvas with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.opts.background), image.Point{}, draw.Src)
}

// FillPolygon fills the closed polygon through pts. Fewer than three
// points draw nothing.
func (c *Canvas) FillPolygon(pts []ink.Point) {
	if len(pts) < 3 || !c.visible(ink.BoundsOf(pts)) {
		return
	}
	c.ras.Reset(c.Width(), c.Height())
	c.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.ras.LineTo(float32(p.X), float32(p.Y))
	}
	c.ras.ClosePath()
	c.flush()
}

// FillPath fills p. Open subpaths are closed implicitly.
func (c *Canvas) FillPath(p *ink.Path) {
	if p == nil || p.Len() == 0 || !c.visible(p.ControlBounds()) {
		return
	}
	c.ras.Reset(c.Width(), c.Height())
	open := false
	for _, el := range p.Elements() {
		switch el := el.(type) {
		case ink.MoveTo:
			if open {
				c.ras.ClosePath()
			}
			c.ras.MoveTo(float32(el.Point.X), float32(el.Point.Y))
			open = true
		case ink.LineTo:
			c.ras.LineTo(float32(el.Point.X), float32(el.Point.Y))
		case ink.QuadTo:
			c.ras.QuadTo(
				float32(el.Control.X), float32(el.Control.Y),
				float32(el.Point.X), float32(el.Point.Y),
			)
		case ink.CubicTo:
			c.ras.CubeTo(
				float32(el.Control1.X), float32(el.Control1.Y),
				float32(el.Control2.X), float32(el.Control2.Y),
				float32(el.Point.X), float32(el.Point.Y),
			)
		case ink.Close:
			if open {
				c.ras.ClosePath()
				open = false
			}
		}
	}
	if open {
		c.ras.ClosePath()
	}
	c.flush()
}

// DrawInstructions replays calligraphy instructions onto the canvas.
func (c *Canvas) DrawInstructions(ins []calligraphy.Instruction) {
	Draw(c, ins, c.opts.resolution)
}

// visible reports whether r overlaps the canvas.
func (c *Canvas) visible(r ink.Rect) bool {
	return r.Intersects(ink.NewRect(ink.Pt(0, 0), ink.Pt(float64(c.Width()), float64(c.Height()))))
}

func (c *Canvas) flush() {
	c.ras.DrawOp = draw.Over
	c.ras.Draw(c.img, c.img.Bounds(), c.src, image.Point{})
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return c.EncodePNG(f)
}
