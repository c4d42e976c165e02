package raster

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/calligraphy"
)

// SVG is a Surface that records fills as SVG path elements.
type SVG struct {
	width, height int
	opts          canvasOptions
	paths         []string
}

// NewSVG creates an empty SVG document of the given size. It accepts the
// same options as NewCanvas.
func NewSVG(width, height int, opts ...CanvasOption) *SVG {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SVG{width: width, height: height, opts: o}
}

// FillPolygon records the closed polygon through pts.
func (s *SVG) FillPolygon(pts []ink.Point) {
	if len(pts) < 3 {
		return
	}
	s.paths = append(s.paths, ink.Polygon(pts).SVG())
}

// FillPath records p.
func (s *SVG) FillPath(p *ink.Path) {
	if p == nil || p.Len() == 0 {
		return
	}
	s.paths = append(s.paths, p.SVG())
}

// FillData records raw SVG path data, such as freehand.SVGPath output.
func (s *SVG) FillData(d string) {
	if d != "" {
		s.paths = append(s.paths, d)
	}
}

// DrawInstructions replays calligraphy instructions onto the document.
func (s *SVG) DrawInstructions(ins []calligraphy.Instruction) {
	Draw(s, ins, s.opts.resolution)
}

// Len returns the number of recorded paths.
func (s *SVG) Len() int { return len(s.paths) }

// WriteTo writes the SVG document to w.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: bufio.NewWriter(w)}
	fmt.Fprintf(cw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		s.width, s.height, s.width, s.height)
	if s.opts.background.A > 0 {
		fmt.Fprintf(cw, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", s.opts.background.Hex())
	}
	fmt.Fprintf(cw, `<g fill="%s" fill-rule="nonzero">`+"\n", s.opts.ink.Hex())
	for _, d := range s.paths {
		fmt.Fprintf(cw, "<path d=\"%s\"/>\n", d)
	}
	fmt.Fprint(cw, "</g>\n</svg>\n")
	if cw.err != nil {
		return cw.n, fmt.Errorf("raster: write svg: %w", cw.err)
	}
	if err := cw.w.Flush(); err != nil {
		return cw.n, fmt.Errorf("raster: write svg: %w", err)
	}
	return cw.n, nil
}

// SaveSVG writes the document to a file.
func (s *SVG) SaveSVG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	_, err = s.WriteTo(f)
	return err
}

// countWriter counts bytes and keeps the first error.
type countWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
