package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/calligraphy"
	"github.com/gogpu/ink/fit"
	"github.com/gogpu/ink/freehand"
	"github.com/gogpu/ink/raster"
)

// target is a surface that can also take calligraphy instructions and
// be saved.
type target interface {
	raster.Surface
	DrawInstructions(ins []calligraphy.Instruction)
	save(path string) error
}

type pngTarget struct{ *raster.Canvas }

func (t pngTarget) save(path string) error { return t.SavePNG(path) }

type svgTarget struct{ *raster.SVG }

func (t svgTarget) save(path string) error { return t.SaveSVG(path) }

// newTarget picks the output surface from the file extension.
func newTarget(cfg Config, out string) (target, error) {
	opts := []raster.CanvasOption{
		raster.WithInk(cfg.Ink),
		raster.WithBackground(cfg.Background),
		raster.WithResolution(cfg.Calligraphy.Resolution),
	}
	switch strings.ToLower(filepath.Ext(out)) {
	case ".png":
		return pngTarget{raster.NewCanvas(cfg.Width, cfg.Height, opts...)}, nil
	case ".svg":
		return svgTarget{raster.NewSVG(cfg.Width, cfg.Height, opts...)}, nil
	default:
		return nil, fmt.Errorf("inkdemo: output %q must end in .png or .svg", out)
	}
}

// render draws every stroke onto t.
func render(t target, cfg Config, strokes [][]freehand.InputPoint) {
	switch cfg.Mode {
	case ModeCalligraphy:
		drawCalligraphy(t, cfg.Calligraphy, strokes)
	default:
		drawOutlines(t, cfg.Stroke.Options(), strokes)
	}
}

func drawOutlines(t target, opts freehand.Options, strokes [][]freehand.InputPoint) {
	for i, pts := range strokes {
		outline := freehand.Stroke(pts, strokeOptions(opts, pts))
		ink.Logger().Debug("inkdemo: outline", "stroke", i, "points", len(pts), "outline", len(outline))
		if s, ok := t.(svgTarget); ok {
			s.FillData(freehand.SVGPath(outline))
			continue
		}
		t.FillPolygon(outline)
	}
}

// strokeOptions turns pressure simulation off for a stroke that carries
// recorded pressure.
func strokeOptions(opts freehand.Options, pts []freehand.InputPoint) freehand.Options {
	for _, p := range pts {
		if p.HasPressure() {
			return opts.WithSimulatePressure(false)
		}
	}
	return opts
}

func drawCalligraphy(t target, cfg CalligraphyConfig, strokes [][]freehand.InputPoint) {
	engine := calligraphy.NewEngine(nil, calligraphy.WithResolution(cfg.Resolution))
	for i, pts := range strokes {
		chord := make([]ink.Point, len(pts))
		for k, p := range pts {
			chord[k] = p.Point()
		}
		chord = fit.SampleChord(chord, cfg.SampleDistance)
		if len(chord) < 2 {
			ink.Logger().Debug("inkdemo: stroke too short to fit", "stroke", i)
			continue
		}
		segs := fit.FitStroke(chord)
		ins := engine.Draw(segs, cfg.Width)
		ink.Logger().Debug("inkdemo: calligraphy", "stroke", i, "segments", len(segs), "instructions", len(ins))
		t.DrawInstructions(ins)
	}
}

// run loads the input, renders it and writes out.
func run(cfg Config, in, out string) error {
	strokes, err := readStrokes(in)
	if err != nil {
		return err
	}
	t, err := newTarget(cfg, out)
	if err != nil {
		return err
	}
	render(t, cfg, strokes)
	if err := t.save(out); err != nil {
		return fmt.Errorf("inkdemo: write %s: %w", out, err)
	}
	ink.Logger().Info("inkdemo: wrote output", "path", out, "strokes", len(strokes), "mode", cfg.Mode)
	return nil
}
