package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/ink/freehand"
)

var errInput = errors.New("inkdemo: input must be a list of [x,y] or [x,y,pressure] points, or a list of such lists")

// readStrokes loads strokes from a JSON file.
func readStrokes(path string) ([][]freehand.InputPoint, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("inkdemo: read input: %w", err)
	}
	return parseStrokes(data)
}

// parseStrokes accepts a single stroke, [[x,y],...], or several,
// [[[x,y],...],...].
func parseStrokes(data []byte) ([][]freehand.InputPoint, error) {
	var one [][]float64
	if err := json.Unmarshal(data, &one); err == nil {
		pts, err := toPoints(one)
		if err != nil {
			return nil, err
		}
		return [][]freehand.InputPoint{pts}, nil
	}

	var many [][][]float64
	if err := json.Unmarshal(data, &many); err != nil {
		return nil, fmt.Errorf("%w: %v", errInput, err)
	}
	strokes := make([][]freehand.InputPoint, 0, len(many))
	for i, raw := range many {
		pts, err := toPoints(raw)
		if err != nil {
			return nil, fmt.Errorf("stroke %d: %w", i, err)
		}
		strokes = append(strokes, pts)
	}
	return strokes, nil
}

func toPoints(raw [][]float64) ([]freehand.InputPoint, error) {
	pts := make([]freehand.InputPoint, 0, len(raw))
	for i, p := range raw {
		switch len(p) {
		case 2:
			pts = append(pts, freehand.Pt(p[0], p[1]))
		case 3:
			pts = append(pts, freehand.PtP(p[0], p[1], p[2]))
		default:
			return nil, fmt.Errorf("%w: point %d has %d values", errInput, i, len(p))
		}
	}
	return pts, nil
}
