package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/ink/freehand"
)

func TestParseStrokes(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		strokes int
		points  []int
	}{
		{"single", `[[0,0],[10,5],[20,10,0.7]]`, 1, []int{3}},
		{"many", `[[[0,0],[1,1]],[[5,5,0.2]]]`, 2, []int{2, 1}},
		{"empty", `[]`, 1, []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strokes, err := parseStrokes([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if len(strokes) != tt.strokes {
				t.Fatalf("got %d strokes, want %d", len(strokes), tt.strokes)
			}
			for i, n := range tt.points {
				if len(strokes[i]) != n {
					t.Errorf("stroke %d has %d points, want %d", i, len(strokes[i]), n)
				}
			}
		})
	}

	strokes, _ := parseStrokes([]byte(`[[1,2],[3,4,0.5]]`))
	if p := strokes[0][0]; p.HasPressure() || p.X != 1 || p.Y != 2 {
		t.Errorf("first point = %+v", p)
	}
	if p := strokes[0][1]; !p.HasPressure() || p.Pressure != 0.5 {
		t.Errorf("second point = %+v", p)
	}
}

func TestParseStrokes_Invalid(t *testing.T) {
	for _, in := range []string{`{}`, `[[1]]`, `[[[1,2,3,4]]]`, `"points"`, `[[1,2],[[3,4]]]`} {
		if _, err := parseStrokes([]byte(in)); !errors.Is(err, errInput) {
			t.Errorf("parseStrokes(%s) err = %v, want errInput", in, err)
		}
	}
}

func TestStrokeOptions(t *testing.T) {
	tests := []struct {
		name     string
		pts      []freehand.InputPoint
		simulate bool
		want     bool
	}{
		{"no pressure", []freehand.InputPoint{freehand.Pt(0, 0), freehand.Pt(5, 5)}, true, true},
		{"recorded pressure", []freehand.InputPoint{freehand.PtP(0, 0, 0.3), freehand.PtP(5, 5, 0.9)}, true, false},
		{"partial pressure", []freehand.InputPoint{freehand.Pt(0, 0), freehand.PtP(5, 5, 0.9)}, true, false},
		{"simulation already off", []freehand.InputPoint{freehand.Pt(0, 0)}, false, false},
		{"empty", nil, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := freehand.DefaultOptions().WithSimulatePressure(tt.simulate)
			if got := strokeOptions(opts, tt.pts).SimulatePressure; got != tt.want {
				t.Errorf("SimulatePressure = %v, want %v", got, tt.want)
			}
		})
	}
}

const testStrokes = `[
	[[20,40],[60,42],[100,45],[140,44],[180,40]],
	[[100,20],[101,60],[100,100],[99,140]]
]`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	if err := os.WriteFile(in, []byte(testStrokes), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		mode string
		out  string
	}{
		{"outline png", ModeOutline, "outline.png"},
		{"outline svg", ModeOutline, "outline.svg"},
		{"calligraphy png", ModeCalligraphy, "calligraphy.png"},
		{"calligraphy svg", ModeCalligraphy, "calligraphy.svg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Width, cfg.Height = 200, 160
			cfg.Mode = tt.mode
			out := filepath.Join(dir, tt.out)
			if err := run(cfg, in, out); err != nil {
				t.Fatal(err)
			}
			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			if len(data) == 0 {
				t.Fatal("empty output")
			}
			if strings.HasSuffix(tt.out, ".svg") && strings.Count(string(data), "<path") == 0 {
				t.Errorf("svg has no paths:\n%s", data)
			}
		})
	}

	if err := run(DefaultConfig(), in, filepath.Join(dir, "out.gif")); err == nil {
		t.Error("unsupported output accepted")
	}
	if err := run(DefaultConfig(), filepath.Join(dir, "missing.json"), filepath.Join(dir, "x.png")); err == nil {
		t.Error("missing input accepted")
	}
}
