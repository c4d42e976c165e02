package raster

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/calligraphy"
)

func TestSVG_Fills(t *testing.T) {
	s := NewSVG(100, 50, WithInk(RGB(1, 0, 0)))
	s.FillPolygon([]ink.Point{ink.Pt(0, 0), ink.Pt(10, 0), ink.Pt(10, 10)})
	s.FillPolygon([]ink.Point{ink.Pt(0, 0)})
	s.FillPath(nil)
	s.FillData("")
	s.FillData("M 1,1 L 2,2 Z")
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}
	out := buf.String()
	for _, want := range []string{
		`width="100" height="50" viewBox="0 0 100 50"`,
		`fill="#ffffff"`,
		`<g fill="#ff0000" fill-rule="nonzero">`,
		`<path d="M 0,0 L 10,0 L 10,10 Z"/>`,
		`<path d="M 1,1 L 2,2 Z"/>`,
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSVG_TransparentBackground(t *testing.T) {
	s := NewSVG(10, 10, WithBackground(Transparent))
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<rect") {
		t.Error("transparent background written")
	}
}

func TestSVG_DrawInstructions(t *testing.T) {
	segs := []ink.CubicBez{
		ink.NewCubicBez(ink.Pt(0, 0), ink.Pt(33, 0), ink.Pt(66, 0), ink.Pt(100, 0)),
		ink.NewCubicBez(ink.Pt(100, 0), ink.Pt(100, 33), ink.Pt(100, 66), ink.Pt(100, 100)),
	}
	ins := calligraphy.NewEngine(nil).Draw(segs, 10)
	s := NewSVG(120, 120)
	s.DrawInstructions(ins)
	if s.Len() != len(ins) {
		t.Errorf("recorded %d paths for %d instructions", s.Len(), len(ins))
	}
}
