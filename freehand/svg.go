package freehand

import (
	"strings"

	"github.com/gogpu/ink"
)

// SVGPath returns SVG path data tracing the outline with quadratic curves
// through the midpoints of consecutive points. An empty outline yields "".
func SVGPath(outline []ink.Point) string {
	if len(outline) == 0 {
		return ""
	}

	var sb strings.Builder
	first := outline[0]
	sb.WriteString("M ")
	writePoint(&sb, first)
	sb.WriteString(" Q")
	for i, p := range outline {
		next := first
		if i+1 < len(outline) {
			next = outline[i+1]
		}
		sb.WriteByte(' ')
		writePoint(&sb, p)
		sb.WriteByte(' ')
		writePoint(&sb, p.Midpoint(next))
	}
	sb.WriteString(" L ")
	writePoint(&sb, first)
	sb.WriteString(" Z")
	return sb.String()
}

// OutlinePath returns the outline as a closed polygon path.
func OutlinePath(outline []ink.Point) *ink.Path {
	return ink.Polygon(outline)
}

func writePoint(sb *strings.Builder, p ink.Point) {
	sb.WriteString(ink.FormatCoord(p.X))
	sb.WriteByte(',')
	sb.WriteString(ink.FormatCoord(p.Y))
}
