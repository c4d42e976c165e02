package calligraphy

import "fmt"

// Kind classifies a single-segment stroke.
type Kind int

// Stroke kinds, named after the basic brush strokes.
const (
	// Other is any stroke no other kind matches.
	Other Kind = iota
	// Dian is a dot.
	Dian
	// Hen is a horizontal stroke.
	Hen
	// Shu1 is a long vertical stroke with a closing end.
	Shu1
	// Shu2 is a short vertical stroke that thins out.
	Shu2
	// Na is a falling stroke to the right.
	Na
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Other:
		return "other"
	case Dian:
		return "dian"
	case Hen:
		return "hen"
	case Shu1:
		return "shu1"
	case Shu2:
		return "shu2"
	case Na:
		return "na"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Template describes how to draw a stroke of some kind: a start shape,
// a width profile for the segment and an optional end shape. A Dian
// template has only its start shape, which is drawn alone.
type Template struct {
	Kind    Kind
	Start   ShapeID
	Profile WidthProfile
	End     ShapeID
}

// HasEnd reports whether the template closes with an end shape.
func (t Template) HasEnd() bool { return t.End != ShapeNone }

// Template returns the drawing template for k.
func (k Kind) Template() Template {
	switch k {
	case Dian:
		return Template{Kind: Dian, Start: C1}
	case Hen:
		return Template{Kind: Hen, Start: C2, Profile: SegmentI, End: C3}
	case Shu1:
		return Template{Kind: Shu1, Start: C4, Profile: SegmentI, End: C5}
	case Shu2:
		return Template{Kind: Shu2, Start: C4, Profile: SegmentII}
	case Na:
		return Template{Kind: Na, Start: C6, Profile: SegmentI, End: C7}
	default:
		return Template{Kind: Other, Start: C4, Profile: SegmentII}
	}
}
