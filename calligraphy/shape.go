package calligraphy

import (
	"errors"
	"fmt"

	"github.com/gogpu/ink"
)

// Errors returned by NewCornerShape.
var (
	ErrEmptyShape  = errors.New("calligraphy: shape has no sections")
	ErrInvalidBone = errors.New("calligraphy: invalid bone reference")
)

// Joint names a movable arm of a corner shape.
type Joint int

const (
	// ArmA is the arm along which a joint is entered.
	ArmA Joint = iota
	// ArmB is the arm along which a joint is left.
	ArmB
)

var joints = [...]Joint{ArmA, ArmB}

// String returns the joint name.
func (j Joint) String() string {
	switch j {
	case ArmA:
		return "armA"
	case ArmB:
		return "armB"
	default:
		return fmt.Sprintf("Joint(%d)", int(j))
	}
}

// ControlRef addresses one control point of a shape.
type ControlRef struct {
	Section int
	Index   int
}

// Bone is the set of control points that move with an arm, and the
// direction in degrees the arm points in when undeformed.
type Bone struct {
	Refs   []ControlRef
	Offset float64
}

func (b Bone) clone() Bone {
	return Bone{Refs: append([]ControlRef(nil), b.Refs...), Offset: b.Offset}
}

// Section is one cubic Bezier piece of a shape outline.
type Section [4]ink.Point

// CornerShape is a closed outline of cubic sections drawn around the
// origin, optionally with bones that let its arms be re-angled.
// A CornerShape is immutable; transformations return new shapes.
type CornerShape struct {
	name     string
	sections []Section
	bones    map[Joint]Bone
}

// NewCornerShape validates and returns a shape. Every bone reference must
// address an existing section and a control index in [0, 3].
func NewCornerShape(name string, sections []Section, bones map[Joint]Bone) (*CornerShape, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyShape, name)
	}
	s := &CornerShape{
		name:     name,
		sections: append([]Section(nil), sections...),
		bones:    make(map[Joint]Bone, len(bones)),
	}
	for j, b := range bones {
		for _, r := range b.Refs {
			if r.Section < 0 || r.Section >= len(sections) || r.Index < 0 || r.Index > 3 {
				return nil, fmt.Errorf("%w: %s %s references section %d control %d",
					ErrInvalidBone, name, j, r.Section, r.Index)
			}
		}
		s.bones[j] = b.clone()
	}
	return s, nil
}

// Name returns the shape name.
func (s *CornerShape) Name() string { return s.name }

// Sections returns a copy of the shape's sections.
func (s *CornerShape) Sections() []Section {
	return append([]Section(nil), s.sections...)
}

// Bone returns the bone for joint j.
func (s *CornerShape) Bone(j Joint) (Bone, bool) {
	b, ok := s.bones[j]
	if !ok {
		return Bone{}, false
	}
	return b.clone(), true
}

func (s *CornerShape) clone(name string) *CornerShape {
	c := &CornerShape{
		name:     name,
		sections: append([]Section(nil), s.sections...),
		bones:    make(map[Joint]Bone, len(s.bones)),
	}
	for j, b := range s.bones {
		c.bones[j] = b.clone()
	}
	return c
}

// FlipHorizontal returns the mirror image across the y axis. Bone offsets
// are mirrored to 180-offset, kept in [0, 360).
func (s *CornerShape) FlipHorizontal(name string) *CornerShape {
	c := s.clone(name)
	for i := range c.sections {
		for k := range c.sections[i] {
			c.sections[i][k].X = -c.sections[i][k].X
		}
	}
	for j, b := range c.bones {
		b.Offset = 180 - b.Offset
		if b.Offset < 0 {
			b.Offset += 360
		}
		c.bones[j] = b
	}
	return c
}

// FlipVertical returns the mirror image across the x axis. Bone offsets
// become 360-offset.
func (s *CornerShape) FlipVertical(name string) *CornerShape {
	c := s.clone(name)
	for i := range c.sections {
		for k := range c.sections[i] {
			c.sections[i][k].Y = -c.sections[i][k].Y
		}
	}
	for j, b := range c.bones {
		b.Offset = 360 - b.Offset
		c.bones[j] = b
	}
	return c
}

// SetBoneAngles returns a copy with each listed arm pointed in the given
// direction in radians: every control point of the bone is rotated about
// the origin by the direction minus the bone's offset. Joints without a
// bone are ignored.
func (s *CornerShape) SetBoneAngles(dirs map[Joint]float64) *CornerShape {
	c := s.clone(s.name)
	for _, j := range joints {
		dir, ok := dirs[j]
		if !ok {
			continue
		}
		b, ok := c.bones[j]
		if !ok {
			continue
		}
		rot := dir - ink.Radians(b.Offset)
		for _, r := range b.Refs {
			p := &c.sections[r.Section][r.Index]
			*p = p.RotateAround(ink.Point{}, rot)
		}
	}
	return c
}

// Path returns the outline in shape coordinates. Each section continues
// from the end of the previous one.
func (s *CornerShape) Path() *ink.Path {
	p := ink.NewPath()
	p.MoveTo(s.sections[0][0])
	for _, sec := range s.sections {
		p.CubicTo(sec[1], sec[2], sec[3])
	}
	p.Close()
	return p
}

// Bounds returns the bounding box of all control points.
func (s *CornerShape) Bounds() ink.Rect {
	pts := make([]ink.Point, 0, 4*len(s.sections))
	for _, sec := range s.sections {
		pts = append(pts, sec[:]...)
	}
	return ink.BoundsOf(pts)
}
