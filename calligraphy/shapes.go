package calligraphy

import (
	"fmt"
	"sync"

	"github.com/gogpu/ink"
)

// ShapeID identifies a shape in a Registry.
type ShapeID int

// Built-in shapes. C1 to C7 are stroke ends, C8 to C10 and the flipped
// C8R and C9R are joints between segments.
const (
	ShapeNone ShapeID = iota
	Circle
	C1
	C2
	C3
	C4
	C5
	C6
	C7
	C8
	C8R
	C9
	C9R
	C10
)

var shapeNames = [...]string{
	ShapeNone: "none",
	Circle:    "circle",
	C1:        "C1",
	C2:        "C2",
	C3:        "C3",
	C4:        "C4",
	C5:        "C5",
	C6:        "C6",
	C7:        "C7",
	C8:        "C8",
	C8R:       "C8R",
	C9:        "C9",
	C9R:       "C9R",
	C10:       "C10",
}

// String returns the shape name.
func (id ShapeID) String() string {
	if id >= 0 && int(id) < len(shapeNames) {
		return shapeNames[id]
	}
	return fmt.Sprintf("ShapeID(%d)", int(id))
}

// Registry maps shape identifiers to shapes. It is never modified after
// construction and may be shared freely.
type Registry struct {
	shapes map[ShapeID]*CornerShape
}

// NewRegistry returns a registry holding the given shapes.
func NewRegistry(shapes map[ShapeID]*CornerShape) *Registry {
	r := &Registry{shapes: make(map[ShapeID]*CornerShape, len(shapes))}
	for id, s := range shapes {
		if s != nil {
			r.shapes[id] = s
		}
	}
	return r
}

// Shape returns the shape for id.
func (r *Registry) Shape(id ShapeID) (*CornerShape, bool) {
	s, ok := r.shapes[id]
	return s, ok
}

// Len returns the number of shapes.
func (r *Registry) Len() int { return len(r.shapes) }

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the built-in shape library.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(builtinShapes())
	})
	return defaultRegistry
}

// kappa places cubic handles so that four sections approximate a circle.
const kappa = 0.5522847498

func sec(x0, y0, x1, y1, x2, y2, x3, y3 float64) Section {
	return Section{ink.Pt(x0, y0), ink.Pt(x1, y1), ink.Pt(x2, y2), ink.Pt(x3, y3)}
}

func refs(pairs ...int) []ControlRef {
	out := make([]ControlRef, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, ControlRef{Section: pairs[i], Index: pairs[i+1]})
	}
	return out
}

func mustShape(name string, sections []Section, bones map[Joint]Bone) *CornerShape {
	s, err := NewCornerShape(name, sections, bones)
	if err != nil {
		panic(err)
	}
	return s
}

func builtinShapes() map[ShapeID]*CornerShape {
	const k = 5 * kappa
	circle := mustShape("circle", []Section{
		sec(-5, 0, -5, -k, -k, -5, 0, -5),
		sec(0, -5, k, -5, 5, -k, 5, 0),
		sec(5, 0, 5, k, k, 5, 0, 5),
		sec(0, 5, -k, 5, -5, k, -5, 0),
	}, nil)

	c1 := mustShape("C1", []Section{
		sec(15, 6, -3, 4, -11, 5, -20, 0),
		sec(-20, 0, -15, -5, 4, -9, 13, -5),
		sec(13, -5, 20, 0, 21, 8, 15, 6),
	}, nil)

	c2 := mustShape("C2", []Section{
		sec(2, 5, -2, 5, -12, 2, -13, -2),
		sec(-13, 2, -7, -5, 0, -5, 2, -5),
		sec(2, -5, 3, -5, 3, 5, 2, 5),
	}, nil)

	c3 := mustShape("C3", []Section{
		sec(-8, 5, -10, 5, -10, -5, -8, -5),
		sec(-8, -5, 3, -5, 15, 0, 15, 5),
		sec(15, 5, 10, 7, 2, 5, -8, 5),
	}, nil)

	c4 := mustShape("C4", []Section{
		sec(0, 5, -2, 5, -4, 7, -5, 8),
		sec(-5, 8, -7, 10, -9, 12, -8, 5),
		sec(-8, 5, -7, 3, -5, -5, 0, -5),
		sec(0, -5, 3, -5, 3, 5, 0, 5),
	}, nil)

	c5 := mustShape("C5", []Section{
		sec(0, -5, -3, -5, -3, 5, 0, 5),
		sec(0, 5, 8, 5, 10, 5, 15, 2),
		sec(15, 2, 12, -2, -2, -5, 0, -5),
	}, nil)

	c6 := mustShape("C6", []Section{
		sec(0, 5, -6, 6, -8, 7, -12, 8),
		sec(-12, 8, -13, 9, -13, 7, -12, 6),
		sec(-12, 6, -10, 3, -5, -4, 0, -5),
		sec(0, -5, 3, -5, 3, 5, 0, 5),
	}, nil)

	c7 := mustShape("C7", []Section{
		sec(-5, -5, 0, -5, 11, -7, 15, -6),
		sec(15, -6, 17, -5, 2, 4, 1, 5),
		sec(1, 5, 0, 5, 0, 5, -5, 5),
		sec(-5, 5, -8, 5, -8, -5, -5, -5),
	}, nil)

	c8 := mustShape("C8", []Section{
		sec(-13, 3, -20, 3, -20, -3, -13, -3),
		sec(-13, -3, -5, -5, -6, -7, -4, -8),
		sec(-4, -8, 0, -8, 12, 3, 7, 5),
		sec(7, 5, 5, 6, 5, 8, 3, 13),
		sec(3, 13, 3, 20, -3, 20, -3, 13),
		sec(-3, 13, -5, 5, -10, 5, -13, 3),
	}, map[Joint]Bone{
		ArmA: {Refs: refs(0, 0, 0, 1, 0, 2, 0, 3, 1, 0, 1, 1, 5, 2, 5, 3), Offset: 0},
		ArmB: {Refs: refs(4, 0, 4, 1, 4, 2, 4, 3, 3, 2, 3, 3, 5, 0, 5, 1, 1, 2, 1, 3, 2, 0, 2, 1), Offset: 90},
	})

	c9 := mustShape("C9", []Section{
		sec(-4, -12, -4, -15, 4, -15, 5, -12),
		sec(5, -12, 5, -2, 6, 3, 1, 8),
		sec(-1, 8, -3, 11, -4, 2, -12, -5),
		sec(-12, -5, -15, -7, -15, -9, -10, -8),
		sec(-10, -8, -6, -8, -4, -7, -4, -12),
	}, map[Joint]Bone{
		ArmA: {Refs: refs(0, 0, 0, 1, 0, 2, 0, 3, 1, 0, 1, 1, 4, 2, 4, 3, 1, 2), Offset: 90},
		ArmB: {Refs: refs(3, 0, 3, 1, 3, 2, 3, 3, 4, 0, 4, 1, 2, 2, 2, 3), Offset: 210},
	})

	c10 := mustShape("C10", []Section{
		sec(-5, 5, -6, 5, -6, -5, -5, -5),
		sec(-5, -5, -2, -7, 2, -7, 5, -5),
		sec(5, -5, 6, -5, 6, 5, 5, 5),
		sec(5, 5, 2, 7, -2, 7, -5, 5),
	}, map[Joint]Bone{
		ArmA: {Refs: refs(0, 0, 0, 1, 0, 2, 0, 3, 1, 0, 1, 2, 3, 2, 3, 3), Offset: 0},
		ArmB: {Refs: refs(2, 0, 2, 1, 2, 2, 2, 3, 3, 0, 3, 1, 1, 2, 1, 3), Offset: 0},
	})

	return map[ShapeID]*CornerShape{
		Circle: circle,
		C1:     c1,
		C2:     c2,
		C3:     c3,
		C4:     c4,
		C5:     c5,
		C6:     c6,
		C7:     c7,
		C8:     c8,
		C8R:    c8.FlipHorizontal("C8R"),
		C9:     c9,
		C9R:    c9.FlipVertical("C9R"),
		C10:    c10,
	}
}
