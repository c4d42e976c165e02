package calligraphy

import (
	"github.com/gogpu/ink"
)

// Scale divisors mapping a stroke width onto shape coordinates. Corner
// shapes are about ten units across; the dot is drawn squashed.
const (
	cornerScale    = 10.0
	dotWidthScale  = 13.0
	dotLengthScale = 20.0
)

// Instruction is one drawing step for a surface: a ShapeInstruction or a
// SegmentInstruction.
type Instruction interface {
	instruction()
}

// ShapeInstruction places a corner shape. The shape is scaled by
// (ScaleX, ScaleY), rotated by Rotation radians and moved to Position.
type ShapeInstruction struct {
	ID       ShapeID
	Shape    *CornerShape
	Position ink.Point
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}

// Transform returns the shape-to-surface transform.
func (s ShapeInstruction) Transform() ink.Matrix {
	return ink.Placement(s.Position, s.Rotation, s.ScaleX, s.ScaleY)
}

// Path returns the placed shape outline.
func (s ShapeInstruction) Path() *ink.Path {
	return s.Shape.Path().Transform(s.Transform())
}

// SegmentInstruction draws a Bezier segment as a band whose width follows
// Profile.
type SegmentInstruction struct {
	Curve   ink.CubicBez
	Profile WidthProfile
	Width   float64
}

// Polygon returns the band outline sampled every resolution units.
func (s SegmentInstruction) Polygon(resolution float64) []ink.Point {
	return Ribbon(s.Curve, s.Profile, s.Width, resolution)
}

func (ShapeInstruction) instruction()   {}
func (SegmentInstruction) instruction() {}

// EngineOption configures an Engine during creation.
type EngineOption func(*engineOptions)

type engineOptions struct {
	basic      RuleTable[Kind]
	start      RuleTable[ShapeID]
	joint      RuleTable[ShapeID]
	end        RuleTable[ShapeID]
	resolution float64
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		basic:      BasicStrokeRules(),
		start:      CompoundStartRules(),
		joint:      CompoundJointRules(),
		end:        CompoundEndRules(),
		resolution: DefaultResolution,
	}
}

// WithBasicRules replaces the single-segment classification table.
func WithBasicRules(t RuleTable[Kind]) EngineOption {
	return func(o *engineOptions) { o.basic = t }
}

// WithStartRules replaces the compound start-shape table.
func WithStartRules(t RuleTable[ShapeID]) EngineOption {
	return func(o *engineOptions) { o.start = t }
}

// WithJointRules replaces the compound joint-shape table.
func WithJointRules(t RuleTable[ShapeID]) EngineOption {
	return func(o *engineOptions) { o.joint = t }
}

// WithEndRules replaces the compound end-shape table.
func WithEndRules(t RuleTable[ShapeID]) EngineOption {
	return func(o *engineOptions) { o.end = t }
}

// WithResolution sets the ribbon sampling distance used by surfaces that
// ask the engine for it. Non-positive values are ignored.
func WithResolution(r float64) EngineOption {
	return func(o *engineOptions) {
		if r > 0 {
			o.resolution = r
		}
	}
}

// Engine turns fitted stroke segments into drawing instructions.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	reg  *Registry
	opts engineOptions
}

// NewEngine returns an engine drawing shapes from reg. A nil registry
// uses DefaultRegistry.
func NewEngine(reg *Registry, opts ...EngineOption) *Engine {
	if reg == nil {
		reg = DefaultRegistry()
	}
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{reg: reg, opts: o}
}

// Registry returns the engine's shape registry.
func (e *Engine) Registry() *Registry { return e.reg }

// Resolution returns the ribbon sampling distance.
func (e *Engine) Resolution() float64 { return e.opts.resolution }

// Draw returns the instructions for a stroke made of segments drawn at
// the given width. One segment is drawn as a basic stroke, more as a
// compound stroke.
func (e *Engine) Draw(segments []ink.CubicBez, width float64) []Instruction {
	switch len(segments) {
	case 0:
		return nil
	case 1:
		return e.DrawBasic(segments[0], width)
	default:
		return e.DrawCompound(segments, width)
	}
}

// DrawBasic classifies a single segment and returns its shapes followed
// by the segment band. A dot is a single shape spanning the segment.
func (e *Engine) DrawBasic(seg ink.CubicBez, width float64) []Instruction {
	attrs := SegmentAttributes(seg)
	kind := e.opts.basic.MatchOr(attrs, Other)
	tmpl := kind.Template()
	ink.Logger().Debug("calligraphy: basic stroke",
		"kind", kind, "startAngle", attrs.StartAngle(), "length", attrs.Length())

	var out []Instruction
	if kind == Dian {
		mid := attrs.StartPoint.Midpoint(attrs.EndPoint)
		if si, ok := e.shape(tmpl.Start, mid, ink.Radians(attrs.StartAngle()),
			attrs.Length()/dotLengthScale, width/dotWidthScale); ok {
			out = append(out, si)
		}
		return out
	}

	scale := width / cornerScale
	if si, ok := e.shape(tmpl.Start, attrs.StartPoint, ink.Radians(attrs.StartAngle()), scale, scale); ok {
		out = append(out, si)
	}
	if tmpl.HasEnd() {
		if si, ok := e.shape(tmpl.End, attrs.EndPoint, ink.Radians(attrs.EndAngle()), scale, scale); ok {
			out = append(out, si)
		}
	}
	return append(out, SegmentInstruction{Curve: seg, Profile: tmpl.Profile, Width: width})
}

// DrawCompound returns the shapes at the start, at every joint and at
// the end of a multi-segment stroke, followed by one band per segment.
// A missing end shape makes the adjacent band taper in or out.
func (e *Engine) DrawCompound(segs []ink.CubicBez, width float64) []Instruction {
	if len(segs) < 2 {
		return e.Draw(segs, width)
	}
	scale := width / cornerScale
	var out []Instruction

	first := SegmentAttributes(segs[0])
	startID, hasStart := e.opts.start.Match(first)
	if hasStart {
		if si, ok := e.shape(startID, first.StartPoint, ink.Radians(first.StartAngle()), scale, scale); ok {
			out = append(out, si)
		}
	} else {
		ink.Logger().Debug("calligraphy: no start shape", "startAngle", first.StartAngle())
	}

	for i := 1; i < len(segs); i++ {
		attrs := JointAttributes(segs[i-1], segs[i])
		id, ok := e.opts.joint.Match(attrs)
		if !ok {
			ink.Logger().Debug("calligraphy: no joint shape", "joint", i,
				"inAngle", attrs.InAngle(), "betweenAngle", attrs.BetweenAngle())
			continue
		}
		if si, ok := e.jointShape(id, attrs, scale); ok {
			out = append(out, si)
		}
	}

	last := SegmentAttributes(segs[len(segs)-1])
	endID, hasEnd := e.opts.end.Match(last)
	if hasEnd {
		if si, ok := e.shape(endID, last.EndPoint, ink.Radians(last.EndAngle()), scale, scale); ok {
			out = append(out, si)
		}
	} else {
		ink.Logger().Debug("calligraphy: no end shape", "endAngle", last.EndAngle())
	}

	for i, seg := range segs {
		profile := SegmentI
		switch {
		case i == 0 && !hasStart:
			profile = SegmentIII
		case i == len(segs)-1 && !hasEnd:
			profile = SegmentII
		}
		out = append(out, SegmentInstruction{Curve: seg, Profile: profile, Width: width})
	}
	return out
}

func (e *Engine) shape(id ShapeID, pos ink.Point, rot, sx, sy float64) (ShapeInstruction, bool) {
	s, ok := e.reg.Shape(id)
	if !ok {
		ink.Logger().Warn("calligraphy: shape not in registry", "shape", id)
		return ShapeInstruction{}, false
	}
	return ShapeInstruction{ID: id, Shape: s, Position: pos, Rotation: rot, ScaleX: sx, ScaleY: sy}, true
}

// jointShape orients a joint shape so that its entry arm follows the
// incoming segment and bends its exit arm toward the outgoing one.
func (e *Engine) jointShape(id ShapeID, attrs Attributes, scale float64) (ShapeInstruction, bool) {
	s, ok := e.reg.Shape(id)
	if !ok {
		ink.Logger().Warn("calligraphy: shape not in registry", "shape", id)
		return ShapeInstruction{}, false
	}
	armA, ok := s.Bone(ArmA)
	if !ok {
		ink.Logger().Warn("calligraphy: joint shape has no entry arm", "shape", id)
	}
	in := attrs.InAngle() - armA.Offset
	bent := s.SetBoneAngles(map[Joint]float64{ArmB: ink.Radians(attrs.OutAngle() - in)})
	return ShapeInstruction{
		ID:       id,
		Shape:    bent,
		Position: attrs.Point,
		Rotation: ink.Radians(in),
		ScaleX:   scale,
		ScaleY:   scale,
	}, true
}
