package calligraphy

// Length thresholds for classifying single-segment strokes.
const (
	// LongThreshold is the length from which a vertical stroke is long.
	LongThreshold = 60.0
	// DotThreshold is the length below which any stroke is a dot.
	DotThreshold = 40.0
)

// nearlyFlat matches directions within 10 degrees of pointing right.
func nearlyFlat() []Range { return []Range{{0, 10}, {350, 360}} }

// BasicStrokeRules classifies single-segment strokes.
func BasicStrokeRules() RuleTable[Kind] {
	vertical := InRange{FieldStartAngle, []Range{{80, 100}}}
	return RuleTable[Kind]{
		{When: LessThan{FieldLength, DotThreshold}, Then: Dian},
		{When: InRange{FieldStartAngle, nearlyFlat()}, Then: Hen},
		{When: And{vertical, GreaterThan{FieldLength, LongThreshold}}, Then: Shu1},
		{When: And{vertical, InRange{FieldLength, []Range{{DotThreshold, LongThreshold}}}}, Then: Shu2},
		{When: InRange{FieldStartAngle, []Range{{10, 80}}}, Then: Na},
		{When: Always{}, Then: Other},
	}
}

// CompoundStartRules picks the shape at the start of a multi-segment
// stroke.
func CompoundStartRules() RuleTable[ShapeID] {
	return RuleTable[ShapeID]{
		{When: InRange{FieldStartAngle, nearlyFlat()}, Then: C2},
		{When: InRange{FieldStartAngle, []Range{{80, 350}}}, Then: C4},
	}
}

// CompoundEndRules picks the shape at the end of a multi-segment stroke.
func CompoundEndRules() RuleTable[ShapeID] {
	return RuleTable[ShapeID]{
		{When: InRange{FieldEndAngle, nearlyFlat()}, Then: C3},
		{When: InRange{FieldEndAngle, []Range{{10, 80}}}, Then: C7},
		{When: InRange{FieldEndAngle, []Range{{80, 100}}}, Then: C5},
	}
}

// CompoundJointRules picks the shape at a joint between two segments.
func CompoundJointRules() RuleTable[ShapeID] {
	positiveTurn := InRange{FieldBetweenAngle, []Range{{0, 180}}}
	negativeTurn := InRange{FieldBetweenAngle, []Range{{-180, 0}}}
	return RuleTable[ShapeID]{
		{When: And{InRange{FieldInAngle, []Range{{0, 45}, {315, 360}}}, positiveTurn}, Then: C8},
		{When: And{InRange{FieldInAngle, []Range{{60, 170}}}, negativeTurn}, Then: C8R},
		{When: And{InRange{FieldInAngle, []Range{{45, 145}}}, positiveTurn}, Then: C9},
		{When: And{InRange{FieldInAngle, []Range{{0, 60}, {240, 360}}}, negativeTurn}, Then: C9R},
	}
}
