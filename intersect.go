package ink

// SegmentsIntersect reports whether segment a0-a1 crosses segment b0-b1.
// Touching endpoints count as an intersection; parallel segments never do.
func SegmentsIntersect(a0, a1, b0, b1 Point) bool {
	den := (b1.Y-b0.Y)*(a1.X-a0.X) - (b1.X-b0.X)*(a1.Y-a0.Y)
	if den == 0 {
		return false
	}
	ua := ((b1.X-b0.X)*(a0.Y-b0.Y) - (b1.Y-b0.Y)*(a0.X-b0.X)) / den
	ub := ((a1.X-a0.X)*(a0.Y-b0.Y) - (a1.Y-a0.Y)*(a0.X-b0.X)) / den
	return ua >= 0 && ua <= 1 && ub >= 0 && ub <= 1
}

// PolylinesIntersect reports whether any segment of a crosses any segment of b.
// Hosts use it to erase strokes crossed by an eraser gesture.
func PolylinesIntersect(a, b []Point) bool {
	for i := 0; i+1 < len(a); i++ {
		for j := 0; j+1 < len(b); j++ {
			if SegmentsIntersect(a[i], a[i+1], b[j], b[j+1]) {
				return true
			}
		}
	}
	return false
}
