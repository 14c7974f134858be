package obstacle

import "github.com/winterbloom/t-obstacles/geometry"

// Set is the fixed list of obstacles of a session
type Set []*Shape

// Blocks reports whether any obstacle crosses the segment ab at time t
func (s Set) Blocks(a, b geometry.Vector2, t float64) bool {
	for _, shape := range s {
		if shape.IntersectsSegment(a, b, t) {
			return true
		}
	}
	return false
}
