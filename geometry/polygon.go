package geometry

import "math"

// Closed returns a copy of points with the first vertex appended at the end
func Closed(points []Vector2) []Vector2 {
	if len(points) == 0 {
		return nil
	}

	closed := make([]Vector2, len(points), len(points)+1)
	copy(closed, points)
	return append(closed, points[0])
}

// SignedArea2DPolygon is the shoelace sum, positive for counter-clockwise
// vertices in a y-up frame
func SignedArea2DPolygon(points []Vector2) float64 {
	n := len(points)
	if n < 3 {
		return 0
	} // a degenerate polygon

	area := 0.0
	for i := 0; i < n; i++ {
		area += Cross(points[i], points[(i+1)%n])
	}
	return area / 2.0
}

func Area2DPolygon(points []Vector2) float64 {
	return math.Abs(SignedArea2DPolygon(points))
}

// Centroid2DPolygon is the area weighted centroid. ok is false for polygons
// without area.
func Centroid2DPolygon(points []Vector2) (centroid Vector2, ok bool) {
	area := SignedArea2DPolygon(points)
	if area == 0 {
		return Vector2{}, false
	}

	n := len(points)
	var cx, cy float64
	for i := 0; i < n; i++ {
		p, q := points[i], points[(i+1)%n]
		cross := Cross(p, q)
		cx += (p.X() + q.X()) * cross
		cy += (p.Y() + q.Y()) * cross
	}

	return Vector2{cx / (6 * area), cy / (6 * area)}, true
}

// Bounds returns the corners of the axis aligned box around points
func Bounds(points []Vector2) (lo, hi Vector2) {
	if len(points) == 0 {
		return
	}

	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo = Vector2{math.Min(lo.X(), p.X()), math.Min(lo.Y(), p.Y())}
		hi = Vector2{math.Max(hi.X(), p.X()), math.Max(hi.Y(), p.Y())}
	}
	return
}
