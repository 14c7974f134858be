package geometry

// Orientation tells on which side of the directed line p->q the point r lies:
// 1 to the left, -1 to the right and 0 when the three are collinear.
func Orientation(p, q, r Vector2) int {
	cross := Cross(q.Sub(p), r.Sub(p))
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	}

	return 0
}

// SegmentsIntersect reports whether p1p2 and p3p4 cross. Both endpoints of
// each segment have to be strictly on opposite sides of the other one, so
// touching or collinear segments do not count.
func SegmentsIntersect(p1, p2, p3, p4 Vector2) bool {
	d1 := Orientation(p3, p4, p1)
	d2 := Orientation(p3, p4, p2)
	d3 := Orientation(p1, p2, p3)
	d4 := Orientation(p1, p2, p4)

	return d1*d2 < 0 && d3*d4 < 0
}
