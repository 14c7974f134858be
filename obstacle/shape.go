package obstacle

import (
	"github.com/pkg/errors"

	"github.com/winterbloom/t-obstacles/geometry"
	"github.com/winterbloom/t-obstacles/utils"
)

var (
	ErrTooFewVertices = errors.New("shape needs at least 3 vertices")
	ErrDegenerate     = errors.New("shape has no area")
)

// Shape is a polygon attached to a frame that moves and spins at a constant
// velocity. Vertices are relative to the frame; T0 is the frame at t = 0 as
// (x, y, theta) and Velocity is (vx, vy, omega).
type Shape struct {
	vertices []geometry.Vector2
	T0       geometry.Vector3
	Velocity geometry.Vector3

	area     float64
	centroid geometry.Vector2
}

// NewShape checks the polygon and caches its area and relative centroid
func NewShape(vertices []geometry.Vector2, t0, velocity geometry.Vector3) (*Shape, error) {
	if len(vertices) < 3 {
		return nil, errors.Wrapf(ErrTooFewVertices, "got %d", len(vertices))
	}

	centroid, ok := geometry.Centroid2DPolygon(vertices)
	if !ok {
		return nil, ErrDegenerate
	}

	own := make([]geometry.Vector2, len(vertices))
	copy(own, vertices)

	return &Shape{
		vertices: own,
		T0:       t0,
		Velocity: velocity,
		area:     geometry.Area2DPolygon(own),
		centroid: centroid,
	}, nil
}

// MustShape is NewShape for static definitions known to be valid
func MustShape(vertices []geometry.Vector2, t0, velocity geometry.Vector3) *Shape {
	s, err := NewShape(vertices, t0, velocity)
	if err != nil {
		panic(err)
	}
	return s
}

// Vertices returns a copy of the relative vertex list
func (s *Shape) Vertices() []geometry.Vector2 {
	out := make([]geometry.Vector2, len(s.vertices))
	copy(out, s.vertices)
	return out
}

// Location is the frame (x, y, theta) at time t
func (s *Shape) Location(t float64) geometry.Vector3 {
	return s.T0.Add(s.Velocity.Mul(t))
}

// Rotate returns a copy with every relative vertex rotated by a about the
// frame origin
func (s *Shape) Rotate(a float64) *Shape {
	vertices := geometry.RotateAll(s.vertices, a)
	return &Shape{
		vertices: vertices,
		T0:       s.T0,
		Velocity: s.Velocity,
		area:     geometry.Area2DPolygon(vertices),
		centroid: geometry.Rotate(s.centroid, a),
	}
}

// AbsolutePos returns the vertices in world coordinates at time t
func (s *Shape) AbsolutePos(t float64) []geometry.Vector2 {
	loc := s.Location(t)
	origin := loc.Vec2()

	world := s.Rotate(loc.Z()).vertices
	for i := range world {
		world[i] = world[i].Add(origin)
	}
	return world
}

func (s *Shape) Area() float64 {
	return s.area
}

// Centroid is the relative centroid shifted by the translation done since
// t = 0. The rotation of the frame is left out.
func (s *Shape) Centroid(t float64) geometry.Vector2 {
	return s.centroid.Add(geometry.Vec2(s.Velocity.X()*t, s.Velocity.Y()*t))
}

// WorldCentroid is the centroid of AbsolutePos(t)
func (s *Shape) WorldCentroid(t float64) geometry.Vector2 {
	loc := s.Location(t)
	return loc.Vec2().Add(geometry.Rotate(s.centroid, loc.Z()))
}

// Edges returns the sides of the world polygon at t, last one closing it
func (s *Shape) Edges(t float64) [][2]geometry.Vector2 {
	closed := geometry.Closed(s.AbsolutePos(t))
	edges := make([][2]geometry.Vector2, 0, len(closed)-1)
	for i := 0; i+1 < len(closed); i++ {
		edges = append(edges, [2]geometry.Vector2{closed[i], closed[i+1]})
	}
	return edges
}

func (s *Shape) Bounds(t float64) utils.RectangleX {
	return utils.Around(s.AbsolutePos(t)...)
}

// IntersectsSegment reports whether ab crosses a side of the shape at time t
func (s *Shape) IntersectsSegment(a, b geometry.Vector2, t float64) bool {
	world := s.AbsolutePos(t)
	if !utils.Around(world...).Overlaps(utils.Around(a, b)) {
		return false
	}

	closed := geometry.Closed(world)
	for i := 0; i+1 < len(closed); i++ {
		if geometry.SegmentsIntersect(a, b, closed[i], closed[i+1]) {
			return true
		}
	}
	return false
}
