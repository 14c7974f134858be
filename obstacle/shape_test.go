package obstacle

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winterbloom/t-obstacles/geometry"
)

const eps = 1e-9

var null = geometry.Vec3(0, 0, 0)

func squareVertices(half float64) []geometry.Vector2 {
	return []geometry.Vector2{
		geometry.Vec2(-half, -half),
		geometry.Vec2(half, -half),
		geometry.Vec2(half, half),
		geometry.Vec2(-half, half),
	}
}

func pentagon() []geometry.Vector2 {
	return []geometry.Vector2{
		geometry.Vec2(-40, -40),
		geometry.Vec2(40, -40),
		geometry.Vec2(60, 0),
		geometry.Vec2(40, 40),
		geometry.Vec2(-40, 40),
	}
}

func assertVectorsInDelta(t *testing.T, expected, actual []geometry.Vector2) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i].X(), actual[i].X(), eps, "x of vertex %d", i)
		assert.InDelta(t, expected[i].Y(), actual[i].Y(), eps, "y of vertex %d", i)
	}
}

func TestNewShapeRejectsBadPolygons(t *testing.T) {
	_, err := NewShape(squareVertices(1)[:2], null, null)
	assert.Equal(t, ErrTooFewVertices, errors.Cause(err))

	_, err = NewShape(nil, null, null)
	assert.ErrorIs(t, err, ErrTooFewVertices)

	line := []geometry.Vector2{geometry.Vec2(0, 0), geometry.Vec2(1, 1), geometry.Vec2(2, 2)}
	_, err = NewShape(line, null, null)
	assert.ErrorIs(t, err, ErrDegenerate)

	assert.Panics(t, func() { MustShape(line, null, null) })
}

func TestNewShapeCopiesVertices(t *testing.T) {
	vertices := squareVertices(10)
	s := MustShape(vertices, null, null)
	vertices[0] = geometry.Vec2(999, 999)

	assert.Equal(t, geometry.Vec2(-10, -10), s.Vertices()[0])
}

func TestLocation(t *testing.T) {
	s := MustShape(squareVertices(10), geometry.Vec3(300, 300, 0), geometry.Vec3(6, 0, math.Pi/10))

	loc := s.Location(5)
	assert.InDelta(t, 330, loc.X(), eps)
	assert.InDelta(t, 300, loc.Y(), eps)
	assert.InDelta(t, math.Pi/2, loc.Z(), eps)
}

func TestAreaInvariantUnderRotation(t *testing.T) {
	shapes := [][]geometry.Vector2{squareVertices(40), pentagon(), {
		geometry.Vec2(0, -40), geometry.Vec2(40, 0), geometry.Vec2(0, 40), geometry.Vec2(-40, 0),
	}}

	for _, vertices := range shapes {
		s := MustShape(vertices, null, null)
		assert.True(t, s.Area() >= 0)
		for _, a := range []float64{0, 0.3, math.Pi / 2, 2, -5, 17} {
			assert.InDelta(t, s.Area(), s.Rotate(a).Area(), 1e-6)
		}
	}

	assert.InDelta(t, 6400, MustShape(squareVertices(40), null, null).Area(), eps)
	assert.InDelta(t, 7200, MustShape(pentagon(), null, null).Area(), eps)
}

func TestRotateKeepsFrame(t *testing.T) {
	s := MustShape(squareVertices(1), geometry.Vec3(1, 2, 3), geometry.Vec3(4, 5, 6))
	r := s.Rotate(math.Pi / 2)

	assert.Equal(t, s.T0, r.T0)
	assert.Equal(t, s.Velocity, r.Velocity)
	assertVectorsInDelta(t, []geometry.Vector2{
		geometry.Vec2(1, -1),
		geometry.Vec2(1, 1),
		geometry.Vec2(-1, 1),
		geometry.Vec2(-1, -1),
	}, r.Vertices())
}

func TestAbsolutePosAtZeroIsTranslation(t *testing.T) {
	s := MustShape(pentagon(), geometry.Vec3(100, 100, 0), geometry.Vec3(3, 4, 1))

	expected := make([]geometry.Vector2, 0, 5)
	for _, v := range pentagon() {
		expected = append(expected, v.Add(geometry.Vec2(100, 100)))
	}
	assertVectorsInDelta(t, expected, s.AbsolutePos(0))
}

func TestAbsolutePosMovesAndSpins(t *testing.T) {
	s := MustShape(squareVertices(1), geometry.Vec3(10, 10, 0), geometry.Vec3(2, 0, math.Pi/4))

	assertVectorsInDelta(t, []geometry.Vector2{
		geometry.Vec2(15, 9),
		geometry.Vec2(15, 11),
		geometry.Vec2(13, 11),
		geometry.Vec2(13, 9),
	}, s.AbsolutePos(2))
}

func TestCentroid(t *testing.T) {
	s := MustShape(squareVertices(40), geometry.Vec3(200, 200, 0), geometry.Vec3(6, -2, 1))

	c := s.Centroid(0)
	assert.InDelta(t, 0, c.X(), eps)
	assert.InDelta(t, 0, c.Y(), eps)

	c = s.Centroid(10)
	assert.InDelta(t, 60, c.X(), eps)
	assert.InDelta(t, -20, c.Y(), eps)

	w := s.WorldCentroid(10)
	assert.InDelta(t, 260, w.X(), eps)
	assert.InDelta(t, 180, w.Y(), eps)
}

func TestWorldCentroidFollowsRotation(t *testing.T) {
	offCenter := []geometry.Vector2{
		geometry.Vec2(10, -1), geometry.Vec2(12, -1), geometry.Vec2(12, 1), geometry.Vec2(10, 1),
	}
	s := MustShape(offCenter, null, geometry.Vec3(0, 0, math.Pi/2))

	w := s.WorldCentroid(1)
	assert.InDelta(t, 0, w.X(), eps)
	assert.InDelta(t, 11, w.Y(), eps)

	polygonCentroid, ok := geometry.Centroid2DPolygon(s.AbsolutePos(1))
	require.True(t, ok)
	assert.InDelta(t, polygonCentroid.X(), w.X(), 1e-6)
	assert.InDelta(t, polygonCentroid.Y(), w.Y(), 1e-6)
}

func TestEdgesCloseThePolygon(t *testing.T) {
	s := MustShape(squareVertices(1), null, null)
	edges := s.Edges(0)

	require.Len(t, edges, 4)
	assert.Equal(t, edges[3][1], edges[0][0])
	for i := 0; i+1 < len(edges); i++ {
		assert.Equal(t, edges[i][1], edges[i+1][0])
	}
}

func TestSquareBlocksEdge(t *testing.T) {
	a, b := geometry.Vec2(100, 200), geometry.Vec2(300, 200)

	blocking := MustShape(squareVertices(40), geometry.Vec3(200, 200, 0), null)
	for _, tm := range []float64{0, 1, 2.5, 10, 1000} {
		assert.True(t, blocking.IntersectsSegment(a, b, tm), "t=%v", tm)
		assert.True(t, Set{blocking}.Blocks(a, b, tm))
	}

	moved := MustShape(squareVertices(40), geometry.Vec3(200, 600, 0), null)
	for _, tm := range []float64{0, 1, 2.5, 10, 1000} {
		assert.False(t, moved.IntersectsSegment(a, b, tm), "t=%v", tm)
	}
	assert.False(t, Set{moved}.Blocks(a, b, 0))
	assert.True(t, Set{moved, blocking}.Blocks(a, b, 0))
	assert.False(t, Set{}.Blocks(a, b, 0))
}

func TestRotatingBarClearsEdge(t *testing.T) {
	// bar spins a quarter turn per second, the edge is 30 right of its center
	bar := []geometry.Vector2{
		geometry.Vec2(-50, -5), geometry.Vec2(50, -5), geometry.Vec2(50, 5), geometry.Vec2(-50, 5),
	}
	s := MustShape(bar, geometry.Vec3(200, 200, 0), geometry.Vec3(0, 0, math.Pi/2))
	a, b := geometry.Vec2(230, 150), geometry.Vec2(230, 250)

	assert.True(t, s.IntersectsSegment(a, b, 0))
	assert.False(t, s.IntersectsSegment(a, b, 1))
	assert.True(t, s.IntersectsSegment(a, b, 2))
}

func TestBounds(t *testing.T) {
	s := MustShape(squareVertices(40), geometry.Vec3(200, 200, 0), null)
	bounds := s.Bounds(0)

	assert.InDelta(t, 160, bounds.Min.X(), eps)
	assert.InDelta(t, 240, bounds.Max.Y(), eps)
	assert.InDelta(t, 80, bounds.Width(), eps)
}
