package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector2 is a planar point or displacement
type Vector2 = mgl64.Vec2

// Vector3 is a rigid body state (x, y, theta) or its velocity
type Vector3 = mgl64.Vec3

func Vec2(x, y float64) Vector2 {
	return Vector2{x, y}
}

func Vec3(x, y, theta float64) Vector3 {
	return Vector3{x, y, theta}
}

// Polar returns the displacement of length dist in direction angle
func Polar(angle, dist float64) Vector2 {
	return Vector2{math.Cos(angle) * dist, math.Sin(angle) * dist}
}

func Distance(p1, p2 Vector2) float64 {
	return p2.Sub(p1).Len()
}

func AngleBetween(p1, p2 Vector2) float64 {
	return math.Atan2(p2.Y()-p1.Y(), p2.X()-p1.X())
}

// Cross is the z component of the 3D cross product of a and b
func Cross(a, b Vector2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// Lerp interpolates between p and q, f = 0 gives p
func Lerp(p, q Vector2, f float64) Vector2 {
	return p.Mul(1 - f).Add(q.Mul(f))
}
