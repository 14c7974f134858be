package utils

import "github.com/winterbloom/t-obstacles/geometry"

// RectangleX is an axis aligned rectangle whose edges belong to it
type RectangleX struct {
	Min geometry.Vector2
	Max geometry.Vector2
}

// Workspace is the rectangle [0, width] x [0, height]
func Workspace(width, height float64) RectangleX {
	return RectangleX{Max: geometry.Vec2(width, height)}
}

// Around returns the smallest rectangle holding every point
func Around(points ...geometry.Vector2) RectangleX {
	lo, hi := geometry.Bounds(points)
	return RectangleX{Min: lo, Max: hi}
}

func (r RectangleX) Width() float64 {
	return r.Max.X() - r.Min.X()
}

func (r RectangleX) Height() float64 {
	return r.Max.Y() - r.Min.Y()
}

func (r RectangleX) Contains(point geometry.Vector2) bool {
	return (point.X() >= r.Min.X() && point.Y() >= r.Min.Y()) && (point.X() <= r.Max.X() && point.Y() <= r.Max.Y())
}

// Overlaps is true when the rectangles share at least one point
func (r RectangleX) Overlaps(o RectangleX) bool {
	return r.Min.X() <= o.Max.X() && o.Min.X() <= r.Max.X() && r.Min.Y() <= o.Max.Y() && o.Min.Y() <= r.Max.Y()
}

func (r RectangleX) Inflate(amount float64) RectangleX {
	offset := geometry.Vec2(amount, amount)
	return RectangleX{Min: r.Min.Sub(offset), Max: r.Max.Add(offset)}
}
