package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rotation returns the operator [cos a, sin a; -sin a, cos a]. It acts on row
// vectors (v' = v·R), which makes positive angles counter-clockwise.
func Rotation(a float64) *mat.Dense {
	sin, cos := math.Sincos(a)
	return mat.NewDense(2, 2, []float64{
		cos, sin,
		-sin, cos,
	})
}

// RotateAll rotates every point about the origin by a
func RotateAll(points []Vector2, a float64) []Vector2 {
	if len(points) == 0 {
		return nil
	}

	data := make([]float64, 0, 2*len(points))
	for _, p := range points {
		data = append(data, p.X(), p.Y())
	}

	var rotated mat.Dense
	rotated.Mul(mat.NewDense(len(points), 2, data), Rotation(a))

	out := make([]Vector2, len(points))
	for i := range out {
		out[i] = Vector2{rotated.At(i, 0), rotated.At(i, 1)}
	}

	return out
}

func Rotate(p Vector2, a float64) Vector2 {
	return RotateAll([]Vector2{p}, a)[0]
}
