// Package geometry provides the point, path and handle types shared by every drawing tool.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// RotationMatrix returns the 2x2 counter-clockwise rotation matrix for theta
// radians.
func RotationMatrix(theta float64) *mat.Dense {
	cos, sin := math.Cos(theta), math.Sin(theta)
	return mat.NewDense(2, 2, []float64{
		cos, -sin,
		sin, cos,
	})
}

// RotateAll rotates every point around center by theta radians.
func RotateAll(points []Point, center Point, theta float64) []Point {
	if len(points) == 0 {
		return nil
	}

	// Column i holds point i relative to center.
	rel := mat.NewDense(2, len(points), nil)
	for i, p := range points {
		rel.Set(0, i, p.X-center.X)
		rel.Set(1, i, p.Y-center.Y)
	}

	var rotated mat.Dense
	rotated.Mul(RotationMatrix(theta), rel)

	out := make([]Point, len(points))
	for i := range points {
		out[i] = Point{
			X: rotated.At(0, i) + center.X,
			Y: rotated.At(1, i) + center.Y,
		}
	}
	return out
}

// RotateAround rotates a single point around center by theta radians.
func RotateAround(p, center Point, theta float64) Point {
	return RotateAll([]Point{p}, center, theta)[0]
}

// Rotate rotates the vector v around the origin by theta radians.
func Rotate(v Point, theta float64) Point {
	return RotateAround(v, Point{}, theta)
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n == 1 yields just lo; n <= 0 yields nil.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// FullTurn returns n angles sampled uniformly over [0, 2π), excluding 2π so
// a closed outline does not duplicate its first point.
func FullTurn(n int) []float64 {
	if n <= 0 {
		return nil
	}
	return Linspace(0, 2*math.Pi, n+1)[:n]
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
