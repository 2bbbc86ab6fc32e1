package lattice

import "math"

// Eps is the absolute per-axis tolerance for point equality.
//
// Coordinates produced by the transform pipeline differ by sums of a few
// floating-point operations, so an absolute tolerance well above machine
// epsilon but far below any lattice length scale is sufficient. This is a
// precision assumption for lattice geometry, not a general-purpose float
// comparator.
const Eps = 1e-12

// Point is a 2D real-space coordinate.
type Point struct {
	X float64
	Y float64
}

// Equal reports whether two points coincide within [Eps] on both axes.
func (p Point) Equal(o Point) bool {
	return math.Abs(p.X-o.X) < Eps && math.Abs(p.Y-o.Y) < Eps
}

// Add returns the componentwise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}
