package hexgrid

import "math"

// Vec is a 2D real-space vector. It parameterizes the unit cell; the
// lattice package has its own Point type for computed sites.
type Vec struct {
	X float64
	Y float64
}

// Orientation holds the projection vectors for the axial coordinates and
// the angular phase of the hexagon corners.
//
// A cell at axial (q, r) is centered at UQ*q + UR*r (before scaling and
// translation). Angle is a phase in units of 60° added to every corner
// index: 0 produces flat-top hexagons (first corner at 60°), 0.5 produces
// pointy-top hexagons (first corner at 90°).
type Orientation struct {
	UQ    Vec
	UR    Vec
	Angle float64
}

// Basis is the immutable real-space parameterization of the unit cell.
// It is passed by value into every coordinate transform.
type Basis struct {
	Orientation Orientation
	Size        float64
	Origin      Vec
}

// PointyTop returns the standard pointy-top honeycomb basis with the given
// cell size and a zero origin. Neighboring cell centers are √3·size apart.
func PointyTop(size float64) Basis {
	return Basis{
		Orientation: Orientation{
			UQ:    Vec{X: math.Sqrt(3), Y: 0},
			UR:    Vec{X: math.Sqrt(3) / 2, Y: 1.5},
			Angle: 0.5,
		},
		Size: size,
	}
}

// FlatTop returns the standard flat-top honeycomb basis with the given
// cell size and a zero origin.
func FlatTop(size float64) Basis {
	return Basis{
		Orientation: Orientation{
			UQ:    Vec{X: 1.5, Y: math.Sqrt(3) / 2},
			UR:    Vec{X: 0, Y: math.Sqrt(3)},
			Angle: 0,
		},
		Size: size,
	}
}

// Translate returns a copy of the basis with the origin shifted by (dx, dy).
func (b Basis) Translate(dx, dy float64) Basis {
	b.Origin.X += dx
	b.Origin.Y += dy
	return b
}
