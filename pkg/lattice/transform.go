package lattice

import (
	"math"

	"honeylat/pkg/errors"
	"honeylat/pkg/hexgrid"
)

// Center returns the real-space center of the hex cell at h: the axial
// coordinates projected onto the basis orientation vectors, scaled by the
// cell size, and translated by the origin. Defined for any finite (q, r).
func Center(b hexgrid.Basis, h hexgrid.Index) Point {
	q, r := float64(h.Q), float64(h.R)
	o := b.Orientation
	return Point{
		X: b.Size*(o.UQ.X*q+o.UR.X*r) + b.Origin.X,
		Y: b.Size*(o.UQ.Y*q+o.UR.Y*r) + b.Origin.Y,
	}
}

// CornerOffset returns the offset from a cell center to corner i (1..6).
// The corner angle is 2π/6·(phase + i), where phase is the basis
// orientation angle selecting the pointy-top vs flat-top convention.
func CornerOffset(b hexgrid.Basis, i int) Point {
	angle := 2 * math.Pi / 6 * (b.Orientation.Angle + float64(i))
	return Point{
		X: b.Size * math.Cos(angle),
		Y: b.Size * math.Sin(angle),
	}
}

// SiteAt returns the single site of the given sublattice in cell h:
// corner 1 for label A, corner 2 for label B. The site key is propagated
// from h.Key. Any other label fails with an INVALID_LABEL error.
func SiteAt(b hexgrid.Basis, h hexgrid.Index, label Label) (Site, error) {
	var corner int
	switch label {
	case LabelA:
		corner = 1
	case LabelB:
		corner = 2
	default:
		return Site{}, errors.New(errors.ErrCodeInvalidLabel, "invalid sublattice label: %q", string(label))
	}
	return Site{
		Point: Center(b, h).Add(CornerOffset(b, corner)),
		Label: label,
		Key:   h.Key,
	}, nil
}

// Corners returns the full 6-corner tile of cell h, labels alternating by
// corner parity. Corner keys are left at the zero sentinel.
func Corners(b hexgrid.Basis, h hexgrid.Index) Tile {
	var t Tile
	c := Center(b, h)
	for i := 1; i <= 6; i++ {
		t[i-1] = Site{
			Point: c.Add(CornerOffset(b, i)),
			Label: cornerLabel(i),
		}
	}
	return t
}

// FromTile flattens a tile into a lattice in corner order, preserving
// labels and assigning keys 1..6 so a single-tile lattice satisfies the
// contiguous-key invariant expected by [Union].
//
// Coincident corners shared between adjacent cells are not deduplicated
// here; that is Union's job when tiles are combined.
func FromTile(t Tile) Lattice {
	l := Lattice{Sites: make([]Site, 0, len(t))}
	for i, s := range t {
		s.Key = i + 1
		l.Append(s)
	}
	return l
}

// Centers is the elementwise form of [Center].
func Centers(b hexgrid.Basis, hs []hexgrid.Index) []Point {
	out := make([]Point, len(hs))
	for i, h := range hs {
		out[i] = Center(b, h)
	}
	return out
}

// SitesAt is the elementwise form of [SiteAt]. It fails on the first
// invalid label.
func SitesAt(b hexgrid.Basis, hs []hexgrid.Index, label Label) ([]Site, error) {
	out := make([]Site, len(hs))
	for i, h := range hs {
		s, err := SiteAt(b, h, label)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// FromTiles is the elementwise form of [FromTile].
func FromTiles(ts []Tile) []Lattice {
	out := make([]Lattice, len(ts))
	for i, t := range ts {
		out[i] = FromTile(t)
	}
	return out
}

// CornersAll is the elementwise form of [Corners].
func CornersAll(b hexgrid.Basis, hs []hexgrid.Index) []Tile {
	out := make([]Tile, len(hs))
	for i, h := range hs {
		out[i] = Corners(b, h)
	}
	return out
}
