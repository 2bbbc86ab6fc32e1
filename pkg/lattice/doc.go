// Package lattice computes real-space site coordinates for a honeycomb
// (two-sublattice) lattice and merges site collections.
//
// The coordinate pipeline maps a hex index through a unit-cell basis to a
// Cartesian cell center ([Center]), offsets it to one of the six hexagon
// corners ([CornerOffset]), and produces either a single-sublattice [Site]
// ([SiteAt]) or the full 6-corner [Tile] ([Corners]). Tiles flatten into a
// growable [Lattice] ([FromTile]), and lattices built from adjacent cells
// merge through [Union], which deduplicates coincident corners under
// tolerance-based point equality while preserving a reproducible key space.
//
// All transforms are pure and safe to evaluate concurrently over
// independent hex indices; batch forms ([Centers], [SitesAt], [CornersAll])
// are equivalent to per-element application.
package lattice
