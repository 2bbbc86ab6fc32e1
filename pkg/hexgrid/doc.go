// Package hexgrid provides axial hexagonal-grid indexing and the unit-cell
// parameterization used to map hex indices into real space.
//
// An [Index] identifies one hexagonal cell by its axial coordinates (q, r)
// plus an integer key used to address the cell in a combined lattice. A
// [Basis] carries the real-space unit cell: two orientation vectors, an
// angular phase selecting the hexagon convention (pointy-top vs flat-top),
// a scalar cell size, and an origin offset.
//
// The package also generates index sets: single-step neighbors, rings of a
// given radius, and filled disks. Ring and Disk assign keys 1..N in
// generation order, which is the key invariant the lattice union relies on.
package hexgrid
