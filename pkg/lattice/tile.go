package lattice

// Tile is the six corners of one hexagonal cell, in corner order 1..6.
// Labels alternate A,B,A,B,A,B; keys are left at the zero sentinel unless
// the caller assigns them.
type Tile [6]Site
