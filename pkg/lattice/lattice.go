package lattice

import "slices"

// Lattice is an ordered, growable collection of sites.
//
// After construction from a single tile ([FromTile]) the keys are 1..N in
// insertion order. That contiguity is a precondition on the first operand
// of [Union]; it is documented, not validated.
type Lattice struct {
	Sites []Site
}

// Len returns the number of sites.
func (l *Lattice) Len() int {
	return len(l.Sites)
}

// Append adds a site as the new last element.
func (l *Lattice) Append(s Site) {
	l.Sites = append(l.Sites, s)
}

// Contains reports whether any site of the lattice occupies the same
// position as s under tolerance-based equality.
func (l *Lattice) Contains(s Site) bool {
	for _, have := range l.Sites {
		if have.SameSpot(s) {
			return true
		}
	}
	return false
}

// Reindex renumbers the keys to 1..N in site order, restoring the
// contiguous-key invariant after unions that left gaps.
func (l *Lattice) Reindex() {
	for i := range l.Sites {
		l.Sites[i].Key = i + 1
	}
}

// Clone returns a deep copy of the lattice.
func (l *Lattice) Clone() Lattice {
	return Lattice{Sites: slices.Clone(l.Sites)}
}

// Union merges b into a copy of a, deduplicating by position.
//
// Preconditions (documented, not validated): a and b are each internally
// duplicate-free under point equality, and a's keys are 1..len(a) in
// order. Coincident positions are assumed to carry the same sublattice
// label in both operands; labels of appended sites are taken from b.
//
// The result holds all of a's sites first, with their original keys and
// labels, followed by the surviving sites of b in b's original relative
// order. Each site of b is tested against the original a only, never
// against earlier b insertions. A surviving site at 1-based position i in
// b gets key len(a)+i, so skipped duplicates leave gaps in the appended
// tail's key sequence. Callers needing a dense key space run [Reindex]
// afterwards.
func Union(a, b Lattice) Lattice {
	out := a.Clone()
	for i, s := range b.Sites {
		if a.Contains(s) {
			continue
		}
		s.Key = a.Len() + i + 1
		out.Append(s)
	}
	return out
}
