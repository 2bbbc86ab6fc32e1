package lattice

// Label identifies one of the two inequivalent honeycomb sublattices.
type Label string

// The two sublattice labels.
const (
	LabelA Label = "A"
	LabelB Label = "B"
)

// Valid reports whether l is one of the two sublattice labels.
func (l Label) Valid() bool {
	return l == LabelA || l == LabelB
}

// Site is a lattice site: a real-space point carrying a sublattice label
// and an addressing key. Key 0 means unassigned.
type Site struct {
	Point
	Label Label
	Key   int
}

// SameSpot reports whether two sites occupy the same position under
// tolerance-based point equality. Label and key do not participate:
// duplicate detection assumes the caller's invariant that coincident
// coordinates always carry the same sublattice label.
func (s Site) SameSpot(o Site) bool {
	return s.Point.Equal(o.Point)
}

// cornerLabel returns the sublattice label for corner i (1-based):
// odd corners are A, even corners are B.
func cornerLabel(i int) Label {
	if i%2 == 1 {
		return LabelA
	}
	return LabelB
}
