package hexgrid

// Index is an axial hex-grid coordinate with an addressing key.
// Q and R identify the cell; Key is an integer index used to address the
// cell's sites within a combined lattice (0 means unassigned).
type Index struct {
	Q   int
	R   int
	Key int
}

// directions are the six axial neighbor steps, counterclockwise starting
// from +q.
var directions = [6]Index{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// Add returns the componentwise sum of two indices. The key of the result
// is left unassigned.
func (h Index) Add(o Index) Index {
	return Index{Q: h.Q + o.Q, R: h.R + o.R}
}

// Scale returns the index scaled by k. The key is left unassigned.
func (h Index) Scale(k int) Index {
	return Index{Q: h.Q * k, R: h.R * k}
}

// Neighbor returns the adjacent cell in direction d (0..5, counterclockwise
// from +q). Directions wrap modulo 6.
func (h Index) Neighbor(d int) Index {
	d = ((d % 6) + 6) % 6
	return h.Add(directions[d])
}

// Neighbors returns the six adjacent cells counterclockwise from +q.
func (h Index) Neighbors() [6]Index {
	var out [6]Index
	for d := range directions {
		out[d] = h.Add(directions[d])
	}
	return out
}

// Ring returns the cells at exactly the given radius around center, keyed
// 1..N in walk order. Radius 0 yields the center alone (with key 1).
// Negative radii yield nil.
func Ring(center Index, radius int) []Index {
	if radius < 0 {
		return nil
	}
	if radius == 0 {
		return []Index{{Q: center.Q, R: center.R, Key: 1}}
	}

	out := make([]Index, 0, 6*radius)
	// Start at the cell radius steps in direction 4, then walk the six
	// sides of the hexagonal ring.
	cur := center.Add(directions[4].Scale(radius))
	for side := 0; side < 6; side++ {
		for step := 0; step < radius; step++ {
			cur.Key = len(out) + 1
			out = append(out, cur)
			cur = cur.Neighbor(side)
		}
	}
	return out
}

// Disk returns the filled disk of cells within the given radius of center,
// keyed 1..N from the center outward. A disk of radius r contains
// 3r(r+1)+1 cells.
func Disk(center Index, radius int) []Index {
	if radius < 0 {
		return nil
	}
	out := make([]Index, 0, 3*radius*(radius+1)+1)
	for r := 0; r <= radius; r++ {
		for _, h := range Ring(center, r) {
			h.Key = len(out) + 1
			out = append(out, h)
		}
	}
	return out
}
