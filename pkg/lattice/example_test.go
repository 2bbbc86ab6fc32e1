package lattice_test

import (
	"fmt"
	"os"

	"honeylat/pkg/hexgrid"
	"honeylat/pkg/lattice"
)

func ExampleUnion() {
	// Two lattices sharing the site at (1,0).
	a := lattice.Lattice{Sites: []lattice.Site{
		{Point: lattice.Point{X: 0, Y: 0}, Label: lattice.LabelA, Key: 1},
		{Point: lattice.Point{X: 1, Y: 0}, Label: lattice.LabelB, Key: 2},
	}}
	b := lattice.Lattice{Sites: []lattice.Site{
		{Point: lattice.Point{X: 1, Y: 0}, Label: lattice.LabelB},
		{Point: lattice.Point{X: 2, Y: 0}, Label: lattice.LabelA},
	}}

	c := lattice.Union(a, b)
	for _, s := range c.Sites {
		fmt.Printf("key=%d label=%s (%g, %g)\n", s.Key, s.Label, s.X, s.Y)
	}
	// The surviving site keeps its position-based key (len(a)+2), so the
	// key space has a gap where the duplicate was dropped.

	// Output:
	// key=1 label=A (0, 0)
	// key=2 label=B (1, 0)
	// key=4 label=A (2, 0)
}

func ExampleFromTile() {
	b := hexgrid.PointyTop(1)
	l := lattice.FromTile(lattice.Corners(b, hexgrid.Index{Q: 0, R: 0}))

	fmt.Println("sites:", l.Len())
	fmt.Println("first label:", l.Sites[0].Label)
	fmt.Println("second label:", l.Sites[1].Label)

	// Output:
	// sites: 6
	// first label: A
	// second label: B
}

func ExampleLattice_Dump() {
	l := lattice.Lattice{Sites: []lattice.Site{
		{Point: lattice.Point{X: 0.5, Y: -1.5}, Label: lattice.LabelA, Key: 1},
	}}
	l.Dump(os.Stdout, true)
	l.Dump(os.Stdout, false)

	// Output:
	// real-space coordinates [x,y]: 0.5 -1.5
	// 0.5 -1.5
}
