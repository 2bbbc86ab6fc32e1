package lattice

import (
	"fmt"
	"io"
)

// DumpPoint writes one line with the point's coordinates to w.
// Verbose output carries the explanatory prefix; quiet output is the bare
// coordinate pair.
func DumpPoint(w io.Writer, p Point, verbose bool) {
	if verbose {
		fmt.Fprintf(w, "real-space coordinates [x,y]: %g %g\n", p.X, p.Y)
		return
	}
	fmt.Fprintf(w, "%g %g\n", p.X, p.Y)
}

// DumpSite writes the site's coordinates to w, one line.
func DumpSite(w io.Writer, s Site, verbose bool) {
	DumpPoint(w, s.Point, verbose)
}

// Dump writes the lattice to w, one line per site in order.
func (l *Lattice) Dump(w io.Writer, verbose bool) {
	for _, s := range l.Sites {
		DumpSite(w, s, verbose)
	}
}
