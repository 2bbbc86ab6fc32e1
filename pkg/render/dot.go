package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"honeylat/pkg/lattice"
)

// Options configures node-link rendering.
type Options struct {
	// BondCutoff is the maximum site separation treated as a bond.
	// For a honeycomb lattice this is the cell size (the A-B
	// nearest-neighbor distance). Zero disables bond edges.
	BondCutoff float64

	// Detailed includes coordinates in node labels.
	// When false, only the key is shown.
	Detailed bool
}

// Bonds returns the index pairs (i < j) of sites separated by at most
// cutoff (with the lattice equality tolerance as slack). The scan is the
// naive O(n²) pairwise pass; lattices here are small patches.
func Bonds(l lattice.Lattice, cutoff float64) [][2]int {
	var out [][2]int
	if cutoff <= 0 {
		return out
	}
	for i := 0; i < l.Len(); i++ {
		for j := i + 1; j < l.Len(); j++ {
			if l.Sites[i].Dist(l.Sites[j].Point) <= cutoff+lattice.Eps {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// ToDOT converts a lattice to Graphviz DOT format for node-link
// visualization. Sites are pinned at their real-space coordinates (neato
// layout), A sites drawn filled white and B sites filled grey. The
// resulting DOT string can be rendered with [RenderSVG].
func ToDOT(l lattice.Lattice, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph lattice {\n")
	buf.WriteString("  layout=\"neato\";\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=10, fixedsize=true, width=0.4];\n")
	buf.WriteString("\n")

	for i, s := range l.Sites {
		fmt.Fprintf(&buf, "  %s [label=%q, pos=\"%g,%g!\", fillcolor=%s];\n",
			nodeID(i, s), fmtLabel(s, opts.Detailed), s.X, s.Y, fillColor(s.Label))
	}

	buf.WriteString("\n")
	for _, b := range Bonds(l, opts.BondCutoff) {
		fmt.Fprintf(&buf, "  %s -- %s;\n", nodeID(b[0], l.Sites[b[0]]), nodeID(b[1], l.Sites[b[1]]))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeID names a site node by its key, falling back to the slice position
// for sites with the zero sentinel key.
func nodeID(i int, s lattice.Site) string {
	if s.Key > 0 {
		return fmt.Sprintf("s%d", s.Key)
	}
	return fmt.Sprintf("u%d", i)
}

func fmtLabel(s lattice.Site, detailed bool) string {
	label := fmt.Sprintf("%s%d", s.Label, s.Key)
	if detailed {
		label += fmt.Sprintf("\n(%.3g, %.3g)", s.X, s.Y)
	}
	return label
}

func fillColor(label lattice.Label) string {
	if label == lattice.LabelA {
		return "white"
	}
	return "lightgrey"
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
