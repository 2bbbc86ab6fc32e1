package render

import (
	"bytes"
	"fmt"

	"honeylat/pkg/lattice"
)

// SVGOption configures the direct SVG scatter plot.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale      float64 // pixels per coordinate unit
	margin     float64 // pixels around the bounding box
	bondCutoff float64
	showKeys   bool
}

// WithScale sets the pixels-per-unit scale (default 40).
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithBonds draws bond lines between sites closer than cutoff.
func WithBonds(cutoff float64) SVGOption { return func(r *svgRenderer) { r.bondCutoff = cutoff } }

// WithKeys annotates each site with its key.
func WithKeys() SVGOption { return func(r *svgRenderer) { r.showKeys = true } }

// WriteSVG renders the lattice as an SVG scatter plot in true real-space
// positions: A sites as open circles, B sites filled. The y axis is
// flipped so that +y points up, matching the geometric convention.
func WriteSVG(l lattice.Lattice, opts ...SVGOption) []byte {
	r := svgRenderer{scale: 40, margin: 20}
	for _, opt := range opts {
		opt(&r)
	}

	minX, minY, maxX, maxY := bounds(l)
	width := (maxX-minX)*r.scale + 2*r.margin
	height := (maxY-minY)*r.scale + 2*r.margin

	toPx := func(p lattice.Point) (float64, float64) {
		return (p.X-minX)*r.scale + r.margin, (maxY-p.Y)*r.scale + r.margin
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	for _, b := range Bonds(l, r.bondCutoff) {
		x1, y1 := toPx(l.Sites[b[0]].Point)
		x2, y2 := toPx(l.Sites[b[1]].Point)
		fmt.Fprintf(&buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#999" stroke-width="1.5"/>`+"\n",
			x1, y1, x2, y2)
	}

	for _, s := range l.Sites {
		x, y := toPx(s.Point)
		fill := "white"
		if s.Label == lattice.LabelB {
			fill = "#333"
		}
		fmt.Fprintf(&buf, `  <circle cx="%.2f" cy="%.2f" r="5" fill="%s" stroke="black" stroke-width="1"/>`+"\n",
			x, y, fill)
		if r.showKeys {
			fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-size="9" text-anchor="middle">%d</text>`+"\n",
				x, y-8, s.Key)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func bounds(l lattice.Lattice) (minX, minY, maxX, maxY float64) {
	if l.Len() == 0 {
		return 0, 0, 1, 1
	}
	minX, maxX = l.Sites[0].X, l.Sites[0].X
	minY, maxY = l.Sites[0].Y, l.Sites[0].Y
	for _, s := range l.Sites[1:] {
		minX = min(minX, s.X)
		maxX = max(maxX, s.X)
		minY = min(minY, s.Y)
		maxY = max(maxY, s.Y)
	}
	return minX, minY, maxX, maxY
}
