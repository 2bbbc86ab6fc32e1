// Package render draws lattices.
//
// Two outputs are supported: a Graphviz node-link view of the site/bond
// graph ([ToDOT] plus [RenderSVG]), useful for inspecting connectivity and
// key assignments, and a direct SVG scatter plot of the sites in their
// true real-space positions ([WriteSVG]).
package render
