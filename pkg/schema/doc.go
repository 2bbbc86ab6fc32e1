// Package schema is the JSON serialization format for lattices.
//
// The format is human-readable and round-trip faithful: a lattice written
// with [WriteJSON] and re-read with [ReadJSON] reproduces the same sites,
// order, labels, and keys. It is the interchange format between the build,
// union, dump, and render commands, and the payload stored in the lattice
// cache.
package schema
