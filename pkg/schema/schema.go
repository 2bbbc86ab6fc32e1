package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"honeylat/pkg/errors"
	"honeylat/pkg/lattice"
)

// Lattice is the serialized form of a site collection.
type Lattice struct {
	Sites []Site `json:"sites"`
}

// Site is one serialized lattice site.
type Site struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
	Key   int     `json:"key,omitempty"`
}

// FromLattice converts a lattice to its serialization format.
func FromLattice(l lattice.Lattice) Lattice {
	out := Lattice{Sites: make([]Site, l.Len())}
	for i, s := range l.Sites {
		out.Sites[i] = Site{X: s.X, Y: s.Y, Label: string(s.Label), Key: s.Key}
	}
	return out
}

// ToLattice converts a serialized lattice back to the domain type.
// Returns an INVALID_FORMAT error if any site carries a label outside
// {A, B}.
func (sl Lattice) ToLattice() (lattice.Lattice, error) {
	out := lattice.Lattice{Sites: make([]lattice.Site, len(sl.Sites))}
	for i, s := range sl.Sites {
		label := lattice.Label(s.Label)
		if !label.Valid() {
			return lattice.Lattice{}, errors.New(errors.ErrCodeInvalidFormat,
				"site %d: invalid sublattice label %q", i, s.Label)
		}
		out.Sites[i] = lattice.Site{
			Point: lattice.Point{X: s.X, Y: s.Y},
			Label: label,
			Key:   s.Key,
		}
	}
	return out, nil
}

// WriteJSON encodes a lattice as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(l lattice.Lattice, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromLattice(l)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a JSON lattice from r.
//
// The input must be an object with a "sites" array; each site has "x",
// "y", a "label" of "A" or "B", and an optional integer "key".
func ReadJSON(r io.Reader) (lattice.Lattice, error) {
	var sl Lattice
	if err := json.NewDecoder(r).Decode(&sl); err != nil {
		return lattice.Lattice{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode lattice")
	}
	return sl.ToLattice()
}

// ExportFile writes a lattice to a JSON file at path.
func ExportFile(l lattice.Lattice, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(l, f)
}

// ImportFile reads a lattice from a JSON file at path.
func ImportFile(path string) (lattice.Lattice, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return lattice.Lattice{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return lattice.Lattice{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
