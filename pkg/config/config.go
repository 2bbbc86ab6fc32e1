// Package config loads honeycomb cell and patch definitions from TOML
// files. A config describes one unit cell (orientation, size, origin) and
// one or more disk-shaped patches of hex cells to generate.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"honeylat/pkg/errors"
	"honeylat/pkg/hexgrid"
)

// Orientation presets accepted in the cell section.
const (
	OrientationPointy = "pointy"
	OrientationFlat   = "flat"
	OrientationCustom = "custom"
)

// Config is a parsed lattice definition.
type Config struct {
	Cell    Cell    `toml:"cell"`
	Patches []Patch `toml:"patch"`
}

// Cell describes the real-space unit cell.
//
// Orientation selects a preset ("pointy", "flat") or "custom", in which
// case UQ, UR, and Angle must be given explicitly.
type Cell struct {
	Orientation string     `toml:"orientation"`
	Size        float64    `toml:"size"`
	Origin      [2]float64 `toml:"origin"`
	UQ          [2]float64 `toml:"uq"`
	UR          [2]float64 `toml:"ur"`
	Angle       float64    `toml:"angle"`
}

// Patch is one disk of hex cells: all cells within Radius of Center.
type Patch struct {
	Center [2]int `toml:"center"`
	Radius int    `toml:"radius"`
}

// Load reads and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Config{}, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config for structural problems.
func (c Config) Validate() error {
	switch c.Cell.Orientation {
	case OrientationPointy, OrientationFlat:
	case OrientationCustom:
		if c.Cell.UQ == ([2]float64{}) || c.Cell.UR == ([2]float64{}) {
			return errors.New(errors.ErrCodeInvalidConfig, "custom orientation requires uq and ur vectors")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown orientation %q (want pointy, flat, or custom)", c.Cell.Orientation)
	}

	if c.Cell.Size <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cell size must be > 0, got %g", c.Cell.Size)
	}
	if len(c.Patches) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "config defines no patches")
	}
	for i, p := range c.Patches {
		if p.Radius < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "patch %d: radius must be >= 0, got %d", i, p.Radius)
		}
	}
	return nil
}

// Basis builds the hexgrid basis described by the cell section.
func (c Config) Basis() hexgrid.Basis {
	var b hexgrid.Basis
	switch c.Cell.Orientation {
	case OrientationPointy:
		b = hexgrid.PointyTop(c.Cell.Size)
	case OrientationFlat:
		b = hexgrid.FlatTop(c.Cell.Size)
	default:
		b = hexgrid.Basis{
			Orientation: hexgrid.Orientation{
				UQ:    hexgrid.Vec{X: c.Cell.UQ[0], Y: c.Cell.UQ[1]},
				UR:    hexgrid.Vec{X: c.Cell.UR[0], Y: c.Cell.UR[1]},
				Angle: c.Cell.Angle,
			},
			Size: c.Cell.Size,
		}
	}
	return b.Translate(c.Cell.Origin[0], c.Cell.Origin[1])
}

// Disks expands the patch list into per-patch hex index sets, keyed 1..N
// within each patch.
func (c Config) Disks() [][]hexgrid.Index {
	out := make([][]hexgrid.Index, len(c.Patches))
	for i, p := range c.Patches {
		center := hexgrid.Index{Q: p.Center[0], R: p.Center[1]}
		out[i] = hexgrid.Disk(center, p.Radius)
	}
	return out
}
