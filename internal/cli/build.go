package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"honeylat/pkg/cache"
	"honeylat/pkg/config"
	"honeylat/pkg/lattice"
	"honeylat/pkg/schema"
)

// newBuildCmd creates the "build" command: generate a lattice from a TOML
// cell/patch config.
func newBuildCmd() *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "build <config.toml>",
		Short: "Generate a honeycomb lattice from a cell/patch config",
		Long: `Build reads a TOML config describing the unit cell and one or more
disk-shaped patches of hex cells, computes the real-space corner sites of
every cell, and merges them into a single deduplicated lattice with a
contiguous key space.

Results are cached by config-file content; an unchanged config is served
from the cache.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), args[0], output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write lattice JSON to this file (default: stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the lattice cache")

	return cmd
}

func runBuild(ctx context.Context, configPath, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	raw, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read config %s: %w", configPath, err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "patches", len(cfg.Patches), "cells", patchSize(cfg), "orientation", cfg.Cell.Orientation)

	store, err := openCache(noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	key := cache.LatticeKey(raw)
	lat, cached, err := loadCachedLattice(ctx, store, key)
	if err != nil {
		printWarning("Cache entry unreadable, rebuilding")
		logger.Debug("cache read failed", "err", err)
	}

	if !cached {
		spin := newSpinner(ctx, "Computing lattice sites...")
		spin.Start()
		p := newProgress(logger)
		lat = BuildLattice(cfg)
		spin.Stop()
		p.done(fmt.Sprintf("Built %d sites", lat.Len()))

		if data, err := encodeLattice(lat); err == nil {
			if err := store.Set(ctx, key, data, 0); err != nil {
				logger.Debug("cache write failed", "err", err)
			}
		}
	}

	if output != "" {
		if err := schema.ExportFile(lat, output); err != nil {
			return err
		}
		printSuccess("Lattice written")
		printFile(output)
	} else {
		if err := schema.WriteJSON(lat, os.Stdout); err != nil {
			return err
		}
	}
	printStats(lat.Len(), 0, cached)
	return nil
}

// BuildLattice expands every patch of the config into hexagon corner
// tiles and folds them into one deduplicated lattice.
//
// Each tile enters through an ordered union against the lattice built so
// far, followed by a reindex that restores the contiguous keys the next
// union's first operand requires.
func BuildLattice(cfg config.Config) lattice.Lattice {
	basis := cfg.Basis()
	var combined lattice.Lattice
	for _, disk := range cfg.Disks() {
		for _, h := range disk {
			tile := lattice.FromTile(lattice.Corners(basis, h))
			combined = lattice.Union(combined, tile)
			combined.Reindex()
		}
	}
	return combined
}

// openCache opens the file cache, or a null cache when disabled.
func openCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}

func encodeLattice(l lattice.Lattice) ([]byte, error) {
	var buf bytes.Buffer
	if err := schema.WriteJSON(l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func loadCachedLattice(ctx context.Context, store cache.Cache, key string) (lattice.Lattice, bool, error) {
	data, hit, err := store.Get(ctx, key)
	if err != nil || !hit {
		return lattice.Lattice{}, false, err
	}
	lat, err := schema.ReadJSON(bytes.NewReader(data))
	if err != nil {
		// Stale or corrupt entry - rebuild
		return lattice.Lattice{}, false, err
	}
	return lat, true, nil
}

// patchSize reports the number of cells the config will expand to.
// Used for debug logging only.
func patchSize(cfg config.Config) int {
	total := 0
	for _, p := range cfg.Patches {
		total += 3*p.Radius*(p.Radius+1) + 1
	}
	return total
}
