package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"honeylat/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lattice.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Pointy(t *testing.T) {
	path := writeConfig(t, `
[cell]
orientation = "pointy"
size = 2.0
origin = [1.0, -1.0]

[[patch]]
center = [0, 0]
radius = 2

[[patch]]
center = [5, -2]
radius = 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got, want := len(cfg.Patches), 2; got != want {
		t.Errorf("patches = %d, want %d", got, want)
	}

	b := cfg.Basis()
	if got, want := b.Size, 2.0; got != want {
		t.Errorf("Size = %f, want %f", got, want)
	}
	if b.Origin.X != 1 || b.Origin.Y != -1 {
		t.Errorf("Origin = %v, want (1, -1)", b.Origin)
	}
	if got, want := b.Orientation.Angle, 0.5; got != want {
		t.Errorf("Angle = %f, want %f", got, want)
	}

	disks := cfg.Disks()
	if got, want := len(disks[0]), 19; got != want {
		t.Errorf("disk 0 size = %d, want %d", got, want)
	}
	if got, want := len(disks[1]), 1; got != want {
		t.Errorf("disk 1 size = %d, want %d", got, want)
	}
	if disks[1][0].Q != 5 || disks[1][0].R != -2 {
		t.Errorf("disk 1 center = %v, want (5, -2)", disks[1][0])
	}
}

func TestLoad_Custom(t *testing.T) {
	path := writeConfig(t, `
[cell]
orientation = "custom"
size = 1.0
uq = [1.0, 0.0]
ur = [0.0, 1.0]
angle = 0.25

[[patch]]
center = [0, 0]
radius = 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	b := cfg.Basis()
	if b.Orientation.UQ.X != 1 || b.Orientation.UR.Y != 1 {
		t.Errorf("custom basis vectors not honored: %+v", b.Orientation)
	}
	if got, want := b.Orientation.Angle, 0.25; got != want {
		t.Errorf("Angle = %f, want %f", got, want)
	}
}

func TestLoad_Flat(t *testing.T) {
	path := writeConfig(t, `
[cell]
orientation = "flat"
size = 1.0

[[patch]]
center = [0, 0]
radius = 0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	b := cfg.Basis()
	if got, want := b.Orientation.UR.Y, math.Sqrt(3); math.Abs(got-want) > 1e-15 {
		t.Errorf("UR.Y = %f, want %f", got, want)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"unknown orientation", "[cell]\norientation = \"diagonal\"\nsize = 1.0\n[[patch]]\nradius = 1\n"},
		{"zero size", "[cell]\norientation = \"pointy\"\nsize = 0.0\n[[patch]]\nradius = 1\n"},
		{"no patches", "[cell]\norientation = \"pointy\"\nsize = 1.0\n"},
		{"negative radius", "[cell]\norientation = \"pointy\"\nsize = 1.0\n[[patch]]\nradius = -1\n"},
		{"custom without vectors", "[cell]\norientation = \"custom\"\nsize = 1.0\n[[patch]]\nradius = 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.toml))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %s, want %s (err=%v)", errors.GetCode(err), errors.ErrCodeInvalidConfig, err)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}
