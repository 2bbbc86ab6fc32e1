package hexgrid

import (
	"math"
	"testing"
)

func TestNeighbors_CountAndDistinct(t *testing.T) {
	h := Index{Q: 2, R: -1}
	seen := make(map[Index]bool)
	for _, n := range h.Neighbors() {
		if n == h {
			t.Errorf("neighbor %v equals the cell itself", n)
		}
		seen[n] = true
	}
	if got, want := len(seen), 6; got != want {
		t.Errorf("distinct neighbors = %d, want %d", got, want)
	}
}

func TestNeighbor_Wraps(t *testing.T) {
	h := Index{Q: 0, R: 0}
	if got, want := h.Neighbor(6), h.Neighbor(0); got != want {
		t.Errorf("Neighbor(6) = %v, want %v", got, want)
	}
	if got, want := h.Neighbor(-1), h.Neighbor(5); got != want {
		t.Errorf("Neighbor(-1) = %v, want %v", got, want)
	}
}

func TestRing_Sizes(t *testing.T) {
	center := Index{Q: 1, R: 1}
	for radius := 0; radius <= 4; radius++ {
		want := 6 * radius
		if radius == 0 {
			want = 1
		}
		ring := Ring(center, radius)
		if got := len(ring); got != want {
			t.Errorf("Ring(radius=%d) size = %d, want %d", radius, got, want)
		}
	}
	if Ring(center, -1) != nil {
		t.Error("Ring with negative radius should be nil")
	}
}

func TestRing_AllAtRadius(t *testing.T) {
	center := Index{Q: -2, R: 3}
	const radius = 3
	for _, h := range Ring(center, radius) {
		dq := h.Q - center.Q
		dr := h.R - center.R
		// Axial hex distance.
		dist := (abs(dq) + abs(dr) + abs(dq+dr)) / 2
		if dist != radius {
			t.Errorf("cell %v at distance %d, want %d", h, dist, radius)
		}
	}
}

func TestDisk_SizeAndKeys(t *testing.T) {
	center := Index{Q: 0, R: 0}
	for radius := 0; radius <= 3; radius++ {
		disk := Disk(center, radius)
		if got, want := len(disk), 3*radius*(radius+1)+1; got != want {
			t.Fatalf("Disk(radius=%d) size = %d, want %d", radius, got, want)
		}
		for i, h := range disk {
			if got, want := h.Key, i+1; got != want {
				t.Errorf("disk[%d].Key = %d, want %d", i, got, want)
			}
		}
	}
}

func TestDisk_NoDuplicates(t *testing.T) {
	seen := make(map[[2]int]bool)
	for _, h := range Disk(Index{Q: 5, R: -5}, 3) {
		qr := [2]int{h.Q, h.R}
		if seen[qr] {
			t.Errorf("duplicate cell (%d,%d)", h.Q, h.R)
		}
		seen[qr] = true
	}
}

func TestPointyTop_Geometry(t *testing.T) {
	b := PointyTop(2)

	if got, want := b.Orientation.Angle, 0.5; got != want {
		t.Errorf("Angle = %f, want %f", got, want)
	}
	if got, want := b.Size, 2.0; got != want {
		t.Errorf("Size = %f, want %f", got, want)
	}
	// Neighboring centers along +q are √3·size apart.
	if got, want := b.Orientation.UQ.X, math.Sqrt(3); math.Abs(got-want) > 1e-15 {
		t.Errorf("UQ.X = %f, want %f", got, want)
	}
	if b.Orientation.UQ.Y != 0 {
		t.Errorf("UQ.Y = %f, want 0", b.Orientation.UQ.Y)
	}
}

func TestTranslate(t *testing.T) {
	b := FlatTop(1).Translate(3, -4)
	if b.Origin.X != 3 || b.Origin.Y != -4 {
		t.Errorf("Origin = (%f, %f), want (3, -4)", b.Origin.X, b.Origin.Y)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
