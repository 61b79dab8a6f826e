package game

import "testing"

func TestRespawnStaysOnFloor(t *testing.T) {
	a := NewArena(6, 4)
	sp := NewSpawner(1, 1, 9)
	seen := map[Point]bool{}
	for i := 0; i < 2000; i++ {
		c := sp.Respawn(a)
		if !a.ContainsInterior(c.Pos) {
			t.Fatalf("collectible at %v is on a wall", c.Pos)
		}
		if c.Value < 1 || c.Value > 9 {
			t.Fatalf("value = %d, want within [1, 9]", c.Value)
		}
		seen[c.Pos] = true
	}
	if want := (a.Width - 1) * (a.Height - 1); len(seen) != want {
		t.Fatalf("visited %d floor cells, want %d", len(seen), want)
	}
}

func TestRespawnIsSeeded(t *testing.T) {
	a := NewArena(50, 15)
	x, y := NewSpawner(42, 1, 9), NewSpawner(42, 1, 9)
	for i := 0; i < 20; i++ {
		if cx, cy := x.Respawn(a), y.Respawn(a); cx != cy {
			t.Fatalf("draw %d: %v != %v", i, cx, cy)
		}
	}
}
