package voxel

import "testing"

func TestSetBlockManagesTiles(t *testing.T) {
	w := NewWorld(15)
	p := Pos{X: 1, Y: 64, Z: 1}

	w.SetBlock(p, Furnace)
	tile, ok := w.Tile(p)
	if !ok || tile.Kind != Furnace || tile.Data == nil {
		t.Fatalf("expected furnace tile, got %+v ok=%v", tile, ok)
	}
	if got := w.Tiles(Furnace); len(got) != 1 {
		t.Fatalf("expected 1 furnace, got %d", len(got))
	}

	w.SetBlock(p, Air)
	if _, ok := w.Tile(p); ok {
		t.Fatalf("tile must be dropped with its block")
	}
	if w.Block(p) != Air {
		t.Fatalf("expected air, got %s", w.Block(p))
	}
}

func TestSetBlockSameKindKeepsTile(t *testing.T) {
	w := NewWorld(15)
	p := Pos{X: 1, Y: 64, Z: 1}
	w.SetBlock(p, Furnace)
	before, _ := w.Tile(p)
	before.Data.SetInt("Fuel", 3)

	w.SetBlock(p, Furnace)
	after, ok := w.Tile(p)
	if !ok || after != before {
		t.Fatalf("re-placing a furnace must keep its tile")
	}
	if got := after.Data.GetInt("Fuel"); got != 3 {
		t.Fatalf("expected contents kept, got fuel %d", got)
	}

	w.SetBlock(p, Stone)
	w.SetBlock(p, Furnace)
	if fresh, _ := w.Tile(p); fresh == before {
		t.Fatalf("a furnace rebuilt after removal must get a new tile")
	}
}

func TestLight(t *testing.T) {
	w := NewWorld(0)
	origin := Pos{X: 0, Y: 64, Z: 0}

	if got := w.Light(origin); got != 0 {
		t.Fatalf("expected darkness, got %d", got)
	}
	w.SetBlock(origin, Torch)

	cases := []struct {
		name string
		at   Pos
		want int
	}{
		{"at_torch", origin, 14},
		{"adjacent", origin.Add(1, 0, 0), 13},
		{"diagonal", origin.Add(1, 1, 1), 11},
		{"far", origin.Add(20, 0, 0), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := w.Light(c.at); got != c.want {
				t.Fatalf("expected light %d, got %d", c.want, got)
			}
		})
	}
}

func TestCanStandAt(t *testing.T) {
	w := NewWorld(15)
	w.Fill(Pos{X: -2, Y: 63, Z: -2}, Pos{X: 2, Y: 63, Z: 2}, Stone)

	if !w.CanStandAt(Pos{X: 0, Y: 64, Z: 0}) {
		t.Fatalf("expected standable above floor")
	}
	if w.CanStandAt(Pos{X: 0, Y: 63, Z: 0}) {
		t.Fatalf("solid block is not standable")
	}
	if w.CanStandAt(Pos{X: 5, Y: 64, Z: 5}) {
		t.Fatalf("nothing below, expected not standable")
	}
}
