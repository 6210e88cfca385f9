package world

import (
	"bytes"
	"strings"
	"testing"
)

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Left, -1, 0},
		{Right, 1, 0},
		{Up, 0, -1},
		{Down, 0, 1},
		{Direction(42), 0, 0},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Delta() = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestLayerString(t *testing.T) {
	tests := []struct {
		layer    Layer
		expected string
	}{
		{LayerWall, "wall"},
		{LayerFloor, "floor"},
		{LayerHero, "hero"},
		{LayerDoor, "door"},
		{LayerItem, "item"},
		{LayerEnemy, "enemy"},
		{Layer(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.layer.String(); got != tt.expected {
			t.Errorf("Layer(%d).String() = %q, want %q", tt.layer, got, tt.expected)
		}
	}
}

func TestPlaceKeepsOneTilePerLayer(t *testing.T) {
	m := NewMap(5, Pos{X: 2, Y: 2})
	p := Pos{X: 1, Y: 1}

	first := NewTile(LayerFloor, p)
	if !m.Place(first) {
		t.Fatal("first Place() should succeed")
	}
	if m.Place(NewTile(LayerFloor, p)) {
		t.Error("second Place() on the same layer and cell should fail")
	}
	if got, _ := m.At(LayerFloor, p); got != first {
		t.Error("original tile was replaced")
	}
	if !m.Place(NewTile(LayerWall, p)) {
		t.Error("Place() on a different layer should succeed")
	}
	if m.Place(NewTile(LayerHero, p)) {
		t.Error("hero tiles do not live in the map")
	}
}

func TestRemove(t *testing.T) {
	m := NewMap(5, Pos{})
	p := Pos{X: 3, Y: 0}
	m.Place(NewTile(LayerItem, p))

	if removed := m.Remove(LayerItem, p); removed == nil || removed.Pos != p {
		t.Fatalf("Remove() = %v, want tile at %v", removed, p)
	}
	if m.Has(LayerItem, p) {
		t.Error("tile still present after Remove()")
	}
	if m.Remove(LayerItem, p) != nil {
		t.Error("second Remove() should return nil")
	}
}

func TestTilesOrder(t *testing.T) {
	m := NewMap(5, Pos{})
	for _, p := range []Pos{{X: 2, Y: 1}, {X: 0, Y: 1}, {X: 4, Y: 0}} {
		m.Place(NewTile(LayerWall, p))
	}

	got := m.Tiles(LayerWall)
	want := []Pos{{X: 4, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}}
	for i := range want {
		if got[i].Pos != want[i] {
			t.Errorf("Tiles()[%d] = %v, want %v", i, got[i].Pos, want[i])
		}
	}
}

func TestResolve(t *testing.T) {
	m := NewMap(20, Pos{X: 10, Y: 10})
	hero := Pos{X: 9, Y: 9}
	wall := NewTile(LayerWall, Pos{X: 10, Y: 9})
	m.Place(wall)

	if got, ok := m.Resolve(hero, Right, LayerWall); !ok || got != wall {
		t.Errorf("Resolve(Right) = %v, %v; want wall", got, ok)
	}
	for _, d := range []Direction{Left, Up, Down} {
		if _, ok := m.Resolve(hero, d, LayerWall); ok {
			t.Errorf("Resolve(%v) found a wall, want none", d)
		}
	}
	if _, ok := m.Resolve(hero, Right, LayerEnemy); ok {
		t.Error("Resolve() on the enemy layer found a tile, want none")
	}
	if got, ok := m.ResolveDelta(hero, 1, 0, LayerWall); !ok || got != wall {
		t.Errorf("ResolveDelta(1,0) = %v, %v; want wall", got, ok)
	}
}

func TestResolveOutOfRangeIsAbsent(t *testing.T) {
	m := NewMap(3, Pos{})
	if _, ok := m.Resolve(Pos{X: -500, Y: 9000}, Left, LayerWall); ok {
		t.Error("Resolve() far outside the map should report no tile")
	}
	if _, ok := m.Resolve(Pos{}, Direction(-1), LayerWall); ok {
		t.Error("Resolve() with an invalid direction should report no tile")
	}
	if _, ok := m.At(Layer(77), Pos{}); ok {
		t.Error("At() on an unknown layer should report no tile")
	}
}

func TestDump(t *testing.T) {
	m := NewMap(2, Pos{X: 0, Y: 0})
	m.Place(NewTile(LayerFloor, Pos{X: 0, Y: 0}))
	m.Place(NewTile(LayerDoor, Pos{X: 1, Y: 1}))
	fillWalls(m, Params{Size: 2, Start: Pos{X: 0, Y: 0}})

	var buf bytes.Buffer
	if err := Dump(&buf, m, Pos{X: 0, Y: 0}, false); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	want := strings.Join([]string{
		"####",
		"#@##",
		"##>#",
		"####",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("Dump() =\n%s\nwant\n%s", buf.String(), want)
	}
}
