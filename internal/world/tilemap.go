package world

import "sort"

// Map owns every tile of one level, indexed by layer and coordinate.
// A Map is discarded and replaced on every level transition; callers must
// not keep tile pointers across that boundary.
type Map struct {
	size   int
	start  Pos
	layers [layerCount]map[Pos]*Tile
}

// NewMap creates an empty map for a size×size generation region.
func NewMap(size int, start Pos) *Map {
	m := &Map{size: size, start: start}
	for i := range m.layers {
		m.layers[i] = make(map[Pos]*Tile)
	}
	return m
}

// Size returns the side length of the generation region.
func (m *Map) Size() int {
	return m.size
}

// Start returns the hero start cell.
func (m *Map) Start() Pos {
	return m.start
}

// InRegion returns true if p lies inside [0,size)².
func (m *Map) InRegion(p Pos) bool {
	return p.X >= 0 && p.X < m.size && p.Y >= 0 && p.Y < m.size
}

// Place adds t to its layer. It returns false, leaving the map unchanged,
// when the layer already has a tile at t.Pos or t.Layer is not a map layer.
func (m *Map) Place(t *Tile) bool {
	if !t.Layer.IsValid() || t.Layer == LayerHero {
		return false
	}
	layer := m.layers[t.Layer]
	if _, taken := layer[t.Pos]; taken {
		return false
	}
	layer[t.Pos] = t
	return true
}

// Remove deletes and returns the tile at p in layer, or nil if there is none.
func (m *Map) Remove(layer Layer, p Pos) *Tile {
	if !layer.IsValid() {
		return nil
	}
	t := m.layers[layer][p]
	delete(m.layers[layer], p)
	return t
}

// At returns the tile at p in layer.
func (m *Map) At(layer Layer, p Pos) (*Tile, bool) {
	if !layer.IsValid() {
		return nil, false
	}
	t, ok := m.layers[layer][p]
	return t, ok
}

// Has reports whether layer has a tile at p.
func (m *Map) Has(layer Layer, p Pos) bool {
	_, ok := m.At(layer, p)
	return ok
}

// Occupied reports whether any floor, door, item or enemy tile sits at p.
func (m *Map) Occupied(p Pos) bool {
	return m.Has(LayerFloor, p) || m.Has(LayerDoor, p) || m.Has(LayerItem, p) || m.Has(LayerEnemy, p)
}

// Len returns the number of tiles in layer.
func (m *Map) Len(layer Layer) int {
	if !layer.IsValid() {
		return 0
	}
	return len(m.layers[layer])
}

// Tiles returns the tiles of layer ordered by row then column.
func (m *Map) Tiles(layer Layer) []*Tile {
	if !layer.IsValid() {
		return nil
	}
	tiles := make([]*Tile, 0, len(m.layers[layer]))
	for _, t := range m.layers[layer] {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool {
		a, b := tiles[i].Pos, tiles[j].Pos
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return tiles
}

// Door returns the level's door tile, or nil if none was placed.
func (m *Map) Door() *Tile {
	for _, t := range m.layers[LayerDoor] {
		return t
	}
	return nil
}
