package world

// Resolve returns the tile in layer that a move from `from` in direction d
// would touch. Absence is the ordinary result for open cells and for
// coordinates outside the generated region.
func (m *Map) Resolve(from Pos, d Direction, layer Layer) (*Tile, bool) {
	if !d.IsValid() {
		return nil, false
	}
	return m.At(layer, from.Step(d))
}

// ResolveDelta is Resolve for a raw (dx, dy) delta.
func (m *Map) ResolveDelta(from Pos, dx, dy int, layer Layer) (*Tile, bool) {
	return m.At(layer, from.Add(dx, dy))
}
