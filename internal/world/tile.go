// Package world provides the tile grid: positions, layered tile storage,
// stochastic map generation, and collision lookup.
package world

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/tilerogue/internal/entity"
	"github.com/samdwyer/tilerogue/internal/gamedata"
)

// Layer partitions tiles by kind. A cell holds at most one tile per layer.
type Layer int

const (
	LayerWall Layer = iota
	LayerFloor
	LayerHero
	LayerDoor
	LayerItem
	LayerEnemy

	layerCount // always last
)

// Layers returns every layer in draw order.
func Layers() []Layer {
	return []Layer{LayerWall, LayerFloor, LayerHero, LayerDoor, LayerItem, LayerEnemy}
}

// String returns a human-readable layer name.
func (l Layer) String() string {
	switch l {
	case LayerWall:
		return "wall"
	case LayerFloor:
		return "floor"
	case LayerHero:
		return "hero"
	case LayerDoor:
		return "door"
	case LayerItem:
		return "item"
	case LayerEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// IsValid returns true for the six known layers.
func (l Layer) IsValid() bool {
	return l >= LayerWall && l < layerCount
}

// Tile is a single placed tile. Layer doubles as the variant tag: Item is set
// only for LayerItem tiles and Enemy only for LayerEnemy tiles.
type Tile struct {
	ID    uuid.UUID
	Layer Layer
	Pos   Pos

	Item  *gamedata.ItemDef
	Enemy *entity.Enemy
}

// NewTile creates a payload-free tile (wall, floor, door).
func NewTile(layer Layer, pos Pos) *Tile {
	return &Tile{ID: uuid.New(), Layer: layer, Pos: pos}
}

// NewItemTile creates an item tile referencing an item template.
func NewItemTile(pos Pos, item *gamedata.ItemDef) *Tile {
	t := NewTile(LayerItem, pos)
	t.Item = item
	return t
}

// NewEnemyTile creates an enemy tile owning the given enemy.
func NewEnemyTile(pos Pos, enemy *entity.Enemy) *Tile {
	t := NewTile(LayerEnemy, pos)
	t.Enemy = enemy
	return t
}

// Glyph returns the tile's display character.
func (t *Tile) Glyph() rune {
	switch t.Layer {
	case LayerWall:
		return '#'
	case LayerFloor:
		return '.'
	case LayerDoor:
		return '>'
	case LayerHero:
		return '@'
	case LayerItem:
		if t.Item != nil {
			return t.Item.GlyphRune()
		}
	case LayerEnemy:
		if t.Enemy != nil {
			return t.Enemy.Symbol
		}
	}
	return '?'
}

// Color returns the tile's display color.
func (t *Tile) Color() tcell.Color {
	switch t.Layer {
	case LayerWall:
		return tcell.ColorDarkGray
	case LayerFloor:
		return tcell.ColorGray
	case LayerDoor:
		return tcell.ColorOrange
	case LayerHero:
		return tcell.ColorYellow
	case LayerItem:
		if t.Item != nil {
			return t.Item.TCellColor()
		}
	case LayerEnemy:
		if t.Enemy != nil {
			return t.Enemy.Color()
		}
	}
	return tcell.ColorDefault
}
