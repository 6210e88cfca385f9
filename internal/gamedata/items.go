package gamedata

import "github.com/gdamore/tcell/v2"

// Modifier keys understood by entity.Characteristics.ApplyItem.
const (
	ModAttack    = "atk"
	ModHealth    = "health"
	ModMaxHealth = "max_health"
	ModArmor     = "armor"
	ModMana      = "mana"
)

// ItemDef is an immutable item template loaded from JSON. Each item tile
// references one; consuming it applies Modifiers to the consumer's stats.
type ItemDef struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Glyph       string             `json:"glyph"`
	Color       string             `json:"color"`
	Modifiers   map[string]float64 `json:"modifiers"`
	SpawnWeight int                `json:"spawnWeight"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (i *ItemDef) GlyphRune() rune {
	return glyphRune(i.Glyph)
}

// TCellColor returns the item's color, green when unset or malformed.
func (i *ItemDef) TCellColor() tcell.Color {
	return colorOr(i.Color, tcell.ColorGreen)
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}
