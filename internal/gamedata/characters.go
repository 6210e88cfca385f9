package gamedata

import "github.com/gdamore/tcell/v2"

// StatsDef is a stat block template for the hero or an enemy type.
type StatsDef struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Glyph       string  `json:"glyph"`
	Color       string  `json:"color"`
	Health      float64 `json:"health"`
	MaxHealth   float64 `json:"maxHealth"`
	Mana        float64 `json:"mana"`
	MaxMana     float64 `json:"maxMana"`
	Attack      float64 `json:"attack"`
	TrueDamage  float64 `json:"trueDamage"`
	Armor       float64 `json:"armor"`
	Speed       float64 `json:"speed"` // attacks per move
	SpawnWeight int     `json:"spawnWeight,omitempty"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (s *StatsDef) GlyphRune() rune {
	return glyphRune(s.Glyph)
}

// TCellColor returns the template's color, white when unset or malformed.
func (s *StatsDef) TCellColor() tcell.Color {
	return colorOr(s.Color, tcell.ColorWhite)
}

// CharactersFile represents the structure of characters.json.
type CharactersFile struct {
	Hero    StatsDef   `json:"hero"`
	Enemies []StatsDef `json:"enemies"`
}
