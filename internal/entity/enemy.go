package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/tilerogue/internal/gamedata"
)

// Enemy is a static hostile creature. Enemies never move; they only trade
// blows when the hero walks into them.
type Enemy struct {
	ID     uuid.UUID
	Def    *gamedata.StatsDef // template the stats were rolled from
	Name   string
	Symbol rune
	Stats  *Characteristics
}

// NewEnemyFromDef creates an enemy with a fresh stat block from a template.
func NewEnemyFromDef(def *gamedata.StatsDef) *Enemy {
	return &Enemy{
		ID:     uuid.New(),
		Def:    def,
		Name:   def.Name,
		Symbol: def.GlyphRune(),
		Stats:  NewCharacteristics(def),
	}
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorRed
}
