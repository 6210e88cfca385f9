package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/tilerogue/internal/gamedata"
)

// Hero is the player character. It is created once per session and only
// repositioned when a level is regenerated.
type Hero struct {
	ID     uuid.UUID
	Name   string
	Symbol rune
	X, Y   int // grid position
	Stats  *Characteristics
}

// NewHero creates a hero from a template at the given position.
func NewHero(def *gamedata.StatsDef, x, y int) *Hero {
	return &Hero{
		ID:     uuid.New(),
		Name:   def.Name,
		Symbol: def.GlyphRune(),
		X:      x,
		Y:      y,
		Stats:  NewCharacteristics(def),
	}
}

// Move updates the hero position by the given delta.
func (h *Hero) Move(dx, dy int) {
	h.X += dx
	h.Y += dy
}

// Reset places the hero at an absolute position (level transition).
func (h *Hero) Reset(x, y int) {
	h.X = x
	h.Y = y
}

// Position returns the current x, y coordinates.
func (h *Hero) Position() (int, int) {
	return h.X, h.Y
}
