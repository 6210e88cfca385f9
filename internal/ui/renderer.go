package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilerogue/internal/entity"
	"github.com/samdwyer/tilerogue/internal/world"
)

const (
	hudRows        = 2
	healthBarWidth = 20
)

// Cell is one drawable glyph at a grid position.
type Cell struct {
	Pos   world.Pos
	Glyph rune
	Color tcell.Color
}

// Frame is everything the renderer needs for one redraw. Cells are drawn in
// order, so later cells cover earlier ones on the same grid position.
type Frame struct {
	Cells   []Cell
	Hero    world.Pos
	Stats   entity.Characteristics
	Level   int
	Message string
	Dead    bool
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map centred on the hero, the HUD, and the message line.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()
	width, height := r.screen.Size()
	mapHeight := height - hudRows - 1

	offX, offY := viewportOffset(f.Hero, width, mapHeight)
	for _, c := range f.Cells {
		sx, sy := c.Pos.X+offX, c.Pos.Y+offY
		if sx < 0 || sx >= width || sy < 0 || sy >= mapHeight {
			continue
		}
		r.screen.SetContent(sx, sy+hudRows, c.Glyph, tcell.StyleDefault.Foreground(c.Color))
	}

	r.renderHUD(f)

	msgStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.SetString(0, height-1, f.Message, msgStyle)

	if f.Dead {
		banner := "You died. Press r to restart or q to quit."
		bannerStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		r.screen.SetString(max(0, (width-len(banner))/2), hudRows+mapHeight/2, banner, bannerStyle)
	}

	r.screen.Show()
}

// renderHUD draws the health bar and the stat line.
func (r *Renderer) renderHUD(f Frame) {
	barStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	r.screen.SetString(0, 0, healthLine(f.Stats), barStyle)

	statStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.screen.SetString(0, 1, statLine(f.Stats, f.Level), statStyle)
}

// viewportOffset returns the translation that puts the hero in the middle of
// a width×height view.
func viewportOffset(hero world.Pos, width, height int) (int, int) {
	return width/2 - hero.X, height/2 - hero.Y
}

// healthLine renders e.g. "HP [##########----------] 308/616".
func healthLine(s entity.Characteristics) string {
	filled := 0
	if s.MaxHealth > 0 {
		filled = int(math.Round(s.Health / s.MaxHealth * healthBarWidth))
	}
	filled = min(max(filled, 0), healthBarWidth)
	return fmt.Sprintf("HP [%s%s] %s/%s",
		strings.Repeat("#", filled),
		strings.Repeat("-", healthBarWidth-filled),
		displayNumber(s.Health),
		displayNumber(s.MaxHealth))
}

// statLine renders mana, attack, armor, level and held item count.
func statLine(s entity.Characteristics, level int) string {
	return fmt.Sprintf("MP %s/%s  ATK %s  ARM %s  SPD %.1f  LVL %d  ITEMS %d",
		displayNumber(s.Mana),
		displayNumber(s.MaxMana),
		displayNumber(s.Attack),
		displayNumber(s.Armor),
		s.Speed,
		level,
		len(s.Items))
}

// displayNumber rounds half away from zero for display only.
func displayNumber(v float64) string {
	return fmt.Sprintf("%d", int(math.Round(v)))
}
