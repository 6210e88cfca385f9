package game

import (
	"context"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilerogue/internal/gamedata"
	"github.com/samdwyer/tilerogue/internal/logger"
	"github.com/samdwyer/tilerogue/internal/telemetry"
	"github.com/samdwyer/tilerogue/internal/ui"
	"github.com/samdwyer/tilerogue/internal/world"
)

// action is what a key press asks the game to do.
type action int

const (
	actionNone action = iota
	actionMove
	actionQuit
	actionRestart
)

// Game drives a Session from terminal input.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	message  string
	running  bool
}

// New creates the screen and the first level.
func New(ctx context.Context, cfg Config, catalog *gamedata.Catalog) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	session, err := NewSession(ctx, cfg, catalog)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(
		attribute.Int64("game.seed", session.Seed()),
		attribute.Int("map.size", cfg.Map.Size),
	)

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  session,
		message:  "Find the door (>) to descend. Arrows or hjkl to move, q to quit.",
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	logger.Log.WithField("seed", g.session.Seed()).Info("game started")

	for g.running {
		g.renderer.Render(g.frame())
		if err := g.handleInput(ctx); err != nil {
			g.screen.Close()
			return err
		}
	}

	g.screen.Close()
	logger.Log.WithField("level", g.session.Level()).Info("game ended")
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) error {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	act, dir := keyAction(ev.Key(), ev.Rune())

	switch act {
	case actionQuit:
		g.running = false
	case actionRestart:
		if g.session.Phase() != PhaseDead {
			return nil
		}
		if err := g.session.Restart(ctx); err != nil {
			return fmt.Errorf("restart: %w", err)
		}
		g.message = "A new descent begins."
	case actionMove:
		out := g.session.ProcessInput(ctx, dir)
		g.message = describeOutcome(out)
	}
	return nil
}

// keyAction maps a key press to an action. Arrows and vi keys move.
func keyAction(key tcell.Key, r rune) (action, world.Direction) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, 0
	case tcell.KeyUp:
		return actionMove, world.Up
	case tcell.KeyDown:
		return actionMove, world.Down
	case tcell.KeyLeft:
		return actionMove, world.Left
	case tcell.KeyRight:
		return actionMove, world.Right
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return actionQuit, 0
		case 'r', 'R':
			return actionRestart, 0
		case 'h':
			return actionMove, world.Left
		case 'j':
			return actionMove, world.Down
		case 'k':
			return actionMove, world.Up
		case 'l':
			return actionMove, world.Right
		}
	}
	return actionNone, 0
}

// describeOutcome turns a turn's outcome into the message line.
func describeOutcome(out Outcome) string {
	switch {
	case out.Dead:
		return "You have fallen."
	case out.LeveledUp:
		return fmt.Sprintf("You descend to level %d.", out.Level)
	case out.Combat != nil && out.Combat.EnemyDefeated:
		return fmt.Sprintf("You strike for %d. The enemy falls.", int(math.Round(out.Combat.EnemyDamage)))
	case out.Combat != nil:
		return fmt.Sprintf("You strike for %d and take %d.",
			int(math.Round(out.Combat.EnemyDamage)), int(math.Round(out.Combat.HeroDamage)))
	case out.ItemPicked != "":
		return fmt.Sprintf("You pick up %s.", out.ItemPicked)
	case out.Blocked:
		return "A wall blocks the way."
	}
	return ""
}

// frame collects the session's tiles in draw order.
func (g *Game) frame() ui.Frame {
	f := ui.Frame{
		Hero:    g.session.HeroPos(),
		Stats:   g.session.HeroState(),
		Level:   g.session.Level(),
		Message: g.message,
		Dead:    g.session.Phase() == PhaseDead,
	}
	for _, layer := range drawOrder {
		for _, t := range g.session.Tiles(layer) {
			f.Cells = append(f.Cells, ui.Cell{Pos: t.Pos, Glyph: t.Glyph, Color: t.Color})
		}
	}
	return f
}

// drawOrder paints the hero last so nothing covers it.
var drawOrder = []world.Layer{
	world.LayerWall,
	world.LayerFloor,
	world.LayerDoor,
	world.LayerItem,
	world.LayerEnemy,
	world.LayerHero,
}
