package game

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/tilerogue/internal/combat"
	"github.com/samdwyer/tilerogue/internal/entity"
	"github.com/samdwyer/tilerogue/internal/gamedata"
	"github.com/samdwyer/tilerogue/internal/logger"
	"github.com/samdwyer/tilerogue/internal/telemetry"
	"github.com/samdwyer/tilerogue/internal/world"
)

// TileView is a read-only description of one drawable tile.
type TileView struct {
	Layer world.Layer
	Pos   world.Pos
	Glyph rune
	Color tcell.Color
}

// Session is the turn controller. It owns the current map and the hero, and
// resolves one directional input at a time. A Session is not safe for
// concurrent use; turns never overlap.
type Session struct {
	cfg     Config
	catalog *gamedata.Catalog
	seed    int64
	rng     *rand.Rand

	m     *world.Map
	hero  *entity.Hero
	level int
	phase Phase
}

// NewSession creates the hero and generates the first level.
func NewSession(ctx context.Context, cfg Config, catalog *gamedata.Catalog) (*Session, error) {
	if err := cfg.Map.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:     cfg,
		catalog: catalog,
		seed:    seed,
		rng:     rand.New(rand.NewSource(seed)),
	}
	s.hero = entity.NewHero(&catalog.Hero, cfg.Map.Start.X, cfg.Map.Start.Y)

	if err := s.GenerateMap(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadCatalog returns the embedded templates, or those in cfg.DataDir when set.
func LoadCatalog(cfg Config) (*gamedata.Catalog, error) {
	if cfg.DataDir == "" {
		return gamedata.LoadCatalog()
	}
	catalog, err := gamedata.LoadCatalogFS(os.DirFS(cfg.DataDir))
	if err != nil {
		return nil, fmt.Errorf("load data from %s: %w", cfg.DataDir, err)
	}
	return catalog, nil
}

// GenerateMap builds a standalone map from a size, a hero start and a seed.
func GenerateMap(ctx context.Context, size int, start world.Pos, seed int64, catalog *gamedata.Catalog) (*world.Map, error) {
	p := world.DefaultParams()
	p.Size = size
	p.Start = start
	return world.Generate(ctx, p, rand.New(rand.NewSource(seed)), catalog)
}

// GenerateMap discards the current map, generates the next level from the
// session's random stream, and puts the hero back on the start cell.
func (s *Session) GenerateMap(ctx context.Context) error {
	m, err := world.Generate(ctx, s.cfg.Map, s.rng, s.catalog)
	if err != nil {
		return err
	}
	s.m = m
	s.level++
	s.hero.Reset(s.cfg.Map.Start.X, s.cfg.Map.Start.Y)

	logger.Log.WithFields(logrus.Fields{
		"level": s.level,
		"seed":  s.seed,
	}).Info("level generated")
	return nil
}

// Restart replaces the hero with a fresh one and starts again from level 1.
// The random stream continues, so the new first level differs from the old.
func (s *Session) Restart(ctx context.Context) error {
	s.hero = entity.NewHero(&s.catalog.Hero, s.cfg.Map.Start.X, s.cfg.Map.Start.Y)
	s.level = 0
	s.phase = PhaseIdle
	return s.GenerateMap(ctx)
}

// ProcessInput resolves one hero move. The destination is checked in a fixed
// order: door, enemy, item, wall. Reaching the door regenerates the level and
// ends the turn. Attacking an enemy never moves the hero, even when the enemy
// dies. An item is consumed and the hero steps onto its cell unless a wall or
// enemy stands there.
func (s *Session) ProcessInput(ctx context.Context, d world.Direction) Outcome {
	if s.phase == PhaseDead || s.hero.Stats.IsDead() {
		s.phase = PhaseDead
		return Outcome{Phase: PhaseDead, Dead: true, Level: s.level}
	}
	if !d.IsValid() {
		return Outcome{Phase: s.phase, Level: s.level}
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "turn.process")
	defer span.End()

	s.phase = PhaseResolving
	from := s.HeroPos()
	out := Outcome{Level: s.level}

	if _, ok := s.m.Resolve(from, d, world.LayerDoor); ok {
		if err := s.GenerateMap(ctx); err != nil {
			logger.Log.WithError(err).Error("level regeneration failed")
			span.RecordError(err)
			out.Blocked = true
			return s.finish(span, out, PhaseBlocked)
		}
		out.LeveledUp = true
		out.Level = s.level
		return s.finish(span, out, PhaseLevelTransition)
	}

	attacked := false
	if tile, ok := s.m.Resolve(from, d, world.LayerEnemy); ok {
		attacked = true
		result := combat.Exchange(s.hero.Stats, tile.Enemy.Stats)
		out.Combat = &result

		fields := logrus.Fields{
			"enemy":        tile.Enemy.Name,
			"enemy_id":     tile.Enemy.ID.String(),
			"pos":          tile.Pos.String(),
			"hero_damage":  result.HeroDamage,
			"enemy_damage": result.EnemyDamage,
		}
		if result.EnemyDefeated {
			s.m.Remove(world.LayerEnemy, tile.Pos)
			logger.Log.WithFields(fields).Info("enemy defeated")
		} else {
			logger.Log.WithFields(fields).Debug("blows exchanged")
		}
	}

	if tile, ok := s.m.Resolve(from, d, world.LayerItem); ok {
		s.hero.Stats.ApplyItem(tile.Item)
		s.m.Remove(world.LayerItem, tile.Pos)
		out.ItemPicked = tile.Item.Name
		logger.Log.WithField("item", tile.Item.Name).Debug("item picked up")
	}

	phase := PhaseMoved
	if _, wall := s.m.Resolve(from, d, world.LayerWall); wall || attacked {
		out.Blocked = true
		phase = PhaseBlocked
	} else {
		dx, dy := d.Delta()
		s.hero.Move(dx, dy)
		out.Moved = true
	}

	if s.hero.Stats.IsDead() {
		out.Dead = true
		phase = PhaseDead
		logger.Log.WithField("level", s.level).Info("hero died")
	}

	return s.finish(span, out, phase)
}

// finish records the final phase on the session, the outcome, and the span.
func (s *Session) finish(span trace.Span, out Outcome, phase Phase) Outcome {
	s.phase = phase
	out.Phase = phase

	span.SetAttributes(
		attribute.String("turn.phase", phase.String()),
		attribute.Bool("turn.moved", out.Moved),
		attribute.Bool("turn.combat", out.Combat != nil),
		attribute.String("turn.item", out.ItemPicked),
		attribute.Int("turn.level", out.Level),
		attribute.Float64("hero.health", s.hero.Stats.Health),
	)
	return out
}

// HeroState returns a snapshot of the hero's stats.
func (s *Session) HeroState() entity.Characteristics {
	return s.hero.Stats.Clone()
}

// HeroPos returns the hero's grid position.
func (s *Session) HeroPos() world.Pos {
	x, y := s.hero.Position()
	return world.Pos{X: x, Y: y}
}

// Tiles lists the drawable tiles of one layer. LayerHero yields the hero.
func (s *Session) Tiles(layer world.Layer) []TileView {
	if layer == world.LayerHero {
		return []TileView{{
			Layer: world.LayerHero,
			Pos:   s.HeroPos(),
			Glyph: s.hero.Symbol,
			Color: s.catalog.Hero.TCellColor(),
		}}
	}

	tiles := s.m.Tiles(layer)
	views := make([]TileView, 0, len(tiles))
	for _, t := range tiles {
		views = append(views, TileView{
			Layer: t.Layer,
			Pos:   t.Pos,
			Glyph: t.Glyph(),
			Color: t.Color(),
		})
	}
	return views
}

// Map returns the current level's map. It is replaced on every level
// transition; callers must not hold it across turns.
func (s *Session) Map() *world.Map {
	return s.m
}

// Level returns the current level number, starting at 1.
func (s *Session) Level() int {
	return s.level
}

// Phase returns the phase left by the last input.
func (s *Session) Phase() Phase {
	return s.phase
}

// Seed returns the seed actually used, which differs from Config.Seed when
// that was 0.
func (s *Session) Seed() int64 {
	return s.seed
}
