package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilerogue/internal/entity"
	"github.com/samdwyer/tilerogue/internal/gamedata"
	"github.com/samdwyer/tilerogue/internal/logger"
	"github.com/samdwyer/tilerogue/internal/telemetry"
)

const (
	// Default generation region and hero start.
	DefaultSize   = 20
	DefaultStartX = 10
	DefaultStartY = 10

	// Default per-cell placement probabilities.
	DefaultFloorChance = 0.8
	DefaultItemChance  = 0.09
	DefaultEnemyChance = 0.02
)

// ErrInvalidConfig is returned when generation parameters cannot produce a map.
var ErrInvalidConfig = errors.New("invalid map configuration")

// Params controls map generation.
type Params struct {
	Size        int // side length of the square region [0,Size)²
	Start       Pos // hero start cell inside the region, always floor
	FloorChance float64
	ItemChance  float64
	EnemyChance float64
}

// DefaultParams returns the 20×20 layout with the hero starting at (10,10).
func DefaultParams() Params {
	return Params{
		Size:        DefaultSize,
		Start:       Pos{X: DefaultStartX, Y: DefaultStartY},
		FloorChance: DefaultFloorChance,
		ItemChance:  DefaultItemChance,
		EnemyChance: DefaultEnemyChance,
	}
}

// Validate checks that the parameters can produce a map.
func (p Params) Validate() error {
	if p.Size <= 0 {
		return fmt.Errorf("%w: grid size %d must be positive", ErrInvalidConfig, p.Size)
	}
	if !p.inRegion(p.Start) {
		return fmt.Errorf("%w: start %v outside the %d×%d grid", ErrInvalidConfig, p.Start, p.Size, p.Size)
	}
	chances := []struct {
		name  string
		value float64
	}{
		{"floor", p.FloorChance},
		{"item", p.ItemChance},
		{"enemy", p.EnemyChance},
	}
	for _, c := range chances {
		// Written so NaN fails too.
		if !(c.value >= 0 && c.value <= 1) {
			return fmt.Errorf("%w: %s chance %v outside [0,1]", ErrInvalidConfig, c.name, c.value)
		}
	}
	if p.Size*p.Size < 2 {
		return fmt.Errorf("%w: no cell besides the start %v can hold a door", ErrInvalidConfig, p.Start)
	}
	return nil
}

func (p Params) inRegion(pos Pos) bool {
	return pos.X >= 0 && pos.X < p.Size && pos.Y >= 0 && pos.Y < p.Size
}

// Spawner supplies the templates for item and enemy tiles.
// gamedata.Catalog implements it.
type Spawner interface {
	SpawnItem(rng *rand.Rand) *gamedata.ItemDef
	SpawnEnemy(rng *rand.Rand) *gamedata.StatsDef
}

// Generate builds a new map by independent per-cell trials. It is not a
// connected maze: floors, one door, items and enemies are sprinkled at random
// and every remaining cell of the region plus a one-cell border becomes wall.
//
// All randomness comes from rng, so the same seed yields the same map.
// When an item and an enemy both roll on one cell the enemy wins.
func Generate(ctx context.Context, p Params, rng *rand.Rand, spawner Spawner) (*Map, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.generate")
	defer span.End()

	startTime := time.Now()
	m := NewMap(p.Size, p.Start)

	placeFloors(m, p, rng)
	placeDoor(m, p, rng)
	placeItems(m, p, rng, spawner)
	placeEnemies(m, p, rng, spawner)
	fillWalls(m, p)

	span.SetAttributes(
		attribute.Int("map.size", p.Size),
		attribute.Int("map.floors", m.Len(LayerFloor)),
		attribute.Int("map.walls", m.Len(LayerWall)),
		attribute.Int("map.items", m.Len(LayerItem)),
		attribute.Int("map.enemies", m.Len(LayerEnemy)),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)

	logger.Log.WithFields(logrus.Fields{
		"size":    p.Size,
		"floors":  m.Len(LayerFloor),
		"walls":   m.Len(LayerWall),
		"items":   m.Len(LayerItem),
		"enemies": m.Len(LayerEnemy),
		"door":    m.Door().Pos.String(),
	}).Debug("map generated")

	return m, nil
}

// placeFloors rolls a floor for every cell. The start cell is always floor.
func placeFloors(m *Map, p Params, rng *rand.Rand) {
	m.Place(NewTile(LayerFloor, p.Start))
	for x := 0; x < p.Size; x++ {
		for y := 0; y < p.Size; y++ {
			pos := Pos{X: x, Y: y}
			if pos != p.Start && rng.Float64() < p.FloorChance {
				m.Place(NewTile(LayerFloor, pos))
			}
		}
	}
}

// placeDoor rejection-samples a uniform cell other than the start.
// Validate guarantees such a cell exists.
func placeDoor(m *Map, p Params, rng *rand.Rand) {
	for {
		pos := Pos{X: rng.Intn(p.Size), Y: rng.Intn(p.Size)}
		if pos != p.Start {
			m.Place(NewTile(LayerDoor, pos))
			return
		}
	}
}

// placeItems rolls an item for every cell but the start, backing each with floor.
func placeItems(m *Map, p Params, rng *rand.Rand, spawner Spawner) {
	for x := 0; x < p.Size; x++ {
		for y := 0; y < p.Size; y++ {
			pos := Pos{X: x, Y: y}
			if pos == p.Start || rng.Float64() >= p.ItemChance {
				continue
			}
			def := spawner.SpawnItem(rng)
			if def == nil {
				continue
			}
			m.Place(NewItemTile(pos, def))
			m.Place(NewTile(LayerFloor, pos))
		}
	}
}

// placeEnemies rolls an enemy for every cell but the start, backing each with
// floor and evicting any item already rolled there.
func placeEnemies(m *Map, p Params, rng *rand.Rand, spawner Spawner) {
	for x := 0; x < p.Size; x++ {
		for y := 0; y < p.Size; y++ {
			pos := Pos{X: x, Y: y}
			if pos == p.Start || rng.Float64() >= p.EnemyChance {
				continue
			}
			def := spawner.SpawnEnemy(rng)
			if def == nil {
				continue
			}
			m.Remove(LayerItem, pos)
			m.Place(NewEnemyTile(pos, entity.NewEnemyFromDef(def)))
			m.Place(NewTile(LayerFloor, pos))
		}
	}
}

// fillWalls walls every cell of [-1,Size+1)² not claimed by another layer.
func fillWalls(m *Map, p Params) {
	claimed := mapset.New[Pos]()
	claimed.Put(p.Start)
	for _, layer := range []Layer{LayerFloor, LayerDoor, LayerItem, LayerEnemy} {
		for pos := range m.layers[layer] {
			claimed.Put(pos)
		}
	}

	for x := -1; x < p.Size+1; x++ {
		for y := -1; y < p.Size+1; y++ {
			pos := Pos{X: x, Y: y}
			if !claimed.Has(pos) {
				m.Place(NewTile(LayerWall, pos))
			}
		}
	}
}
