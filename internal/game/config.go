package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/tilerogue/internal/world"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed        = "TILEROGUE_SEED"
	EnvGridSize    = "TILEROGUE_GRID_SIZE"
	EnvStartX      = "TILEROGUE_START_X"
	EnvStartY      = "TILEROGUE_START_Y"
	EnvFloorChance = "TILEROGUE_FLOOR_CHANCE"
	EnvItemChance  = "TILEROGUE_ITEM_CHANCE"
	EnvEnemyChance = "TILEROGUE_ENEMY_CHANCE"
	EnvDataDir     = "TILEROGUE_DATA_DIR"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible map generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Map generation parameters, applied to every level.
	Map world.Params

	// DataDir, when set, holds items.json and characters.json that replace
	// the embedded templates.
	DataDir string
}

// DefaultConfig returns a random-seeded config with the default map layout.
func DefaultConfig() Config {
	return Config{Map: world.DefaultParams()}
}

// LoadConfig builds a Config from DefaultConfig overridden by TILEROGUE_*
// environment variables. Unset variables keep their defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if err := envInt64(EnvSeed, &cfg.Seed); err != nil {
		return cfg, err
	}
	size := cfg.Map.Size
	if err := envInt(EnvGridSize, &size); err != nil {
		return cfg, err
	}
	if size != cfg.Map.Size {
		cfg.Resize(size)
	}
	if err := envInt(EnvStartX, &cfg.Map.Start.X); err != nil {
		return cfg, err
	}
	if err := envInt(EnvStartY, &cfg.Map.Start.Y); err != nil {
		return cfg, err
	}
	if err := envFloat(EnvFloorChance, &cfg.Map.FloorChance); err != nil {
		return cfg, err
	}
	if err := envFloat(EnvItemChance, &cfg.Map.ItemChance); err != nil {
		return cfg, err
	}
	if err := envFloat(EnvEnemyChance, &cfg.Map.EnemyChance); err != nil {
		return cfg, err
	}
	cfg.DataDir = os.Getenv(EnvDataDir)

	return cfg, nil
}

// Resize sets the grid size and moves the start to the centre of the new
// grid, unless TILEROGUE_START_X or TILEROGUE_START_Y pins it.
func (c *Config) Resize(size int) {
	c.Map.Size = size
	if os.Getenv(EnvStartX) == "" && os.Getenv(EnvStartY) == "" {
		c.Map.Start = world.Pos{X: size / 2, Y: size / 2}
	}
}

func envInt64(key string, dst *int64) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = n
	return nil
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = f
	return nil
}
