package game

import (
	"testing"

	"github.com/samdwyer/tilerogue/internal/world"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0 (random)", cfg.Seed)
	}
	if cfg.Map != world.DefaultParams() {
		t.Errorf("Map = %+v, want defaults", cfg.Map)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(EnvSeed, "777")
	t.Setenv(EnvGridSize, "30")
	t.Setenv(EnvStartX, "4")
	t.Setenv(EnvStartY, "5")
	t.Setenv(EnvFloorChance, "0.5")
	t.Setenv(EnvItemChance, "0.1")
	t.Setenv(EnvEnemyChance, "0.05")
	t.Setenv(EnvDataDir, "/tmp/data")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := Config{
		Seed: 777,
		Map: world.Params{
			Size:        30,
			Start:       world.Pos{X: 4, Y: 5},
			FloorChance: 0.5,
			ItemChance:  0.1,
			EnemyChance: 0.05,
		},
		DataDir: "/tmp/data",
	}
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigUnsetKeepsDefaults(t *testing.T) {
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvGridSize, "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Map.Size != world.DefaultSize {
		t.Errorf("Size = %d, want %d", cfg.Map.Size, world.DefaultSize)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{EnvSeed, "abc"},
		{EnvGridSize, "twenty"},
		{EnvStartX, "1.5"},
		{EnvItemChance, "lots"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadConfig(); err == nil {
				t.Errorf("LoadConfig() with %s=%q should fail", tt.key, tt.value)
			}
		})
	}
}

func TestLoadConfigGridSizeRecentersStart(t *testing.T) {
	t.Setenv(EnvGridSize, "7")
	t.Setenv(EnvStartX, "")
	t.Setenv(EnvStartY, "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Map.Start != (world.Pos{X: 3, Y: 3}) {
		t.Errorf("Start = %v, want (3,3)", cfg.Map.Start)
	}
	if err := cfg.Map.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestResize(t *testing.T) {
	tests := []struct {
		name   string
		startX string
		size   int
		want   world.Pos
	}{
		{"recenters", "", 5, world.Pos{X: 2, Y: 2}},
		{"recenters larger grid", "", 40, world.Pos{X: 20, Y: 20}},
		{"pinned start kept", "1", 5, world.Pos{X: world.DefaultStartX, Y: world.DefaultStartY}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvStartX, tt.startX)
			t.Setenv(EnvStartY, "")
			cfg := DefaultConfig()
			cfg.Resize(tt.size)
			if cfg.Map.Size != tt.size || cfg.Map.Start != tt.want {
				t.Errorf("Resize(%d) = size %d start %v, want %v", tt.size, cfg.Map.Size, cfg.Map.Start, tt.want)
			}
		})
	}
}
