package gamedata

import (
	"errors"
	"io/fs"
	"math/rand"
)

const (
	itemsFile      = "items.json"
	charactersFile = "characters.json"
)

// Catalog holds every loaded template and provides weighted spawning.
type Catalog struct {
	Hero StatsDef

	items       []ItemDef
	enemies     []StatsDef
	itemWeight  int
	enemyWeight int
}

// NewCatalog creates a catalog from loaded definitions.
func NewCatalog(hero StatsDef, items []ItemDef, enemies []StatsDef) *Catalog {
	c := &Catalog{
		Hero:    hero,
		items:   items,
		enemies: enemies,
	}
	for _, it := range items {
		c.itemWeight += it.SpawnWeight
	}
	for _, e := range enemies {
		c.enemyWeight += e.SpawnWeight
	}
	return c
}

// LoadCatalog loads the embedded items.json and characters.json.
func LoadCatalog() (*Catalog, error) {
	return LoadCatalogFS(dataFS)
}

// LoadCatalogFS loads items.json and characters.json from fsys.
func LoadCatalogFS(fsys fs.FS) (*Catalog, error) {
	items, err := LoadFS[ItemsFile](fsys, itemsFile)
	if err != nil {
		return nil, err
	}
	chars, err := LoadFS[CharactersFile](fsys, charactersFile)
	if err != nil {
		return nil, err
	}
	if len(items.Items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	if len(chars.Enemies) == 0 {
		return nil, errors.New("no enemies loaded from characters.json")
	}
	return NewCatalog(chars.Hero, items.Items, chars.Enemies), nil
}

// MustLoadCatalog loads the embedded catalog, panicking on error.
// The embedded data must be present for the game to function.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// SpawnItem selects a random item template using weighted probability.
// Returns nil if the catalog has no spawnable items.
func (c *Catalog) SpawnItem(rng *rand.Rand) *ItemDef {
	if c.itemWeight <= 0 || len(c.items) == 0 {
		return nil
	}
	roll := rng.Intn(c.itemWeight)
	cumulative := 0
	for i := range c.items {
		cumulative += c.items[i].SpawnWeight
		if roll < cumulative {
			return &c.items[i]
		}
	}
	return &c.items[0]
}

// SpawnEnemy selects a random enemy template using weighted probability.
// Returns nil if the catalog has no spawnable enemies.
func (c *Catalog) SpawnEnemy(rng *rand.Rand) *StatsDef {
	if c.enemyWeight <= 0 || len(c.enemies) == 0 {
		return nil
	}
	roll := rng.Intn(c.enemyWeight)
	cumulative := 0
	for i := range c.enemies {
		cumulative += c.enemies[i].SpawnWeight
		if roll < cumulative {
			return &c.enemies[i]
		}
	}
	return &c.enemies[0]
}

// ItemByID returns the item template with the given ID, or nil if not found.
func (c *Catalog) ItemByID(id string) *ItemDef {
	for i := range c.items {
		if c.items[i].ID == id {
			return &c.items[i]
		}
	}
	return nil
}

// EnemyByID returns the enemy template with the given ID, or nil if not found.
func (c *Catalog) EnemyByID(id string) *StatsDef {
	for i := range c.enemies {
		if c.enemies[i].ID == id {
			return &c.enemies[i]
		}
	}
	return nil
}

// Items returns all item templates.
func (c *Catalog) Items() []ItemDef {
	return c.items
}

// Enemies returns all enemy templates.
func (c *Catalog) Enemies() []StatsDef {
	return c.enemies
}
