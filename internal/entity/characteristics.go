// Package entity provides the hero, enemies, and the stat block they fight with.
package entity

import (
	"github.com/samdwyer/tilerogue/internal/gamedata"
)

// Characteristics is the stat block governing combat for the hero and each
// enemy. A block is owned by exactly one combatant and never shared.
//
// Health and damage are float64 and never rounded; speed multiplies attack
// into fractional damage (1.6 × 36 = 57.6).
type Characteristics struct {
	Health     float64
	MaxHealth  float64
	Mana       float64
	MaxMana    float64
	Attack     float64
	TrueDamage float64
	Armor      float64
	Speed      float64  // attacks per move
	Items      []string // names of consumed items, in pickup order
}

// NewCharacteristics builds a fresh stat block from a template.
func NewCharacteristics(def *gamedata.StatsDef) *Characteristics {
	return &Characteristics{
		Health:     def.Health,
		MaxHealth:  def.MaxHealth,
		Mana:       def.Mana,
		MaxMana:    def.MaxMana,
		Attack:     def.Attack,
		TrueDamage: def.TrueDamage,
		Armor:      def.Armor,
		Speed:      def.Speed,
		Items:      []string{},
	}
}

// Clone returns a deep copy, safe to hand to renderers.
func (c *Characteristics) Clone() Characteristics {
	out := *c
	out.Items = append([]string(nil), c.Items...)
	return out
}

// IsDead returns true once health has dropped to zero or below.
func (c *Characteristics) IsDead() bool {
	return c.Health <= 0
}

// SpendMana deducts cost when strictly more than cost is available.
func (c *Characteristics) SpendMana(cost float64) bool {
	if c.Mana > cost {
		c.Mana -= cost
		return true
	}
	return false
}

// DamageOutput returns the damage dealt per move before the target's armor:
// base damage (speed × attack) and unmitigated true damage.
func (c *Characteristics) DamageOutput() (base, trueDamage float64) {
	return c.Speed * c.Attack, c.TrueDamage
}

// DamageTaken returns the health lost to an incoming (base, true) damage pair
// after this block's armor.
//
// Positive armor scales base damage by 100/(100+armor). Zero or negative armor
// amplifies it by 2-100/(100-armor). Both curves equal 1 at armor 0.
func (c *Characteristics) DamageTaken(base, trueDamage float64) float64 {
	if c.Armor <= 0 {
		return (2-100/(100-c.Armor))*base + trueDamage
	}
	return (100/(100+c.Armor))*base + trueDamage
}

// ApplyItem adds an item's modifiers to the stat block and records the item.
// Health is capped at max health; a max_health bonus raises both. Unknown
// modifier keys are ignored.
func (c *Characteristics) ApplyItem(item *gamedata.ItemDef) {
	for key, delta := range item.Modifiers {
		switch key {
		case gamedata.ModAttack:
			c.Attack += delta
		case gamedata.ModHealth:
			c.Health = min(c.Health+delta, c.MaxHealth)
		case gamedata.ModMaxHealth:
			c.MaxHealth += delta
			c.Health += delta
		case gamedata.ModArmor:
			c.Armor += delta
		case gamedata.ModMana:
			c.Mana = min(c.Mana+delta, c.MaxMana)
		}
	}
	c.Items = append(c.Items, item.Name)
}
