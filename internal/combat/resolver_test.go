package combat

import (
	"math"
	"testing"

	"github.com/samdwyer/tilerogue/internal/entity"
)

const epsilon = 1e-9

func newCombatant(health, attack, trueDamage, armor, speed float64) *entity.Characteristics {
	return &entity.Characteristics{
		Health:     health,
		MaxHealth:  health,
		Attack:     attack,
		TrueDamage: trueDamage,
		Armor:      armor,
		Speed:      speed,
	}
}

func TestExchangeSymmetricZeroArmor(t *testing.T) {
	// Both: armor 0, atk 36, spd 1.6 -> each loses 1 × (1.6 × 36) + 0 = 57.6
	hero := newCombatant(616, 36, 0, 0, 1.6)
	enemy := newCombatant(616, 36, 0, 0, 1.6)

	result := Exchange(hero, enemy)

	if math.Abs(result.HeroDamage-57.6) > epsilon {
		t.Errorf("HeroDamage = %v, want 57.6", result.HeroDamage)
	}
	if math.Abs(result.EnemyDamage-57.6) > epsilon {
		t.Errorf("EnemyDamage = %v, want 57.6", result.EnemyDamage)
	}
	if math.Abs(hero.Health-558.4) > epsilon {
		t.Errorf("hero Health = %v, want 558.4", hero.Health)
	}
	if math.Abs(enemy.Health-558.4) > epsilon {
		t.Errorf("enemy Health = %v, want 558.4", enemy.Health)
	}
	if result.HeroDefeated || result.EnemyDefeated {
		t.Errorf("nobody should be defeated: %+v", result)
	}
}

func TestExchangeUsesOpponentOutputAgainstOwnArmor(t *testing.T) {
	// Hero: atk 10, spd 1, armor 100 -> takes 100/200 × 40 = 20 from the enemy
	// Enemy: atk 40, spd 1, armor 0, -> takes 1 × 10 + 5 true = 15 from the hero
	hero := newCombatant(100, 10, 5, 100, 1)
	enemy := newCombatant(100, 40, 0, 0, 1)

	result := Exchange(hero, enemy)

	if math.Abs(result.HeroDamage-20) > epsilon {
		t.Errorf("HeroDamage = %v, want 20", result.HeroDamage)
	}
	if math.Abs(result.EnemyDamage-15) > epsilon {
		t.Errorf("EnemyDamage = %v, want 15", result.EnemyDamage)
	}
	if hero.Health != 80 || enemy.Health != 85 {
		t.Errorf("health = hero %v enemy %v, want 80 and 85", hero.Health, enemy.Health)
	}
}

func TestExchangeIsSimultaneous(t *testing.T) {
	// Both die in the same step; the enemy's blow still lands even though
	// the hero's blow alone would have killed it.
	hero := newCombatant(10, 100, 0, 0, 1)
	enemy := newCombatant(10, 100, 0, 0, 1)

	result := Exchange(hero, enemy)

	if !result.HeroDefeated || !result.EnemyDefeated {
		t.Errorf("both should be defeated: %+v", result)
	}
	if hero.Health != -90 || enemy.Health != -90 {
		t.Errorf("health = hero %v enemy %v, want -90 each", hero.Health, enemy.Health)
	}
}

func TestExchangeDefeatFlags(t *testing.T) {
	tests := []struct {
		name          string
		heroHealth    float64
		enemyHealth   float64
		heroDefeated  bool
		enemyDefeated bool
	}{
		{"both survive", 100, 100, false, false},
		{"enemy falls", 100, 10, false, true},
		{"hero falls", 10, 100, true, false},
		{"exactly zero counts as dead", 100, 10, false, true},
	}

	for _, tt := range tests {
		hero := newCombatant(tt.heroHealth, 10, 0, 0, 1)
		enemy := newCombatant(tt.enemyHealth, 10, 0, 0, 1)
		result := Exchange(hero, enemy)
		if result.HeroDefeated != tt.heroDefeated || result.EnemyDefeated != tt.enemyDefeated {
			t.Errorf("%s: got %+v", tt.name, result)
		}
	}
}
