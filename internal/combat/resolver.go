// Package combat resolves blows between the hero and an enemy.
package combat

import (
	"github.com/samdwyer/tilerogue/internal/entity"
)

// Result contains the outcome of one exchange of blows.
type Result struct {
	HeroDamage    float64 // health the hero lost
	EnemyDamage   float64 // health the enemy lost
	HeroDefeated  bool
	EnemyDefeated bool
}

// Exchange resolves a simultaneous exchange: both sides compute their damage
// output from their stats before the exchange, each takes the other's output
// against its own armor, and both health pools drop in the same step.
// Neither side strikes first, so both may fall together.
func Exchange(hero, enemy *entity.Characteristics) Result {
	heroBase, heroTrue := hero.DamageOutput()
	enemyBase, enemyTrue := enemy.DamageOutput()

	heroTaken := hero.DamageTaken(enemyBase, enemyTrue)
	enemyTaken := enemy.DamageTaken(heroBase, heroTrue)

	hero.Health -= heroTaken
	enemy.Health -= enemyTaken

	return Result{
		HeroDamage:    heroTaken,
		EnemyDamage:   enemyTaken,
		HeroDefeated:  hero.IsDead(),
		EnemyDefeated: enemy.IsDead(),
	}
}
