package component

import "github.com/milk9111/maidmodes/ecs"

// AttackTarget is the entity a maid is currently fighting.
type AttackTarget struct {
	Entity   ecs.Entity
	Cooldown int
}

var AttackTargetComponent = NewComponent[AttackTarget]()
