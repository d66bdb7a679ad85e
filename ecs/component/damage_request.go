package component

import (
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/mode"
)

// DamageRequest asks the damage system to hurt Target.
type DamageRequest struct {
	Target ecs.Entity
	Source mode.DamageSource
	Amount float32
}

var DamageRequestComponent = NewComponent[DamageRequest]()
