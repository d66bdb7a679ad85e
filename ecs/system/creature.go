package system

import (
	"math"

	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/mode"
)

const (
	creatureSightSq      = 10 * 10
	creatureAttackFrames = 20
)

// CreatureSystem makes hostile creatures chase and hit the nearest maid or
// player in sight.
type CreatureSystem struct{}

func NewCreatureSystem() *CreatureSystem {
	return &CreatureSystem{}
}

func (s *CreatureSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.CreatureComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Creature, t *component.Transform) {
		if c.Cooldown > 0 {
			c.Cooldown--
		}
		if !c.Hostile {
			return
		}
		prey, d := nearestPrey(w, t.X, t.Y, t.Z)
		if prey == ecs.NoEntity {
			return
		}
		px, py, pz, _ := position(w, prey)
		nav := &navigator{w: w, e: e}
		if d > c.AttackRange*c.AttackRange {
			nav.TryMoveTo(px, py, pz, 1.0)
			return
		}
		nav.ClearPath()
		if c.Cooldown > 0 {
			return
		}
		c.Cooldown = creatureAttackFrames
		requestDamage(w, prey, mode.DamageSource{Kind: mode.DamageMob, Attacker: e}, c.AttackDamage)
	})
}

func nearestPrey(w *ecs.World, x, y, z float64) (ecs.Entity, float64) {
	best, bestD := ecs.NoEntity, math.Inf(1)
	consider := func(e ecs.Entity) {
		info, ok := describe(w, e)
		if !ok || !info.Alive {
			return
		}
		if d := distSq(x, y, z, info.X, info.Y, info.Z); d <= creatureSightSq && d < bestD {
			best, bestD = e, d
		}
	}
	ecs.ForEach(w, component.MaidTagComponent.Kind(), func(e ecs.Entity, _ *component.MaidTag) { consider(e) })
	ecs.ForEach(w, component.PlayerTagComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag) { consider(e) })
	return best, bestD
}

func requestDamage(w *ecs.World, target ecs.Entity, src mode.DamageSource, amount float32) {
	req := ecs.CreateEntity(w)
	_ = ecs.Add(w, req, component.DamageRequestComponent.Kind(), &component.DamageRequest{
		Target: target,
		Source: src,
		Amount: amount,
	})
}
