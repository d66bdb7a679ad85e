package system

import (
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
	"github.com/sirupsen/logrus"
)

const (
	meleeReachSq    = 2.5 * 2.5
	meleeCooldown   = 15
	baseMeleeDamage = 1
)

// CombatSystem resolves maid attacks on their AttackTarget. The active mode
// may take over the swing with AttackEntityAsMob, and decides through
// IsChangeTarget whether the maid lets go of the target afterwards.
type CombatSystem struct {
	log logrus.FieldLogger
}

func NewCombatSystem(log logrus.FieldLogger) *CombatSystem {
	return &CombatSystem{log: systemLogger(log, "combat")}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.AIComponent.Kind(), component.AttackTargetComponent.Kind(), func(e ecs.Entity, ai *component.AI, at *component.AttackTarget) {
		if at.Cooldown > 0 {
			at.Cooldown--
		}
		if ai.Controller == nil {
			return
		}
		in, ok := ai.Controller.Active()
		if !ok {
			return
		}
		info, ok := describe(w, at.Entity)
		if !ok || !info.Alive {
			ecs.Remove(w, e, component.AttackTargetComponent.Kind())
			return
		}
		x, y, z, _ := position(w, e)
		nav := &navigator{w: w, e: e}
		if distSq(x, y, z, info.X, info.Y, info.Z) > meleeReachSq {
			nav.TryMoveTo(info.X, info.Y, info.Z, 1.0)
			return
		}
		if at.Cooldown > 0 {
			return
		}
		at.Cooldown = meleeCooldown

		id := ai.Controller.ActiveID()
		target := at.Entity
		if !in.AttackEntityAsMob(id, target) {
			requestDamage(w, target, mode.DamageSource{Kind: mode.DamageMob, Attacker: e}, meleeDamage(w, e))
		}
		s.log.WithFields(logrus.Fields{"entity": e.String(), "target": target.String()}).Debug("attack")

		if in.IsChangeTarget(target) {
			ecs.Remove(w, e, component.AttackTargetComponent.Kind())
		}
	})
}

func meleeDamage(w *ecs.World, e ecs.Entity) float32 {
	inv, ok := ecs.Get(w, e, component.InventoryComponent.Kind())
	if !ok || inv.Items == nil {
		return baseMeleeDamage
	}
	return baseMeleeDamage + item.AttackDamage(inv.Items.Held().ID)
}
