package system

import (
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
	"github.com/sirupsen/logrus"
)

const hurtFrames = 10

// DamageSystem consumes DamageRequests. For maids the active mode sees the
// damage first through AttackEntityFrom, then DamageEntity.
type DamageSystem struct {
	log logrus.FieldLogger
}

func NewDamageSystem(log logrus.FieldLogger) *DamageSystem {
	return &DamageSystem{log: systemLogger(log, "damage")}
}

func (s *DamageSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.HealthComponent.Kind(), func(_ ecs.Entity, h *component.Health) {
		if h.HurtTicks > 0 {
			h.HurtTicks--
		}
	})
	ecs.ForEach(w, component.DamageRequestComponent.Kind(), func(req ecs.Entity, dr *component.DamageRequest) {
		s.apply(w, dr)
		ecs.DestroyEntity(w, req)
	})
}

func (s *DamageSystem) apply(w *ecs.World, dr *component.DamageRequest) {
	h, ok := ecs.Get(w, dr.Target, component.HealthComponent.Kind())
	if !ok || h.Current <= 0 || h.HurtTicks > 0 {
		return
	}
	entry := s.log.WithFields(logrus.Fields{
		"entity": dr.Target.String(),
		"source": dr.Source.Kind,
		"amount": dr.Amount,
	})

	if ai, ok := ecs.Get(w, dr.Target, component.AIComponent.Kind()); ok && ai.Controller != nil {
		if in, ok := ai.Controller.Active(); ok {
			entry = entry.WithField("mode", in.Name())
			switch res := in.AttackEntityFrom(dr.Source, dr.Amount); res {
			case mode.HandledSuppressDefault:
				entry.Debug("damage suppressed by mode")
				return
			case mode.HandledRunDefaultThenSuppress:
				entry.Debug("default damage forced by mode")
			default:
				if in.DamageEntity(ai.Controller.ActiveID(), dr.Source, dr.Amount) {
					entry.Debug("damage taken over by mode")
					return
				}
			}
		}
	}

	h.Current -= dr.Amount
	h.HurtTicks = hurtFrames
	entry.WithField("health", h.Current).Debug("damaged")
	if h.Current <= 0 {
		s.kill(w, dr.Target)
	}
}

func (s *DamageSystem) kill(w *ecs.World, e ecs.Entity) {
	if ai, ok := ecs.Get(w, e, component.AIComponent.Kind()); ok && ai.Controller != nil {
		ai.Controller.Detach()
	}
	if c, ok := ecs.Get(w, e, component.CreatureComponent.Kind()); ok && c.Drop != "" {
		if x, y, z, ok := position(w, e); ok {
			drop := ecs.CreateEntity(w)
			_ = ecs.Add(w, drop, component.PickupComponent.Kind(), &component.Pickup{Stack: item.Stack{ID: c.Drop, Count: 1}})
			_ = ecs.Add(w, drop, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Z: z})
		}
	}
	w.Events().Push(ecs.Event{Type: EventKilled, Entity: e})
	if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		return
	}
	s.log.WithField("entity", e.String()).Info("died")
	ecs.DestroyEntity(w, e)
}
