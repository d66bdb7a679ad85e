package sim

import (
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/mode"
	"github.com/milk9111/maidmodes/prefabs"
	"github.com/sirupsen/logrus"
)

// fireEvents turns the timeline entries due at the current tick into
// request entities for the systems to consume.
func (s *Sim) fireEvents() {
	tick := s.world.Tick()
	for s.next < len(s.events) && s.events[s.next].Tick <= tick {
		ev := s.events[s.next]
		s.next++
		if err := s.fire(ev); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"tick": ev.Tick,
				"kind": ev.Kind,
			}).Warn("event dropped")
			continue
		}
		s.log.WithFields(logrus.Fields{
			"tick": ev.Tick,
			"kind": ev.Kind,
			"maid": ev.Maid,
		}).Debug("event")
	}
}

func (s *Sim) fire(ev prefabs.EventSpec) error {
	w := s.world
	req := ecs.CreateEntity(w)
	var err error
	switch ev.Kind {
	case prefabs.EventInteract:
		err = ecs.Add(w, req, component.InteractRequestComponent.Kind(), &component.InteractRequest{
			Player: s.player,
			Maid:   s.maids[ev.Maid],
			Stack:  ev.Item.Stack(),
		})
	case prefabs.EventTeleport:
		target := s.player
		if ev.Maid != "" {
			target = s.maids[ev.Maid]
		}
		err = ecs.Add(w, req, component.TeleportRequestComponent.Kind(), &component.TeleportRequest{
			Entity: target,
			X:      ev.Pos[0],
			Y:      ev.Pos[1],
			Z:      ev.Pos[2],
		})
	case prefabs.EventDamage:
		err = ecs.Add(w, req, component.DamageRequestComponent.Kind(), &component.DamageRequest{
			Target: s.maids[ev.Maid],
			Source: mode.DamageSource{Kind: mode.DamagePlayer, Attacker: s.player},
			Amount: ev.Amount,
		})
	case prefabs.EventSave:
		err = ecs.Add(w, req, component.SaveRequestComponent.Kind(), &component.SaveRequest{})
	case prefabs.EventLoad:
		err = ecs.Add(w, req, component.LoadRequestComponent.Kind(), &component.LoadRequest{})
	}
	if err != nil {
		ecs.DestroyEntity(w, req)
	}
	return err
}
