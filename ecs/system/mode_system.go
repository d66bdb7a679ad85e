package system

import (
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/mode"
	"github.com/sirupsen/logrus"
)

// ModeSystem ticks every controller: OnUpdate, the targeting and movement
// task lists, then UpdateAITick.
type ModeSystem struct {
	log  logrus.FieldLogger
	last map[ecs.Entity]mode.ID
}

func NewModeSystem(log logrus.FieldLogger) *ModeSystem {
	return &ModeSystem{log: systemLogger(log, "mode"), last: map[ecs.Entity]mode.ID{}}
}

func (s *ModeSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	seen := make(map[ecs.Entity]struct{}, len(s.last))
	ecs.ForEach(w, component.AIComponent.Kind(), func(e ecs.Entity, ai *component.AI) {
		c := ai.Controller
		if c == nil {
			return
		}
		seen[e] = struct{}{}

		c.Update()
		move, target := c.Tasks()
		target.Tick()
		move.Tick()
		c.UpdateAITick()

		s.logSwitch(e, c)
	})
	for e := range s.last {
		if _, ok := seen[e]; !ok {
			delete(s.last, e)
		}
	}
}

func (s *ModeSystem) logSwitch(e ecs.Entity, c *mode.Controller) {
	id := c.ActiveID()
	prev, ok := s.last[e]
	s.last[e] = id
	if ok && prev == id {
		return
	}
	name := "none"
	if in, ok := c.Active(); ok {
		name = in.Name()
	}
	s.log.WithFields(logrus.Fields{
		"entity": e.String(),
		"mode":   c.Registry().EntryName(id),
	}).Debugf("active mode %s", name)
}
