package system

import (
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
	"github.com/sirupsen/logrus"
)

// InteractSystem routes a player's item use on a maid: the active mode's
// PreInteract, then built-in handling, then the active mode's Interact.
// Sugar is the built-in mode-change stimulus.
type InteractSystem struct {
	log logrus.FieldLogger
}

func NewInteractSystem(log logrus.FieldLogger) *InteractSystem {
	return &InteractSystem{log: systemLogger(log, "interact")}
}

func (s *InteractSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.InteractRequestComponent.Kind(), func(req ecs.Entity, ir *component.InteractRequest) {
		s.handle(w, ir)
		ecs.DestroyEntity(w, req)
	})
}

func (s *InteractSystem) handle(w *ecs.World, ir *component.InteractRequest) {
	ai, ok := ecs.Get(w, ir.Maid, component.AIComponent.Kind())
	if !ok || ai.Controller == nil {
		return
	}
	c := ai.Controller
	entry := s.log.WithFields(logrus.Fields{"entity": ir.Maid.String(), "item": ir.Stack.ID})

	if c.PreInteract(ir.Player, ir.Stack) {
		entry.Debug("handled by mode before built-in")
		return
	}
	if s.builtin(w, c, ir) {
		return
	}
	if c.Interact(ir.Player, ir.Stack) {
		entry.Debug("handled by mode")
	}
}

func (s *InteractSystem) builtin(w *ecs.World, c *mode.Controller, ir *component.InteractRequest) bool {
	if ir.Stack.ID != item.Sugar {
		return false
	}
	if !c.ChangeMode(ir.Player) {
		if def, ok := c.Registry().Default(); ok {
			c.SetMode(def)
		}
	}
	if inv, ok := ecs.Get(w, ir.Player, component.InventoryComponent.Kind()); ok {
		inv.Items.Remove(item.Sugar, 1)
	}
	name := c.Registry().EntryName(c.ActiveID())
	w.Events().Push(ecs.Event{Type: EventModeChanged, Entity: ir.Maid, Data: name})
	s.log.WithFields(logrus.Fields{
		"entity": ir.Maid.String(),
		"mode":   name,
	}).Info("mode changed")
	return true
}
