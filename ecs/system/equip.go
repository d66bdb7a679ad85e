package system

import (
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
)

const equipInterval = 10

// EquipSystem asks the active mode which slot to hold every few ticks.
type EquipSystem struct{}

func NewEquipSystem() *EquipSystem {
	return &EquipSystem{}
}

func (s *EquipSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.AIComponent.Kind(), component.InventoryComponent.Kind(), func(e ecs.Entity, ai *component.AI, inv *component.Inventory) {
		if ai.EquipTimer > 0 {
			ai.EquipTimer--
			return
		}
		ai.EquipTimer = equipInterval
		if ai.Controller == nil || inv.Items == nil {
			return
		}
		in, ok := ai.Controller.Active()
		if !ok {
			return
		}
		if slot := in.NextEquipItem(ai.Controller.ActiveID()); slot >= 0 {
			inv.Items.Select(slot)
		}
	})
}
