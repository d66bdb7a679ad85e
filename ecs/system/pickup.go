package system

import (
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
)

const pickupReachSq = 1.5 * 1.5

// PickupSystem lets maids collect loose items their active mode accepts
// through CheckItemStack.
type PickupSystem struct{}

func NewPickupSystem() *PickupSystem {
	return &PickupSystem{}
}

func (s *PickupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(p ecs.Entity, pickup *component.Pickup, pt *component.Transform) {
		pickup.Age++
		ecs.ForEach2(w, component.AIComponent.Kind(), component.InventoryComponent.Kind(), func(e ecs.Entity, ai *component.AI, inv *component.Inventory) {
			if pickup.Stack.Empty() || ai.Controller == nil || inv.Items == nil {
				return
			}
			in, ok := ai.Controller.Active()
			if !ok || !in.CheckItemStack(pickup.Stack) {
				return
			}
			x, y, z, ok := position(w, e)
			if !ok || distSq(x, y, z, pt.X, pt.Y, pt.Z) > pickupReachSq {
				return
			}
			pickup.Stack.Count = inv.Items.Add(pickup.Stack)
		})
		if pickup.Stack.Empty() {
			ecs.DestroyEntity(w, p)
		}
	})
}
