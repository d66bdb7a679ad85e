package entity

import (
	"fmt"

	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/item"
)

// NewPickup drops a loose stack at (x, y, z).
func NewPickup(w *ecs.World, x, y, z float64, stack item.Stack) (ecs.Entity, error) {
	if stack.Empty() {
		return 0, fmt.Errorf("pickup: empty stack")
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{Stack: stack}); err != nil {
		return 0, fmt.Errorf("pickup: add pickup: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Z: z}); err != nil {
		return 0, fmt.Errorf("pickup: add transform: %w", err)
	}
	return e, nil
}
