package entity

import (
	"fmt"

	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/item"
)

const defaultPlayerHealth = 20

func NewPlayer(w *ecs.World, x, y, z float64, stacks ...item.Stack) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	inv := item.NewInventory(36)
	for _, s := range stacks {
		inv.Add(s)
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Z: z}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: defaultPlayerHealth, Max: defaultPlayerHealth}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}
	if err := ecs.Add(w, e, component.InventoryComponent.Kind(), &component.Inventory{Items: inv}); err != nil {
		return 0, fmt.Errorf("player: add inventory: %w", err)
	}
	return e, nil
}
