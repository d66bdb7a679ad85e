package entity

import (
	"fmt"

	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
)

type CreatureParams struct {
	Kind         string
	X, Y, Z      float64
	Hostile      bool
	Health       float32
	AttackDamage float32
	Drop         string
}

func NewCreature(w *ecs.World, p CreatureParams) (ecs.Entity, error) {
	if p.Health <= 0 {
		p.Health = 10
	}
	if p.Hostile && p.AttackDamage <= 0 {
		p.AttackDamage = 2
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CreatureComponent.Kind(), &component.Creature{
		Kind:         p.Kind,
		Hostile:      p.Hostile,
		AttackDamage: p.AttackDamage,
		AttackRange:  1.5,
		Drop:         p.Drop,
	}); err != nil {
		return 0, fmt.Errorf("creature: add creature: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: p.X, Y: p.Y, Z: p.Z}); err != nil {
		return 0, fmt.Errorf("creature: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: p.Health, Max: p.Health}); err != nil {
		return 0, fmt.Errorf("creature: add health: %w", err)
	}
	if err := ecs.Add(w, e, component.PathfindingComponent.Kind(), &component.Pathfinding{}); err != nil {
		return 0, fmt.Errorf("creature: add pathfinding: %w", err)
	}
	return e, nil
}
