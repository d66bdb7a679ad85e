package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
	"github.com/milk9111/maidmodes/voxel"
)

const (
	defaultMaidHealth = 20
	defaultMaidSlots  = 18
	defaultMoveSpeed  = 0.25
)

// TaskFactory builds the default task lists for one maid.
type TaskFactory func(w *ecs.World, e ecs.Entity) mode.DefaultTasks

// OwnerFactory adapts a maid entity to mode.Owner.
type OwnerFactory func(w *ecs.World, e ecs.Entity) mode.Owner

type MaidParams struct {
	ID        uuid.UUID
	Name      string
	X, Y, Z   float64
	Master    ecs.Entity
	Mode      mode.ID
	Health    float32
	Slots     int
	Inventory []item.Stack
	MoveSpeed float64
}

// NewMaid spawns a maid, attaches every registered mode and selects
// p.Mode, falling back to the registry default.
func NewMaid(w *ecs.World, reg *mode.Registry, owner OwnerFactory, tasks TaskFactory, p MaidParams) (ecs.Entity, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Health <= 0 {
		p.Health = defaultMaidHealth
	}
	if p.Slots <= 0 {
		p.Slots = defaultMaidSlots
	}
	if p.MoveSpeed <= 0 {
		p.MoveSpeed = defaultMoveSpeed
	}

	e := ecs.CreateEntity(w)
	inv := item.NewInventory(p.Slots)
	for _, s := range p.Inventory {
		inv.Add(s)
	}
	home := voxel.FloorPos(p.X, p.Y, p.Z)

	if err := ecs.Add(w, e, component.MaidTagComponent.Kind(), &component.MaidTag{}); err != nil {
		return 0, fmt.Errorf("maid: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: p.X, Y: p.Y, Z: p.Z}); err != nil {
		return 0, fmt.Errorf("maid: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.MaidComponent.Kind(), &component.Maid{Name: p.Name, Master: p.Master, Home: home, TargetTile: home}); err != nil {
		return 0, fmt.Errorf("maid: add maid: %w", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: p.Health, Max: p.Health}); err != nil {
		return 0, fmt.Errorf("maid: add health: %w", err)
	}
	if err := ecs.Add(w, e, component.InventoryComponent.Kind(), &component.Inventory{Items: inv}); err != nil {
		return 0, fmt.Errorf("maid: add inventory: %w", err)
	}
	if err := ecs.Add(w, e, component.PathfindingComponent.Kind(), &component.Pathfinding{}); err != nil {
		return 0, fmt.Errorf("maid: add pathfinding: %w", err)
	}
	if err := ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{ID: p.ID}); err != nil {
		return 0, fmt.Errorf("maid: add persistent: %w", err)
	}

	var defaults mode.DefaultTasks
	if tasks != nil {
		defaults = tasks(w, e)
	}
	ctrl, err := mode.NewController(reg, owner(w, e), defaults)
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("maid: attach modes: %w", err)
	}
	if err := ecs.Add(w, e, component.AIComponent.Kind(), &component.AI{Controller: ctrl, MoveSpeed: p.MoveSpeed}); err != nil {
		return 0, fmt.Errorf("maid: add ai: %w", err)
	}

	if !ctrl.SetMode(p.Mode) {
		if def, ok := reg.Default(); ok {
			ctrl.SetMode(def)
		}
	}
	return e, nil
}
