package entity

import (
	"fmt"

	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/voxel"
)

// NewTerrain adds the singleton holding the block world, replacing any
// previous one.
func NewTerrain(w *ecs.World, world *voxel.World) (ecs.Entity, error) {
	if old, ok := ecs.First(w, component.TerrainComponent.Kind()); ok {
		ecs.DestroyEntity(w, old)
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TerrainComponent.Kind(), &component.Terrain{World: world}); err != nil {
		return 0, fmt.Errorf("terrain: add terrain: %w", err)
	}
	return e, nil
}
