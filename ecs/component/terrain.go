package component

import "github.com/milk9111/maidmodes/voxel"

// Terrain is the singleton holding the block world.
type Terrain struct {
	World *voxel.World
}

var TerrainComponent = NewComponent[Terrain]()
