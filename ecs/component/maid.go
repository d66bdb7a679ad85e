package component

import (
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/voxel"
)

// Maid is the host state modes read and write through their owner.
type Maid struct {
	Name       string
	Master     ecs.Entity
	Home       voxel.Pos
	TargetTile voxel.Pos
	Bloodsuck  bool
	Freedom    bool
}

var MaidComponent = NewComponent[Maid]()
