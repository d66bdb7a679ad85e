package mode

import (
	"image/color"

	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/voxel"
)

// Navigator is the movement service behind the default block hooks.
type Navigator interface {
	ClearPath()
	TryMoveTo(x, y, z, speed float64) bool
}

// EntityInfo is a read-only view of another entity.
type EntityInfo struct {
	Kind    string
	Hostile bool
	Alive   bool
	X, Y, Z float64
}

// Owner is the entity a mode instance is bound to. Implementations hold a
// handle into the host's entity table, never the entity itself.
type Owner interface {
	Entity() ecs.Entity
	Position() (x, y, z float64)

	TargetTile() voxel.Pos
	SetTargetTile(p voxel.Pos)

	IsBloodsuck() bool
	SetBloodsuck(v bool)
	SetFreedom(v bool)

	Navigator() Navigator
	World() *voxel.World
	Inventory() *item.Inventory

	Describe(e ecs.Entity) (EntityInfo, bool)
	// SetMode asks the owner's controller to switch modes.
	SetMode(id ID) bool
	// TileInUse reports whether another entity has claimed tile.
	TileInUse(tile *voxel.Tile) bool
}

// Canvas is the drawing surface handed to ShowSpecial.
type Canvas interface {
	Fill(x, y, w, h float64, c color.Color)
	Label(text string, x, y int)
}

// RenderContext carries the render pass inputs. X and Y are the entity's
// screen position, Z its height in the world. Hooks reading it must not
// change simulation state.
type RenderContext struct {
	X, Y, Z     float64
	Light       float32
	PartialTick float32
	Canvas      Canvas
}
