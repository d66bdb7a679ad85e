package system

import (
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
	"github.com/milk9111/maidmodes/voxel"
)

// maidOwner adapts one maid entity to mode.Owner. It stores only the
// handle, so a destroyed maid reads as zero values.
type maidOwner struct {
	w *ecs.World
	e ecs.Entity
}

func newMaidOwner(w *ecs.World, e ecs.Entity) *maidOwner {
	return &maidOwner{w: w, e: e}
}

// NewOwner is the mode.Owner for maid entities.
func NewOwner(w *ecs.World, e ecs.Entity) mode.Owner {
	return newMaidOwner(w, e)
}

func (o *maidOwner) Entity() ecs.Entity { return o.e }

func (o *maidOwner) Position() (float64, float64, float64) {
	t, ok := ecs.Get(o.w, o.e, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, 0
	}
	return t.X, t.Y, t.Z
}

func (o *maidOwner) BlockPos() voxel.Pos {
	return voxel.FloorPos(o.Position())
}

func (o *maidOwner) maid() *component.Maid {
	m, _ := ecs.Get(o.w, o.e, component.MaidComponent.Kind())
	return m
}

func (o *maidOwner) TargetTile() voxel.Pos {
	if m := o.maid(); m != nil {
		return m.TargetTile
	}
	return voxel.Pos{}
}

func (o *maidOwner) SetTargetTile(p voxel.Pos) {
	if m := o.maid(); m != nil {
		m.TargetTile = p
	}
}

func (o *maidOwner) IsBloodsuck() bool {
	m := o.maid()
	return m != nil && m.Bloodsuck
}

func (o *maidOwner) SetBloodsuck(v bool) {
	if m := o.maid(); m != nil {
		m.Bloodsuck = v
	}
}

func (o *maidOwner) SetFreedom(v bool) {
	m := o.maid()
	if m == nil {
		return
	}
	if v && !m.Freedom {
		m.Home = o.BlockPos()
	}
	m.Freedom = v
}

func (o *maidOwner) Navigator() mode.Navigator {
	return &navigator{w: o.w, e: o.e}
}

func (o *maidOwner) World() *voxel.World {
	return terrain(o.w)
}

func (o *maidOwner) Inventory() *item.Inventory {
	inv, ok := ecs.Get(o.w, o.e, component.InventoryComponent.Kind())
	if !ok {
		return nil
	}
	return inv.Items
}

func (o *maidOwner) Describe(e ecs.Entity) (mode.EntityInfo, bool) {
	return describe(o.w, e)
}

func (o *maidOwner) controller() *mode.Controller {
	ai, ok := ecs.Get(o.w, o.e, component.AIComponent.Kind())
	if !ok {
		return nil
	}
	return ai.Controller
}

func (o *maidOwner) ModeID() mode.ID {
	if c := o.controller(); c != nil {
		return c.ActiveID()
	}
	return mode.NoMode
}

func (o *maidOwner) SetMode(id mode.ID) bool {
	c := o.controller()
	return c != nil && c.SetMode(id)
}

// TileInUse reports whether any other maid's modes claim tile.
func (o *maidOwner) TileInUse(tile *voxel.Tile) bool {
	used := false
	ecs.ForEach(o.w, component.AIComponent.Kind(), func(e ecs.Entity, ai *component.AI) {
		if used || e == o.e || ai.Controller == nil {
			return
		}
		used = ai.Controller.IsUsingTile(tile)
	})
	return used
}

// describe builds the read-only view modes get of other entities.
func describe(w *ecs.World, e ecs.Entity) (mode.EntityInfo, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return mode.EntityInfo{}, false
	}
	info := mode.EntityInfo{X: t.X, Y: t.Y, Z: t.Z, Alive: true}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		info.Alive = h.Current > 0
	}
	switch {
	case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
		info.Kind = "player"
	case ecs.Has(w, e, component.MaidTagComponent.Kind()):
		info.Kind = "maid"
	default:
		if c, ok := ecs.Get(w, e, component.CreatureComponent.Kind()); ok {
			info.Kind = c.Kind
			info.Hostile = c.Hostile
		}
	}
	return info, true
}

// navigator drives the Pathfinding component of one entity.
type navigator struct {
	w *ecs.World
	e ecs.Entity
}

// MaxPathDistSq bounds how far a single straight-line move may reach.
const MaxPathDistSq = 48 * 48

func (n *navigator) ClearPath() {
	if pf, ok := ecs.Get(n.w, n.e, component.PathfindingComponent.Kind()); ok {
		pf.Active = false
		pf.Stuck = 0
	}
}

func (n *navigator) TryMoveTo(x, y, z, speed float64) bool {
	pf, ok := ecs.Get(n.w, n.e, component.PathfindingComponent.Kind())
	if !ok {
		return false
	}
	t, ok := ecs.Get(n.w, n.e, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	if distSq(t.X, t.Y, t.Z, x, y, z) > MaxPathDistSq {
		return false
	}
	if pf.Active && pf.GoalX == x && pf.GoalY == y && pf.GoalZ == z {
		return true
	}
	pf.Active = true
	pf.GoalX, pf.GoalY, pf.GoalZ = x, y, z
	pf.Speed = speed
	pf.Stuck = 0
	return true
}

func terrain(w *ecs.World) *voxel.World {
	e, ok := ecs.First(w, component.TerrainComponent.Kind())
	if !ok {
		return nil
	}
	t, _ := ecs.Get(w, e, component.TerrainComponent.Kind())
	return t.World
}

func position(w *ecs.World, e ecs.Entity) (x, y, z float64, ok bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, 0, false
	}
	return t.X, t.Y, t.Z, true
}

func distSq(ax, ay, az, bx, by, bz float64) float64 {
	dx, dy, dz := ax-bx, ay-by, az-bz
	return dx*dx + dy*dy + dz*dz
}
