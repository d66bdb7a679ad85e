package script

import (
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
	"github.com/milk9111/maidmodes/voxel"
)

type fakeNav struct {
	moves   int
	cleared int
}

func (n *fakeNav) ClearPath() { n.cleared++ }

func (n *fakeNav) TryMoveTo(x, y, z, speed float64) bool {
	n.moves++
	return true
}

type fakeOwner struct {
	world     *voxel.World
	inv       *item.Inventory
	target    voxel.Pos
	bloodsuck bool
	nav       fakeNav
	ctrl      *mode.Controller
}

func newFakeOwner() *fakeOwner {
	w := voxel.NewWorld(15)
	w.Fill(voxel.Pos{X: -4, Y: 63, Z: -4}, voxel.Pos{X: 4, Y: 63, Z: 4}, voxel.Stone)
	return &fakeOwner{world: w, inv: item.NewInventory(9)}
}

func (o *fakeOwner) Entity() ecs.Entity { return ecs.NoEntity }
func (o *fakeOwner) Position() (float64, float64, float64) { return 0.5, 64, 0.5 }
func (o *fakeOwner) TargetTile() voxel.Pos { return o.target }
func (o *fakeOwner) SetTargetTile(p voxel.Pos) { o.target = p }
func (o *fakeOwner) IsBloodsuck() bool { return o.bloodsuck }
func (o *fakeOwner) SetBloodsuck(v bool) { o.bloodsuck = v }
func (o *fakeOwner) SetFreedom(bool) {}
func (o *fakeOwner) Navigator() mode.Navigator { return &o.nav }
func (o *fakeOwner) World() *voxel.World { return o.world }
func (o *fakeOwner) Inventory() *item.Inventory { return o.inv }
func (o *fakeOwner) TileInUse(*voxel.Tile) bool { return false }

func (o *fakeOwner) Describe(ecs.Entity) (mode.EntityInfo, bool) {
	return mode.EntityInfo{Kind: "cow", Alive: true, X: 2, Y: 64, Z: 2}, true
}

func (o *fakeOwner) SetMode(id mode.ID) bool {
	return o.ctrl != nil && o.ctrl.SetMode(id)
}
