package modes

import (
	"testing"

	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
	"github.com/milk9111/maidmodes/voxel"
)

type fakeNav struct {
	goals   [][3]float64
	cleared int
}

func (n *fakeNav) ClearPath() { n.cleared++ }

func (n *fakeNav) TryMoveTo(x, y, z, _ float64) bool {
	n.goals = append(n.goals, [3]float64{x, y, z})
	return true
}

type fakeOwner struct {
	world     *voxel.World
	inv       *item.Inventory
	x, y, z   float64
	target    voxel.Pos
	bloodsuck bool
	freedom   bool
	nav       fakeNav
	ctrl      *mode.Controller
	inUse     func(*voxel.Tile) bool
}

func (o *fakeOwner) Entity() ecs.Entity { return ecs.NoEntity }
func (o *fakeOwner) Position() (float64, float64, float64) { return o.x, o.y, o.z }
func (o *fakeOwner) TargetTile() voxel.Pos { return o.target }
func (o *fakeOwner) SetTargetTile(p voxel.Pos) { o.target = p }
func (o *fakeOwner) IsBloodsuck() bool { return o.bloodsuck }
func (o *fakeOwner) SetBloodsuck(v bool) { o.bloodsuck = v }
func (o *fakeOwner) SetFreedom(v bool) { o.freedom = v }
func (o *fakeOwner) Navigator() mode.Navigator { return &o.nav }
func (o *fakeOwner) World() *voxel.World { return o.world }
func (o *fakeOwner) Inventory() *item.Inventory { return o.inv }
func (o *fakeOwner) Describe(ecs.Entity) (mode.EntityInfo, bool) { return mode.EntityInfo{}, false }

func (o *fakeOwner) SetMode(id mode.ID) bool {
	return o.ctrl != nil && o.ctrl.SetMode(id)
}

func (o *fakeOwner) TileInUse(t *voxel.Tile) bool {
	return o.inUse != nil && o.inUse(t)
}

func newRegistry(t *testing.T) *mode.Registry {
	t.Helper()
	reg := mode.NewRegistry()
	if err := Register(reg, Builtin()...); err != nil {
		t.Fatalf("register: %v", err)
	}
	return reg
}

// flatWorld is a dark world with a stone floor at y=63.
func flatWorld() *voxel.World {
	w := voxel.NewWorld(0)
	w.Fill(voxel.Pos{X: -8, Y: 63, Z: -8}, voxel.Pos{X: 8, Y: 63, Z: 8}, voxel.Stone)
	return w
}

func newMaid(t *testing.T, reg *mode.Registry, world *voxel.World, stacks ...item.Stack) (*fakeOwner, *mode.Controller) {
	t.Helper()
	o := &fakeOwner{world: world, inv: item.NewInventory(9), x: 0.5, y: 64, z: 0.5}
	for _, s := range stacks {
		o.inv.Add(s)
	}
	ctrl, err := mode.NewController(reg, o, nil)
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	o.ctrl = ctrl
	if !ctrl.SetMode(Escorter) {
		t.Fatalf("escorter rejected")
	}
	return o, ctrl
}

func activeOf(t *testing.T, ctrl *mode.Controller) *mode.Instance {
	t.Helper()
	in, ok := ctrl.Active()
	if !ok {
		t.Fatalf("no active mode")
	}
	return in
}
