package mode

import (
	"github.com/milk9111/maidmodes/ai"
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/voxel"
)

type moveCall struct {
	x, y, z, speed float64
}

type fakeNav struct {
	moves   []moveCall
	clears  int
	succeed bool
}

func (n *fakeNav) ClearPath() { n.clears++ }

func (n *fakeNav) TryMoveTo(x, y, z, speed float64) bool {
	n.moves = append(n.moves, moveCall{x, y, z, speed})
	return n.succeed
}

type fakeOwner struct {
	tile      voxel.Pos
	bloodsuck bool
	nav       *fakeNav
	world     *voxel.World
	inv       *item.Inventory
}

func newFakeOwner() *fakeOwner {
	return &fakeOwner{nav: &fakeNav{succeed: true}, world: voxel.NewWorld(15), inv: item.NewInventory(4)}
}

func (o *fakeOwner) Entity() ecs.Entity { return ecs.NoEntity }
func (o *fakeOwner) Position() (float64, float64, float64) { return 0, 64, 0 }
func (o *fakeOwner) TargetTile() voxel.Pos { return o.tile }
func (o *fakeOwner) SetTargetTile(p voxel.Pos) { o.tile = p }
func (o *fakeOwner) IsBloodsuck() bool { return o.bloodsuck }
func (o *fakeOwner) SetBloodsuck(v bool) { o.bloodsuck = v }
func (o *fakeOwner) SetFreedom(bool) {}
func (o *fakeOwner) Navigator() Navigator { return o.nav }
func (o *fakeOwner) World() *voxel.World { return o.world }
func (o *fakeOwner) Inventory() *item.Inventory { return o.inv }
func (o *fakeOwner) Describe(ecs.Entity) (EntityInfo, bool) { return EntityInfo{}, false }
func (o *fakeOwner) SetMode(ID) bool { return false }
func (o *fakeOwner) TileInUse(*voxel.Tile) bool { return false }

func noop(*ai.TaskList, *ai.TaskList) {}

// bare builds a descriptor that overrides nothing but the required hook.
func bare(name string, priority int) *Descriptor {
	return &Descriptor{
		Name:     name,
		Priority: priority,
		New: func(*Instance) Hooks {
			return Hooks{AddEntityMode: noop}
		},
	}
}

func mustInstance(d *Descriptor, o Owner) *Instance {
	in, err := NewInstance(d, o)
	if err != nil {
		panic(err)
	}
	return in
}
