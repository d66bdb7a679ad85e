package modes

import (
	"fmt"
	"image/color"

	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
	"github.com/milk9111/maidmodes/nbt"
	"github.com/milk9111/maidmodes/voxel"
	"golang.org/x/image/colornames"
)

// DarkLevel is the light level below which a torcher places a torch.
const DarkLevel = 8

const keyTorchesPlaced = "TorchesPlaced"

// DefaultGlow is the tint of a maid holding a torch.
var DefaultGlow color.Color = colornames.Orange

// NewTorcher lights up dark floor blocks around the maid with torches from
// her inventory.
func NewTorcher(glow color.Color) *mode.Descriptor {
	if glow == nil {
		glow = DefaultGlow
	}
	argb := PackARGB(glow)
	d := &mode.Descriptor{
		Name:     TorcherName,
		Priority: 5510,
		Search:   mode.SearchScan,
		Blocks:   mode.BlockRange{Radius: 8, Height: 2},
		Entries:  []mode.Entry{{ID: Torcher, Name: "Torcher"}},
	}
	d.New = func(in *mode.Instance) mode.Hooks {
		owner := in.Owner()
		placed := 0
		return mode.Hooks{
			AddEntityMode: keepDefaults,
			ChangeMode: func(ecs.Entity) bool {
				if firstSlot(owner).ID != item.Torch {
					return false
				}
				return owner.SetMode(Torcher)
			},
			SetMode: func(id mode.ID) bool {
				if id != Torcher {
					return false
				}
				owner.SetBloodsuck(false)
				return true
			},
			NextEquipItem: func(mode.ID) int {
				return owner.Inventory().FindFunc(func(s item.Stack) bool { return s.ID == item.Torch })
			},
			CheckItemStack: func(s item.Stack) bool { return s.ID == item.Torch },
			CheckBlock: func(_ mode.ID, x, y, z int) bool {
				if owner.Inventory().Count(item.Torch) == 0 {
					return false
				}
				return canLight(owner.World(), voxel.Pos{X: x, Y: y, Z: z})
			},
			ExecuteBlock: func(_ mode.ID, x, y, z int) bool {
				p := voxel.Pos{X: x, Y: y, Z: z}
				w := owner.World()
				if !canLight(w, p) || owner.Inventory().Remove(item.Torch, 1) == 0 {
					return false
				}
				w.SetBlock(p, voxel.Torch)
				placed++
				return false
			},
			ColorMultiplier: func(float32, float32) uint32 {
				if owner.Inventory().Held().ID != item.Torch {
					return 0
				}
				return argb
			},
			ShowSpecial: func(ctx mode.RenderContext) {
				if ctx.Canvas == nil {
					return
				}
				ctx.Canvas.Label(fmt.Sprintf("torches %d/%d", placed, owner.Inventory().Count(item.Torch)), int(ctx.X), int(ctx.Y)-labelOffset)
			},
			WriteState: func(tag *nbt.Compound) { tag.SetInt(keyTorchesPlaced, placed) },
			ReadState:  func(tag *nbt.Compound) { placed = tag.GetInt(keyTorchesPlaced) },
		}
	}
	return d
}

// canLight reports whether p is a dark air block a torch can stand in.
func canLight(w *voxel.World, p voxel.Pos) bool {
	return w.Block(p) == voxel.Air && w.IsSolid(p.Below()) && w.Light(p) < DarkLevel
}
