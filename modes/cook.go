package modes

import (
	"fmt"

	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
	"github.com/milk9111/maidmodes/nbt"
	"github.com/milk9111/maidmodes/voxel"
)

const (
	// CookTicks is how long one item takes to smelt.
	CookTicks = 40
	// SmeltsPerFuel is how many items one fuel item smelts.
	SmeltsPerFuel = 8

	keyCookTile = "CookTile"
)

// Furnace data keys.
const (
	FurnaceInput       = "Input"
	FurnaceInputCount  = "InputCount"
	FurnaceOutput      = "Output"
	FurnaceOutputCount = "OutputCount"
	FurnaceFuel        = "Fuel"
	FurnaceProgress    = "Progress"
)

// NewCook claims a furnace nobody else is using, feeds it raw food and fuel
// from the inventory and collects the results.
func NewCook() *mode.Descriptor {
	d := &mode.Descriptor{
		Name:     CookName,
		Priority: 5110,
		Search:   mode.SearchScan,
		Blocks:   mode.BlockRange{Radius: 8, Height: 2},
		Entries:  []mode.Entry{{ID: Cook, Name: "Cook"}},
	}
	d.New = func(in *mode.Instance) mode.Hooks {
		c := &cook{owner: in.Owner()}
		return mode.Hooks{
			AddEntityMode: keepDefaults,
			ChangeMode: func(ecs.Entity) bool {
				if _, ok := item.Smelted(firstSlot(c.owner).ID); !ok {
					return false
				}
				return c.owner.SetMode(Cook)
			},
			SetMode: func(id mode.ID) bool {
				if id != Cook {
					return false
				}
				c.owner.SetBloodsuck(false)
				return true
			},
			NextEquipItem: func(mode.ID) int { return c.owner.Inventory().FindFunc(smeltable) },
			CheckItemStack: func(s item.Stack) bool {
				return smeltable(s) || item.IsFuel(s.ID)
			},
			CheckBlock:   c.checkBlock,
			ExecuteBlock: c.executeBlock,
			UpdateBlock:  c.updateBlock,
			ResetBlock:   func(mode.ID) { c.tile = nil },
			IsUsingTile: func(t *voxel.Tile) bool {
				return c.tile != nil && t != nil && c.tile.Pos == t.Pos
			},
			Tiles: func() []*voxel.Tile {
				if c.tile == nil {
					return nil
				}
				return []*voxel.Tile{c.tile}
			},
			WriteState: c.writeState,
			ReadState:  c.readState,
			ShowSpecial: func(ctx mode.RenderContext) {
				if c.tile == nil || ctx.Canvas == nil {
					return
				}
				ctx.Canvas.Label(fmt.Sprintf("cook %d/%d", c.tile.Data.GetInt(FurnaceProgress), CookTicks), int(ctx.X), int(ctx.Y)-labelOffset)
			},
		}
	}
	return d
}

type cook struct {
	owner mode.Owner
	tile  *voxel.Tile
}

func smeltable(s item.Stack) bool {
	_, ok := item.Smelted(s.ID)
	return ok
}

func (c *cook) furnaceAt(x, y, z int) (*voxel.Tile, bool) {
	t, ok := c.owner.World().Tile(voxel.Pos{X: x, Y: y, Z: z})
	if !ok || t.Kind != voxel.Furnace {
		return nil, false
	}
	return t, true
}

func (c *cook) checkBlock(_ mode.ID, x, y, z int) bool {
	t, ok := c.furnaceAt(x, y, z)
	if !ok {
		return false
	}
	if c.tile != nil && c.tile.Pos != t.Pos {
		return false
	}
	return !c.owner.TileInUse(t) && c.hasWork(t)
}

func (c *cook) executeBlock(_ mode.ID, x, y, z int) bool {
	t, ok := c.furnaceAt(x, y, z)
	if !ok || c.owner.TileInUse(t) {
		c.tile = nil
		return false
	}
	c.tile = t
	c.work(t)
	return c.hasWork(t)
}

// updateBlock drops the claim when the furnace was broken.
func (c *cook) updateBlock() {
	if c.tile == nil {
		return
	}
	if t, ok := c.owner.World().Tile(c.tile.Pos); !ok || t != c.tile {
		c.tile = nil
	}
}

func (c *cook) hasWork(t *voxel.Tile) bool {
	data := t.Data
	if data.GetInt(FurnaceOutputCount) > 0 {
		return true
	}
	inv := c.owner.Inventory()
	hasInput := data.GetInt(FurnaceInputCount) > 0 || inv.FindFunc(smeltable) >= 0
	hasFuel := data.GetInt(FurnaceFuel) > 0 || inv.FindFunc(func(s item.Stack) bool { return item.IsFuel(s.ID) }) >= 0
	return hasInput && hasFuel
}

// work runs one tick at the furnace: collect, load, fuel, then smelt.
func (c *cook) work(t *voxel.Tile) {
	data := t.Data
	inv := c.owner.Inventory()

	if n := data.GetInt(FurnaceOutputCount); n > 0 {
		left := inv.Add(item.Stack{ID: data.GetString(FurnaceOutput), Count: n})
		data.SetInt(FurnaceOutputCount, left)
	}

	if data.GetInt(FurnaceInputCount) == 0 {
		if slot := inv.FindFunc(smeltable); slot >= 0 {
			s := inv.Slots[slot]
			inv.Slots[slot] = item.Stack{}
			data.SetString(FurnaceInput, s.ID)
			data.SetInt(FurnaceInputCount, s.Count)
		}
	}
	input := data.GetInt(FurnaceInputCount)
	if input == 0 {
		return
	}

	if data.GetInt(FurnaceFuel) == 0 {
		slot := inv.FindFunc(func(s item.Stack) bool { return item.IsFuel(s.ID) })
		if slot < 0 {
			return
		}
		inv.Remove(inv.Slots[slot].ID, 1)
		data.SetInt(FurnaceFuel, SmeltsPerFuel)
	}

	progress := data.GetInt(FurnaceProgress) + 1
	if progress < CookTicks {
		data.SetInt(FurnaceProgress, progress)
		return
	}
	out, _ := item.Smelted(data.GetString(FurnaceInput))
	if cur := data.GetString(FurnaceOutput); data.GetInt(FurnaceOutputCount) > 0 && cur != out {
		// Output slot still holds something else.
		return
	}
	data.SetInt(FurnaceProgress, 0)
	data.SetInt(FurnaceInputCount, input-1)
	data.SetInt(FurnaceFuel, data.GetInt(FurnaceFuel)-1)
	data.SetString(FurnaceOutput, out)
	data.SetInt(FurnaceOutputCount, data.GetInt(FurnaceOutputCount)+1)
}

func (c *cook) writeState(tag *nbt.Compound) {
	if c.tile == nil {
		tag.Remove(keyCookTile)
		return
	}
	tag.SetIntArray(keyCookTile, c.tile.Pos.Slice())
}

func (c *cook) readState(tag *nbt.Compound) {
	c.tile = nil
	p, ok := voxel.PosFromSlice(tag.GetIntArray(keyCookTile))
	if !ok {
		return
	}
	if t, ok := c.furnaceAt(p.X, p.Y, p.Z); ok {
		c.tile = t
	}
}
