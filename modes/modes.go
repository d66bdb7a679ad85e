// Package modes holds the built-in maid modes.
package modes

import (
	"fmt"
	"image/color"

	"github.com/milk9111/maidmodes/ai"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
)

// Mode numbers handled by the built-in descriptors.
const (
	Wild        mode.ID = 0x0000
	Escorter    mode.ID = 0x0001
	Torcher     mode.ID = 0x0020
	Cook        mode.ID = 0x0021
	Fencer      mode.ID = 0x0080
	Bloodsucker mode.ID = 0x00C0
)

// Names of the built-in descriptors, also used as prefab basenames.
const (
	BasicName   = "basic"
	FencerName  = "fencer"
	TorcherName = "torcher"
	CookName    = "cook"
)

// Builtin returns a fresh descriptor for every built-in mode.
func Builtin() []*mode.Descriptor {
	return []*mode.Descriptor{
		NewBasic(),
		NewFencer(),
		NewTorcher(DefaultGlow),
		NewCook(),
	}
}

// Register adds descs to reg and makes Escorter the fallback mode.
func Register(reg *mode.Registry, descs ...*mode.Descriptor) error {
	for _, d := range descs {
		if err := reg.Register(d); err != nil {
			return fmt.Errorf("modes: %w", err)
		}
	}
	if err := reg.SetDefault(Escorter); err != nil {
		return fmt.Errorf("modes: %w", err)
	}
	return nil
}

// labelOffset lifts ShowSpecial labels above the maid.
const labelOffset = 16

// keepDefaults is the AddEntityMode of modes happy with the host tasks.
func keepDefaults(move, target *ai.TaskList) {}

// firstSlot is what a maid looks at when asked to change modes.
func firstSlot(o mode.Owner) item.Stack {
	inv := o.Inventory()
	if inv == nil || len(inv.Slots) == 0 {
		return item.Stack{}
	}
	return inv.Slots[0]
}

// PackARGB converts c to the packed form ColorMultiplier returns.
func PackARGB(c color.Color) uint32 {
	if c == nil {
		return 0
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}
