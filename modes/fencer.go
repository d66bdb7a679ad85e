package modes

import (
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
)

// NewFencer fights hostiles with swords. The Bloodsucker variant prefers
// axes and keeps hitting a target until it is dead.
func NewFencer() *mode.Descriptor {
	d := &mode.Descriptor{
		Name:     FencerName,
		Priority: 3010,
		Entries: []mode.Entry{
			{ID: Fencer, Name: "Fencer"},
			{ID: Bloodsucker, Name: "Bloodsucker"},
		},
	}
	d.New = func(in *mode.Instance) mode.Hooks {
		owner := in.Owner()
		return mode.Hooks{
			AddEntityMode: keepDefaults,
			ChangeMode: func(ecs.Entity) bool {
				first := firstSlot(owner)
				switch {
				case item.IsSword(first.ID):
					return owner.SetMode(Fencer)
				case item.IsAxe(first.ID):
					return owner.SetMode(Bloodsucker)
				}
				return false
			},
			SetMode: func(id mode.ID) bool {
				switch id {
				case Fencer:
					owner.SetBloodsuck(false)
				case Bloodsucker:
					owner.SetBloodsuck(true)
				default:
					return false
				}
				owner.SetFreedom(false)
				return true
			},
			NextEquipItem: func(id mode.ID) int {
				inv := owner.Inventory()
				if id == Bloodsucker {
					if slot := bestSlot(inv, item.IsAxe); slot >= 0 {
						return slot
					}
				}
				return bestSlot(inv, item.IsSword)
			},
			CheckItemStack: func(s item.Stack) bool {
				return item.IsSword(s.ID) || item.IsAxe(s.ID)
			},
		}
	}
	return d
}

// bestSlot returns the slot holding the hardest-hitting item matching
// kind, or -1.
func bestSlot(inv *item.Inventory, kind func(string) bool) int {
	if inv == nil {
		return -1
	}
	best, bestDamage := -1, float32(-1)
	for i, s := range inv.Slots {
		if s.Empty() || !kind(s.ID) {
			continue
		}
		if d := item.AttackDamage(s.ID); d > bestDamage {
			best, bestDamage = i, d
		}
	}
	return best
}
