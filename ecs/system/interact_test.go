package system

import (
	"testing"

	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/ecs/entity"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
)

func interact(w *ecs.World, player, maid ecs.Entity, stack item.Stack) {
	req := ecs.CreateEntity(w)
	_ = ecs.Add(w, req, component.InteractRequestComponent.Kind(), &component.InteractRequest{Player: player, Maid: maid, Stack: stack})
	NewInteractSystem(nil).Update(w)
}

func TestSugarFallsBackToDefaultMode(t *testing.T) {
	w, _ := newTestWorld(t)
	reg := newTestRegistry(t, testMode("fencer", 3010, []mode.Entry{{ID: 0x80, Name: "Fencer"}}, nil))
	player, _ := entity.NewPlayer(w, 0, 64, 0, item.Stack{ID: item.Sugar, Count: 2})
	maid := spawnMaid(t, w, reg, entity.MaidParams{X: 1, Y: 64, Z: 0, Master: player, Mode: 0x80})

	interact(w, player, maid, item.Stack{ID: item.Sugar, Count: 1})

	if got := controllerOf(t, w, maid).ActiveID(); got != testEscorter {
		t.Fatalf("expected default mode, got %s", got)
	}
	inv, _ := ecs.Get(w, player, component.InventoryComponent.Kind())
	if inv.Items.Count(item.Sugar) != 1 {
		t.Fatalf("expected one sugar consumed, left %d", inv.Items.Count(item.Sugar))
	}
}

func TestChangeModeConsumedByMode(t *testing.T) {
	w, _ := newTestWorld(t)
	reg := newTestRegistry(t, testMode("fencer", 3010, []mode.Entry{{ID: 0x80, Name: "Fencer"}}, func(in *mode.Instance) mode.Hooks {
		return mode.Hooks{
			ChangeMode: func(ecs.Entity) bool {
				inv := in.Owner().Inventory()
				if inv == nil || !item.IsSword(inv.Held().ID) {
					return false
				}
				return in.Owner().SetMode(0x80)
			},
		}
	}))
	player, _ := entity.NewPlayer(w, 0, 64, 0)
	maid := spawnMaid(t, w, reg, entity.MaidParams{X: 1, Y: 64, Z: 0, Master: player, Mode: testEscorter,
		Inventory: []item.Stack{{ID: "iron_sword", Count: 1}}})

	interact(w, player, maid, item.Stack{ID: item.Sugar, Count: 1})
	if got := controllerOf(t, w, maid).ActiveID(); got != 0x80 {
		t.Fatalf("expected fencer, got %s", got)
	}
}

func TestPreInteractSuppressesBuiltin(t *testing.T) {
	w, _ := newTestWorld(t)
	var seen []string
	reg := newTestRegistry(t, testMode("picky", 3010, []mode.Entry{{ID: 0x80, Name: "Picky"}}, func(*mode.Instance) mode.Hooks {
		return mode.Hooks{
			PreInteract: func(_ ecs.Entity, s item.Stack) bool {
				seen = append(seen, "pre:"+s.ID)
				return s.ID == item.Sugar
			},
			Interact: func(_ ecs.Entity, s item.Stack) bool {
				seen = append(seen, "post:"+s.ID)
				return true
			},
		}
	}))
	player, _ := entity.NewPlayer(w, 0, 64, 0)
	maid := spawnMaid(t, w, reg, entity.MaidParams{X: 1, Y: 64, Z: 0, Master: player, Mode: 0x80})

	interact(w, player, maid, item.Stack{ID: item.Sugar, Count: 1})
	interact(w, player, maid, item.Stack{ID: "bread", Count: 1})

	if got := controllerOf(t, w, maid).ActiveID(); got != 0x80 {
		t.Fatalf("PreInteract must suppress the sugar switch, got %s", got)
	}
	want := []string{"pre:sugar", "pre:bread", "post:bread"}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, seen)
		}
	}
}
