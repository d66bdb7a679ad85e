package modes

import (
	"testing"

	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
)

func TestFencerEquipsBestWeapon(t *testing.T) {
	cases := []struct {
		id   mode.ID
		inv  []item.Stack
		want int
	}{
		{Fencer, []item.Stack{{ID: "wooden_sword", Count: 1}, {ID: "iron_axe", Count: 1}, {ID: "diamond_sword", Count: 1}}, 2},
		{Bloodsucker, []item.Stack{{ID: "wooden_sword", Count: 1}, {ID: "iron_axe", Count: 1}, {ID: "diamond_sword", Count: 1}}, 1},
		{Bloodsucker, []item.Stack{{ID: "bread", Count: 1}, {ID: "stone_sword", Count: 1}}, 1},
		{Fencer, []item.Stack{{ID: "bread", Count: 1}}, -1},
	}
	for _, c := range cases {
		t.Run(c.id.String(), func(t *testing.T) {
			_, ctrl := newMaid(t, newRegistry(t), flatWorld(), c.inv...)
			ctrl.SetMode(c.id)
			if got := activeOf(t, ctrl).NextEquipItem(c.id); got != c.want {
				t.Fatalf("expected slot %d, got %d", c.want, got)
			}
		})
	}
}

func TestFencerPicksUpWeapons(t *testing.T) {
	_, ctrl := newMaid(t, newRegistry(t), flatWorld())
	ctrl.SetMode(Fencer)
	in := activeOf(t, ctrl)

	for id, want := range map[string]bool{"iron_sword": true, "wooden_axe": true, "torch": false, "raw_beef": false} {
		if got := in.CheckItemStack(item.Stack{ID: id, Count: 1}); got != want {
			t.Fatalf("%s: expected %v", id, want)
		}
	}
	if in.IsSearchBlock() || in.IsSearchEntity() {
		t.Fatalf("fencer targets hostiles through the host task")
	}
}

func TestBloodsuckerKeepsTarget(t *testing.T) {
	o, ctrl := newMaid(t, newRegistry(t), flatWorld())

	ctrl.SetMode(Bloodsucker)
	if activeOf(t, ctrl).IsChangeTarget(0) {
		t.Fatalf("bloodsucker must keep its target")
	}
	ctrl.SetMode(Fencer)
	if o.bloodsuck || !activeOf(t, ctrl).IsChangeTarget(0) {
		t.Fatalf("fencer must let go of its target")
	}
}
