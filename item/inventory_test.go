package item

import "testing"

func TestInventoryAddMerges(t *testing.T) {
	inv := NewInventory(2)
	if left := inv.Add(Stack{ID: Torch, Count: 60}); left != 0 {
		t.Fatalf("expected everything to fit, left %d", left)
	}
	if left := inv.Add(Stack{ID: Torch, Count: 10}); left != 0 {
		t.Fatalf("expected overflow into second slot, left %d", left)
	}
	if inv.Slots[0].Count != 64 || inv.Slots[1].Count != 6 {
		t.Fatalf("unexpected slots %+v", inv.Slots)
	}
	if left := inv.Add(Stack{ID: Sugar, Count: 1}); left != 1 {
		t.Fatalf("full inventory must reject, left %d", left)
	}
}

func TestInventoryRemoveAndCount(t *testing.T) {
	inv := NewInventory(3)
	inv.Add(Stack{ID: "raw_beef", Count: 3})
	inv.Add(Stack{ID: Coal, Count: 2})

	if got := inv.Remove("raw_beef", 5); got != 3 {
		t.Fatalf("expected 3 removed, got %d", got)
	}
	if inv.Count("raw_beef") != 0 || !inv.Slots[0].Empty() {
		t.Fatalf("slot must be emptied, got %+v", inv.Slots[0])
	}
	if inv.Count(Coal) != 2 {
		t.Fatalf("coal untouched, got %d", inv.Count(Coal))
	}
}

func TestHeldAndSelect(t *testing.T) {
	inv := NewInventory(2)
	inv.Slots[1] = Stack{ID: "iron_sword", Count: 1}
	if !inv.Held().Empty() {
		t.Fatalf("slot 0 is empty")
	}
	if inv.Select(5) {
		t.Fatalf("out of range select must fail")
	}
	inv.Select(1)
	if inv.Held().ID != "iron_sword" {
		t.Fatalf("expected sword held, got %+v", inv.Held())
	}
	if slot := inv.FindFunc(func(s Stack) bool { return IsSword(s.ID) }); slot != 1 {
		t.Fatalf("expected sword in slot 1, got %d", slot)
	}
}
