package item

const DefaultStackLimit = 64

// Inventory is a fixed set of slots with one selected (held) slot.
type Inventory struct {
	Slots   []Stack
	Current int
}

func NewInventory(size int) *Inventory {
	if size <= 0 {
		size = 1
	}
	return &Inventory{Slots: make([]Stack, size)}
}

// Held returns the stack in the selected slot.
func (inv *Inventory) Held() Stack {
	if inv == nil || inv.Current < 0 || inv.Current >= len(inv.Slots) {
		return Stack{}
	}
	return inv.Slots[inv.Current]
}

// Select makes slot the held slot. Out-of-range slots are ignored.
func (inv *Inventory) Select(slot int) bool {
	if inv == nil || slot < 0 || slot >= len(inv.Slots) {
		return false
	}
	inv.Current = slot
	return true
}

// Add merges s into matching stacks, then into empty slots. It returns the
// count that did not fit.
func (inv *Inventory) Add(s Stack) int {
	if inv == nil || s.Empty() {
		return s.Count
	}
	left := s.Count
	for i := range inv.Slots {
		if left == 0 {
			break
		}
		slot := &inv.Slots[i]
		if slot.ID != s.ID || slot.Count >= DefaultStackLimit {
			continue
		}
		n := min(left, DefaultStackLimit-slot.Count)
		slot.Count += n
		left -= n
	}
	for i := range inv.Slots {
		if left == 0 {
			break
		}
		slot := &inv.Slots[i]
		if !slot.Empty() {
			continue
		}
		n := min(left, DefaultStackLimit)
		*slot = Stack{ID: s.ID, Count: n}
		left -= n
	}
	return left
}

// Remove takes up to n items of id and returns how many were removed.
func (inv *Inventory) Remove(id string, n int) int {
	if inv == nil || n <= 0 {
		return 0
	}
	removed := 0
	for i := range inv.Slots {
		slot := &inv.Slots[i]
		if slot.ID != id || slot.Empty() {
			continue
		}
		take := min(n-removed, slot.Count)
		slot.Count -= take
		removed += take
		if slot.Count == 0 {
			*slot = Stack{}
		}
		if removed == n {
			break
		}
	}
	return removed
}

// Count returns the total number of id held.
func (inv *Inventory) Count(id string) int {
	if inv == nil {
		return 0
	}
	total := 0
	for _, s := range inv.Slots {
		if s.ID == id {
			total += s.Count
		}
	}
	return total
}

// FindFunc returns the first slot whose stack satisfies fn, or -1.
func (inv *Inventory) FindFunc(fn func(Stack) bool) int {
	if inv == nil {
		return -1
	}
	for i, s := range inv.Slots {
		if !s.Empty() && fn(s) {
			return i
		}
	}
	return -1
}
