package mode

import (
	"testing"

	"github.com/milk9111/maidmodes/ai"
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/nbt"
)

type trace struct {
	updates map[string]int
	ticks   map[string]int
	resets  map[string][]ID
	changes []string
}

func newTrace() *trace {
	return &trace{updates: map[string]int{}, ticks: map[string]int{}, resets: map[string][]ID{}}
}

// traced builds a descriptor that accepts its entries and records calls.
func traced(tr *trace, name string, priority int, ids ...ID) *Descriptor {
	d := &Descriptor{Name: name, Priority: priority}
	for _, id := range ids {
		d.Entries = append(d.Entries, Entry{ID: id, Name: name})
	}
	d.New = func(in *Instance) Hooks {
		return Hooks{
			AddEntityMode: func(move, target *ai.TaskList) {
				move.Add(5, &ai.Funcs{Bits: 1, Should: func() bool { return true }})
			},
			SetMode:      func(id ID) bool { return d.Handles(id) },
			OnUpdate:     func(ID) { tr.updates[name]++ },
			UpdateAITick: func(ID) { tr.ticks[name]++ },
			ResetBlock:   func(id ID) { tr.resets[name] = append(tr.resets[name], id) },
			ChangeMode: func(ecs.Entity) bool {
				tr.changes = append(tr.changes, name)
				return false
			},
		}
	}
	return d
}

func newController(t *testing.T, descs ...*Descriptor) *Controller {
	t.Helper()
	r := NewRegistry()
	for _, d := range descs {
		if err := r.Register(d); err != nil {
			t.Fatalf("register %s: %v", d.Name, err)
		}
	}
	c, err := NewController(r, newFakeOwner(), nil)
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	return c
}

func TestControllerSwitchResetsOldMode(t *testing.T) {
	tr := newTrace()
	c := newController(t, traced(tr, "fencer", 3010, 0x80, 0xC0), traced(tr, "torcher", 5510, 0x20))

	if c.ActiveID() != NoMode {
		t.Fatalf("expected no active mode")
	}
	if !c.SetMode(0x80) {
		t.Fatalf("fencer must accept 0x80")
	}
	move, _ := c.Tasks()
	move.Tick()
	if len(move.Running()) != 1 {
		t.Fatalf("expected fencer's task running")
	}

	if !c.SetMode(0x80) || len(tr.resets["fencer"]) != 0 {
		t.Fatalf("re-selecting the same id must not reset, got %v", tr.resets)
	}

	if !c.SetMode(0x20) {
		t.Fatalf("torcher must accept 0x20")
	}
	if got := tr.resets["fencer"]; len(got) != 1 || got[0] != 0x80 {
		t.Fatalf("expected ResetBlock(0x80) on fencer, got %v", got)
	}
	if len(move.Running()) != 0 {
		t.Fatalf("old mode tasks must be reset")
	}
	if in, _ := c.Active(); in.Name() != "torcher" {
		t.Fatalf("expected torcher active, got %s", in.Name())
	}

	c.SetMode(0x20)
	c.SetMode(0xC0)
	if got := tr.resets["torcher"]; len(got) != 1 {
		t.Fatalf("expected torcher reset once, got %v", got)
	}
	if c.SetMode(0x99) {
		t.Fatalf("nobody accepts 0x99")
	}
	if c.ActiveID() != 0xC0 {
		t.Fatalf("rejected switch must keep the active mode, got %s", c.ActiveID())
	}
}

func TestAnytimeModesUpdateWhileInactive(t *testing.T) {
	tr := newTrace()
	watcher := traced(tr, "watcher", 9010)
	watcher.AnytimeUpdate = true
	c := newController(t, traced(tr, "fencer", 3010, 0x80), traced(tr, "torcher", 5510, 0x20), watcher)

	c.SetMode(0x80)
	c.Update()
	c.UpdateAITick()

	if tr.updates["fencer"] != 1 || tr.ticks["fencer"] != 1 {
		t.Fatalf("active mode must update, got %v %v", tr.updates, tr.ticks)
	}
	if tr.updates["watcher"] != 1 || tr.ticks["watcher"] != 1 {
		t.Fatalf("anytime mode must update while inactive, got %v %v", tr.updates, tr.ticks)
	}
	if tr.updates["torcher"] != 0 || tr.ticks["torcher"] != 0 {
		t.Fatalf("inactive mode must not update, got %v %v", tr.updates, tr.ticks)
	}
}

func TestChangeModeOffersInPriorityOrder(t *testing.T) {
	tr := newTrace()
	c := newController(t, traced(tr, "torcher", 5510, 0x20), traced(tr, "fencer", 3010, 0x80))
	if c.ChangeMode(ecs.NoEntity) {
		t.Fatalf("no mode consumes the change")
	}
	if len(tr.changes) != 2 || tr.changes[0] != "fencer" || tr.changes[1] != "torcher" {
		t.Fatalf("expected fencer then torcher, got %v", tr.changes)
	}
}

func TestControllerStateRoundTrip(t *testing.T) {
	tr := newTrace()
	c := newController(t, traced(tr, "fencer", 3010, 0x80), traced(tr, "torcher", 5510, 0x20))
	c.SetMode(0x20)

	tag := nbt.New()
	c.WriteState(tag)
	if tag.GetInt(StateKey) != 0x20 {
		t.Fatalf("expected Mode=0x20, got %d", tag.GetInt(StateKey))
	}

	restored := newController(t, traced(newTrace(), "fencer", 3010, 0x80), traced(newTrace(), "torcher", 5510, 0x20))
	if !restored.ReadState(tag) || restored.ActiveID() != 0x20 {
		t.Fatalf("expected 0x20 restored, got %s", restored.ActiveID())
	}
	if restored.ReadState(nbt.New()) {
		t.Fatalf("empty compound must not select a mode")
	}
}

func TestRebindCarriesState(t *testing.T) {
	counterDesc := func(step int) *Descriptor {
		d := &Descriptor{Name: "counter", Priority: 1010, Entries: []Entry{{ID: 0x10, Name: "Counter"}}}
		d.New = func(in *Instance) Hooks {
			n := 0
			return Hooks{
				AddEntityMode: func(*ai.TaskList, *ai.TaskList) {},
				SetMode:       func(id ID) bool { return id == 0x10 },
				OnUpdate:      func(ID) { n += step },
				WriteState:    func(tag *nbt.Compound) { tag.SetInt("Count", n) },
				ReadState:     func(tag *nbt.Compound) { n = tag.GetInt("Count") },
			}
		}
		return d
	}
	c := newController(t, counterDesc(1))
	c.SetMode(0x10)
	c.Update()
	c.Update()

	if err := c.Rebind(counterDesc(10)); err != nil {
		t.Fatalf("rebind: %v", err)
	}
	if c.ActiveID() != 0x10 {
		t.Fatalf("rebind must keep the active id, got %s", c.ActiveID())
	}
	c.Update()

	tag := nbt.New()
	c.WriteState(tag)
	if got := tag.GetInt("Count"); got != 12 {
		t.Fatalf("expected count carried over to 12, got %d", got)
	}
}

func TestDetach(t *testing.T) {
	tr := newTrace()
	c := newController(t, traced(tr, "fencer", 3010, 0x80))
	c.SetMode(0x80)
	c.Detach()
	if _, ok := c.Active(); ok || c.ActiveID() != NoMode {
		t.Fatalf("expected no active mode after detach")
	}
	if len(tr.resets["fencer"]) != 1 {
		t.Fatalf("detach must reset the active block task")
	}
	if len(c.Instances()) != 0 {
		t.Fatalf("expected instances dropped")
	}
}
