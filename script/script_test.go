package script

import (
	"errors"
	"testing"

	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
	"github.com/milk9111/maidmodes/nbt"
	"github.com/milk9111/maidmodes/voxel"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

const lumberjackID mode.ID = 0x0040

const choppingScript = `
init_entity := func(engine, state) {
	state.inits = 1
}

check_block := func(engine, state, id, x, y, z) {
	return engine.get_block(x, y, z) == "log"
}

execute_block := func(engine, state, id, x, y, z) {
	engine.set_block(x, y, z, "air")
	engine.give("log", 1)
	if is_undefined(state.chopped) {
		state.chopped = 0
	}
	state.chopped = state.chopped + 1
	return false
}

next_equip_item := func(engine, state, id) {
	return 2
}

color_multiplier := func(engine, state, light, partial_tick) {
	return 0xFF00FF00
}

check_entity := func(engine, state, id, target) {
	return target.kind == "cow"
}

on_warp := func(engine, state) {
	engine.clear_path()
}
`

func lumberjackBase() mode.Descriptor {
	return mode.Descriptor{
		Name:     "lumberjack",
		Priority: 5210,
		Search:   mode.SearchScan,
		Entries:  []mode.Entry{{ID: lumberjackID, Name: "Lumberjack"}},
	}
}

func attach(t *testing.T, d *mode.Descriptor, o *fakeOwner) *mode.Controller {
	t.Helper()
	reg := mode.NewRegistry()
	if err := reg.Register(d); err != nil {
		t.Fatalf("register: %v", err)
	}
	ctrl, err := mode.NewController(reg, o, nil)
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	o.ctrl = ctrl
	return ctrl
}

func mustDescriptor(t *testing.T, src string, log logrus.FieldLogger) *mode.Descriptor {
	t.Helper()
	prog, err := Compile("test.tengo", []byte(src))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	d, err := NewDescriptor(lumberjackBase(), prog, log)
	if err != nil {
		t.Fatalf("descriptor: %v", err)
	}
	return d
}

func TestCompileFindsHooks(t *testing.T) {
	prog, err := Compile("lumberjack.tengo", []byte(choppingScript))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	want := []string{"init_entity", "check_block", "execute_block", "next_equip_item", "check_entity", "color_multiplier", "on_warp"}
	got := prog.Hooks()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if prog.Defines("should_block") {
		t.Fatalf("should_block is not defined")
	}
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty", "  \n"},
		{"syntax", "check_block := func(engine, state {"},
		{"runtime", "x := 1 / 0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Compile(c.name, []byte(c.src)); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
	if _, err := Compile("empty", nil); !errors.Is(err, ErrEmptyScript) {
		t.Fatalf("expected ErrEmptyScript, got %v", err)
	}
}

func TestNewDescriptorRejectsReservedPriority(t *testing.T) {
	prog, err := Compile("x", []byte(choppingScript))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	base := lumberjackBase()
	base.Priority = 5200
	if _, err := NewDescriptor(base, prog, nil); !errors.Is(err, mode.ErrReservedPriority) {
		t.Fatalf("expected ErrReservedPriority, got %v", err)
	}
}

func TestScriptedHooks(t *testing.T) {
	o := newFakeOwner()
	logPos := voxel.Pos{X: 1, Y: 64, Z: 0}
	o.world.SetBlock(logPos, voxel.Log)
	ctrl := attach(t, mustDescriptor(t, choppingScript, nil), o)

	if !ctrl.SetMode(lumberjackID) {
		t.Fatalf("declared entry must be accepted without set_mode")
	}
	if ctrl.SetMode(0x0041) {
		t.Fatalf("undeclared entry must be rejected")
	}
	in, _ := ctrl.Active()

	if !in.CheckBlock(lumberjackID, logPos.X, logPos.Y, logPos.Z) {
		t.Fatalf("log must match")
	}
	if in.CheckBlock(lumberjackID, 2, 64, 0) {
		t.Fatalf("air must not match")
	}
	res := mode.SearchBlocks(in, lumberjackID, mode.RegionAround(voxel.Pos{X: 0, Y: 64, Z: 0}, in.BlockRange()))
	if !res.Found || res.Pos != logPos {
		t.Fatalf("expected search to find the log, got %+v", res)
	}
	if in.ExecuteBlock(lumberjackID, logPos.X, logPos.Y, logPos.Z) {
		t.Fatalf("execute returns the script's false")
	}
	if o.world.Block(logPos) != voxel.Air || o.inv.Count("log") != 1 {
		t.Fatalf("expected log chopped into the inventory")
	}

	if got := in.NextEquipItem(lumberjackID); got != 2 {
		t.Fatalf("expected slot 2, got %d", got)
	}
	if got := in.ColorMultiplier(15, 0); got != 0xFF00FF00 {
		t.Fatalf("unexpected tint %#08x", got)
	}
	if !in.CheckEntity(lumberjackID, 7) {
		t.Fatalf("expected cow to match")
	}
	in.OnWarp()
	if o.nav.cleared != 1 {
		t.Fatalf("on_warp must reach the engine")
	}

	// Hooks the script leaves out keep their defaults.
	if in.ShouldBlock(lumberjackID) || in.OverlooksBlock(lumberjackID) || in.CheckItemStack(item.Stack{ID: "log", Count: 1}) {
		t.Fatalf("undefined hooks must return false")
	}
}

func TestScriptStateRoundTrip(t *testing.T) {
	o := newFakeOwner()
	o.world.SetBlock(voxel.Pos{X: 1, Y: 64, Z: 0}, voxel.Log)
	d := mustDescriptor(t, choppingScript, nil)
	ctrl := attach(t, d, o)
	ctrl.SetMode(lumberjackID)
	in, _ := ctrl.Active()
	in.ExecuteBlock(lumberjackID, 1, 64, 0)

	tag := nbt.New()
	ctrl.WriteState(tag)
	state := tag.GetCompound(StateKey).GetCompound("lumberjack")
	if state.GetInt("chopped") != 1 || state.GetInt("inits") != 1 {
		t.Fatalf("unexpected state %v", state.Keys())
	}

	o2 := newFakeOwner()
	o2.world.SetBlock(voxel.Pos{X: 0, Y: 64, Z: 1}, voxel.Log)
	restored := attach(t, d, o2)
	if !restored.ReadState(tag) {
		t.Fatalf("expected mode restored")
	}
	in2, _ := restored.Active()
	in2.ExecuteBlock(lumberjackID, 0, 64, 1)

	out := nbt.New()
	restored.WriteState(out)
	if got := out.GetCompound(StateKey).GetCompound("lumberjack").GetInt("chopped"); got != 2 {
		t.Fatalf("expected chopped to continue from 1, got %d", got)
	}
}

func TestFailingHookFallsBackToDefault(t *testing.T) {
	logger, hook := test.NewNullLogger()
	src := `
check_block := func(engine, state, id, x, y, z) {
	return x / 0
}
set_mode := func(engine, state, id) {
	return id == 66
}
`
	o := newFakeOwner()
	ctrl := attach(t, mustDescriptor(t, src, logger), o)

	if ctrl.SetMode(lumberjackID) {
		t.Fatalf("set_mode hook must override the declared entries")
	}
	if !ctrl.SetMode(66) {
		t.Fatalf("set_mode hook must accept 66")
	}
	in, _ := ctrl.Active()
	if in.CheckBlock(66, 1, 64, 0) {
		t.Fatalf("failing hook must read as false")
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel || entry.Data["hook"] != "check_block" {
		t.Fatalf("expected a warning for the failing hook, got %+v", entry)
	}
}

const countingScript = `
execute_block := func(engine, state, id, x, y, z) {
	if is_undefined(state.n) {
		state.n = 0
	}
	state.n = state.n + 1
	return false
}
`

func TestReadStateWithoutEntryClearsState(t *testing.T) {
	o := newFakeOwner()
	ctrl := attach(t, mustDescriptor(t, countingScript, nil), o)
	ctrl.SetMode(lumberjackID)
	in, _ := ctrl.Active()

	saved := nbt.New()
	ctrl.WriteState(saved)
	if saved.HasKey(StateKey) {
		t.Fatalf("fresh mode should not write script state")
	}

	in.ExecuteBlock(lumberjackID, 0, 64, 0)
	in.ExecuteBlock(lumberjackID, 0, 64, 0)

	cases := []struct {
		name string
		tag  func() *nbt.Compound
	}{
		{name: "no script compound", tag: func() *nbt.Compound { return saved.Clone() }},
		{name: "no entry for mode", tag: func() *nbt.Compound {
			c := nbt.New()
			other := nbt.New()
			other.SetCompound("someone_else", nbt.New())
			c.SetCompound(StateKey, other)
			return c
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in.ExecuteBlock(lumberjackID, 0, 64, 0)
			in.ReadState(tc.tag())

			out := nbt.New()
			in.WriteState(out)
			if out.HasKey(StateKey) {
				t.Fatalf("expected state cleared on load, got %v", out.GetCompound(StateKey).Keys())
			}
		})
	}
}
