package script

import (
	"github.com/d5/tengo/v2"
	"github.com/milk9111/maidmodes/ai"
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
	"github.com/milk9111/maidmodes/nbt"
	"github.com/sirupsen/logrus"
)

// StateKey is the compound under which scripted modes keep their state,
// one sub-compound per mode name.
const StateKey = "Script"

// runtime is one mode instance's view of a Program: its own clone of the
// compiled script and its own state map.
type runtime struct {
	prog     *Program
	compiled *tengo.Compiled
	state    *tengo.Map
	engine   *tengo.ImmutableMap
	in       *mode.Instance
	log      logrus.FieldLogger
}

func newRuntime(prog *Program, in *mode.Instance, log logrus.FieldLogger) *runtime {
	rt := &runtime{
		prog:     prog,
		compiled: prog.compiled.Clone(),
		state:    emptyState(),
		in:       in,
		log:      log.WithField("entity", in.Owner().Entity().String()),
	}
	rt.engine = buildEngine(in.Owner(), rt.log)
	return rt
}

// call runs hook with args. The second result is false when the hook is
// not defined or failed; failures are logged and read as the default.
func (rt *runtime) call(hook string, args ...any) (*tengo.Variable, bool) {
	if !rt.prog.Defines(hook) {
		return nil, false
	}
	if args == nil {
		args = []any{}
	}
	sets := []struct {
		name  string
		value any
	}{
		{"__hook", hook},
		{"__args", args},
		{"__engine", rt.engine},
		{"__state", rt.state},
		{"__result", nil},
	}
	for _, s := range sets {
		if err := rt.compiled.Set(s.name, s.value); err != nil {
			rt.log.WithError(err).WithField("hook", hook).Warn("script: set global")
			return nil, false
		}
	}
	if err := rt.compiled.Run(); err != nil {
		rt.log.WithError(err).WithField("hook", hook).Warn("script: hook failed")
		return nil, false
	}
	return rt.compiled.Get("__result"), true
}

func (rt *runtime) callBool(hook string, args ...any) bool {
	v, ok := rt.call(hook, args...)
	return ok && v.Bool()
}

func (rt *runtime) callInt(hook string, def int, args ...any) int {
	v, ok := rt.call(hook, args...)
	if !ok || v.IsUndefined() {
		return def
	}
	return v.Int()
}

func (rt *runtime) hooks(d *mode.Descriptor) mode.Hooks {
	h := mode.Hooks{
		AddEntityMode: func(move, target *ai.TaskList) {},
		WriteState:    rt.writeState,
		ReadState:     rt.readState,
	}
	if rt.prog.Defines("set_mode") {
		h.SetMode = func(id mode.ID) bool { return rt.callBool("set_mode", int(id)) }
	} else {
		h.SetMode = d.Handles
	}
	if rt.prog.Defines("init_entity") {
		h.InitEntity = func() { rt.call("init_entity") }
	}
	if rt.prog.Defines("on_update") {
		h.OnUpdate = func(id mode.ID) { rt.call("on_update", int(id)) }
	}
	if rt.prog.Defines("update_ai_tick") {
		h.UpdateAITick = func(id mode.ID) { rt.call("update_ai_tick", int(id)) }
	}
	if rt.prog.Defines("change_mode") {
		h.ChangeMode = func(ecs.Entity) bool { return rt.callBool("change_mode") }
	}
	if rt.prog.Defines("should_block") {
		h.ShouldBlock = func(id mode.ID) bool { return rt.callBool("should_block", int(id)) }
	}
	if rt.prog.Defines("check_block") {
		h.CheckBlock = func(id mode.ID, x, y, z int) bool { return rt.callBool("check_block", int(id), x, y, z) }
	}
	if rt.prog.Defines("overlooks_block") {
		h.OverlooksBlock = func(id mode.ID) bool { return rt.callBool("overlooks_block", int(id)) }
	}
	if rt.prog.Defines("execute_block") {
		h.ExecuteBlock = func(id mode.ID, x, y, z int) bool { return rt.callBool("execute_block", int(id), x, y, z) }
	}
	if rt.prog.Defines("start_block") {
		h.StartBlock = func(id mode.ID) { rt.call("start_block", int(id)) }
	}
	if rt.prog.Defines("reset_block") {
		h.ResetBlock = func(id mode.ID) { rt.call("reset_block", int(id)) }
	}
	if rt.prog.Defines("check_item") {
		h.CheckItemStack = func(s item.Stack) bool { return rt.callBool("check_item", s.ID, s.Count) }
	}
	if rt.prog.Defines("next_equip_item") {
		h.NextEquipItem = func(id mode.ID) int { return rt.callInt("next_equip_item", -1, int(id)) }
	}
	if rt.prog.Defines("check_entity") {
		h.CheckEntity = func(id mode.ID, target ecs.Entity) bool {
			info, ok := rt.in.Owner().Describe(target)
			if !ok {
				return false
			}
			return rt.callBool("check_entity", int(id), entityInfoMap(info))
		}
	}
	if rt.prog.Defines("color_multiplier") {
		h.ColorMultiplier = func(light, partialTick float32) uint32 {
			return uint32(rt.callInt("color_multiplier", 0, float64(light), float64(partialTick)))
		}
	}
	if rt.prog.Defines("on_warp") {
		h.OnWarp = func() { rt.call("on_warp") }
	}
	return h
}

func entityInfoMap(info mode.EntityInfo) map[string]any {
	return map[string]any{
		"kind":    info.Kind,
		"hostile": info.Hostile,
		"alive":   info.Alive,
		"x":       info.X,
		"y":       info.Y,
		"z":       info.Z,
	}
}

func (rt *runtime) writeState(tag *nbt.Compound) {
	if len(rt.state.Value) == 0 {
		return
	}
	all := tag.GetCompound(StateKey)
	all.SetCompound(rt.in.Name(), mapToCompound(rt.state))
	tag.SetCompound(StateKey, all)
}

func emptyState() *tengo.Map {
	return &tengo.Map{Value: map[string]tengo.Object{}}
}

// readState replaces the state map. A compound without an entry for this
// mode yields an empty map.
func (rt *runtime) readState(tag *nbt.Compound) {
	rt.state = emptyState()
	if !tag.HasKeyOfType(StateKey, nbt.TypeCompound) {
		return
	}
	all := tag.GetCompound(StateKey)
	if !all.HasKeyOfType(rt.in.Name(), nbt.TypeCompound) {
		return
	}
	rt.state = compoundToMap(all.GetCompound(rt.in.Name()))
}
