package system

import (
	"testing"

	"github.com/milk9111/maidmodes/ai"
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/ecs/entity"
	"github.com/milk9111/maidmodes/mode"
	"github.com/milk9111/maidmodes/voxel"
)

const (
	testWild     mode.ID = 0x0000
	testEscorter mode.ID = 0x0001
)

func newTestWorld(t *testing.T) (*ecs.World, *voxel.World) {
	t.Helper()
	w := ecs.NewWorld()
	vw := voxel.NewWorld(15)
	vw.Fill(voxel.Pos{X: -24, Y: 63, Z: -24}, voxel.Pos{X: 24, Y: 63, Z: 24}, voxel.Stone)
	if _, err := entity.NewTerrain(w, vw); err != nil {
		t.Fatalf("terrain: %v", err)
	}
	return w, vw
}

// testMode builds a descriptor that accepts its entries; build may add
// more hooks.
func testMode(name string, priority int, entries []mode.Entry, build func(in *mode.Instance) mode.Hooks) *mode.Descriptor {
	d := &mode.Descriptor{Name: name, Priority: priority, Entries: entries}
	d.New = func(in *mode.Instance) mode.Hooks {
		var h mode.Hooks
		if build != nil {
			h = build(in)
		}
		if h.AddEntityMode == nil {
			h.AddEntityMode = func(*ai.TaskList, *ai.TaskList) {}
		}
		if h.SetMode == nil {
			h.SetMode = d.Handles
		}
		return h
	}
	return d
}

// newTestRegistry registers a system escort mode as the default plus the
// given descriptors.
func newTestRegistry(t *testing.T, descs ...*mode.Descriptor) *mode.Registry {
	t.Helper()
	reg := mode.NewRegistry()
	basic := testMode("basic", 0, []mode.Entry{{ID: testWild, Name: "Wild"}, {ID: testEscorter, Name: "Escorter"}}, nil)
	basic.System = true
	reg.MustRegister(basic)
	for _, d := range descs {
		reg.MustRegister(d)
	}
	if err := reg.SetDefault(testEscorter); err != nil {
		t.Fatalf("default: %v", err)
	}
	return reg
}

func spawnMaid(t *testing.T, w *ecs.World, reg *mode.Registry, p entity.MaidParams) ecs.Entity {
	t.Helper()
	e, err := entity.NewMaid(w, reg, NewOwner, DefaultTasks, p)
	if err != nil {
		t.Fatalf("spawn maid: %v", err)
	}
	return e
}

func controllerOf(t *testing.T, w *ecs.World, e ecs.Entity) *mode.Controller {
	t.Helper()
	ai, ok := ecs.Get(w, e, component.AIComponent.Kind())
	if !ok || ai.Controller == nil {
		t.Fatalf("entity %s has no controller", e)
	}
	return ai.Controller
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %s has no transform", e)
	}
	return tr
}
