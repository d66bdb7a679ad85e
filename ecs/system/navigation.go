package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/voxel"
)

const (
	defaultStep   = 0.2
	maxStuckTicks = 20
	maxStepUp     = 1
	maxStepDown   = 3
)

// NavigationSystem steers entities with an active Pathfinding goal in a
// straight line over the XZ plane, stepping up or down one column at a time.
type NavigationSystem struct{}

func NewNavigationSystem() *NavigationSystem {
	return &NavigationSystem{}
}

func (s *NavigationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	world := terrain(w)
	ecs.ForEach2(w, component.PathfindingComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pf *component.Pathfinding, t *component.Transform) {
		if !pf.Active {
			return
		}
		step := defaultStep
		if ai, ok := ecs.Get(w, e, component.AIComponent.Kind()); ok && ai.MoveSpeed > 0 {
			step = ai.MoveSpeed
		}
		if pf.Speed > 0 {
			step *= pf.Speed
		}

		pos := cp.Vector{X: t.X, Y: t.Z}
		goal := cp.Vector{X: pf.GoalX, Y: pf.GoalZ}
		delta := goal.Sub(pos)
		if delta.Length() <= step {
			t.X, t.Z = goal.X, goal.Y
			if y, ok := standHeight(world, t.X, pf.GoalY, t.Z); ok {
				t.Y = y
			}
			pf.Active = false
			pf.Stuck = 0
			return
		}

		next := pos.Add(delta.Normalize().Mult(step))
		y, ok := standHeight(world, next.X, t.Y, next.Y)
		if !ok {
			pf.Stuck++
			if pf.Stuck > maxStuckTicks {
				pf.Active = false
				pf.Stuck = 0
			}
			return
		}
		t.X, t.Y, t.Z = next.X, y, next.Y
		t.Yaw = math.Atan2(delta.Y, delta.X)
	})
}

// standHeight finds the feet height for column (x, z) closest to y.
func standHeight(world *voxel.World, x, y, z float64) (float64, bool) {
	if world == nil {
		return y, true
	}
	p := voxel.FloorPos(x, y, z)
	if world.CanStandAt(p) {
		return float64(p.Y), true
	}
	for dy := 1; dy <= maxStepUp; dy++ {
		if q := p.Add(0, dy, 0); world.CanStandAt(q) {
			return float64(q.Y), true
		}
	}
	for dy := 1; dy <= maxStepDown; dy++ {
		if q := p.Add(0, -dy, 0); world.CanStandAt(q) {
			return float64(q.Y), true
		}
	}
	return y, false
}
