package system

import (
	"math"

	"github.com/milk9111/maidmodes/ai"
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/mode"
)

// Mutex bits shared by host and mode tasks.
const (
	MutexMove   uint32 = 1 << 0
	MutexLook   uint32 = 1 << 1
	MutexTarget uint32 = 1 << 2
)

// Default task priorities. Modes add their own tasks around these.
const (
	PriorityBlock  = 6
	PriorityTarget = 2
)

const (
	targetRangeSq = 16 * 16
	scanInterval  = 10
)

// DefaultTasks is the mode.DefaultTasks used for maids: a block task in the
// movement list and an entity search task in the targeting list.
func DefaultTasks(w *ecs.World, e ecs.Entity) mode.DefaultTasks {
	return func(in *mode.Instance) (move, target *ai.TaskList) {
		owner := newMaidOwner(w, e)
		move = ai.NewTaskList()
		move.Add(PriorityBlock, NewBlockTask(in, owner))
		target = ai.NewTaskList()
		target.Add(PriorityTarget, NewTargetTask(in, owner))
		return move, target
	}
}

// BlockTask runs a mode's block lifecycle: search or gate, approach, then
// execute until the mode lets go.
type BlockTask struct {
	in    *mode.Instance
	owner *maidOwner
	wait  int
}

func NewBlockTask(in *mode.Instance, owner *maidOwner) *BlockTask {
	return &BlockTask{in: in, owner: owner}
}

func (t *BlockTask) Mutex() uint32 { return MutexMove | MutexLook }

func (t *BlockTask) ShouldExecute() bool {
	id := t.owner.ModeID()
	switch t.in.SearchStrategy() {
	case mode.SearchGate:
		return t.in.ShouldBlock(id)
	case mode.SearchScan:
		if t.wait > 0 {
			t.wait--
			return false
		}
		region := mode.RegionAround(t.owner.BlockPos(), t.in.BlockRange())
		res := mode.SearchBlocks(t.in, id, region)
		if res.Found {
			t.owner.SetTargetTile(res.Pos)
		} else {
			t.wait = scanInterval
		}
		return res.Continue
	default:
		return false
	}
}

func (t *BlockTask) Start() {
	t.in.StartBlock(t.owner.ModeID())
}

// ContinueExecuting checks the owner's distance to its target tile and
// dispatches to the far, out-of-range or in-range hook.
func (t *BlockTask) ContinueExecuting() bool {
	id := t.owner.ModeID()
	t.in.UpdateBlock()

	x, y, z := t.owner.Position()
	d := t.owner.TargetTile().DistanceSq(x, y, z)
	r := t.in.BlockRange()
	switch {
	case d > r.FarSq:
		t.in.FarrangeBlock()
		return false
	case d > r.ReachSq:
		return t.in.OutrangeTargetBlock(id)
	default:
		return t.in.ExecuteTargetBlock(id)
	}
}

func (t *BlockTask) Reset() {
	t.in.ResetBlock(t.owner.ModeID())
}

func (t *BlockTask) Update() {}

// TargetTask picks the nearest entity worth attacking. With entity search
// enabled the mode's CheckEntity decides; otherwise any living hostile.
type TargetTask struct {
	in    *mode.Instance
	owner *maidOwner
	found ecs.Entity
}

func NewTargetTask(in *mode.Instance, owner *maidOwner) *TargetTask {
	return &TargetTask{in: in, owner: owner, found: ecs.NoEntity}
}

func (t *TargetTask) Mutex() uint32 { return MutexTarget }

func (t *TargetTask) ShouldExecute() bool {
	if cur, ok := ecs.Get(t.owner.w, t.owner.e, component.AttackTargetComponent.Kind()); ok && t.valid(cur.Entity) {
		return false
	}
	t.found = t.nearest()
	return t.found != ecs.NoEntity
}

func (t *TargetTask) nearest() ecs.Entity {
	w := t.owner.w
	id := t.owner.ModeID()
	x, y, z := t.owner.Position()
	best, bestD := ecs.NoEntity, math.Inf(1)
	ecs.ForEach(w, component.CreatureComponent.Kind(), func(e ecs.Entity, c *component.Creature) {
		info, ok := describe(w, e)
		if !ok || !info.Alive {
			return
		}
		d := distSq(x, y, z, info.X, info.Y, info.Z)
		if d > targetRangeSq || d >= bestD {
			return
		}
		if t.in.IsSearchEntity() {
			if !t.in.CheckEntity(id, e) {
				return
			}
		} else if !c.Hostile {
			return
		}
		best, bestD = e, d
	})
	return best
}

func (t *TargetTask) valid(e ecs.Entity) bool {
	info, ok := describe(t.owner.w, e)
	if !ok || !info.Alive {
		return false
	}
	x, y, z := t.owner.Position()
	return distSq(x, y, z, info.X, info.Y, info.Z) <= targetRangeSq
}

func (t *TargetTask) Start() {
	w := t.owner.w
	if cur, ok := ecs.Get(w, t.owner.e, component.AttackTargetComponent.Kind()); ok {
		cur.Entity = t.found
		return
	}
	if err := ecs.Add(w, t.owner.e, component.AttackTargetComponent.Kind(), &component.AttackTarget{Entity: t.found}); err != nil {
		t.found = ecs.NoEntity
	}
}

func (t *TargetTask) ContinueExecuting() bool {
	cur, ok := ecs.Get(t.owner.w, t.owner.e, component.AttackTargetComponent.Kind())
	return ok && t.valid(cur.Entity)
}

func (t *TargetTask) Reset() {
	ecs.Remove(t.owner.w, t.owner.e, component.AttackTargetComponent.Kind())
	t.found = ecs.NoEntity
}

func (t *TargetTask) Update() {}
