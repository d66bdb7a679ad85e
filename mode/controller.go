package mode

import (
	"fmt"

	"github.com/milk9111/maidmodes/ai"
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/nbt"
	"github.com/milk9111/maidmodes/voxel"
)

// StateKey is the compound key holding the active mode id.
const StateKey = "Mode"

// DefaultTasks builds the movement and targeting lists a freshly attached
// instance starts from.
type DefaultTasks func(in *Instance) (move, target *ai.TaskList)

type binding struct {
	in     *Instance
	move   *ai.TaskList
	target *ai.TaskList
}

func (b *binding) resetTasks() {
	b.move.ResetAll()
	b.target.ResetAll()
}

// Controller owns every mode instance of one entity and tracks which one is
// active.
type Controller struct {
	reg      *Registry
	owner    Owner
	defaults DefaultTasks
	bindings []*binding
	active   *binding
	activeID ID
}

// NewController attaches every registered mode to owner in priority order.
func NewController(reg *Registry, owner Owner, defaults DefaultTasks) (*Controller, error) {
	if owner == nil {
		return nil, ErrNilOwner
	}
	c := &Controller{reg: reg, owner: owner, defaults: defaults, activeID: NoMode}
	for _, d := range reg.Descriptors() {
		b, err := c.attach(d)
		if err != nil {
			return nil, err
		}
		c.bindings = append(c.bindings, b)
	}
	return c, nil
}

func (c *Controller) attach(d *Descriptor) (*binding, error) {
	in, err := NewInstance(d, c.owner)
	if err != nil {
		return nil, err
	}
	in.InitEntity()
	var move, target *ai.TaskList
	if c.defaults != nil {
		move, target = c.defaults(in)
	}
	if move == nil {
		move = ai.NewTaskList()
	}
	if target == nil {
		target = ai.NewTaskList()
	}
	in.AddEntityMode(move, target)
	return &binding{in: in, move: move, target: target}, nil
}

// SetMode offers id to each instance in priority order. The first one that
// accepts becomes active. Switching away from a mode resets its block task
// and running AI tasks; repeating the current id only re-runs the hook.
func (c *Controller) SetMode(id ID) bool {
	for _, b := range c.bindings {
		if !b.in.SetMode(id) {
			continue
		}
		if old := c.active; old != nil && (old != b || c.activeID != id) {
			old.in.ResetBlock(c.activeID)
			old.resetTasks()
		}
		c.active = b
		c.activeID = id
		return true
	}
	return false
}

// ChangeMode offers a player's change request to each instance in priority
// order and reports whether one consumed it.
func (c *Controller) ChangeMode(player ecs.Entity) bool {
	for _, b := range c.bindings {
		if b.in.ChangeMode(player) {
			return true
		}
	}
	return false
}

// Update runs OnUpdate on the active instance and on anytime instances.
func (c *Controller) Update() {
	for _, b := range c.bindings {
		if b == c.active || b.in.IsAnytimeUpdate() {
			b.in.OnUpdate(c.activeID)
		}
	}
}

// UpdateAITick is Update's counterpart run after the task lists tick.
func (c *Controller) UpdateAITick() {
	for _, b := range c.bindings {
		if b == c.active || b.in.IsAnytimeUpdate() {
			b.in.UpdateAITick(c.activeID)
		}
	}
}

// Tasks returns the active instance's movement and targeting lists.
func (c *Controller) Tasks() (move, target *ai.TaskList) {
	if c.active == nil {
		return nil, nil
	}
	return c.active.move, c.active.target
}

func (c *Controller) Active() (*Instance, bool) {
	if c.active == nil {
		return nil, false
	}
	return c.active.in, true
}

func (c *Controller) ActiveID() ID {
	return c.activeID
}

func (c *Controller) Owner() Owner {
	return c.owner
}

func (c *Controller) Registry() *Registry {
	return c.reg
}

// Instances returns every bound instance, lowest priority first.
func (c *Controller) Instances() []*Instance {
	out := make([]*Instance, 0, len(c.bindings))
	for _, b := range c.bindings {
		out = append(out, b.in)
	}
	return out
}

// PreInteract runs before built-in interaction; only the active mode sees it.
func (c *Controller) PreInteract(player ecs.Entity, stack item.Stack) bool {
	in, ok := c.Active()
	return ok && in.PreInteract(player, stack)
}

func (c *Controller) Interact(player ecs.Entity, stack item.Stack) bool {
	in, ok := c.Active()
	return ok && in.Interact(player, stack)
}

// IsUsingTile reports whether any of the entity's modes claims tile.
func (c *Controller) IsUsingTile(tile *voxel.Tile) bool {
	for _, b := range c.bindings {
		if b.in.IsUsingTile(tile) {
			return true
		}
	}
	return false
}

// Tiles collects the tiles claimed by every mode.
func (c *Controller) Tiles() []*voxel.Tile {
	var out []*voxel.Tile
	for _, b := range c.bindings {
		out = append(out, b.in.Tiles()...)
	}
	return out
}

// WriteState stores the active mode id and every instance's state in tag.
func (c *Controller) WriteState(tag *nbt.Compound) {
	tag.SetInt(StateKey, int(c.activeID))
	for _, b := range c.bindings {
		b.in.WriteState(tag)
	}
}

// ReadState restores instance state, then re-selects the stored mode.
func (c *Controller) ReadState(tag *nbt.Compound) bool {
	for _, b := range c.bindings {
		b.in.ReadState(tag)
	}
	if !tag.HasKeyOfType(StateKey, nbt.TypeInt) {
		return false
	}
	id := ID(tag.GetInt(StateKey))
	if id == NoMode {
		return false
	}
	return c.SetMode(id)
}

// Rebind replaces the instance built from the descriptor named d.Name with
// a fresh one, carrying its saved state across. A new name is attached.
func (c *Controller) Rebind(d *Descriptor) error {
	nb, err := c.attach(d)
	if err != nil {
		return err
	}
	idx := -1
	for i, b := range c.bindings {
		if b.in.Name() == d.Name {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.bindings = append(c.bindings, nb)
		c.sortBindings()
		return nil
	}

	old := c.bindings[idx]
	saved := nbt.New()
	old.in.WriteState(saved)
	nb.in.ReadState(saved)

	wasActive := c.active == old
	if wasActive {
		old.in.ResetBlock(c.activeID)
		old.resetTasks()
		c.active = nil
	}
	c.bindings[idx] = nb
	c.sortBindings()

	if wasActive {
		id := c.activeID
		c.activeID = NoMode
		if !c.SetMode(id) {
			if def, ok := c.reg.Default(); ok && c.SetMode(def) {
				return nil
			}
			return fmt.Errorf("%w: %s no longer accepts %s", ErrUnknownMode, d.Name, id)
		}
	}
	return nil
}

func (c *Controller) sortBindings() {
	for i := 1; i < len(c.bindings); i++ {
		for j := i; j > 0 && less(c.bindings[j].in, c.bindings[j-1].in); j-- {
			c.bindings[j], c.bindings[j-1] = c.bindings[j-1], c.bindings[j]
		}
	}
}

func less(a, b *Instance) bool {
	if a.Priority() != b.Priority() {
		return a.Priority() < b.Priority()
	}
	return a.Name() < b.Name()
}

// Detach stops the active mode and drops every instance. The controller is
// unusable afterwards.
func (c *Controller) Detach() {
	if c.active != nil {
		c.active.in.ResetBlock(c.activeID)
		c.active.resetTasks()
	}
	c.active = nil
	c.activeID = NoMode
	c.bindings = nil
}
