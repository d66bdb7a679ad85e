package mode

import (
	"fmt"

	"github.com/milk9111/maidmodes/ai"
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/nbt"
	"github.com/milk9111/maidmodes/voxel"
)

// DefaultSpeed is the movement multiplier used when approaching a block.
const DefaultSpeed = 1.0

// Instance is one mode bound to one entity. Each method runs the matching
// hook when the mode set one and otherwise returns the neutral default.
type Instance struct {
	desc  *Descriptor
	owner Owner
	hooks Hooks
}

// NewInstance binds desc to owner and builds its hooks.
func NewInstance(desc *Descriptor, owner Owner) (*Instance, error) {
	if desc == nil || desc.New == nil {
		return nil, ErrNoFactory
	}
	if owner == nil {
		return nil, ErrNilOwner
	}
	in := &Instance{desc: desc, owner: owner}
	in.hooks = desc.New(in)
	if in.hooks.AddEntityMode == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoAddEntityMode, desc.Name)
	}
	return in, nil
}

func (in *Instance) Descriptor() *Descriptor { return in.desc }
func (in *Instance) Owner() Owner { return in.owner }
func (in *Instance) Name() string { return in.desc.Name }

// Priority orders instances; lower runs first.
func (in *Instance) Priority() int { return in.desc.Priority }

func (in *Instance) IsAnytimeUpdate() bool { return in.desc.AnytimeUpdate }
func (in *Instance) SearchStrategy() SearchStrategy { return in.desc.Search }
func (in *Instance) IsSearchBlock() bool { return in.desc.Search == SearchScan }
func (in *Instance) IsSearchEntity() bool { return in.desc.EntitySearch }
func (in *Instance) BlockRange() BlockRange { return in.desc.Blocks.withDefaults() }

func (in *Instance) AddEntityMode(move, target *ai.TaskList) {
	in.hooks.AddEntityMode(move, target)
}

func (in *Instance) InitEntity() {
	if in.hooks.InitEntity != nil {
		in.hooks.InitEntity()
	}
}

func (in *Instance) WriteState(tag *nbt.Compound) {
	if in.hooks.WriteState != nil {
		in.hooks.WriteState(tag)
	}
}

func (in *Instance) ReadState(tag *nbt.Compound) {
	if in.hooks.ReadState != nil {
		in.hooks.ReadState(tag)
	}
}

func (in *Instance) ShowSpecial(ctx RenderContext) {
	if in.hooks.ShowSpecial != nil {
		in.hooks.ShowSpecial(ctx)
	}
}

// ColorMultiplier returns a packed ARGB tint, 0 for none.
func (in *Instance) ColorMultiplier(light, partialTick float32) uint32 {
	if in.hooks.ColorMultiplier == nil {
		return 0
	}
	return in.hooks.ColorMultiplier(light, partialTick)
}

func (in *Instance) OnUpdate(id ID) {
	if in.hooks.OnUpdate != nil {
		in.hooks.OnUpdate(id)
	}
}

func (in *Instance) UpdateAITick(id ID) {
	if in.hooks.UpdateAITick != nil {
		in.hooks.UpdateAITick(id)
	}
}

func (in *Instance) PreInteract(player ecs.Entity, stack item.Stack) bool {
	return in.hooks.PreInteract != nil && in.hooks.PreInteract(player, stack)
}

func (in *Instance) Interact(player ecs.Entity, stack item.Stack) bool {
	return in.hooks.Interact != nil && in.hooks.Interact(player, stack)
}

func (in *Instance) ChangeMode(player ecs.Entity) bool {
	return in.hooks.ChangeMode != nil && in.hooks.ChangeMode(player)
}

func (in *Instance) SetMode(id ID) bool {
	return in.hooks.SetMode != nil && in.hooks.SetMode(id)
}

// NextEquipItem returns the inventory slot to hold, or -1.
func (in *Instance) NextEquipItem(id ID) int {
	if in.hooks.NextEquipItem == nil {
		return -1
	}
	return in.hooks.NextEquipItem(id)
}

func (in *Instance) CheckItemStack(stack item.Stack) bool {
	return in.hooks.CheckItemStack != nil && in.hooks.CheckItemStack(stack)
}

func (in *Instance) AttackEntityAsMob(id ID, target ecs.Entity) bool {
	return in.hooks.AttackEntityAsMob != nil && in.hooks.AttackEntityAsMob(id, target)
}

func (in *Instance) ShouldBlock(id ID) bool {
	return in.hooks.ShouldBlock != nil && in.hooks.ShouldBlock(id)
}

func (in *Instance) CheckBlock(id ID, x, y, z int) bool {
	return in.hooks.CheckBlock != nil && in.hooks.CheckBlock(id, x, y, z)
}

func (in *Instance) OverlooksBlock(id ID) bool {
	return in.hooks.OverlooksBlock != nil && in.hooks.OverlooksBlock(id)
}

// FarrangeBlock runs when the owner wandered too far from its target
// block. By default it drops the current path.
func (in *Instance) FarrangeBlock() {
	if in.hooks.FarrangeBlock != nil {
		in.hooks.FarrangeBlock()
		return
	}
	if nav := in.owner.Navigator(); nav != nil {
		nav.ClearPath()
	}
}

// OutrangeBlock runs while the owner is out of reach of (x, y, z). By
// default it paths there and reports whether movement started.
func (in *Instance) OutrangeBlock(id ID, x, y, z int) bool {
	if in.hooks.OutrangeBlock != nil {
		return in.hooks.OutrangeBlock(id, x, y, z)
	}
	nav := in.owner.Navigator()
	if nav == nil {
		return false
	}
	return nav.TryMoveTo(float64(x), float64(y), float64(z), DefaultSpeed)
}

// OutrangeTargetBlock is OutrangeBlock at the owner's stored target tile.
func (in *Instance) OutrangeTargetBlock(id ID) bool {
	p := in.owner.TargetTile()
	return in.OutrangeBlock(id, p.X, p.Y, p.Z)
}

// ExecuteBlock acts on (x, y, z) once in reach. True keeps the block task
// running.
func (in *Instance) ExecuteBlock(id ID, x, y, z int) bool {
	return in.hooks.ExecuteBlock != nil && in.hooks.ExecuteBlock(id, x, y, z)
}

// ExecuteTargetBlock is ExecuteBlock at the owner's stored target tile.
func (in *Instance) ExecuteTargetBlock(id ID) bool {
	p := in.owner.TargetTile()
	return in.ExecuteBlock(id, p.X, p.Y, p.Z)
}

func (in *Instance) StartBlock(id ID) {
	if in.hooks.StartBlock != nil {
		in.hooks.StartBlock(id)
	}
}

func (in *Instance) ResetBlock(id ID) {
	if in.hooks.ResetBlock != nil {
		in.hooks.ResetBlock(id)
	}
}

func (in *Instance) UpdateBlock() {
	if in.hooks.UpdateBlock != nil {
		in.hooks.UpdateBlock()
	}
}

func (in *Instance) OnWarp() {
	if in.hooks.OnWarp != nil {
		in.hooks.OnWarp()
	}
}

func (in *Instance) CheckEntity(id ID, target ecs.Entity) bool {
	return in.hooks.CheckEntity != nil && in.hooks.CheckEntity(id, target)
}

// IsChangeTarget reports whether the owner should drop target after an
// attack. A blood-draining owner keeps its target.
func (in *Instance) IsChangeTarget(target ecs.Entity) bool {
	if in.hooks.IsChangeTarget != nil {
		return in.hooks.IsChangeTarget(target)
	}
	return !in.owner.IsBloodsuck()
}

func (in *Instance) AttackEntityFrom(src DamageSource, amount float32) DamageResult {
	if in.hooks.AttackEntityFrom == nil {
		return NotHandled
	}
	return in.hooks.AttackEntityFrom(src, amount)
}

func (in *Instance) DamageEntity(id ID, src DamageSource, amount float32) bool {
	return in.hooks.DamageEntity != nil && in.hooks.DamageEntity(id, src, amount)
}

func (in *Instance) IsUsingTile(tile *voxel.Tile) bool {
	return tile != nil && in.hooks.IsUsingTile != nil && in.hooks.IsUsingTile(tile)
}

func (in *Instance) Tiles() []*voxel.Tile {
	if in.hooks.Tiles == nil {
		return nil
	}
	return in.hooks.Tiles()
}

func (in *Instance) DistanceSqToStartFollow() float64 {
	return in.desc.Thresholds.withDefaults().StartFollowSq
}

func (in *Instance) LimitRangeSqOnFollow() float64 {
	return in.desc.Thresholds.withDefaults().TeleportSq
}

func (in *Instance) FreedomTrackingRange() float64 {
	return in.desc.Thresholds.withDefaults().FreedomRangeSq
}
