package mode

import (
	"github.com/milk9111/maidmodes/ai"
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/nbt"
	"github.com/milk9111/maidmodes/voxel"
)

// Hooks holds the callbacks a mode customizes. Every nil field falls back
// to the neutral default implemented by Instance.
type Hooks struct {
	AddEntityMode func(move, target *ai.TaskList)
	InitEntity    func()

	WriteState func(tag *nbt.Compound)
	ReadState  func(tag *nbt.Compound)

	ShowSpecial     func(ctx RenderContext)
	ColorMultiplier func(light, partialTick float32) uint32

	OnUpdate     func(id ID)
	UpdateAITick func(id ID)

	PreInteract func(player ecs.Entity, stack item.Stack) bool
	Interact    func(player ecs.Entity, stack item.Stack) bool
	ChangeMode  func(player ecs.Entity) bool
	SetMode     func(id ID) bool

	NextEquipItem     func(id ID) int
	CheckItemStack    func(stack item.Stack) bool
	AttackEntityAsMob func(id ID, target ecs.Entity) bool

	ShouldBlock    func(id ID) bool
	CheckBlock     func(id ID, x, y, z int) bool
	OverlooksBlock func(id ID) bool
	FarrangeBlock  func()
	OutrangeBlock  func(id ID, x, y, z int) bool
	ExecuteBlock   func(id ID, x, y, z int) bool
	StartBlock     func(id ID)
	ResetBlock     func(id ID)
	UpdateBlock    func()

	OnWarp func()

	CheckEntity    func(id ID, target ecs.Entity) bool
	IsChangeTarget func(target ecs.Entity) bool

	AttackEntityFrom func(src DamageSource, amount float32) DamageResult
	DamageEntity     func(id ID, src DamageSource, amount float32) bool

	IsUsingTile func(tile *voxel.Tile) bool
	Tiles       func() []*voxel.Tile
}
