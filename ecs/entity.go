package ecs

import "strconv"

// Entity names a maid, creature, terrain or request in a World. The upper
// half is a generation, so a handle kept after a maid is killed stops
// resolving instead of pointing at whatever reuses the slot.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

// NoEntity marks "no target" in components such as AttackTarget. It is
// never alive.
const NoEntity Entity = 0

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String renders id and generation, as in 7v2. Logs use it to tell a
// respawned maid from the one it replaced.
func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

func (e Entity) Valid() bool {
	return e.id() > 0
}
