package ecs

// EntityId encodes both the arena ID (upper 32 bits) and the slot index (lower 32 bits)
type EntityId uint64

// NewEntityId creates an EntityId from an arena ID and slot index
func NewEntityId(arenaId uint32, index uint32) EntityId {
	return EntityId(uint64(arenaId)<<32 | uint64(index))
}

// ArenaId extracts the arena ID from the entity ID
func (e EntityId) ArenaId() uint32 {
	return uint32(e >> 32)
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}
