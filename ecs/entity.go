package ecs

import "strconv"

// EntityId encodes both the generation (upper 32 bits) and the arena index (lower 32 bits).
// Index 0 is never allocated, so the zero EntityId never refers to a live entity.
type EntityId uint64

// NewEntityId creates an EntityId from an arena index and generation
func NewEntityId(index uint32, generation uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(index))
}

// Index extracts the arena index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Generation extracts the generation from the entity ID
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}

// Valid reports whether the id could refer to an entity at all.
// It does not check liveness; use Storage.IsAlive for that.
func (e EntityId) Valid() bool {
	return e.Index() != 0
}

func (e EntityId) String() string {
	return strconv.FormatUint(uint64(e.Index()), 10) + "v" + strconv.FormatUint(uint64(e.Generation()), 10)
}

// entityArena hands out arena indices and tracks their generations.
// A deleted index is recycled with a bumped generation so stale ids stop resolving.
type entityArena struct {
	generations []uint32
	alive       []bool
	free        []uint32
	count       int
}

func newEntityArena() *entityArena {
	// slot 0 is reserved
	return &entityArena{
		generations: make([]uint32, 1),
		alive:       make([]bool, 1),
	}
}

func (a *entityArena) create() EntityId {
	var index uint32
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		index = uint32(len(a.generations))
		a.generations = append(a.generations, 0)
		a.alive = append(a.alive, false)
	}
	a.alive[index] = true
	a.count++
	return NewEntityId(index, a.generations[index])
}

func (a *entityArena) destroy(id EntityId) bool {
	if !a.isAlive(id) {
		return false
	}
	index := id.Index()
	a.alive[index] = false
	a.generations[index]++
	a.free = append(a.free, index)
	a.count--
	return true
}

func (a *entityArena) isAlive(id EntityId) bool {
	index := id.Index()
	if index == 0 || int(index) >= len(a.generations) {
		return false
	}
	return a.alive[index] && a.generations[index] == id.Generation()
}

// current returns the live id occupying index.
func (a *entityArena) current(index uint32) EntityId {
	return NewEntityId(index, a.generations[index])
}
