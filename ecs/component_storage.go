package ecs

import (
	"github.com/kamstrup/intmap"
)

// componentStore is the type-erased side of a component storage.
// Storage uses it for structural operations; typed access goes through componentStorage[T].
type componentStore interface {
	insertAny(index uint32, item any) bool
	remove(index uint32) bool
	has(index uint32) bool
	getAny(index uint32) any
	len() int
	owners() []uint32
}

// componentStorage is a sparse set holding every component of one type.
// Values live densely in insertion order; the sparse index maps arena indices to dense slots.
type componentStorage[T any] struct {
	dense  []T
	owner  []uint32
	sparse *intmap.Map[uint32, int32]
}

func newComponentStorage[T any]() *componentStorage[T] {
	return &componentStorage[T]{
		sparse: intmap.New[uint32, int32](64),
	}
}

// insert stores v for the entity at index, overwriting any previous value.
func (cs *componentStorage[T]) insert(index uint32, v T) *T {
	if slot, ok := cs.sparse.Get(index); ok {
		cs.dense[slot] = v
		return &cs.dense[slot]
	}

	cs.dense = append(cs.dense, v)
	cs.owner = append(cs.owner, index)
	slot := int32(len(cs.dense) - 1)
	cs.sparse.Put(index, slot)
	return &cs.dense[slot]
}

func (cs *componentStorage[T]) insertAny(index uint32, item any) bool {
	switch v := item.(type) {
	case T:
		cs.insert(index, v)
	case *T:
		cs.insert(index, *v)
	default:
		return false
	}
	return true
}

// get returns a pointer into the dense slice, or nil if the entity has no such component.
// The pointer stays valid until the next insert or remove on this storage.
func (cs *componentStorage[T]) get(index uint32) *T {
	slot, ok := cs.sparse.Get(index)
	if !ok {
		return nil
	}
	return &cs.dense[slot]
}

func (cs *componentStorage[T]) getAny(index uint32) any {
	if v := cs.get(index); v != nil {
		return v
	}
	return nil
}

func (cs *componentStorage[T]) has(index uint32) bool {
	_, ok := cs.sparse.Get(index)
	return ok
}

// remove swaps the last dense element into the removed slot.
func (cs *componentStorage[T]) remove(index uint32) bool {
	slot, ok := cs.sparse.Get(index)
	if !ok {
		return false
	}

	last := int32(len(cs.dense) - 1)
	if slot != last {
		moved := cs.owner[last]
		cs.dense[slot] = cs.dense[last]
		cs.owner[slot] = moved
		cs.sparse.Put(moved, slot)
	}

	var zero T
	cs.dense[last] = zero
	cs.dense = cs.dense[:last]
	cs.owner = cs.owner[:last]
	cs.sparse.Del(index)
	return true
}

func (cs *componentStorage[T]) len() int {
	return len(cs.dense)
}

func (cs *componentStorage[T]) owners() []uint32 {
	return cs.owner
}
