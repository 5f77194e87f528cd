package ecs

import "iter"

// Views join component storages: they visit exactly the entities that carry every
// requested component. Iteration is driven by the smallest participating storage and
// probes the others through their sparse index, so no per-entity reflection happens.
//
// Callbacks may mutate components through the pointers they receive, but must not add
// or remove components or entities; queue those through Commands instead.

// View1 iterates entities with an A component.
type View1[A any] struct {
	storage *Storage
	a       *componentStorage[A]
}

// NewView1 creates a view over a single component type.
func NewView1[A any](storage *Storage) *View1[A] {
	return &View1[A]{storage: storage, a: storageOf[A](storage)}
}

// Each calls fn for every matching entity.
func (v *View1[A]) Each(fn func(EntityId, *A)) {
	for _, index := range v.a.owners() {
		fn(v.storage.entities.current(index), v.a.get(index))
	}
}

// Entities returns an iterator over matching entity ids.
func (v *View1[A]) Entities() iter.Seq[EntityId] {
	return entitiesOf(v.storage, v.a)
}

// Len returns the number of matching entities.
func (v *View1[A]) Len() int {
	return v.a.len()
}

// Get returns the component for id, or false if id does not match the view.
func (v *View1[A]) Get(id EntityId) (*A, bool) {
	if !v.storage.entities.isAlive(id) {
		return nil, false
	}
	a := v.a.get(id.Index())
	return a, a != nil
}

// View2 iterates entities with both A and B components.
type View2[A, B any] struct {
	storage *Storage
	a       *componentStorage[A]
	b       *componentStorage[B]
}

// NewView2 creates a view joining two component types.
func NewView2[A, B any](storage *Storage) *View2[A, B] {
	return &View2[A, B]{
		storage: storage,
		a:       storageOf[A](storage),
		b:       storageOf[B](storage),
	}
}

// Each calls fn for every matching entity.
func (v *View2[A, B]) Each(fn func(EntityId, *A, *B)) {
	for _, index := range smallest(v.a, v.b).owners() {
		a := v.a.get(index)
		if a == nil {
			continue
		}
		b := v.b.get(index)
		if b == nil {
			continue
		}
		fn(v.storage.entities.current(index), a, b)
	}
}

// Entities returns an iterator over matching entity ids.
func (v *View2[A, B]) Entities() iter.Seq[EntityId] {
	return entitiesOf(v.storage, v.a, v.b)
}

// Len returns the number of matching entities.
func (v *View2[A, B]) Len() int {
	return countJoined(v.a, v.b)
}

// Get returns the components for id, or false if id does not match the view.
func (v *View2[A, B]) Get(id EntityId) (*A, *B, bool) {
	if !v.storage.entities.isAlive(id) {
		return nil, nil, false
	}
	a, b := v.a.get(id.Index()), v.b.get(id.Index())
	if a == nil || b == nil {
		return nil, nil, false
	}
	return a, b, true
}

// View3 iterates entities with A, B and C components.
type View3[A, B, C any] struct {
	storage *Storage
	a       *componentStorage[A]
	b       *componentStorage[B]
	c       *componentStorage[C]
}

// NewView3 creates a view joining three component types.
func NewView3[A, B, C any](storage *Storage) *View3[A, B, C] {
	return &View3[A, B, C]{
		storage: storage,
		a:       storageOf[A](storage),
		b:       storageOf[B](storage),
		c:       storageOf[C](storage),
	}
}

// Each calls fn for every matching entity.
func (v *View3[A, B, C]) Each(fn func(EntityId, *A, *B, *C)) {
	for _, index := range smallest(v.a, v.b, v.c).owners() {
		a := v.a.get(index)
		if a == nil {
			continue
		}
		b := v.b.get(index)
		if b == nil {
			continue
		}
		c := v.c.get(index)
		if c == nil {
			continue
		}
		fn(v.storage.entities.current(index), a, b, c)
	}
}

// Entities returns an iterator over matching entity ids.
func (v *View3[A, B, C]) Entities() iter.Seq[EntityId] {
	return entitiesOf(v.storage, v.a, v.b, v.c)
}

// Len returns the number of matching entities.
func (v *View3[A, B, C]) Len() int {
	return countJoined(v.a, v.b, v.c)
}

// Get returns the components for id, or false if id does not match the view.
func (v *View3[A, B, C]) Get(id EntityId) (*A, *B, *C, bool) {
	if !v.storage.entities.isAlive(id) {
		return nil, nil, nil, false
	}
	index := id.Index()
	a, b, c := v.a.get(index), v.b.get(index), v.c.get(index)
	if a == nil || b == nil || c == nil {
		return nil, nil, nil, false
	}
	return a, b, c, true
}

// View4 iterates entities with A, B, C and D components.
type View4[A, B, C, D any] struct {
	storage *Storage
	a       *componentStorage[A]
	b       *componentStorage[B]
	c       *componentStorage[C]
	d       *componentStorage[D]
}

// NewView4 creates a view joining four component types.
func NewView4[A, B, C, D any](storage *Storage) *View4[A, B, C, D] {
	return &View4[A, B, C, D]{
		storage: storage,
		a:       storageOf[A](storage),
		b:       storageOf[B](storage),
		c:       storageOf[C](storage),
		d:       storageOf[D](storage),
	}
}

// Each calls fn for every matching entity.
func (v *View4[A, B, C, D]) Each(fn func(EntityId, *A, *B, *C, *D)) {
	for _, index := range smallest(v.a, v.b, v.c, v.d).owners() {
		a := v.a.get(index)
		if a == nil {
			continue
		}
		b := v.b.get(index)
		if b == nil {
			continue
		}
		c := v.c.get(index)
		if c == nil {
			continue
		}
		d := v.d.get(index)
		if d == nil {
			continue
		}
		fn(v.storage.entities.current(index), a, b, c, d)
	}
}

// Entities returns an iterator over matching entity ids.
func (v *View4[A, B, C, D]) Entities() iter.Seq[EntityId] {
	return entitiesOf(v.storage, v.a, v.b, v.c, v.d)
}

// Len returns the number of matching entities.
func (v *View4[A, B, C, D]) Len() int {
	return countJoined(v.a, v.b, v.c, v.d)
}

// smallest picks the storage with the fewest entries to drive a join.
func smallest(stores ...componentStore) componentStore {
	driver := stores[0]
	for _, store := range stores[1:] {
		if store.len() < driver.len() {
			driver = store
		}
	}
	return driver
}

func joined(index uint32, stores []componentStore) bool {
	for _, store := range stores {
		if !store.has(index) {
			return false
		}
	}
	return true
}

func countJoined(stores ...componentStore) int {
	count := 0
	for _, index := range smallest(stores...).owners() {
		if joined(index, stores) {
			count++
		}
	}
	return count
}

func entitiesOf(storage *Storage, stores ...componentStore) iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for _, index := range smallest(stores...).owners() {
			if !joined(index, stores) {
				continue
			}
			if !yield(storage.entities.current(index)) {
				return
			}
		}
	}
}
