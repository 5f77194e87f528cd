package ecs

import (
	"iter"
	"reflect"
)

// Storage is the main ECS storage: an entity arena plus one sparse set per component type.
type Storage struct {
	registry   *ComponentRegistry
	entities   *entityArena
	stores     []componentStore
	singletons map[reflect.Type]*singletonEntry
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		entities:   newEntityArena(),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Registry returns the component registry backing this storage.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	id := s.entities.create()
	for _, component := range components {
		s.addComponent(id, component)
	}
	return id
}

// Delete removes the entity and all of its components.
// It returns false if the id is stale or was never allocated.
func (s *Storage) Delete(id EntityId) bool {
	if !s.entities.isAlive(id) {
		return false
	}
	for _, store := range s.stores {
		if store != nil {
			store.remove(id.Index())
		}
	}
	return s.entities.destroy(id)
}

// IsAlive reports whether id refers to a live entity.
func (s *Storage) IsAlive(id EntityId) bool {
	return s.entities.isAlive(id)
}

// AddComponent attaches (or replaces) a component on a live entity.
func (s *Storage) AddComponent(id EntityId, component any) bool {
	if !s.entities.isAlive(id) {
		return false
	}
	s.addComponent(id, component)
	return true
}

func (s *Storage) addComponent(id EntityId, component any) {
	compId := s.registry.idOfValue(component)
	if !s.store(compId).insertAny(id.Index(), component) {
		panic("component value does not match registered type " + s.registry.Name(compId))
	}
}

// RemoveComponent detaches the component with the given id from an entity.
func (s *Storage) RemoveComponent(id EntityId, compId ComponentId) bool {
	if !s.entities.isAlive(id) {
		return false
	}
	return s.store(compId).remove(id.Index())
}

// GetComponent returns a pointer to the component, or nil if absent.
func (s *Storage) GetComponent(id EntityId, compId ComponentId) any {
	if !s.entities.isAlive(id) {
		return nil
	}
	return s.store(compId).getAny(id.Index())
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compId ComponentId) bool {
	if !s.entities.isAlive(id) {
		return false
	}
	return s.store(compId).has(id.Index())
}

// Components returns the ids of every component attached to the entity, in registration order.
func (s *Storage) Components(id EntityId) []ComponentId {
	if !s.entities.isAlive(id) {
		return nil
	}
	var ids []ComponentId
	for compId, store := range s.stores {
		if store != nil && store.has(id.Index()) {
			ids = append(ids, ComponentId(compId))
		}
	}
	return ids
}

// Entities returns an iterator over all live entities in arena order.
func (s *Storage) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for index := 1; index < len(s.entities.alive); index++ {
			if !s.entities.alive[index] {
				continue
			}
			if !yield(s.entities.current(uint32(index))) {
				return
			}
		}
	}
}

// EntityCount returns the number of live entities.
func (s *Storage) EntityCount() int {
	return s.entities.count
}

// store returns the storage for a component id, creating it on first use.
func (s *Storage) store(compId ComponentId) componentStore {
	if int(compId) >= s.registry.Len() {
		panic("unknown component id")
	}
	for len(s.stores) <= int(compId) {
		s.stores = append(s.stores, nil)
	}
	if s.stores[compId] == nil {
		s.stores[compId] = s.registry.factories[compId]()
	}
	return s.stores[compId]
}

func storageOf[T any](s *Storage) *componentStorage[T] {
	compId := s.registry.mustId(reflect.TypeFor[T]())
	return s.store(compId).(*componentStorage[T])
}

// Insert attaches v to a live entity and returns a pointer to the stored value.
// Returns nil if the entity is not alive.
func Insert[T any](s *Storage, id EntityId, v T) *T {
	if !s.entities.isAlive(id) {
		return nil
	}
	return storageOf[T](s).insert(id.Index(), v)
}

// Get returns a pointer to the entity's T component, or nil.
func Get[T any](s *Storage, id EntityId) *T {
	if !s.entities.isAlive(id) {
		return nil
	}
	return storageOf[T](s).get(id.Index())
}

// Has reports whether the entity carries a T component.
func Has[T any](s *Storage, id EntityId) bool {
	if !s.entities.isAlive(id) {
		return false
	}
	return storageOf[T](s).has(id.Index())
}

// Remove detaches the entity's T component.
func Remove[T any](s *Storage, id EntityId) bool {
	if !s.entities.isAlive(id) {
		return false
	}
	return storageOf[T](s).remove(id.Index())
}
