package ecs

import (
	"reflect"
)

// ComponentId is the dense identifier a registry assigns to a component type.
type ComponentId uint16

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent ECS systems to coexist without interference.
type ComponentRegistry struct {
	ids       map[reflect.Type]ComponentId
	names     []string
	factories []func() componentStore
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		ids: make(map[reflect.Type]ComponentId),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be used.
// Registering the same type twice returns the existing id.
func RegisterComponent[T any](r *ComponentRegistry) ComponentId {
	t := reflect.TypeFor[T]()
	if id, ok := r.ids[t]; ok {
		return id
	}

	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		panic("components cannot be pointers, maps, channels, functions or interfaces: " + t.String())
	}

	id := ComponentId(len(r.factories))
	r.ids[t] = id
	r.names = append(r.names, t.String())
	r.factories = append(r.factories, func() componentStore {
		return newComponentStorage[T]()
	})
	return id
}

// ComponentIdOf returns the id registered for T.
func ComponentIdOf[T any](r *ComponentRegistry) (ComponentId, bool) {
	id, ok := r.ids[reflect.TypeFor[T]()]
	return id, ok
}

// Name returns the type name of a registered component.
func (r *ComponentRegistry) Name(id ComponentId) string {
	if int(id) >= len(r.names) {
		return ""
	}
	return r.names[id]
}

// Len returns the number of registered component types.
func (r *ComponentRegistry) Len() int {
	return len(r.factories)
}

func (r *ComponentRegistry) idOfValue(component any) ComponentId {
	t := reflect.TypeOf(component)
	if t == nil {
		panic("cannot use nil as a component")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	id, ok := r.ids[t]
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	return id
}

func (r *ComponentRegistry) mustId(t reflect.Type) ComponentId {
	id, ok := r.ids[t]
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	return id
}
