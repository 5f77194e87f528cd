package ecs

import (
	"reflect"
	"sort"
)

type singletonEntry struct {
	name  string
	value any // always a *T
}

// Singleton provides efficient access to a single component instance
// that is not associated with any entity. Use this for global game state,
// configuration, or other singleton data.
type Singleton[T any] struct {
	value *T
}

// NewSingleton creates a new Singleton accessor for the given storage.
// If initializer is provided and the singleton doesn't exist in storage,
// it will be created with the initializer value. Otherwise, a zero value is used.
// This guarantees the singleton exists in storage after the call.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	t := reflect.TypeFor[T]()

	entry, ok := storage.singletons[t]
	if !ok {
		value := new(T)
		if len(initializer) > 0 {
			*value = initializer[0]
		}
		entry = &singletonEntry{name: t.String(), value: value}
		storage.singletons[t] = entry
	}

	return &Singleton[T]{value: entry.value.(*T)}
}

// Get returns a pointer to the singleton component.
func (s *Singleton[T]) Get() *T {
	return s.value
}

// Set replaces the singleton value in place; existing accessors observe the change.
func (s *Singleton[T]) Set(v T) {
	*s.value = v
}

// ReadSingleton returns the singleton of type T if it has been added to storage.
func ReadSingleton[T any](storage *Storage) (*T, bool) {
	entry, ok := storage.singletons[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return entry.value.(*T), true
}

// singletonNames returns the type names of all singletons, sorted.
func (s *Storage) singletonNames() []string {
	names := make([]string, 0, len(s.singletons))
	for _, entry := range s.singletons {
		names = append(names, entry.name)
	}
	sort.Strings(names)
	return names
}
