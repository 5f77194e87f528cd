package ecs_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/plus3/juicy/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test EntityId encoding/decoding
func TestEntityIdEncoding(t *testing.T) {
	index := uint32(12345)
	generation := uint32(67890)

	entityId := ecs.NewEntityId(index, generation)

	assert.Equal(t, index, entityId.Index())
	assert.Equal(t, generation, entityId.Generation())
	assert.Equal(t, "12345v67890", entityId.String())
}

func TestEntityIdEdgeCases(t *testing.T) {
	tests := []struct {
		index      uint32
		generation uint32
		valid      bool
	}{
		{0, 0, false},
		{0, 7, false},
		{0xFFFFFFFF, 0xFFFFFFFF, true},
		{1, 0, true},
		{0x12345678, 0x9ABCDEF0, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("index=%d,generation=%d", tt.index, tt.generation), func(t *testing.T) {
			entityId := ecs.NewEntityId(tt.index, tt.generation)
			assert.Equal(t, tt.index, entityId.Index())
			assert.Equal(t, tt.generation, entityId.Generation())
			assert.Equal(t, tt.valid, entityId.Valid())
		})
	}
}

func TestSpawnEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 1.0, Y: 2.0}, &Velocity{DX: 0.5, DY: 0.5}, Score(32))
	assert.True(t, id.Valid())
	assert.True(t, storage.IsAlive(id))
	assert.Equal(t, 1, storage.EntityCount())

	assert.Equal(t, Position{X: 1.0, Y: 2.0}, *ecs.Get[Position](storage, id))
	assert.Equal(t, Score(32), *ecs.Get[Score](storage, id))
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() }, "spawning without components")

	type unregistered struct{}
	assert.Panics(t, func() { storage.Spawn(unregistered{}) }, "unregistered component type")
}

func TestRegisterComponent(t *testing.T) {
	registry := ecs.NewComponentRegistry()

	first := ecs.RegisterComponent[Position](registry)
	second := ecs.RegisterComponent[Velocity](registry)
	again := ecs.RegisterComponent[Position](registry)

	assert.Equal(t, first, again)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, registry.Len())
	assert.Equal(t, "ecs_test.Position", registry.Name(first))

	id, ok := ecs.ComponentIdOf[Velocity](registry)
	assert.True(t, ok)
	assert.Equal(t, second, id)

	_, ok = ecs.ComponentIdOf[Health](registry)
	assert.False(t, ok)

	assert.Panics(t, func() { ecs.RegisterComponent[*Position](registry) })
	assert.Panics(t, func() { ecs.RegisterComponent[map[string]int](registry) })
}

func TestGetComponent(t *testing.T) {
	registry := newTestRegistry()
	storage := ecs.NewStorage(registry)

	id := storage.Spawn(&Position{X: 3.0, Y: 4.0}, Name{Value: "Test Entity"})

	posId, _ := ecs.ComponentIdOf[Position](registry)
	velId, _ := ecs.ComponentIdOf[Velocity](registry)

	posComp := storage.GetComponent(id, posId)
	require.NotNil(t, posComp)
	pos := posComp.(*Position)
	assert.Equal(t, float32(3.0), pos.X)
	assert.Equal(t, float32(4.0), pos.Y)

	name := ecs.Get[Name](storage, id)
	require.NotNil(t, name)
	assert.Equal(t, "Test Entity", name.Value)

	assert.Nil(t, storage.GetComponent(id, velId))
	assert.Nil(t, ecs.Get[Velocity](storage, id))
	assert.True(t, storage.HasComponent(id, posId))
	assert.False(t, storage.HasComponent(id, velId))
}

func TestComponentPointersAreLive(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1, Y: 1})

	ecs.Get[Position](storage, id).X = 42

	assert.Equal(t, float32(42), ecs.Get[Position](storage, id).X)
}

func TestDeleteEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 1.0, Y: 1.0}, &Health{Current: 100, Max: 100})
	require.NotNil(t, ecs.Get[Position](storage, id))

	assert.True(t, storage.Delete(id))
	assert.False(t, storage.IsAlive(id))
	assert.Nil(t, ecs.Get[Position](storage, id))
	assert.Nil(t, ecs.Get[Health](storage, id))
	assert.Equal(t, 0, storage.EntityCount())

	assert.False(t, storage.Delete(id), "second delete is a no-op")
}

func TestStaleIdAfterReuse(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	old := storage.Spawn(Position{X: 1})
	storage.Delete(old)

	fresh := storage.Spawn(Position{X: 2})

	assert.Equal(t, old.Index(), fresh.Index(), "arena slot is recycled")
	assert.NotEqual(t, old.Generation(), fresh.Generation())
	assert.False(t, storage.IsAlive(old))
	assert.Nil(t, ecs.Get[Position](storage, old))
	assert.Equal(t, float32(2), ecs.Get[Position](storage, fresh).X)
	assert.False(t, storage.AddComponent(old, Velocity{}))
	assert.Nil(t, ecs.Insert(storage, old, Velocity{}))
}

func TestDeleteKeepsOtherEntitiesIntact(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id1 := storage.Spawn(Position{X: 1.0, Y: 1.0}, Velocity{DX: 0.1, DY: 0.1})
	id2 := storage.Spawn(Position{X: 2.0, Y: 2.0}, Velocity{DX: 0.2, DY: 0.2})
	id3 := storage.Spawn(Position{X: 3.0, Y: 3.0}, Velocity{DX: 0.3, DY: 0.3})

	storage.Delete(id1)

	assert.Equal(t, float32(2.0), ecs.Get[Position](storage, id2).X)
	assert.Equal(t, float32(3.0), ecs.Get[Position](storage, id3).X)
	assert.Equal(t, float32(0.3), ecs.Get[Velocity](storage, id3).DX)
}

func TestAddRemoveComponents(t *testing.T) {
	registry := newTestRegistry()
	storage := ecs.NewStorage(registry)

	id := storage.Spawn(Position{X: 0, Y: 0})
	assert.False(t, ecs.Has[Velocity](storage, id))

	assert.True(t, storage.AddComponent(id, Velocity{DX: 5, DY: 3}))
	assert.True(t, ecs.Has[Velocity](storage, id))
	assert.Equal(t, Velocity{DX: 5, DY: 3}, *ecs.Get[Velocity](storage, id))

	health := ecs.Insert(storage, id, Health{Current: 50, Max: 50})
	require.NotNil(t, health)
	health.Current = 10
	assert.Equal(t, 10, ecs.Get[Health](storage, id).Current)

	// replacing keeps a single copy
	ecs.Insert(storage, id, Health{Current: 20, Max: 50})
	assert.Equal(t, 20, ecs.Get[Health](storage, id).Current)

	assert.True(t, ecs.Remove[Velocity](storage, id))
	assert.False(t, ecs.Has[Velocity](storage, id))
	assert.False(t, ecs.Remove[Velocity](storage, id))

	healthId, _ := ecs.ComponentIdOf[Health](registry)
	assert.True(t, storage.RemoveComponent(id, healthId))
	assert.False(t, ecs.Has[Health](storage, id))

	assert.True(t, storage.IsAlive(id), "entity survives losing components")
}

func TestComponentsOfEntity(t *testing.T) {
	registry := newTestRegistry()
	storage := ecs.NewStorage(registry)

	id := storage.Spawn(Tag("boss"), Position{}, Health{Current: 1, Max: 1})

	names := make([]string, 0)
	for _, compId := range storage.Components(id) {
		names = append(names, registry.Name(compId))
	}

	assert.ElementsMatch(t, []string{"ecs_test.Position", "ecs_test.Health", "ecs_test.Tag"}, names)
}

func TestEntitiesIterator(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{})
	b := storage.Spawn(Velocity{})
	c := storage.Spawn(Name{Value: "c"})
	storage.Delete(b)

	ids := slices.Collect(storage.Entities())
	assert.Equal(t, []ecs.EntityId{a, c}, ids)

	count := 0
	for range storage.Entities() {
		count++
		break
	}
	assert.Equal(t, 1, count, "iteration stops when yield returns false")
}
