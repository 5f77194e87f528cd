package ecs_test

import (
	"testing"

	"github.com/plus3/juicy/ecs"
	"github.com/stretchr/testify/assert"
)

type GameTime struct {
	Elapsed float64
	Paused  bool
}

func TestSingletonInitializer(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	gameTime := ecs.NewSingleton(storage, GameTime{Elapsed: 1.5})
	assert.Equal(t, 1.5, gameTime.Get().Elapsed)

	// a second accessor shares the stored value and ignores its initializer
	other := ecs.NewSingleton(storage, GameTime{Elapsed: 99})
	assert.Equal(t, 1.5, other.Get().Elapsed)

	other.Get().Paused = true
	assert.True(t, gameTime.Get().Paused)
}

func TestSingletonZeroValueAndSet(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	_, ok := ecs.ReadSingleton[GameTime](storage)
	assert.False(t, ok)

	gameTime := ecs.NewSingleton[GameTime](storage)
	assert.Equal(t, GameTime{}, *gameTime.Get())

	gameTime.Set(GameTime{Elapsed: 3})

	read, ok := ecs.ReadSingleton[GameTime](storage)
	assert.True(t, ok)
	assert.Equal(t, 3.0, read.Elapsed)
}
