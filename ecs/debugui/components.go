package debugui

import (
	"github.com/plus3/juicy/ecs"
)

type EntityBrowserComponent struct {
	cache              *EntityBrowserCache
	selectedEntityId   ecs.EntityId
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	selectedEntityId ecs.EntityId
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	schedulers    []NamedStats
}

// NamedStats labels a scheduler in the performance window.
type NamedStats struct {
	Name   string
	Source StatsSource
}

// StatsSource is implemented by *ecs.Scheduler of any context type.
type StatsSource interface {
	GetStats() *ecs.SchedulerStats
}
