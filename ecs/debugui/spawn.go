package debugui

import "github.com/plus3/juicy/ecs"

// SpawnDebugUI spawns the performance, entity browser and inspector panels.
// Every scheduler passed in gets a table in the performance window.
func SpawnDebugUI(storage *ecs.Storage, schedulers ...NamedStats) {
	perf := NewPerformanceStatsComponent(120)
	perf.schedulers = schedulers

	storage.Spawn(perf)
	storage.Spawn(NewEntityBrowserComponent(100))
	storage.Spawn(NewComponentInspectorComponent())
}

// RegisterDebugUIComponents registers every component kind this package spawns.
func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[ImguiInputState](registry)
	ecs.RegisterComponent[EntityBrowserComponent](registry)
	ecs.RegisterComponent[ComponentInspectorComponent](registry)
	ecs.RegisterComponent[PerformanceStatsComponent](registry)
}
