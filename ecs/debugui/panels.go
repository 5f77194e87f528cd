package debugui

import (
	"github.com/plus3/juicy/ecs"
)

// PanelSystem renders the debug panels spawned by SpawnDebugUI. The entity browser's
// selection drives the component inspector.
type PanelSystem[C any] struct {
	Performance *ecs.View1[PerformanceStatsComponent]
	Browsers    *ecs.View1[EntityBrowserComponent]
	Inspectors  *ecs.View1[ComponentInspectorComponent]
	Timer       *ecs.Singleton[ecs.FrameTimer]
}

func NewPanelSystem[C any](storage *ecs.Storage) *PanelSystem[C] {
	return &PanelSystem[C]{
		Performance: ecs.NewView1[PerformanceStatsComponent](storage),
		Browsers:    ecs.NewView1[EntityBrowserComponent](storage),
		Inspectors:  ecs.NewView1[ComponentInspectorComponent](storage),
		Timer:       ecs.NewSingleton(storage, *ecs.NewFrameTimer(1.0/60.0)),
	}
}

// Execute defers panel rendering to the end of the pass. Components are looked up
// again when the deferred call runs, since flushed spawns may move them.
func (p *PanelSystem[C]) Execute(frame *ecs.UpdateFrame[C]) {
	storage := frame.Storage
	dt := float32(p.Timer.Get().Tick())

	for id := range p.Performance.Entities() {
		frame.Commands.Defer(func() {
			if ps, ok := p.Performance.Get(id); ok {
				ps.Render(storage, dt)
			}
		})
	}

	var selected ecs.EntityId
	for id := range p.Browsers.Entities() {
		frame.Commands.Defer(func() {
			if eb, ok := p.Browsers.Get(id); ok {
				eb.Render(storage)
				selected = eb.GetSelectedEntity()
			}
		})
	}

	for id := range p.Inspectors.Entities() {
		frame.Commands.Defer(func() {
			if ci, ok := p.Inspectors.Get(id); ok {
				ci.Render(storage, selected)
			}
		})
	}
}
