// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// It manages ImGui rendering and input state through ECS components and systems.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/juicy/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton component.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every ImguiItem to the end of the pass.
// It also updates the ImguiInputState singleton with current input capture state.
// It must run between the backend's BeginFrame and EndFrame.
type ImguiSystem[C any] struct {
	Items      *ecs.View1[ImguiItem]
	InputState *ecs.Singleton[ImguiInputState]
}

func NewImguiSystem[C any](storage *ecs.Storage) *ImguiSystem[C] {
	return &ImguiSystem[C]{
		Items:      ecs.NewView1[ImguiItem](storage),
		InputState: ecs.NewSingleton[ImguiInputState](storage),
	}
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem[C]) Execute(frame *ecs.UpdateFrame[C]) {
	state := i.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	i.Items.Each(func(_ ecs.EntityId, item *ImguiItem) {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	})
}
