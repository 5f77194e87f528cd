package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/juicy/ecs"
)

func NewComponentInspectorComponent() ComponentInspectorComponent {
	return ComponentInspectorComponent{}
}

func (ci *ComponentInspectorComponent) Render(storage *ecs.Storage, selectedEntityId ecs.EntityId) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selectedEntityId = selectedEntityId

	if !ci.selectedEntityId.Valid() {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	if !storage.IsAlive(ci.selectedEntityId) {
		imgui.Text(fmt.Sprintf("Entity %s no longer exists", ci.selectedEntityId))
		imgui.End()
		return
	}

	registry := storage.Registry()
	imgui.Text(fmt.Sprintf("Entity ID: %s", ci.selectedEntityId))
	imgui.Separator()

	for _, compId := range storage.Components(ci.selectedEntityId) {
		component := storage.GetComponent(ci.selectedEntityId, compId)
		if component == nil {
			continue
		}

		if imgui.TreeNodeStr(registry.Name(compId)) {
			renderComponent(reflect.ValueOf(component).Elem())
			imgui.TreePop()
		}
	}

	imgui.End()
}

// renderComponent draws an editor for val. Components are stored by pointer,
// so val is addressable and edits land directly in storage.
func renderComponent(val reflect.Value) {
	if val.Kind() != reflect.Struct {
		renderField("Value", val, fieldInfo{})
		return
	}

	for _, field := range fieldsOf(val.Type()) {
		fieldVal := val.Field(field.index)
		if field.isPointer && !fieldVal.IsNil() {
			fieldVal = fieldVal.Elem()
		}
		renderField(field.name, fieldVal, field)
	}
}

func renderField(name string, val reflect.Value, field fieldInfo) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	if field.isPointer && val.Kind() == reflect.Ptr && val.IsNil() {
		imgui.Text(fmt.Sprintf("%s: nil", name))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			renderComponent(val)
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		if val.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		} else {
			imgui.Text(fmt.Sprintf("%s: <%s>", name, val.Type()))
		}
	}
}
