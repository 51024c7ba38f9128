package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/ecs"
)

// EntityInspector lists every entity with its components and lets numeric
// and bool fields be edited in place.
type EntityInspector struct {
	storage *ecs.Storage
}

func (ei *EntityInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 420), imgui.CondOnce)
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ei.storage.CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d  Archetypes: %d", stats.TotalEntityCount, stats.ArchetypeCount))
	imgui.Separator()

	for _, archetype := range ei.storage.Archetypes() {
		for id := range archetype.Iter() {
			if imgui.TreeNodeStr(fmt.Sprintf("0x%X [%s]", uint64(id), archetype)) {
				ei.renderEntity(archetype, id)
				imgui.TreePop()
			}
		}
	}

	imgui.End()
}

func (ei *EntityInspector) renderEntity(archetype *ecs.Archetype, id ecs.EntityId) {
	for _, t := range archetype.Types() {
		component := ei.storage.GetComponent(id, t)
		if component == nil {
			continue
		}
		imgui.Text(t.String())
		for _, f := range Fields(t) {
			renderField(fmt.Sprintf("%s##%d.%s.%s", f.Name, uint64(id), t, f.Name), component, f)
		}
	}
}

func renderField(label string, component any, f FieldInfo) {
	if !f.Editable() {
		imgui.Text(fmt.Sprintf("%s: %s", f.Name, FormatField(component, f)))
		return
	}

	value := fieldValue(component, f)
	switch {
	case value.CanFloat():
		v := float32(value.Float())
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(label, &v) {
			_ = SetNumber(component, f, float64(v))
		}
	case value.CanInt():
		v := int32(value.Int())
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) {
			_ = SetNumber(component, f, float64(v))
		}
	default:
		v := value.Bool()
		if imgui.Checkbox(label, &v) {
			_ = SetBool(component, f, v)
		}
	}
}
