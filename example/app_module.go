package main

import (
	"fmt"

	"pilotui/registry"
	"pilotui/ui"
)

// exampleModule is the hotreload.Module this example host drives. It owns
// only application state and widget logic — the window, renderer, and
// input adapter all live in the host (run, in main.go) and are reached
// from here solely through the registry.Data blackboard the host
// publishes the current frame's *ui.Context under.
type exampleModule struct {
	data *registry.Data
}

func newExampleModule(data *registry.Data) *exampleModule {
	return &exampleModule{data: data}
}

// appState is the value exampleModule.Load returns and every other
// lifecycle method receives back; it survives a Reload since hotreload.Host
// threads it through unchanged as the "prior" argument to the next
// module's Load.
type appState struct {
	clickCount int
	sliderVal  float32
	dragVal    float32
	notes      string
	quality    int
	selected   int
	toolsOpen  bool
	items      []string
}

func (m *exampleModule) Load(api *registry.API, prior any) (any, error) {
	if st, ok := prior.(*appState); ok {
		return st, nil
	}
	st := &appState{sliderVal: 0.5, dragVal: 1, toolsOpen: true}
	for i := 0; i < 200; i++ {
		st.items = append(st.items, fmt.Sprintf("entity %03d", i))
	}
	return st, nil
}

func (m *exampleModule) Shutdown(state any) {}

func (m *exampleModule) Resize(state any) {}

func (m *exampleModule) Update(state any) error {
	st, ok := state.(*appState)
	if !ok {
		return fmt.Errorf("example: unexpected state type %T", state)
	}

	ctx, ok := registry.GetTyped[*ui.Context](m.data, "frame.ctx")
	if !ok || ctx == nil {
		return fmt.Errorf("example: no frame context published under frame.ctx")
	}

	ctx.Panel("Example Panel", ui.Width(300))(func() {
		ctx.Text("Hello from pilotui!")
		ctx.Spacing(8)

		if ctx.Button(fmt.Sprintf("Click me (%d)", st.clickCount)) {
			st.clickCount++
		}

		ctx.Spacing(8)
		ctx.Text(fmt.Sprintf("Slider: %.2f", st.sliderVal))
		ctx.SliderFloat("example-slider", &st.sliderVal, 0, 1)

		ctx.Spacing(8)
		ctx.InputTextMultiline("Notes", &st.notes, 4)
	})

	ctx.SetNextWindowPos(ui.Vec2{X: 360, Y: 40}, ui.CondFirstUseEver)
	ctx.SetNextWindowSize(ui.Vec2{X: 280, Y: 360}, ui.CondFirstUseEver)
	if ctx.BeginWindowOpen("Tools", &st.toolsOpen, 0) {
		ctx.ComboBox("Quality", &st.quality, []string{"Low", "Medium", "High"})
		ctx.DragFloat("Scale", &st.dragVal, 0.01, 0.1, 10)
		ctx.SelectableList("entities", &st.selected, st.items, 200)
	}
	ctx.EndWindow()

	return nil
}
