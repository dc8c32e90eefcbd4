package ui_test

import (
	"testing"

	"pilotui/ui"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
}

func (m *mockRenderer) Render(dl *ui.DrawList) error {
	m.renderCalls++
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer, ui.WithStyle(ui.HighContrastStyle()))

	input := ui.NewInputState()
	displaySize := ui.Vec2{X: 1920, Y: 1080}

	// Begin frame
	ctx := g.Begin(input, displaySize, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}

	// Draw some widgets
	ctx.Text("Hello World")
	ctx.TextColored("Colored", ui.ColorYellow)

	// End frame
	err := g.End()
	if err != nil {
		t.Fatalf("End() returned error: %v", err)
	}

	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
}

func TestButton(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	ctx := g.Begin(input, ui.Vec2{X: 800, Y: 600}, 0.016)

	// Button should return false when not clicked
	clicked := ctx.Button("Test Button")
	if clicked {
		t.Error("button should not be clicked without mouse input")
	}

	_ = g.End()
}

func TestButtonWithClick(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	// Simulate mouse click at button position
	input.SetMousePos(50, 10)
	input.SetMouseButton(ui.MouseButtonLeft, true)

	ctx := g.Begin(input, ui.Vec2{X: 800, Y: 600}, 0.016)

	// Position cursor at origin for button
	clicked := ctx.Button("Click Me")

	_ = g.End()

	// A press alone is not a click: ButtonBehavior reports the click on
	// release, so this single press frame leaves clicked false.
	if !clicked {
		t.Log("Note: Button reports a click on release, not on the press frame")
	}
}

func TestPanel(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	ctx := g.Begin(input, ui.Vec2{X: 800, Y: 600}, 0.016)

	// Panel with content
	ctx.Panel("Test Panel", ui.Gap(8), ui.Padding(12))(func() {
		ctx.Text("Line 1")
		ctx.Text("Line 2")
	})

	_ = g.End()
}

func TestListBox(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	ctx := g.Begin(input, ui.Vec2{X: 800, Y: 600}, 0.016)

	selected := 1
	items := []string{"Item 0", "Item 1", "Item 2"}

	ctx.ListBox("list", 200, ui.Gap(4))(func() {
		for i, item := range items {
			if ctx.Selectable(item, i == selected, ui.WithID(item)) {
				selected = i
			}
		}
	})

	_ = g.End()
}

func TestInputText(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	// Add some characters
	input.AddInputChar('H')
	input.AddInputChar('i')

	ctx := g.Begin(input, ui.Vec2{X: 800, Y: 600}, 0.016)

	value := ""
	ctx.InputText("Label", &value)

	_ = g.End()

	// Note: input only works when widget is focused
	// This test just verifies it doesn't crash
}

func TestCheckbox(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	ctx := g.Begin(input, ui.Vec2{X: 800, Y: 600}, 0.016)

	checked := false
	ctx.Checkbox("Enable", &checked)

	if checked {
		t.Error("checkbox should remain unchecked without click")
	}

	_ = g.End()
}

func TestVStackHStack(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	ctx := g.Begin(input, ui.Vec2{X: 800, Y: 600}, 0.016)

	ctx.VStack(ui.Gap(10))(func() {
		ctx.HStack(ui.Gap(5))(func() {
			ctx.Text("Label:")
			ctx.Text("Value")
		})
		ctx.Text("Below")
	})

	_ = g.End()
}

func TestDrawListPool(t *testing.T) {
	// Test that DrawList pooling works correctly
	dl1 := ui.AcquireDrawList()
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}

	// Add some content
	dl1.AddRect(0, 0, 100, 100, ui.ColorWhite)

	// Release it
	ui.ReleaseDrawList(dl1)

	// Acquire again - might get same or different list
	dl2 := ui.AcquireDrawList()
	if dl2 == nil {
		t.Fatal("expected non-nil DrawList after release")
	}

	// Should be cleared
	if len(dl2.VtxBuffer) != 0 {
		t.Error("reused DrawList should be cleared")
	}

	ui.ReleaseDrawList(dl2)
}

func TestIDGeneration(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	ctx := g.Begin(input, ui.Vec2{X: 800, Y: 600}, 0.016)

	// The same label under the same id-stack top hashes to the same ID
	id1 := ctx.GetID("button")
	id2 := ctx.GetID("button")

	if id1 != id2 {
		t.Error("same label should generate the same ID")
	}

	_ = g.End()
}

func TestPushPopID(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	ctx := g.Begin(input, ui.Vec2{X: 800, Y: 600}, 0.016)

	// Get ID before push
	ctx.PushID("section1")
	id1 := ctx.GetID("item")
	ctx.PopID()

	ctx.PushID("section2")
	id2 := ctx.GetID("item")
	ctx.PopID()

	// Same label in different sections should have different IDs
	if id1 == id2 {
		t.Error("same label in different sections should have different IDs")
	}

	_ = g.End()
}

func TestStateStore(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	ctx := g.Begin(input, ui.Vec2{X: 800, Y: 600}, 0.016)

	id := ctx.GetID("test_state")

	// Set state
	ui.SetState(ctx, id, float32(42.5))

	// Get state
	value := ui.GetState(ctx, id, float32(0))
	if value != 42.5 {
		t.Errorf("expected 42.5, got %v", value)
	}

	// Get non-existent state returns default
	value2 := ui.GetState(ctx, ctx.GetID("nonexistent"), float32(99))
	if value2 != 99 {
		t.Errorf("expected default 99, got %v", value2)
	}

	_ = g.End()
}

func TestStyles(t *testing.T) {
	// Test that all style constructors work
	styles := []ui.Style{
		ui.DefaultStyle(),
		ui.HighContrastStyle(),
		ui.DarkStyle(),
		ui.LightStyle(),
	}

	for i, style := range styles {
		if style.TextColor == 0 {
			t.Errorf("style %d has zero TextColor", i)
		}
		if style.CharWidth == 0 {
			t.Errorf("style %d has zero CharWidth", i)
		}
	}
}

func TestColorFunctions(t *testing.T) {
	// Test RGBA
	c := ui.RGBA(255, 128, 64, 200)
	r, g, b, a := ui.UnpackRGBA(c)
	if r != 255 || g != 128 || b != 64 || a != 200 {
		t.Errorf("RGBA roundtrip failed: got %d,%d,%d,%d", r, g, b, a)
	}

	// Test RGBAf
	c2 := ui.RGBAf(1.0, 0.5, 0.25, 0.8)
	r2, g2, b2, a2 := ui.UnpackRGBA(c2)
	// Allow for rounding
	if r2 != 255 || g2 < 127 || g2 > 128 || b2 < 63 || b2 > 64 || a2 < 203 || a2 > 204 {
		t.Errorf("RGBAf conversion unexpected: got %d,%d,%d,%d", r2, g2, b2, a2)
	}
}

func BenchmarkDrawListAddRect(b *testing.B) {
	dl := ui.AcquireDrawList()
	defer ui.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddRect(float32(i%100), float32(i%100), 50, 50, ui.ColorWhite)
	}
}

func BenchmarkDrawListAddText(b *testing.B) {
	dl := ui.AcquireDrawList()
	defer ui.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddText(0, float32(i%100*10), "Hello World", ui.ColorWhite, 1.0, 8, 8)
	}
}

func BenchmarkFullFrame(b *testing.B) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()
	displaySize := ui.Vec2{X: 1920, Y: 1080}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx := g.Begin(input, displaySize, 0.016)

		ctx.Panel("Menu", ui.Gap(8))(func() {
			ctx.Text("Title")
			for j := 0; j < 10; j++ {
				ctx.Selectable("Item", false)
			}
		})

		_ = g.End()
	}
}
