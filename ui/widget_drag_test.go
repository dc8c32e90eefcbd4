package ui

import "testing"

// dragTestFrame runs one widget frame against a bare context: fresh draw
// list, promoted widget state, then the build callback.
func dragTestFrame(ctx *Context, input *InputState, build func()) {
	ctx.DrawList = AcquireDrawList()
	ctx.Input = input
	ctx.FrameCount++
	ctx.Reset(ctx.DisplaySize, 0.016)
	build()
}

func TestDragFloatAdjustsByMouseDelta(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()

	value := float32(5)
	changed := false
	build := func() {
		changed = ctx.DragFloat("", &value, 0.5, 0, 100)
	}

	// Press inside the field (no label, so it starts at the cursor
	// origin with the default 150px width).
	input.Reset()
	input.SetMousePos(75, 8)
	input.SetMouseButton(MouseButtonLeft, true)
	dragTestFrame(ctx, input, build)
	if changed {
		t.Fatal("no mouse movement yet, value must not change")
	}

	// Drag 10px right: value += 10 * 0.5.
	input.Reset()
	input.SetMousePos(85, 8)
	dragTestFrame(ctx, input, build)
	if !changed {
		t.Fatal("expected a change after dragging")
	}
	if value != 10 {
		t.Fatalf("value = %f, want 10", value)
	}

	// Dragging requests the horizontal resize cursor.
	if ctx.NextMouseCursor != CursorResizeEW {
		t.Fatalf("NextMouseCursor = %v, want CursorResizeEW", ctx.NextMouseCursor)
	}

	// Drag far left: clamped at the minimum.
	input.Reset()
	input.SetMousePos(-400, 8)
	dragTestFrame(ctx, input, build)
	if value != 0 {
		t.Fatalf("value = %f, want clamp at 0", value)
	}
}

func TestDragIntAdjustsByMouseDelta(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()

	value := 3
	build := func() {
		ctx.DragInt("", &value, 1, 0, 50)
	}

	input.Reset()
	input.SetMousePos(75, 8)
	input.SetMouseButton(MouseButtonLeft, true)
	dragTestFrame(ctx, input, build)

	input.Reset()
	input.SetMousePos(82, 8)
	dragTestFrame(ctx, input, build)

	if value != 10 {
		t.Fatalf("value = %d, want 10 after a 7px drag at speed 1", value)
	}
}
