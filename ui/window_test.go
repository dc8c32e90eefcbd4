package ui

import "testing"

// windowFrame runs one full window-manager frame: acquire a draw list,
// reset per-frame state, build, then flush windows into the layer queue
// the way GUI.End does.
func windowFrame(ctx *Context, input *InputState, build func()) {
	ctx.DrawList = AcquireDrawList()
	ctx.Input = input
	ctx.FrameCount++
	ctx.Reset(ctx.DisplaySize, 0.016)
	build()
	ctx.submitWindows()
}

// pressAndRelease drives two frames: one with the left button going down
// at (x, y), one with it coming back up, so press-on-release widgets
// (title bar buttons) fire.
func pressAndRelease(ctx *Context, input *InputState, x, y float32, build func()) {
	input.Reset()
	input.SetMousePos(x, y)
	input.SetMouseButton(MouseButtonLeft, true)
	windowFrame(ctx, input, build)

	input.Reset()
	input.SetMouseButton(MouseButtonLeft, false)
	windowFrame(ctx, input, build)
}

func titleBarHeight(ctx *Context) float32 {
	return ctx.lineHeight() + windowTitleBarPad*2
}

// Property 1: inner_rect ⊆ outer_rect and inner_clip_rect ⊆ inner_rect
// after end_window, with and without scrollbars engaged.
func TestWindowInnerRectInsideOuterRect(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()

	build := func() {
		ctx.BeginWindow("Rects", 0)
		// Enough content to force both scrollbars next frame.
		for i := 0; i < 20; i++ {
			ctx.AdvanceCursor(Vec2{X: 500, Y: 30})
		}
		ctx.EndWindow()
	}

	for frame := 0; frame < 3; frame++ {
		input.Reset()
		windowFrame(ctx, input, build)

		w := ctx.windows[ctx.GetID("Rects")]
		in, out := w.InnerRect, w.OuterRect
		if in.X < out.X || in.Y < out.Y ||
			in.X+in.W > out.X+out.W || in.Y+in.H > out.Y+out.H {
			t.Fatalf("frame %d: inner %+v escapes outer %+v", frame, in, out)
		}
		clip := w.InnerClipRect
		if clip.X < in.X || clip.Y < in.Y ||
			clip.X+clip.W > in.X+in.W || clip.Y+clip.H > in.Y+in.H {
			t.Fatalf("frame %d: clip %+v escapes inner %+v", frame, clip, in)
		}
		if frame > 0 && (!w.ScrollbarX || !w.ScrollbarY) {
			t.Fatalf("frame %d: content 500x600+ in a 320x240 window should engage both scrollbars", frame)
		}
	}
}

// Scenario E2: collapsing via the title bar button clamps height to the
// title bar and remembers the full size; expanding restores it and sets
// hide_frames.
func TestWindowCollapseExpandRestoresFullSize(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()

	build := func() {
		ctx.BeginWindow("W", WindowAutoSize)
		ctx.AdvanceCursor(Vec2{X: 120, Y: 90})
		ctx.EndWindow()
	}

	input.Reset()
	windowFrame(ctx, input, build)

	w := ctx.windows[ctx.GetID("W")]
	sizeBefore := w.Size
	titleH := titleBarHeight(ctx)

	// Collapse button is the rightmost circle (no close button here).
	bx := w.Pos.X + w.Size.X - titleH/2 - windowTitleBarPad
	by := w.Pos.Y + titleH/2

	pressAndRelease(ctx, input, bx, by, build)

	if !w.Collapsed {
		t.Fatal("expected window collapsed after clicking the collapse button")
	}
	if w.Size.Y != titleH {
		t.Fatalf("collapsed height = %f, want title bar height %f", w.Size.Y, titleH)
	}
	if w.FullSize != sizeBefore {
		t.Fatalf("FullSize = %+v, want pre-collapse size %+v", w.FullSize, sizeBefore)
	}

	pressAndRelease(ctx, input, bx, by, build)

	if w.Collapsed {
		t.Fatal("expected window expanded after second click")
	}
	if w.Size != sizeBefore {
		t.Fatalf("restored size = %+v, want %+v", w.Size, sizeBefore)
	}
	if w.HideFrames != 2 {
		t.Fatalf("HideFrames = %d, want 2", w.HideFrames)
	}
}

// Scenario E6: clicking a window's title bar moves it to the end of the
// focus order, so its layers are submitted last (topmost) that frame.
func TestFocusReorderSubmitsClickedWindowLast(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()

	build := func() {
		ctx.SetNextWindowPos(Vec2{X: 0, Y: 0}, CondFirstUseEver)
		ctx.BeginWindow("A", 0)
		ctx.EndWindow()
		ctx.SetNextWindowPos(Vec2{X: 200, Y: 40}, CondFirstUseEver)
		ctx.BeginWindow("B", 0)
		ctx.EndWindow()
		ctx.SetNextWindowPos(Vec2{X: 400, Y: 80}, CondFirstUseEver)
		ctx.BeginWindow("C", 0)
		ctx.EndWindow()
	}

	input.Reset()
	windowFrame(ctx, input, build)

	// Click inside A's title bar; only A's outer rect contains the point.
	input.Reset()
	input.SetMousePos(10, 5)
	input.SetMouseButton(MouseButtonLeft, true)
	windowFrame(ctx, input, build)

	wA := ctx.windows[ctx.GetID("A")]
	layers := ctx.DrawList.SubmittedLayers()
	if len(layers) != 6 {
		t.Fatalf("submitted %d layers, want 6", len(layers))
	}
	if layers[4] != wA.BgLayer || layers[5] != wA.FgLayer {
		t.Fatal("clicked window A's layers were not submitted last")
	}

	order := ctx.FocusOrder()
	if order[len(order)-1] != wA.ID {
		t.Fatalf("focus order tail = %v, want A's id %v", order[len(order)-1], wA.ID)
	}
}

func TestSetNextWindowCondFlags(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()

	frame := func(setup func()) {
		input.Reset()
		windowFrame(ctx, input, func() {
			setup()
			ctx.BeginWindow("Cond", 0)
			ctx.EndWindow()
		})
	}

	frame(func() { ctx.SetNextWindowPos(Vec2{X: 100, Y: 50}, CondFirstUseEver) })
	w := ctx.windows[ctx.GetID("Cond")]
	if (w.Pos != Vec2{X: 100, Y: 50}) {
		t.Fatalf("CondFirstUseEver not applied on creation: pos %+v", w.Pos)
	}

	frame(func() { ctx.SetNextWindowPos(Vec2{X: 999, Y: 999}, CondFirstUseEver) })
	if (w.Pos != Vec2{X: 100, Y: 50}) {
		t.Fatalf("CondFirstUseEver re-applied to an existing window: pos %+v", w.Pos)
	}

	frame(func() { ctx.SetNextWindowPos(Vec2{X: 10, Y: 20}, CondOnce) })
	if (w.Pos != Vec2{X: 10, Y: 20}) {
		t.Fatalf("CondOnce not applied the first time: pos %+v", w.Pos)
	}

	frame(func() { ctx.SetNextWindowPos(Vec2{X: 777, Y: 777}, CondOnce) })
	if (w.Pos != Vec2{X: 10, Y: 20}) {
		t.Fatalf("CondOnce applied twice: pos %+v", w.Pos)
	}

	frame(func() { ctx.SetNextWindowSize(Vec2{X: 222, Y: 111}, CondAlways) })
	if (w.Size != Vec2{X: 222, Y: 111}) {
		t.Fatalf("CondAlways size not applied: %+v", w.Size)
	}

	// A frame with nothing staged must leave the window alone.
	frame(func() {})
	if (w.Pos != Vec2{X: 10, Y: 20}) || (w.Size != Vec2{X: 222, Y: 111}) {
		t.Fatalf("unstaged frame moved the window: pos %+v size %+v", w.Pos, w.Size)
	}
}

func TestBeginWindowOpenCloseButton(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()

	open := true
	began := false
	build := func() {
		began = ctx.BeginWindowOpen("Closable", &open, 0)
		ctx.EndWindow()
	}

	input.Reset()
	windowFrame(ctx, input, build)
	if !began {
		t.Fatal("expected BeginWindowOpen to return true while open")
	}

	w := ctx.windows[ctx.GetID("Closable")]
	titleH := titleBarHeight(ctx)
	bx := w.Pos.X + w.Size.X - titleH/2 - windowTitleBarPad
	by := w.Pos.Y + titleH/2

	pressAndRelease(ctx, input, bx, by, build)

	if open {
		t.Fatal("expected *open=false after clicking the close button")
	}

	input.Reset()
	windowFrame(ctx, input, build)
	if began {
		t.Fatal("expected BeginWindowOpen to return false once closed")
	}
}

func TestTooltipSubmittedAboveWindows(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()

	input.Reset()
	input.SetMousePos(300, 300)
	windowFrame(ctx, input, func() {
		ctx.BeginWindow("Under", 0)
		ctx.EndWindow()
		ctx.BeginTooltip()
		ctx.AdvanceCursor(Vec2{X: 60, Y: 16})
		ctx.EndTooltip()
	})

	layers := ctx.DrawList.SubmittedLayers()
	if len(layers) != 4 {
		t.Fatalf("submitted %d layers, want 4", len(layers))
	}
	tip := ctx.windowManager.tooltip
	if layers[2] != tip.BgLayer || layers[3] != tip.FgLayer {
		t.Fatal("tooltip layers must be submitted after all window layers")
	}
}

func TestChildLayersNestBetweenParentBgAndFg(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()

	input.Reset()
	windowFrame(ctx, input, func() {
		ctx.BeginWindow("Parent", 0)
		ctx.BeginChild("Inner", Vec2{X: 100, Y: 80})
		ctx.EndChild()
		ctx.EndWindow()
	})

	parent := ctx.windows[ctx.GetID("Parent")]
	child := ctx.windows[ctx.GetID("Inner")]
	layers := ctx.DrawList.SubmittedLayers()
	if len(layers) != 4 {
		t.Fatalf("submitted %d layers, want 4", len(layers))
	}
	if layers[0] != parent.BgLayer || layers[1] != child.BgLayer ||
		layers[2] != child.FgLayer || layers[3] != parent.FgLayer {
		t.Fatal("child layers must sit between the parent's bg and fg layers")
	}
}

func TestEndWindowWithoutBeginPanics(t *testing.T) {
	ctx := newTestContext(800, 600)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic from unbalanced EndWindow")
		}
	}()
	ctx.EndWindow()
}
