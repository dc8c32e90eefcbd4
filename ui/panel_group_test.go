package ui

import "testing"

// TestTabBarClickSwitchesActiveTab exercises the press-on-release contract:
// clicking a tab doesn't select it until ButtonBehavior releases, and the
// selected index then persists into the window's Storage.
func TestTabBarClickSwitchesActiveTab(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()

	// Tab centers recorded while drawing, so the synthetic clicks land on
	// the real geometry instead of guessed coordinates.
	var tabCenter [3]Vec2
	var selected int
	build := func() {
		ctx.BeginWindow("win", 0)
		ctx.BeginTabBar("tabs")
		for i, name := range []string{"One", "Two", "Three"} {
			pos := ctx.GetCursorPos()
			size := ctx.MeasureText(name)
			tabCenter[i] = Vec2{
				X: pos.X + (size.X+ctx.style.ButtonPadding*2)/2,
				Y: pos.Y + (size.Y+ctx.style.ItemSpacing)/2,
			}
			if ctx.Tab(name) {
				selected = i
			}
		}
		ctx.EndTabBar()
		ctx.EndWindow()
	}

	input.Reset()
	windowFrame(ctx, input, build)
	if selected != 0 {
		t.Fatalf("expected tab 0 active by default, got %d", selected)
	}

	// Click on the second tab: ButtonBehavior reports pressed on release,
	// so press then release across two frames.
	pressAndRelease(ctx, input, tabCenter[1].X, tabCenter[1].Y, build)

	if selected != 1 {
		t.Fatalf("expected clicking the second tab to select index 1, got %d", selected)
	}

	// Selection must persist into the window's Storage across frames even
	// without further clicks.
	input.Reset()
	selected = -1
	windowFrame(ctx, input, build)
	if selected != 1 {
		t.Fatalf("expected tab selection to persist via window Storage, got %d", selected)
	}
}

func TestTabWithoutBeginTabBarPanics(t *testing.T) {
	ctx := NewContext()
	defer func() {
		if recover() == nil {
			t.Fatal("expected Tab without BeginTabBar to panic")
		}
	}()
	ctx.Tab("orphan")
}
