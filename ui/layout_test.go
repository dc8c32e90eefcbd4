package ui

import "testing"

func TestVStackAdvancesVertically(t *testing.T) {
	ctx := newTestContext(800, 600)
	ctx.style.ItemSpacing = 0

	ctx.VStack(Gap(10))(func() {
		ctx.AdvanceCursor(Vec2{X: 50, Y: 20})
		ctx.AdvanceCursor(Vec2{X: 50, Y: 20})
	})

	// Two 20-high items, 10px gap after each wrap, plus the closing pop.
	if got := ctx.GetCursorPos(); got.X != 0 || got.Y != 70 {
		t.Fatalf("cursor after VStack = %+v, want (0, 70)", got)
	}
}

func TestHStackFlowsHorizontallyThenDropsLine(t *testing.T) {
	ctx := newTestContext(800, 600)
	ctx.style.ItemSpacing = 0

	var midX float32
	ctx.HStack(Gap(5))(func() {
		ctx.AdvanceCursor(Vec2{X: 30, Y: 20})
		midX = ctx.GetCursorPos().X
		ctx.AdvanceCursor(Vec2{X: 30, Y: 20})
	})

	if midX != 35 {
		t.Fatalf("cursor.X after first item = %f, want 35", midX)
	}
	// Closing the stack drops below the tallest item.
	if got := ctx.GetCursorPos(); got.X != 0 || got.Y != 25 {
		t.Fatalf("cursor after HStack = %+v, want (0, 25)", got)
	}
}

// Panel is a window underneath: the backing window persists under the
// panel's title, is pinned to the cursor, and the cursor flows past it.
func TestPanelIsWindowBacked(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()

	windowFrame(ctx, input, func() {
		ctx.SetCursorPos(40, 30)
		ctx.Panel("Backed")(func() {
			ctx.AdvanceCursor(Vec2{X: 100, Y: 50})
		})
	})

	w := ctx.windows[ctx.GetID("Backed")]
	if w == nil {
		t.Fatal("expected Panel to create a backing window")
	}
	if (w.Pos != Vec2{X: 40, Y: 30}) {
		t.Fatalf("backing window pos = %+v, want the cursor position (40, 30)", w.Pos)
	}
	if w.Flags&WindowAutoSize == 0 || w.Flags&WindowNoMove == 0 {
		t.Fatalf("backing window flags = %v, want auto-size and no-move set", w.Flags)
	}
	want := 30 + w.Size.Y + ctx.style.ItemSpacing
	if got := ctx.GetCursorPos().Y; got != want {
		t.Fatalf("cursor.Y after Panel = %f, want %f (flowed past the window)", got, want)
	}
}

// ListBox is backed by a scrollable child window that measures its
// content for scroll bounds.
func TestListBoxIsChildWindowBacked(t *testing.T) {
	ctx := newTestContext(800, 600)
	ctx.stateStore = make(MapStateStore)
	input := NewInputState()

	build := func() {
		ctx.ListBox("lst", 100)(func() {
			for i := 0; i < 10; i++ {
				ctx.AdvanceCursor(Vec2{X: 120, Y: 30})
			}
		})
	}
	windowFrame(ctx, input, build)

	w := ctx.windows[ctx.GetID("lst")]
	if w == nil || !w.Child {
		t.Fatal("expected ListBox to create a backing child window")
	}
	if w.ContentSize.Y <= 100 {
		t.Fatalf("ContentSize.Y = %f, want the full 10-item extent", w.ContentSize.Y)
	}
	if w.ScrollMax.Y <= 0 {
		t.Fatal("expected a positive scroll range for overflowing content")
	}
}
