package ui

import "testing"

func TestComboBoxOpenAndSelect(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()

	items := []string{"Low", "Medium", "High"}
	selected := 0
	changed := false
	build := func() {
		changed = ctx.ComboBox("", &selected, items)
	}

	headerH := ctx.lineHeight() + ctx.style.ButtonPadding*2
	itemHeight := ctx.lineHeight() + ctx.style.ItemSpacing

	// Press and release on the header to open the dropdown.
	input.Reset()
	input.SetMousePos(75, headerH/2)
	input.SetMouseButton(MouseButtonLeft, true)
	dragTestFrame(ctx, input, build)

	input.Reset()
	input.SetMouseButton(MouseButtonLeft, false)
	dragTestFrame(ctx, input, build)

	st := comboStore.GetIfExists(ctx.GetID(""))
	if st == nil || !st.Open {
		t.Fatal("expected dropdown open after clicking the header")
	}

	// Click the second item.
	input.Reset()
	input.SetMousePos(20, headerH+itemHeight*1.5)
	input.SetMouseButton(MouseButtonLeft, true)
	dragTestFrame(ctx, input, build)

	if !changed {
		t.Fatal("expected selection change")
	}
	if selected != 1 {
		t.Fatalf("selected = %d, want 1", selected)
	}
	if st.Open {
		t.Fatal("expected dropdown closed after selecting")
	}
}

func TestComboBoxClickOutsideCloses(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()

	items := []string{"A", "B"}
	selected := 0
	build := func() {
		ctx.ComboBox("", &selected, items)
	}

	headerH := ctx.lineHeight() + ctx.style.ButtonPadding*2

	input.Reset()
	input.SetMousePos(75, headerH/2)
	input.SetMouseButton(MouseButtonLeft, true)
	dragTestFrame(ctx, input, build)

	input.Reset()
	input.SetMouseButton(MouseButtonLeft, false)
	dragTestFrame(ctx, input, build)

	st := comboStore.GetIfExists(ctx.GetID(""))
	if st == nil || !st.Open {
		t.Fatal("expected dropdown open")
	}

	input.Reset()
	input.SetMousePos(600, 400)
	input.SetMouseButton(MouseButtonLeft, true)
	dragTestFrame(ctx, input, build)

	if st.Open {
		t.Fatal("expected a click far outside to close the dropdown")
	}
	if selected != 0 {
		t.Fatalf("selection must survive an outside click, got %d", selected)
	}
}

func TestSelectableListClickSelects(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()

	items := []string{"one", "two", "three", "four"}
	selected := 0
	changed := false
	build := func() {
		changed = ctx.SelectableList("list", &selected, items, 200)
	}

	itemHeight := ctx.lineHeight() + ctx.style.ItemSpacing

	input.Reset()
	input.SetMousePos(40, itemHeight*2.5)
	input.SetMouseButton(MouseButtonLeft, true)
	dragTestFrame(ctx, input, build)

	if !changed {
		t.Fatal("expected a selection change")
	}
	if selected != 2 {
		t.Fatalf("selected = %d, want 2", selected)
	}
}

func TestSelectableListClipsToVisibleRange(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()

	items := make([]string, 100000)
	for i := range items {
		items[i] = "item"
	}
	selected := -1
	build := func() {
		ctx.SelectableList("big", &selected, items, 120)
	}

	input.Reset()
	dragTestFrame(ctx, input, build)

	// The draw list must stay proportional to the viewport, not the item
	// count: each drawn item costs a handful of vertices, so a 100k-item
	// list rendering everything would blow far past this bound.
	if n := len(ctx.DrawList.VtxBuffer); n > 2000 {
		t.Fatalf("%d vertices for a 120px-tall list; items are not being clipped", n)
	}
}
