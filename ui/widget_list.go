package ui

// selectableListState tracks a list's scroll offset between frames.
type selectableListState struct {
	ScrollY float32
}

// selectableListStore holds per-list scroll state.
var selectableListStore = NewFrameStore[selectableListState]()

// SelectableList draws a scrollable single-selection list of items inside
// a fixed-height box. Only the visible slice of items is rendered (the
// same ListClipper that backs ComboBox dropdowns), so the item count can
// be large. Returns true if the selection changed.
//
// Usage:
//
//	if ctx.SelectableList("files", &selected, names, 240) {
//	    openFile(names[selected])
//	}
func (ctx *Context) SelectableList(label string, selectedIndex *int, items []string, height float32, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	state := selectableListStore.Get(id, selectableListState{})

	w := ctx.currentLayoutWidth()
	if width := GetOpt(o, OptWidth); width > 0 {
		w = width
	}

	ctx.DrawList.AddRect(pos.X, pos.Y, w, height, ctx.style.InputBgColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, w, height, ctx.style.InputBorderColor, 1)

	itemHeight := ctx.lineHeight() + ctx.style.ItemSpacing
	contentHeight := float32(len(items)) * itemHeight
	maxScroll := maxf(0, contentHeight-height)

	boxRect := Rect{X: pos.X, Y: pos.Y, W: w, H: height}
	if ctx.Input != nil && boxRect.Contains(Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY}) {
		if ctx.Input.MouseWheelY != 0 {
			state.ScrollY = clampf(state.ScrollY-ctx.Input.MouseWheelY*itemHeight*2, 0, maxScroll)
		}
	}
	state.ScrollY = clampf(state.ScrollY, 0, maxScroll)

	ctx.DrawList.PushClipRect(pos.X, pos.Y, pos.X+w, pos.Y+height)

	changed := false
	clipper := NewListClipper(len(items), itemHeight, height, state.ScrollY)
	for i := clipper.StartIdx; i < clipper.EndIdx; i++ {
		itemY := pos.Y + float32(i)*itemHeight - state.ScrollY
		itemRect := Rect{X: pos.X + 2, Y: itemY, W: w - 4, H: itemHeight}

		hovered := ctx.isHovered(id, itemRect)
		switch {
		case i == *selectedIndex:
			ctx.DrawList.AddRect(itemRect.X, itemRect.Y, itemRect.W, itemRect.H, ctx.style.SelectedBgColor)
		case hovered:
			ctx.DrawList.AddRect(itemRect.X, itemRect.Y, itemRect.W, itemRect.H, ctx.style.HoveredBgColor)
		}

		textColor := ctx.style.TextColor
		if i == *selectedIndex {
			textColor = ctx.style.SelectedTextColor
		}
		ctx.addText(itemRect.X+ctx.style.ItemSpacing, itemY, items[i], textColor)

		if hovered && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
			if i != *selectedIndex {
				*selectedIndex = i
				changed = true
			}
		}
	}

	ctx.DrawList.PopClipRect()

	// Scrollbar, same handle-size formula as the window manager.
	if contentHeight > height {
		sbW := ctx.style.ScrollbarSize
		sbX := pos.X + w - sbW - 1
		handleSize := maxf(windowScrollbarMin, height*height/contentHeight)
		handleY := pos.Y
		if maxScroll > 0 {
			handleY += (height - handleSize) * (state.ScrollY / maxScroll)
		}
		ctx.DrawList.AddRect(sbX, pos.Y, sbW, height, ctx.style.ScrollbarBgColor)
		ctx.DrawList.AddRect(sbX, handleY, sbW, handleSize, ctx.style.ScrollbarGrabColor)
	}

	ctx.advanceCursor(Vec2{w, height})
	return changed
}
