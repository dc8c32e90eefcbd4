package ui

// tabBarState tracks the tab bar currently being built between BeginTabBar
// and EndTabBar. The active index is persisted in the owning window's
// Storage (keyed by the tab bar's id) so it survives across frames without
// a separate map per tab bar.
type tabBarState struct {
	id       ID
	selected int
	index    int
}

// BeginTabBar opens a tab bar; each subsequent Tab call until the matching
// EndTabBar renders one tab button and reports whether it is the active
// one. The active tab index is read from (and, on EndTabBar, written
// back to) the current window's Storage, so switching tabs persists
// across frames the same way a collapsing header's open/closed state does.
func (ctx *Context) BeginTabBar(label string, opts ...Option) {
	o := applyOptions(opts)
	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	selected := int32(0)
	if w := ctx.currentWindow(); w != nil && w.Storage != nil {
		selected = w.Storage.IntOr(uint32(id), 0)
	}

	ctx.tabBarStack = append(ctx.tabBarStack, &tabBarState{id: id, selected: int(selected)})
}

func (ctx *Context) currentTabBar() *tabBarState {
	if n := len(ctx.tabBarStack); n > 0 {
		return ctx.tabBarStack[n-1]
	}
	return nil
}

// Tab draws one tab button in the currently open tab bar and returns true
// if it is the selected tab, i.e. its body should be drawn this frame.
// Clicking a tab makes it active in the frame ButtonBehavior reports the
// press (on release); tabs drawn earlier in that frame have already
// reported against the previous selection.
func (ctx *Context) Tab(label string, opts ...Option) bool {
	bar := ctx.currentTabBar()
	if bar == nil {
		panic("ui: Tab called without a matching BeginTabBar")
	}
	idx := bar.index
	bar.index++

	o := applyOptions(opts)
	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	pos := ctx.ItemPos()
	textSize := ctx.MeasureText(label)
	paddingX := ctx.style.ButtonPadding
	paddingY := ctx.style.ItemSpacing / 2
	w := textSize.X + paddingX*2
	h := textSize.Y + paddingY*2
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	pressed, hovered, _ := ctx.ButtonBehavior(rect, id)
	if pressed {
		bar.selected = idx
	}
	selected := idx == bar.selected

	var bgColor, textColor uint32
	switch {
	case selected:
		bgColor, textColor = ctx.style.SelectedBgColor, ctx.style.SelectedTextColor
	case hovered:
		bgColor, textColor = ctx.style.HoveredBgColor, ctx.style.TextColor
	default:
		bgColor, textColor = ctx.style.ButtonColor, ctx.style.TextColor
	}

	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, bgColor)
	textX := pos.X + (w-textSize.X)/2
	textY := pos.Y + (h-textSize.Y)/2
	ctx.addText(textX, textY, label, textColor)
	if selected {
		ctx.DrawList.AddRect(pos.X, pos.Y+h-2, w, 2, ctx.style.FocusColor)
	}

	ctx.advanceCursor(Vec2{X: w, Y: h})
	return selected
}

// EndTabBar closes the tab bar opened by BeginTabBar, persisting whichever
// tab is now active into the window's Storage.
func (ctx *Context) EndTabBar() {
	n := len(ctx.tabBarStack)
	if n == 0 {
		panic("ui: EndTabBar called without a matching BeginTabBar")
	}
	bar := ctx.tabBarStack[n-1]
	ctx.tabBarStack = ctx.tabBarStack[:n-1]
	if w := ctx.currentWindow(); w != nil && w.Storage != nil {
		w.Storage.SetInt(uint32(bar.id), int32(bar.selected))
	}
}
