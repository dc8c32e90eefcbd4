package ui

// ComboBoxState tracks an open dropdown between frames.
type ComboBoxState struct {
	Open          bool
	KeyboardIndex int
	ScrollY       float32
}

// comboStore holds per-combobox dropdown state.
var comboStore = NewFrameStore[ComboBoxState]()

// ComboBox draws a dropdown selection widget.
// Returns true if the selection changed.
//
// Usage:
//
//	items := []string{"Low", "Medium", "High"}
//	if ctx.ComboBox("Quality", &selectedIndex, items) {
//	    applyQuality(selectedIndex)
//	}
func (ctx *Context) ComboBox(label string, selectedIndex *int, items []string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	state := comboStore.Get(id, ComboBoxState{KeyboardIndex: -1})

	labelWidth := float32(0)
	if label != "" {
		labelWidth = ctx.MeasureText(visibleLabel(label)).X + ctx.style.ItemSpacing
	}

	// Size the header to the longest item unless an explicit width is set.
	comboWidth := float32(150)
	if width := GetOpt(o, OptWidth); width > 0 {
		comboWidth = width
	} else {
		for _, item := range items {
			itemWidth := ctx.MeasureText(item).X + ctx.style.ButtonPadding*2 + 20 // +20 for arrow
			if itemWidth > comboWidth {
				comboWidth = itemWidth
			}
		}
	}

	h := ctx.lineHeight() + ctx.style.ButtonPadding*2
	arrowSize := float32(8)

	if label != "" {
		ctx.addText(pos.X, pos.Y+(h-ctx.lineHeight())/2, visibleLabel(label), ctx.style.TextColor)
	}

	headerX := pos.X + labelWidth
	headerY := pos.Y
	headerRect := Rect{X: headerX, Y: headerY, W: comboWidth, H: h}

	pressed, hovered, _ := ctx.ButtonBehavior(headerRect, id)
	changed := false

	bgColor := ctx.style.ButtonColor
	if hovered || state.Open {
		bgColor = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(headerX, headerY, comboWidth, h, bgColor)
	ctx.DrawList.AddRectOutline(headerX, headerY, comboWidth, h, ctx.style.InputBorderColor, 1)

	selectedText := ""
	if *selectedIndex >= 0 && *selectedIndex < len(items) {
		selectedText = items[*selectedIndex]
	}
	ctx.addText(headerX+ctx.style.ButtonPadding, headerY+(h-ctx.lineHeight())/2, selectedText, ctx.style.TextColor)

	// Arrow points down when closed, up when open.
	arrowX := headerX + comboWidth - ctx.style.ButtonPadding - arrowSize
	arrowY := headerY + h/2
	if state.Open {
		ctx.DrawList.AddTriangle(
			arrowX+arrowSize/2, arrowY-arrowSize/4,
			arrowX, arrowY+arrowSize/4,
			arrowX+arrowSize, arrowY+arrowSize/4,
			ctx.style.TextColor,
		)
	} else {
		ctx.DrawList.AddTriangle(
			arrowX+arrowSize/2, arrowY+arrowSize/4,
			arrowX, arrowY-arrowSize/4,
			arrowX+arrowSize, arrowY-arrowSize/4,
			ctx.style.TextColor,
		)
	}

	justOpened := false
	if pressed {
		state.Open = !state.Open
		if state.Open {
			justOpened = true
			state.KeyboardIndex = *selectedIndex
			ctx.SetActivePopup(id)
		} else {
			ctx.SetActivePopup(0)
		}
	}

	if state.Open {
		// Reclaim the popup every open frame so an orphaned dropdown
		// releases navigation when its combobox stops drawing.
		ctx.SetActivePopup(id)
		ctx.WantCaptureKeyboard = true

		fgDrawList := ctx.ForegroundDrawList
		if fgDrawList == nil {
			fgDrawList = ctx.DrawList
		}

		dropdownY := headerY + h
		itemHeight := ctx.lineHeight() + ctx.style.ItemSpacing

		maxDropdownHeight := float32(200)
		contentHeight := float32(len(items)) * itemHeight
		dropdownHeight := minf(contentHeight, maxDropdownHeight)

		fgDrawList.AddRect(headerX, dropdownY, comboWidth, dropdownHeight, RGBA(20, 20, 25, 255))
		fgDrawList.AddRectOutline(headerX, dropdownY, comboWidth, dropdownHeight, ctx.style.InputBorderColor, 1)

		fgDrawList.PushClipRect(headerX, dropdownY, headerX+comboWidth, dropdownY+dropdownHeight)

		// Only walk the visible slice of items; the clipper keeps a
		// thousand-entry dropdown as cheap as a ten-entry one.
		clipper := NewListClipper(len(items), itemHeight, dropdownHeight, state.ScrollY)
		for i := clipper.StartIdx; i < clipper.EndIdx; i++ {
			itemY := dropdownY + float32(i)*itemHeight - state.ScrollY
			itemRect := Rect{X: headerX + 2, Y: itemY, W: comboWidth - 4, H: itemHeight}

			itemHovered := ctx.isHovered(id, itemRect)
			switch {
			case i == *selectedIndex || i == state.KeyboardIndex:
				fgDrawList.AddRect(itemRect.X, itemRect.Y, itemRect.W, itemRect.H, ctx.style.SelectedBgColor)
			case itemHovered:
				fgDrawList.AddRect(itemRect.X, itemRect.Y, itemRect.W, itemRect.H, ctx.style.HoveredBgColor)
			}

			textColor := ctx.style.TextColor
			if i == *selectedIndex || i == state.KeyboardIndex {
				textColor = ctx.style.SelectedTextColor
			}
			ctx.addTextTo(fgDrawList, itemRect.X+ctx.style.ItemSpacing, itemY, items[i], textColor)

			if itemHovered && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) && !justOpened {
				if i != *selectedIndex {
					*selectedIndex = i
					changed = true
				}
				state.Open = false
				ctx.SetActivePopup(0)
			}
		}

		fgDrawList.PopClipRect()

		if ctx.Input != nil {
			dropdownRect := Rect{X: headerX, Y: dropdownY, W: comboWidth, H: dropdownHeight}
			if dropdownRect.Contains(Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY}) && ctx.Input.MouseWheelY != 0 {
				maxScroll := maxf(0, contentHeight-dropdownHeight)
				state.ScrollY = clampf(state.ScrollY-ctx.Input.MouseWheelY*20, 0, maxScroll)
			}

			// Click outside the header+dropdown closes without selecting.
			if ctx.Input.MouseClicked(MouseButtonLeft) && !justOpened {
				outsideRect := Rect{X: headerX, Y: headerY, W: comboWidth, H: h + dropdownHeight}
				if !outsideRect.Contains(Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY}) {
					state.Open = false
					ctx.SetActivePopup(0)
				}
			}

			if ctx.Input.KeyPressed(KeyEscape) {
				state.Open = false
				ctx.SetActivePopup(0)
			}

			if state.KeyboardIndex < 0 {
				state.KeyboardIndex = *selectedIndex
			}
			if ctx.Input.KeyRepeated(KeyUp) && state.KeyboardIndex > 0 {
				state.KeyboardIndex--
			}
			if ctx.Input.KeyRepeated(KeyDown) && state.KeyboardIndex < len(items)-1 {
				state.KeyboardIndex++
			}
			if !justOpened && ctx.Input.KeyPressed(KeyEnter) {
				if state.KeyboardIndex >= 0 && state.KeyboardIndex < len(items) {
					if state.KeyboardIndex != *selectedIndex {
						*selectedIndex = state.KeyboardIndex
						changed = true
					}
					state.Open = false
					ctx.SetActivePopup(0)
				}
			}
		}
	} else if ctx.ActivePopupID() == id {
		ctx.SetActivePopup(0)
	}

	ctx.advanceCursor(Vec2{labelWidth + comboWidth, h})
	return changed
}
