package ui

import (
	"fmt"
	"strings"
)

// DragValueState remembers the mouse x position from the previous frame
// of an active drag so per-frame deltas can be applied to the value.
type DragValueState struct {
	LastMouseX float32
}

// dragValueStore holds each drag widget's previous-frame mouse anchor.
var dragValueStore = NewFrameStore[DragValueState]()

// DragFloat draws a numeric field whose value is adjusted by horizontal
// mouse drag. speed is value units per pixel dragged. When minVal <
// maxVal the value is clamped to that range; equal bounds mean unbounded.
// Returns true if the value was changed.
//
// Usage:
//
//	if ctx.DragFloat("Zoom", &zoom, 0.01, 0.1, 10) {
//	    applyZoom(zoom)
//	}
func (ctx *Context) DragFloat(label string, value *float32, speed, minVal, maxVal float32, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	labelWidth := float32(0)
	if label != "" {
		labelWidth = ctx.MeasureText(visibleLabel(label)).X + ctx.style.ItemSpacing
	}

	fieldWidth := float32(150)
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		fieldWidth = optWidth
	}
	h := ctx.lineHeight() + ctx.style.ButtonPadding

	if label != "" {
		ctx.addText(pos.X, pos.Y+(h-ctx.lineHeight())/2, visibleLabel(label), ctx.style.TextColor)
	}

	fieldX := pos.X + labelWidth
	rect := Rect{X: fieldX, Y: pos.Y, W: fieldWidth, H: h}

	_, hovered, held := ctx.ButtonBehavior(rect, id)
	changed := false

	if ctx.Input != nil {
		if hovered || held {
			ctx.NextMouseCursor = CursorResizeEW
		}
		if held && ctx.ActiveIDJustActivated() {
			state := dragValueStore.Get(id, DragValueState{})
			state.LastMouseX = ctx.Input.MouseX
		}
		if held && ctx.Input.MouseDown(MouseButtonLeft) {
			state := dragValueStore.Get(id, DragValueState{})
			dx := ctx.Input.MouseX - state.LastMouseX
			state.LastMouseX = ctx.Input.MouseX
			if dx != 0 {
				step := speed
				if step == 0 {
					step = 1
				}
				newValue := *value + dx*step
				if minVal < maxVal {
					newValue = clampf(newValue, minVal, maxVal)
				}
				if newValue != *value {
					*value = newValue
					changed = true
				}
			}
		}
	}

	bgColor := ctx.style.ButtonColor
	if held {
		bgColor = ctx.style.ButtonActiveColor
	} else if hovered {
		bgColor = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, bgColor)
	ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, ctx.style.InputBorderColor, 1)

	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%.3f"
	}
	var valueText string
	if strings.Contains(format, "%d") {
		valueText = fmt.Sprintf(format, int(*value))
	} else {
		valueText = fmt.Sprintf(format, *value)
	}
	textX := rect.X + (rect.W-ctx.MeasureText(valueText).X)/2
	ctx.addText(textX, rect.Y+(h-ctx.lineHeight())/2, valueText, ctx.style.TextColor)

	ctx.DrawDebugFocusRectIf(held, rect.X, rect.Y, rect.W, rect.H)

	ctx.advanceCursor(Vec2{labelWidth + fieldWidth, h})
	return changed
}

// DragInt is DragFloat for int values.
func (ctx *Context) DragInt(label string, value *int, speed float32, minVal, maxVal int, opts ...Option) bool {
	floatVal := float32(*value)
	found := false
	for _, opt := range opts {
		testOpts := options{}
		opt(&testOpts)
		if GetOpt(testOpts, OptFormat) != "" {
			found = true
			break
		}
	}
	if !found {
		opts = append(opts, WithFormat("%d"))
	}

	changed := ctx.DragFloat(label, &floatVal, speed, float32(minVal), float32(maxVal), opts...)
	if changed {
		*value = int(floatVal)
	}
	return changed
}
