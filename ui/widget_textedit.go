package ui

import "strings"

// InputTextMultiline renders a scrollable, multi-line editor backed by the
// full TextEditState engine (textedit.go) rather than InputText's
// single-line InputTextState — it supports line-based Up/Down/PageUp/
// PageDown navigation, word-wise delete, undo/redo, and the character
// filter/word-nav/revert options applied to its state, when the state is
// first created, via TextEditOption. Per the spec's Input-Text State note that at most one
// editor is conceptually "focused" at a time, editing is exited whenever
// the context's active id moves to a different widget, matching
// InputText's own convention.
//
// visibleLines sizes the editor's fixed height; wider content scrolls
// horizontally is not supported (wrap is the caller's concern via width),
// but vertical scroll follows the cursor by line.
func (ctx *Context) InputTextMultiline(label string, value *string, visibleLines int, opts ...TextEditOption) bool {
	pos := ctx.ItemPos()
	o := textEditOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	id := ctx.GetID(label)
	state := textEditStates[id]
	if state == nil {
		state = NewTextEditState()
		state.SetString(*value)
		state.Filter = o.filter
		state.WordNav = o.wordNav
		state.Revert = o.revert
		state.EnterReturns = o.enterReturns
		state.SetClipboardProvider(ClipboardGetText, ClipboardSetText)
		textEditStates[id] = state
	}

	if label != "" {
		ctx.addText(pos.X, pos.Y, label, ctx.style.TextColor)
		pos.Y += ctx.lineHeight() + ctx.style.ItemSpacing
	}

	lh := ctx.lineHeight()
	if visibleLines < 1 {
		visibleLines = 1
	}
	w := float32(300)
	h := lh*float32(visibleLines) + ctx.style.InputPadding*2
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	if ctx.Input != nil && rect.Contains(Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY}) {
		ctx.NextMouseCursor = CursorTextInput
	}

	if !state.Editing && ctx.isClicked(id, rect) {
		ctx.SetActiveID(id)
		state.BeginEdit()
	}
	if state.Editing && ctx.ActiveID() != id {
		state.EndEdit()
	}

	bg := ctx.style.InputBgColor
	if state.Editing {
		bg = ctx.style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, bg)
	ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, ctx.style.InputBorderColor, 1)

	ctx.DrawList.PushClipRect(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H)

	lines := strings.Split(string(state.Text), "\n")
	cursorLine, cursorCol := lineColOf(state.Text, state.CursorPos)

	// Keep the cursor's line within the visible window by scrolling the
	// first drawn line forward, mirroring InputText's horizontal
	// scroll-to-cursor logic but on the line axis.
	if cursorLine < state.scrollLine {
		state.scrollLine = cursorLine
	}
	if cursorLine >= state.scrollLine+visibleLines {
		state.scrollLine = cursorLine - visibleLines + 1
	}
	if state.scrollLine < 0 {
		state.scrollLine = 0
	}

	selStart, selEnd := state.GetSelectedRange()
	textY := rect.Y + ctx.style.InputPadding
	runeOffset := 0
	for i, line := range lines {
		if i > 0 {
			runeOffset += len([]rune(lines[i-1])) + 1
		}
		if i < state.scrollLine {
			continue
		}
		if i >= state.scrollLine+visibleLines {
			break
		}
		lineY := textY + float32(i-state.scrollLine)*lh

		if selStart >= 0 {
			lineRuneLen := len([]rune(line))
			ls, le := runeOffset, runeOffset+lineRuneLen
			if selEnd > ls && selStart < le {
				hs := Max(selStart, ls) - ls
				he := Min(selEnd, le) - ls
				hx0 := ctx.MeasureText(string([]rune(line)[:hs])).X
				hx1 := ctx.MeasureText(string([]rune(line)[:he])).X
				ctx.DrawList.AddRect(rect.X+ctx.style.InputPadding+hx0, lineY, hx1-hx0, lh, ctx.style.SelectedBgColor)
			}
		}

		ctx.addText(rect.X+ctx.style.InputPadding, lineY, line, ctx.style.TextColor)

		if state.Editing && i == cursorLine {
			state.CursorBlinkTime += ctx.DeltaTime
			if int(state.CursorBlinkTime*2)%2 == 0 {
				cursorX := rect.X + ctx.style.InputPadding + ctx.MeasureText(string([]rune(line)[:cursorCol])).X
				ctx.DrawList.AddLine(cursorX, lineY, cursorX, lineY+lh, ctx.style.TextColor, 1)
			}
		}
	}

	ctx.DrawList.PopClipRect()

	changed := false
	if state.Editing && ctx.Input != nil {
		ctx.WantCaptureKeyboard = true
		changed = ctx.processTextEditKeyboard(state)
		if changed {
			*value = state.String()
		}
	}
	state.ResetEditedFlag()

	ctx.cursor.X = pos.X
	ctx.advanceCursor(Vec2{X: w, Y: h})

	return changed
}

// lineColOf returns the (line, column) of rune-index pos within text,
// both counted in runes — used to place the blinking cursor and to scroll
// the visible line window.
func lineColOf(text []rune, pos int) (line, col int) {
	for i := 0; i < pos && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}

func (ctx *Context) processTextEditKeyboard(state *TextEditState) bool {
	input := ctx.Input
	changed := false

	switch {
	case input.ModCtrl && input.KeyPressed(KeyA):
		state.SelectAllText()
		return false
	case input.ModCtrl && input.KeyPressed(KeyC):
		state.Copy()
		return false
	case input.ModCtrl && input.KeyPressed(KeyX):
		state.Cut()
		return true
	case input.ModCtrl && input.KeyPressed(KeyV):
		state.Paste()
		return true
	case input.ModCtrl && input.KeyPressed(KeyZ) && !input.ModShift:
		return state.UndoEdit()
	case input.ModCtrl && (input.KeyPressed(KeyY) || (input.KeyPressed(KeyZ) && input.ModShift)):
		return state.RedoEdit()
	}

	shift := input.ModShift
	switch {
	case input.KeyRepeated(KeyLeft):
		if input.ModCtrl {
			state.MoveWordLeft(shift)
		} else {
			state.MoveLeft(shift)
		}
	case input.KeyRepeated(KeyRight):
		if input.ModCtrl {
			state.MoveWordRight(shift)
		} else {
			state.MoveRight(shift)
		}
	case input.KeyRepeated(KeyUp):
		state.MoveUp(shift)
	case input.KeyRepeated(KeyDown):
		state.MoveDown(shift)
	case input.KeyPressed(KeyPageUp):
		state.PageUp(shift)
	case input.KeyPressed(KeyPageDown):
		state.PageDown(shift)
	case input.KeyPressed(KeyHome):
		if input.ModCtrl {
			state.TextStart(shift)
		} else {
			state.Home(shift)
		}
	case input.KeyPressed(KeyEnd):
		if input.ModCtrl {
			state.TextEnd(shift)
		} else {
			state.End(shift)
		}
	case input.KeyRepeated(KeyBackspace):
		if input.ModCtrl {
			state.DeleteWordLeft()
		} else {
			state.DeleteBack()
		}
		changed = true
	case input.KeyRepeated(KeyDelete):
		if input.ModCtrl {
			state.DeleteWordRight()
		} else {
			state.DeleteForward()
		}
		changed = true
	case input.KeyPressed(KeyEscape):
		state.Escape()
		return false
	case input.KeyPressed(KeyEnter):
		if state.EnterReturns {
			state.EndEdit()
		} else {
			state.InsertFilteredRune('\n')
			changed = true
		}
	}

	for _, ch := range input.InputChars {
		if ch >= 32 || ch == '\t' {
			if state.InsertFilteredRune(ch) {
				changed = true
			}
		}
	}

	return changed || state.EditedThisFrame()
}

// textEditStates holds one TextEditState per widget id, persisted across
// frames like the window Storage map — a plain map rather than FrameStore
// because TextEditState carries unexported snapshot/clipboard fields that
// must survive by pointer, not by the value-copy semantics GetState/
// SetState use elsewhere.
var textEditStates = make(map[ID]*TextEditState)

// TextEditOption configures an InputTextMultiline widget's underlying
// TextEditState at creation.
type TextEditOption func(*textEditOptions)

type textEditOptions struct {
	filter       CharFilter
	wordNav      WordNavStyle
	revert       RevertPolicy
	enterReturns bool
}

// WithCharFilter restricts which characters InputTextMultiline accepts.
func WithCharFilter(f CharFilter) TextEditOption {
	return func(o *textEditOptions) { o.filter = f }
}

// WithWordNavStyle selects Mac- or Windows-convention word navigation.
func WithWordNavStyle(s WordNavStyle) TextEditOption {
	return func(o *textEditOptions) { o.wordNav = s }
}

// WithRevertPolicy configures what Escape does to the buffer.
func WithRevertPolicy(p RevertPolicy) TextEditOption {
	return func(o *textEditOptions) { o.revert = p }
}

// WithEnterReturns makes Enter commit and end editing instead of inserting
// a newline.
func WithEnterReturns() TextEditOption {
	return func(o *textEditOptions) { o.enterReturns = true }
}
