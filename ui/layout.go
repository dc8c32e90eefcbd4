package ui

// Container veneers over the window manager and the row layout systems.
// Panel and CenteredPanel are backed by persisted windows (auto-sized,
// pinned to the cursor), ListBox by a scrollable child window, and
// VStack/HStack by rows on the same row stack the LayoutRow* calls use —
// there is no second layout mechanism behind these, only sugar.

// layoutOptions collects the functional options a container accepts.
type layoutOptions struct {
	gap, gapX, gapY     float32
	padding, padX, padY float32
	width, height       float32
	hotkey              string
	maxHeight           float32
}

// LayoutOption configures a layout container.
type LayoutOption func(*layoutOptions)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(o *layoutOptions) { o.gap = pixels }
}

// GapX sets horizontal spacing between children.
func GapX(pixels float32) LayoutOption {
	return func(o *layoutOptions) { o.gapX = pixels }
}

// GapY sets vertical spacing between children.
func GapY(pixels float32) LayoutOption {
	return func(o *layoutOptions) { o.gapY = pixels }
}

// Padding sets inner padding on all sides.
func Padding(pixels float32) LayoutOption {
	return func(o *layoutOptions) { o.padding = pixels }
}

// PaddingXY sets horizontal and vertical padding separately.
func PaddingXY(x, y float32) LayoutOption {
	return func(o *layoutOptions) {
		o.padX = x
		o.padY = y
	}
}

// Width sets a minimum width for the container.
func Width(w float32) LayoutOption {
	return func(o *layoutOptions) { o.width = w }
}

// Height sets a minimum height for the container.
func Height(h float32) LayoutOption {
	return func(o *layoutOptions) { o.height = h }
}

// WithHotkey sets the keyboard shortcut to display in panel headers.
// The hotkey is shown as "[Key]" after the title.
func WithHotkey(key string) LayoutOption {
	return func(o *layoutOptions) { o.hotkey = key }
}

// MaxHeight caps the container's height. Pass 0 to disable the cap.
func MaxHeight(h float32) LayoutOption {
	return func(o *layoutOptions) { o.maxHeight = h }
}

func applyLayoutOptions(opts []LayoutOption) layoutOptions {
	var o layoutOptions
	for _, f := range opts {
		f(&o)
	}
	return o
}

// vGap returns the vertical child spacing the options select.
func (o layoutOptions) vGap() float32 {
	if o.gapY > 0 {
		return o.gapY
	}
	return o.gap
}

// hGap returns the horizontal child spacing the options select.
func (o layoutOptions) hGap() float32 {
	if o.gapX > 0 {
		return o.gapX
	}
	return o.gap
}

// padXY resolves the effective horizontal/vertical padding.
func (o layoutOptions) padXY() (x, y float32) {
	x, y = o.padX, o.padY
	if x == 0 {
		x = o.padding
	}
	if y == 0 {
		y = o.padding
	}
	return x, y
}

// Panel draws a titled panel at the current cursor and flows past it.
// It is a window underneath: auto-sized, pinned to the cursor, with
// moving/resizing/collapsing disabled, so panel chrome, clipping, and
// layer submission all go through the one window manager. A title whose
// visible part is empty (or "") suppresses the header.
//
// Usage:
//
//	ctx.Panel("Menu", Gap(8), Padding(12))(func() {
//	    ctx.Text("Hello")
//	    ctx.Button("Click")
//	})
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		o := applyLayoutOptions(opts)
		padX, padY := o.padXY()
		if padX == 0 {
			padX = ctx.style.PanelPadding
		}
		if padY == 0 {
			padY = ctx.style.PanelPadding
		}

		name := title
		if o.hotkey != "" {
			name = title + " [" + o.hotkey + "]"
		}
		flags := WindowNoMove | WindowNoResize | WindowNoCollapse | WindowAutoSize
		if visibleLabel(name) == "" {
			flags |= WindowNoTitleBar
		}

		start := ctx.cursor
		ctx.SetNextWindowPos(start, CondAlways)
		ctx.BeginWindow(name, flags)
		w := ctx.currentWindow()
		if o.width > 0 {
			w.MinSize.X = o.width
		}
		if o.height > 0 {
			w.MinSize.Y = o.height
		}
		if o.maxHeight > 0 {
			w.MaxSize.Y = o.maxHeight
		}

		ctx.cursor.X += padX
		ctx.cursor.Y += padY

		depth := len(ctx.rowStack)
		ctx.pushRow(&layoutRow{System: RowDynamic, Columns: 1, Spacing: o.vGap()})
		contents()
		ctx.popRowsTo(depth)

		// Account for the right/bottom padding in the auto-size extent.
		w.cursorMax.X += padX
		w.cursorMax.Y += padY

		ctx.EndWindow()

		if ctx.Input != nil && w.OuterRect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY}) {
			ctx.WantCaptureMouse = true
		}

		ctx.cursor = Vec2{X: start.X, Y: start.Y + w.Size.Y + ctx.style.ItemSpacing}
	}
}

// CenteredPanel draws a panel centered on screen. The backing window
// persists across frames, so last frame's measured size gives an exact
// center without a separate measuring pass.
func (ctx *Context) CenteredPanel(id string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		name := "##" + id
		size := Vec2{X: 200, Y: 100}
		if w, ok := ctx.windows[ctx.GetID(name)]; ok {
			size = w.Size
		}
		ctx.cursor = Vec2{
			X: (ctx.DisplaySize.X - size.X) / 2,
			Y: (ctx.DisplaySize.Y - size.Y) / 2,
		}
		ctx.Panel(name, opts...)(contents)
	}
}

// VStack stacks its contents vertically: a one-column dynamic row, so
// every child wraps to its own line.
//
// Usage:
//
//	ctx.VStack(Gap(8))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		o := applyLayoutOptions(opts)
		depth := len(ctx.rowStack)
		ctx.pushRow(&layoutRow{System: RowDynamic, Columns: 1, Spacing: o.vGap()})
		contents()
		ctx.popRowsTo(depth)
	}
}

// HStack lays its contents out side by side on one line. It rides the
// space system — the one row system with free horizontal flow and no
// wrap — and drops the cursor to the next line when the closure ends.
//
// Usage:
//
//	ctx.HStack(Gap(8))(func() {
//	    ctx.Text("Label:")
//	    ctx.InputText("", &value)
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		o := applyLayoutOptions(opts)
		depth := len(ctx.rowStack)
		ctx.pushRow(&layoutRow{System: RowSpace, Spacing: o.hGap()})
		contents()
		ctx.popRowsTo(depth)
	}
}

// Row creates a horizontal layout for its contents (alias for HStack).
func (ctx *Context) Row(contents func()) {
	ctx.HStack()(contents)
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(pixels float32) {
	ctx.cursor.Y += pixels
}

// Separator draws a horizontal line.
func (ctx *Context) Separator() {
	w := ctx.currentLayoutWidth()
	y := ctx.cursor.Y + 2
	ctx.DrawList.AddLine(ctx.cursor.X, y, ctx.cursor.X+w, y, ctx.style.SeparatorColor, 1)
	ctx.cursor.Y += 4
}

// ListBox draws a scrollable list area backed by a child window: the
// child persists the scroll offset and derives scroll_max at EndChild,
// while a ScrollState smooths the wheel target across frames.
//
// Usage:
//
//	ctx.ListBox("items", 200, Gap(4))(func() {
//	    for i, item := range items {
//	        ctx.Selectable(item.Name, i == selected, WithID(item.ID))
//	    }
//	})
func (ctx *Context) ListBox(id string, height float32, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		o := applyLayoutOptions(opts)
		width := o.width
		if width == 0 {
			width = ctx.currentLayoutWidth()
		}

		scrollID := ctx.GetID(id + "_scroll")
		scrollState := GetState(ctx, scrollID, ScrollState{})
		scrollState.UpdateSmooth(ctx.DeltaTime)
		if w, ok := ctx.windows[ctx.GetID(id)]; ok {
			w.Scroll.Y = scrollState.ScrollY
		}

		ctx.BeginChild(id, Vec2{X: width, Y: height})
		child := ctx.currentWindow()
		in := child.InnerRect
		ctx.DrawList.PushClipRect(in.X, in.Y, in.X+in.W, in.Y+in.H)

		depth := len(ctx.rowStack)
		ctx.pushRow(&layoutRow{System: RowDynamic, Columns: 1, Spacing: o.vGap()})
		contents()
		ctx.popRowsTo(depth)

		ctx.DrawList.PopClipRect()
		ctx.EndChild()

		// Wheel input retargets the smoothed scroll against the content
		// height EndChild just measured.
		maxScroll := child.ScrollMax.Y
		if ctx.Input != nil && ctx.Input.MouseWheelY != 0 &&
			in.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY}) {
			scrollState.TargetScrollY = clampf(scrollState.TargetScrollY-ctx.Input.MouseWheelY*30, 0, maxScroll)
		}
		scrollState.ScrollY = clampf(scrollState.ScrollY, 0, maxScroll)
		scrollState.ContentHeight = child.ContentSize.Y
		SetState(ctx, scrollID, scrollState)

		if maxScroll > 0 {
			sb := ctx.style.ScrollbarSize
			x := child.Pos.X + child.Size.X - sb
			handle := maxf(windowScrollbarMin, height*height/child.ContentSize.Y)
			offset := (height - handle) * (child.Scroll.Y / maxScroll)
			ctx.DrawList.AddRect(x, child.Pos.Y, sb, height, ctx.style.ScrollbarBgColor)
			ctx.DrawList.AddRect(x, child.Pos.Y+offset, sb, handle, ctx.style.ScrollbarGrabColor)
		}
	}
}

// SameLine places the next widget on the same line as the previous.
func (ctx *Context) SameLine() {
	ctx.cursor.Y -= ctx.lineHeight() + ctx.style.ItemSpacing
	ctx.cursor.X += ctx.style.ItemSpacing
}

// Indent increases the cursor X position.
func (ctx *Context) Indent(pixels float32) {
	ctx.cursor.X += pixels
}

// Unindent decreases the cursor X position.
func (ctx *Context) Unindent(pixels float32) {
	ctx.cursor.X -= pixels
}
