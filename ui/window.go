package ui

import "math"

// WindowFlags controls optional window chrome and behavior, mirroring the
// original begin_window flag bits.
type WindowFlags uint32

const (
	WindowNoTitleBar WindowFlags = 1 << iota
	WindowNoResize
	WindowNoMove
	WindowNoCollapse
	WindowNoScrollbar
	WindowAutoSize
	WindowChildWindow
	WindowNoBackground
)

// Cond gates when a SetNextWindowPos/Size/Collapsed parameter is applied
// to its target window.
type Cond int

const (
	// CondAlways applies the parameter every frame it is set.
	CondAlways Cond = iota
	// CondOnce applies the parameter at most once per window per run.
	CondOnce
	// CondFirstUseEver applies only when the window is created for the
	// first time (no persisted state existed).
	CondFirstUseEver
	// CondAppearing applies when the window transitions from hidden (not
	// begun last frame) to visible.
	CondAppearing
)

const (
	windowMinGripSize  = 16 // SE corner resize grip hit-test size
	windowTitleBarPad  = 6
	windowScrollbarW   = 12
	windowScrollbarMin = 5 // minimum scrollbar handle length, per the handle-size formula
	titleButtonRadius  = 5
)

// nextWindowData caches SetNextWindow* parameters until the next
// BeginWindow consumes them.
type nextWindowData struct {
	posSet, sizeSet, collapsedSet bool
	pos, size                     Vec2
	posCond, sizeCond, collCond   Cond
	collapsed                     bool
}

// Window is the persisted per-id record a begin_window call looks up or
// creates. It survives across frames in Context.windows; only its
// transient per-frame fields (the two Layers, the content-size
// accumulator, the child list) are refreshed each time BeginWindow runs.
type Window struct {
	ID   ID
	Name string

	Pos, Size   Vec2
	FullSize    Vec2 // size remembered across a collapse/expand cycle
	MinSize     Vec2
	MaxSize     Vec2 // zero means unbounded
	ContentSize Vec2 // measured from the previous frame
	Scroll      Vec2
	ScrollMax   Vec2
	ScrollbarX  bool
	ScrollbarY  bool
	Collapsed   bool
	HideFrames  int
	Flags       WindowFlags

	Storage *Storage

	ParentID ID
	Child    bool

	// Transient, valid only during the frame that's currently drawing
	// this window.
	BgLayer, FgLayer *Layer
	InnerRect        Rect
	OuterRect        Rect
	InnerClipRect    Rect
	cursorMax        Vec2
	contentStartY    float32
	frameChildren    []*Window
	submittedFrame   bool
	skipFrame        bool // closed via BeginWindowOpen; draw and lay out nothing

	drag            DraggablePanel
	opened          bool // becomes true once begin_window has run at least once
	lastActiveFrame uint64
	posOnce         bool // CondOnce latches, one per parameter kind
	sizeOnce        bool
	collOnce        bool
}

// windowManager holds all windows, the focus-ordered root list, and the
// per-frame submission queue; it is embedded into Context.
type windowManager struct {
	windows     map[ID]*Window
	focusOrder  []ID // root window ids, back-to-front; last is topmost
	windowStack []*Window
	tooltip     *Window

	nextWindow   nextWindowData
	frameRoots   []*Window
	frameTooltip *Window
}

func newWindowManager() *windowManager {
	return &windowManager{windows: make(map[ID]*Window)}
}

func (wm *windowManager) currentWindow() *Window {
	if n := len(wm.windowStack); n > 0 {
		return wm.windowStack[n-1]
	}
	return nil
}

// bringToFront swaps id to the end of the focus order, making its window
// render (and hit-test) on top. Matches the "focus order vector with
// swap-to-end-on-activate" rule.
func (wm *windowManager) bringToFront(id ID) {
	for i, wid := range wm.focusOrder {
		if wid == id {
			wm.focusOrder = append(wm.focusOrder[:i], wm.focusOrder[i+1:]...)
			break
		}
	}
	wm.focusOrder = append(wm.focusOrder, id)
}

// SetNextWindowPos positions the next window begun, subject to cond.
func (ctx *Context) SetNextWindowPos(pos Vec2, cond Cond) {
	ctx.nextWindow.posSet = true
	ctx.nextWindow.pos = pos
	ctx.nextWindow.posCond = cond
}

// SetNextWindowSize sizes the next window begun, subject to cond.
func (ctx *Context) SetNextWindowSize(size Vec2, cond Cond) {
	ctx.nextWindow.sizeSet = true
	ctx.nextWindow.size = size
	ctx.nextWindow.sizeCond = cond
}

// SetNextWindowCollapsed sets the collapsed state of the next window
// begun, subject to cond.
func (ctx *Context) SetNextWindowCollapsed(collapsed bool, cond Cond) {
	ctx.nextWindow.collapsedSet = true
	ctx.nextWindow.collapsed = collapsed
	ctx.nextWindow.collCond = cond
}

// condSatisfied evaluates one cached parameter's condition against the
// target window's history. once latches CondOnce per window.
func condSatisfied(cond Cond, existed, appearing bool, once *bool) bool {
	switch cond {
	case CondOnce:
		if *once {
			return false
		}
		*once = true
		return true
	case CondFirstUseEver:
		return !existed
	case CondAppearing:
		return appearing
	default: // CondAlways
		return true
	}
}

// BeginWindow creates (on first call) or looks up the persisted Window
// for name, applies any pending appearance parameters, draws its title
// bar/background, and pushes a clipped inner rect for content. Returns
// false if the window is collapsed (callers should still call EndWindow).
func (ctx *Context) BeginWindow(name string, flags WindowFlags) bool {
	return ctx.beginWindow(name, nil, flags)
}

// BeginWindowOpen is BeginWindow with a close button: when open is
// non-nil a close button is drawn in the title bar and *open is set to
// false when it is pressed. A window whose *open is already false draws
// nothing and returns false (EndWindow must still be called).
func (ctx *Context) BeginWindowOpen(name string, open *bool, flags WindowFlags) bool {
	return ctx.beginWindow(name, open, flags)
}

func (ctx *Context) beginWindow(name string, open *bool, flags WindowFlags) bool {
	id := ctx.GetID(name)
	w, existed := ctx.windows[id]
	if !existed {
		w = &Window{
			ID:      id,
			Name:    name,
			Pos:     Vec2{X: 60, Y: 60},
			Size:    Vec2{X: 320, Y: 240},
			MinSize: Vec2{X: 64, Y: 48},
			Storage: NewStorage(),
			Flags:   flags,
		}
		w.drag.Position = w.Pos
		w.drag.Size = w.Size
		w.drag.MinSize = w.MinSize
		w.drag.SetPanelName(name)
		ctx.windows[id] = w
		ctx.focusOrder = append(ctx.focusOrder, id)
	}
	w.Flags = flags
	w.drag.Draggable = flags&WindowNoMove == 0
	w.drag.Resizable = flags&(WindowNoResize|WindowAutoSize) == 0

	appearing := !existed || ctx.FrameCount > w.lastActiveFrame+1
	w.lastActiveFrame = ctx.FrameCount

	nd := ctx.nextWindow
	ctx.nextWindow = nextWindowData{}
	if nd.posSet && condSatisfied(nd.posCond, existed, appearing, &w.posOnce) {
		w.Pos = nd.pos
		w.drag.Position = nd.pos
	}
	if nd.sizeSet && condSatisfied(nd.sizeCond, existed, appearing, &w.sizeOnce) {
		w.Size = nd.size
		w.drag.Size = nd.size
	}
	if nd.collapsedSet && condSatisfied(nd.collCond, existed, appearing, &w.collOnce) {
		w.Collapsed = nd.collapsed
	}

	w.opened = true
	w.frameChildren = w.frameChildren[:0]
	w.submittedFrame = false
	w.skipFrame = open != nil && !*open

	ctx.windowStack = append(ctx.windowStack, w)

	w.BgLayer = ctx.DrawList.AcquireLayer()
	w.FgLayer = ctx.DrawList.AcquireLayer()

	if w.skipFrame {
		w.InnerRect = Rect{}
		w.OuterRect = Rect{}
		return false
	}

	if ctx.Input != nil && w.drag.Draggable {
		w.drag.HandleDrag(ctx)
	}
	if ctx.Input != nil && w.drag.Resizable && !w.Collapsed {
		w.drag.HandleResize(ctx)
	}
	w.Pos = w.drag.Position
	if !w.Collapsed {
		w.Size = w.drag.Size
	}

	if w.HideFrames > 0 {
		w.HideFrames--
	}

	titleH := float32(0)
	if flags&WindowNoTitleBar == 0 {
		titleH = ctx.lineHeight() + windowTitleBarPad*2
	}

	w.OuterRect = Rect{X: w.Pos.X, Y: w.Pos.Y, W: w.Size.X, H: titleH}
	if !w.Collapsed {
		w.OuterRect.H = w.Size.Y
	}

	if flags&WindowNoBackground == 0 {
		w.BgLayer.SetClipRect(w.Pos.X, w.Pos.Y, w.Pos.X+w.Size.X, w.Pos.Y+w.OuterRect.H)
		bg := ctx.style.PanelColor
		addLayerRect(w.BgLayer, w.Pos.X, w.Pos.Y, w.Size.X, w.OuterRect.H, bg)
	}

	if flags&WindowNoTitleBar == 0 {
		ctx.drawTitleBar(w, titleH, open)
	}

	if ctx.Input != nil && id != 0 {
		mouse := Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY}
		if w.OuterRect.Contains(mouse) && ctx.Input.MouseClicked(MouseButtonLeft) {
			ctx.bringToFront(id)
		}
	}

	if w.Collapsed {
		w.InnerRect = Rect{}
		return false
	}

	if flags&WindowNoScrollbar == 0 {
		w.ScrollbarY = w.ContentSize.Y > w.Size.Y-titleH
		w.ScrollbarX = w.ContentSize.X > w.Size.X
	} else {
		w.ScrollbarY = false
		w.ScrollbarX = false
	}
	scrollW := float32(0)
	if w.ScrollbarY {
		scrollW = windowScrollbarW
	}
	scrollH := float32(0)
	if w.ScrollbarX {
		scrollH = windowScrollbarW
	}

	w.InnerRect = Rect{
		X: w.Pos.X, Y: w.Pos.Y + titleH,
		W: w.Size.X - scrollW, H: w.Size.Y - titleH - scrollH,
	}
	w.InnerClipRect = w.InnerRect

	ctx.cursor = Vec2{X: w.InnerRect.X - w.Scroll.X, Y: w.InnerRect.Y - w.Scroll.Y}
	w.contentStartY = ctx.cursor.Y
	w.cursorMax = ctx.cursor

	return true
}

// addLayerRect is a small helper that writes one untextured quad into a
// Layer using the shared white-pixel UV convention.
func addLayerRect(l *Layer, x, y, w, h float32, color uint32) {
	l.AddQuad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// addLayerCircle writes a filled circle into a Layer as a triangle fan.
func addLayerCircle(l *Layer, cx, cy, r float32, color uint32) {
	const segments = 12
	center := Vertex{Pos: [2]float32{cx, cy}, Color: color}
	prev := Vertex{Pos: [2]float32{cx + r, cy}, Color: color}
	for i := 1; i <= segments; i++ {
		a := float64(i) / segments * 2 * math.Pi
		next := Vertex{
			Pos:   [2]float32{cx + r*float32(math.Cos(a)), cy + r*float32(math.Sin(a))},
			Color: color,
		}
		l.AddTriangle(center, prev, next)
		prev = next
	}
}

func (ctx *Context) drawTitleBar(w *Window, titleH float32, open *bool) {
	headerColor := ctx.style.PanelHeaderBgColor
	if headerColor == 0 {
		headerColor = ctx.style.ButtonColor
	}
	addLayerRect(w.BgLayer, w.Pos.X, w.Pos.Y, w.Size.X, titleH, headerColor)

	textColor := ctx.style.PanelHeaderTextColor
	if textColor == 0 {
		textColor = ctx.style.TextColor
	}
	// Long titles get an ellipsis instead of colliding with the title
	// bar buttons.
	buttonSpan := titleH + windowTitleBarPad*2
	if open != nil {
		buttonSpan += titleH/2 + windowTitleBarPad
	}
	title := TextWidthEllipsis(ctx, visibleLabel(w.Name), w.Size.X-buttonSpan*2)
	textX := w.Pos.X + (w.Size.X-ctx.MeasureText(title).X)/2
	if textX < w.Pos.X+windowTitleBarPad {
		textX = w.Pos.X + windowTitleBarPad
	}
	textY := w.Pos.Y + (titleH-ctx.lineHeight())/2
	ctx.addTextTo(ctx.DrawList, textX, textY, title, textColor)

	// Title bar buttons, right to left: close (red), then collapse
	// (yellow).
	bx := w.Pos.X + w.Size.X - titleH/2 - windowTitleBarPad
	by := w.Pos.Y + titleH/2

	if open != nil {
		addLayerCircle(w.FgLayer, bx, by, titleButtonRadius, RGBA(220, 60, 60, 255))
		if ctx.Input != nil {
			r := Rect{X: bx - 7, Y: by - 7, W: 14, H: 14}
			id := ctx.GetID(w.Name + "##close")
			if pressed, _, _ := ctx.ButtonBehavior(r, id); pressed {
				*open = false
			}
		}
		bx -= titleH/2 + windowTitleBarPad
	}

	if w.Flags&WindowNoCollapse == 0 {
		addLayerCircle(w.FgLayer, bx, by, titleButtonRadius, RGBA(230, 200, 60, 255))
		if ctx.Input != nil {
			r := Rect{X: bx - 7, Y: by - 7, W: 14, H: 14}
			id := ctx.GetID(w.Name + "##collapse")
			if pressed, _, _ := ctx.ButtonBehavior(r, id); pressed {
				ctx.toggleCollapse(w)
			}
		}
	}
}

func (ctx *Context) toggleCollapse(w *Window) {
	w.Collapsed = !w.Collapsed
	titleH := ctx.lineHeight() + windowTitleBarPad*2
	if w.Collapsed {
		w.FullSize = w.Size
		w.Size.Y = titleH
		w.drag.Size = Vec2{X: w.Size.X, Y: titleH}
	} else {
		w.Size = w.FullSize
		w.drag.Size = w.FullSize
		w.HideFrames = 2
	}
}

// EndWindow finalizes content size, scroll bounds, clamps the window's
// size to its min/max, draws the scrollbars if needed, and queues the
// window for submission in focus order at frame end. Must balance the
// preceding BeginWindow exactly; calling it with no open window is a
// programming error.
func (ctx *Context) EndWindow() {
	n := len(ctx.windowStack)
	if n == 0 {
		panic("ui: EndWindow called with no matching BeginWindow")
	}
	w := ctx.windowStack[n-1]
	ctx.windowStack = ctx.windowStack[:n-1]

	if w.skipFrame {
		ctx.frameRoots = append(ctx.frameRoots, w)
		return
	}

	if !w.Collapsed {
		w.ContentSize = Vec2{
			X: w.cursorMax.X - w.InnerRect.X,
			Y: w.cursorMax.Y - w.contentStartY,
		}

		titleH := float32(0)
		if w.Flags&WindowNoTitleBar == 0 {
			titleH = ctx.lineHeight() + windowTitleBarPad*2
		}
		if w.Flags&WindowAutoSize != 0 {
			w.Size.X = Max(w.ContentSize.X, w.MinSize.X)
			w.Size.Y = Max(w.ContentSize.Y+titleH, w.MinSize.Y)
		}
		w.FullSize = w.Size

		w.ScrollMax.Y = Max(w.ContentSize.Y-w.InnerRect.H, 0)
		w.ScrollMax.X = Max(w.ContentSize.X-w.InnerRect.W, 0)
		w.Scroll.Y = clampf(w.Scroll.Y, 0, w.ScrollMax.Y)
		w.Scroll.X = clampf(w.Scroll.X, 0, w.ScrollMax.X)

		if ctx.Input != nil && w.InnerRect.Contains(Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY}) {
			w.Scroll.Y = clampf(w.Scroll.Y-ctx.Input.MouseWheelY*ctx.lineHeight()*3, 0, w.ScrollMax.Y)
			w.Scroll.X = clampf(w.Scroll.X-ctx.Input.MouseWheelX*ctx.lineHeight()*3, 0, w.ScrollMax.X)
		}

		if w.ScrollbarY && w.ScrollMax.Y > 0 {
			ctx.drawVerticalScrollbar(w)
		}
		if w.ScrollbarX && w.ScrollMax.X > 0 {
			ctx.drawHorizontalScrollbar(w)
		}

		clampSize(w)
	}

	w.drag.Position = w.Pos
	w.drag.Size = w.Size

	ctx.frameRoots = append(ctx.frameRoots, w)
}

func clampSize(w *Window) {
	if w.MinSize.X > 0 {
		w.Size.X = Max(w.Size.X, w.MinSize.X)
	}
	if w.MinSize.Y > 0 {
		w.Size.Y = Max(w.Size.Y, w.MinSize.Y)
	}
	if w.MaxSize.X > 0 {
		w.Size.X = Min(w.Size.X, w.MaxSize.X)
	}
	if w.MaxSize.Y > 0 {
		w.Size.Y = Min(w.Size.Y, w.MaxSize.Y)
	}
}

// drawVerticalScrollbar renders the vertical scrollbar track and handle
// using the handle-size formula from the data model:
// handle_size = max(5, inner_length^2 / content_length).
func (ctx *Context) drawVerticalScrollbar(w *Window) {
	trackX := w.Pos.X + w.Size.X - windowScrollbarW
	trackY := w.InnerRect.Y
	trackH := w.InnerRect.H

	addLayerRect(w.FgLayer, trackX, trackY, windowScrollbarW, trackH, ctx.style.PanelBorderColor)

	innerLen := trackH
	contentLen := w.ContentSize.Y
	if contentLen <= 0 {
		return
	}
	handleSize := innerLen * innerLen / contentLen
	if handleSize < windowScrollbarMin {
		handleSize = windowScrollbarMin
	}
	if handleSize > innerLen {
		handleSize = innerLen
	}

	offset := float32(0)
	if w.ScrollMax.Y > 0 {
		offset = (innerLen - handleSize) * (w.Scroll.Y / w.ScrollMax.Y)
	}

	handleColor := ctx.style.ButtonColor
	id := ctx.GetID(w.Name + "##vscroll")
	handleRect := Rect{X: trackX + 1, Y: trackY + offset, W: windowScrollbarW - 2, H: handleSize}
	if ctx.Input != nil {
		if _, hovered, held := ctx.ButtonBehavior(handleRect, id); hovered || held {
			handleColor = ctx.style.ButtonHoveredColor
			if held {
				dy := ctx.Input.GetMouseDragDelta(MouseButtonLeft).Y
				if innerLen > handleSize {
					w.Scroll.Y = clampf(w.Scroll.Y+dy/(innerLen-handleSize)*w.ScrollMax.Y, 0, w.ScrollMax.Y)
				}
			}
		}
	}
	addLayerRect(w.FgLayer, handleRect.X, handleRect.Y, handleRect.W, handleRect.H, handleColor)
}

// drawHorizontalScrollbar mirrors drawVerticalScrollbar along the bottom
// edge of the window.
func (ctx *Context) drawHorizontalScrollbar(w *Window) {
	trackX := w.InnerRect.X
	trackY := w.Pos.Y + w.Size.Y - windowScrollbarW
	trackW := w.InnerRect.W

	addLayerRect(w.FgLayer, trackX, trackY, trackW, windowScrollbarW, ctx.style.PanelBorderColor)

	innerLen := trackW
	contentLen := w.ContentSize.X
	if contentLen <= 0 {
		return
	}
	handleSize := innerLen * innerLen / contentLen
	if handleSize < windowScrollbarMin {
		handleSize = windowScrollbarMin
	}
	if handleSize > innerLen {
		handleSize = innerLen
	}

	offset := float32(0)
	if w.ScrollMax.X > 0 {
		offset = (innerLen - handleSize) * (w.Scroll.X / w.ScrollMax.X)
	}

	handleColor := ctx.style.ButtonColor
	id := ctx.GetID(w.Name + "##hscroll")
	handleRect := Rect{X: trackX + offset, Y: trackY + 1, W: handleSize, H: windowScrollbarW - 2}
	if ctx.Input != nil {
		if _, hovered, held := ctx.ButtonBehavior(handleRect, id); hovered || held {
			handleColor = ctx.style.ButtonHoveredColor
			if held {
				dx := ctx.Input.GetMouseDragDelta(MouseButtonLeft).X
				if innerLen > handleSize {
					w.Scroll.X = clampf(w.Scroll.X+dx/(innerLen-handleSize)*w.ScrollMax.X, 0, w.ScrollMax.X)
				}
			}
		}
	}
	addLayerRect(w.FgLayer, handleRect.X, handleRect.Y, handleRect.W, handleRect.H, handleColor)
}

// BeginChild starts a fixed-size scrollable child window positioned at
// the parent's current cursor; EndChild restores the parent's cursor,
// advanced by the child's footprint.
func (ctx *Context) BeginChild(name string, size Vec2) bool {
	parent := ctx.currentWindow()
	id := ctx.GetID(name)
	w, existed := ctx.windows[id]
	if !existed {
		w = &Window{ID: id, Name: name, Size: size, Storage: NewStorage(), Child: true}
		if parent != nil {
			w.ParentID = parent.ID
		}
		ctx.windows[id] = w
	}
	w.Child = true
	w.Size = size
	if parent != nil {
		w.Pos = ctx.cursor
	}
	w.drag.Draggable = false
	w.drag.Resizable = false
	w.drag.Position = w.Pos
	w.drag.Size = w.Size
	w.lastActiveFrame = ctx.FrameCount
	w.frameChildren = w.frameChildren[:0]
	w.submittedFrame = false
	w.skipFrame = false

	ctx.windowStack = append(ctx.windowStack, w)
	w.opened = true

	w.BgLayer = ctx.DrawList.AcquireLayer()
	w.FgLayer = ctx.DrawList.AcquireLayer()
	addLayerRect(w.BgLayer, w.Pos.X, w.Pos.Y, w.Size.X, w.Size.Y, ctx.style.PanelColor)

	w.InnerRect = Rect{X: w.Pos.X, Y: w.Pos.Y, W: w.Size.X, H: w.Size.Y}
	w.InnerClipRect = w.InnerRect
	ctx.cursor = Vec2{X: w.InnerRect.X, Y: w.InnerRect.Y - w.Scroll.Y}
	w.contentStartY = ctx.cursor.Y
	w.cursorMax = ctx.cursor

	return true
}

// EndChild closes a BeginChild scope and advances the parent's cursor
// past the child's footprint.
func (ctx *Context) EndChild() {
	n := len(ctx.windowStack)
	if n == 0 {
		panic("ui: EndChild called with no matching BeginChild")
	}
	w := ctx.windowStack[n-1]
	ctx.windowStack = ctx.windowStack[:n-1]

	w.ContentSize = Vec2{X: w.cursorMax.X - w.InnerRect.X, Y: w.cursorMax.Y - w.contentStartY}
	w.ScrollMax.Y = Max(w.ContentSize.Y-w.InnerRect.H, 0)

	if parent := ctx.currentWindow(); parent != nil {
		parent.frameChildren = append(parent.frameChildren, w)
		ctx.cursor = Vec2{X: parent.InnerRect.X, Y: w.Pos.Y + w.Size.Y}
		if ctx.cursor.X > parent.cursorMax.X {
			parent.cursorMax.X = ctx.cursor.X
		}
		if ctx.cursor.Y > parent.cursorMax.Y {
			parent.cursorMax.Y = ctx.cursor.Y
		}
	} else {
		ctx.frameRoots = append(ctx.frameRoots, w)
	}
}

// BeginTooltip positions the single persistent tooltip window at the
// current mouse position and begins drawing into it.
func (ctx *Context) BeginTooltip() {
	if ctx.windowManager.tooltip == nil {
		ctx.windowManager.tooltip = &Window{ID: ctx.GetID("##tooltip"), Name: "##tooltip", Storage: NewStorage()}
	}
	w := ctx.windowManager.tooltip
	if ctx.Input != nil {
		w.Pos = Vec2{X: ctx.Input.MouseX + 12, Y: ctx.Input.MouseY + 12}
	}
	ctx.windowStack = append(ctx.windowStack, w)
	w.BgLayer = ctx.DrawList.AcquireLayer()
	w.FgLayer = ctx.DrawList.AcquireLayer()
	ctx.cursor = Vec2{X: w.Pos.X + 4, Y: w.Pos.Y + 4}
	w.contentStartY = ctx.cursor.Y
	w.cursorMax = ctx.cursor
	w.InnerRect = Rect{X: w.Pos.X, Y: w.Pos.Y}
}

// EndTooltip finalizes the tooltip window; it is submitted last at frame
// end so it draws above every other window.
func (ctx *Context) EndTooltip() {
	n := len(ctx.windowStack)
	if n == 0 {
		return
	}
	w := ctx.windowStack[n-1]
	ctx.windowStack = ctx.windowStack[:n-1]

	w.Size = Vec2{X: w.cursorMax.X - w.InnerRect.X + 4, Y: w.cursorMax.Y - w.contentStartY + 4}
	addLayerRect(w.BgLayer, w.Pos.X, w.Pos.Y, w.Size.X, w.Size.Y, ctx.style.PanelColor)
	ctx.frameTooltip = w
}

// submitWindows flushes this frame's finished windows into the draw
// list's layer submission queue in focus order, bottom-most root first,
// so the topmost (last-focused) window's layers are submitted last. The
// tooltip, if any, goes above everything. Called once per frame after
// all windows have ended and before the backend reads the draw list.
func (ctx *Context) submitWindows() {
	if ctx.DrawList == nil {
		ctx.frameRoots = ctx.frameRoots[:0]
		ctx.frameTooltip = nil
		return
	}
	for _, id := range ctx.focusOrder {
		for _, w := range ctx.frameRoots {
			if w.ID == id {
				ctx.submitWindowTree(w)
			}
		}
	}
	// Windows never registered in the focus order (bare children ended at
	// top level) go above in completion order.
	for _, w := range ctx.frameRoots {
		ctx.submitWindowTree(w)
	}
	ctx.frameRoots = ctx.frameRoots[:0]

	if t := ctx.frameTooltip; t != nil {
		ctx.DrawList.SubmitLayer(t.BgLayer)
		ctx.DrawList.SubmitLayer(t.FgLayer)
		ctx.frameTooltip = nil
	}
}

// submitWindowTree submits one window's layers and its children's,
// background first, children above the content, foreground chrome
// (scrollbars, title buttons) on top.
func (ctx *Context) submitWindowTree(w *Window) {
	if w.submittedFrame {
		return
	}
	w.submittedFrame = true
	ctx.DrawList.SubmitLayer(w.BgLayer)
	for _, c := range w.frameChildren {
		ctx.submitWindowTree(c)
	}
	ctx.DrawList.SubmitLayer(w.FgLayer)
}

// FocusOrder returns the current root-window focus order, back-to-front;
// the last entry is the topmost window.
func (ctx *Context) FocusOrder() []ID {
	return ctx.windowManager.focusOrder
}
