package ui

// The widget state machine tracks three ids: hoveredID (this frame's
// mouse-over target), activeID (the widget currently owning interaction —
// a held button, a dragged slider, a focused text field), and staged
// next* versions of each that widgets write to during the frame. Settle,
// called once per frame after all widgets have run, promotes the staged
// values so next frame starts from a consistent snapshot. This two-phase
// bookkeeping is what lets button_behavior answer correctly even though,
// in an immediate-mode frame, later widgets may contest an id that an
// earlier widget already marked hot.

// HoveredID returns the widget id the mouse is over this frame, or 0.
func (ctx *Context) HoveredID() ID { return ctx.hoveredID }

// ActiveID returns the widget id currently owning interaction, or 0.
func (ctx *Context) ActiveID() ID { return ctx.activeID }

// ActiveIDJustActivated reports whether ActiveID changed to a non-zero
// value this frame (useful for one-shot side effects like snapshotting a
// text buffer when it gains focus).
func (ctx *Context) ActiveIDJustActivated() bool { return ctx.activeIDJustActivated }

// SetActiveID forcibly claims the active id outside the normal
// button_behavior path (used by drag/resize/scrollbar handles that have
// their own hit testing).
func (ctx *Context) SetActiveID(id ID) {
	if ctx.activeID != id {
		ctx.activeIDJustActivated = id != 0
	}
	ctx.nextActiveID = id
	ctx.activeID = id
}

// ClearActiveID releases the active id immediately (both current and
// staged), used on mouse-up handlers that don't go through
// ButtonBehavior.
func (ctx *Context) ClearActiveID() {
	ctx.activeID = 0
	ctx.nextActiveID = 0
}

// settleWidgetState promotes the staged hovered/active ids for the next
// frame. Called once per frame from Reset.
func (ctx *Context) settleWidgetState() {
	ctx.hoveredID = ctx.nextHoveredID
	ctx.activeID = ctx.nextActiveID
	ctx.nextHoveredID = 0
	ctx.activeIDJustActivated = false
}

// ButtonBehavior implements the canonical hover/press/hold state machine
// shared by every clickable widget: buttons, selectables, sliders,
// checkboxes. box is the widget's screen rect; id is its stable widget id.
//
// Returns pressed (a full click completed this frame), hovered (eligible
// for hover styling), held (currently the active id, e.g. mouse still
// down from a press inside box).
func (ctx *Context) ButtonBehavior(box Rect, id ID) (pressed, hovered, held bool) {
	if ctx.Input == nil {
		return false, false, false
	}

	mouse := Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY}
	hoverable := box.Contains(mouse) && !ctx.Input.IsOutsideWindow()

	// A widget is eligible to become hovered only if no other widget
	// already owns the active id this frame, or it owns it itself.
	if hoverable && (ctx.activeID == 0 || ctx.activeID == id) {
		ctx.nextHoveredID = id
		hovered = true
	}

	held = ctx.activeID == id

	// The click writes only the staged id; activeID keeps its pre-frame
	// value until settle, so a click on a later widget this frame can
	// still override (last click wins).
	if hovered && ctx.Input.MouseClicked(MouseButtonLeft) {
		if ctx.activeID != id {
			ctx.activeIDJustActivated = true
		}
		ctx.nextActiveID = id
		held = true
	}

	// Release likewise clears only the staged id. Both branches leaving
	// activeID untouched keeps ButtonBehavior idempotent within a frame:
	// a second call with the same box/id recomputes the identical
	// (pressed, hovered, held) tuple instead of observing its own side
	// effects.
	if held && ctx.Input.MouseReleased(MouseButtonLeft) {
		if hovered {
			pressed = true
		}
		ctx.nextActiveID = 0
		held = false
	}

	return pressed, hovered, held
}
