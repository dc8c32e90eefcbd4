package ui

import "testing"

// Property 7: calling ButtonBehavior twice in the same frame with the
// same box and id must yield identical results.
func TestButtonBehaviorIdempotentWithinFrame(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()
	ctx.Input = input

	box := Rect{X: 10, Y: 10, W: 100, H: 30}
	id := ctx.GetID("twice")

	// Hover only, then press, then release.
	states := []func(){
		func() { input.SetMousePos(50, 20) },
		func() { input.SetMouseButton(MouseButtonLeft, true) },
		func() { input.SetMouseButton(MouseButtonLeft, false) },
	}
	for step, apply := range states {
		input.Reset()
		apply()
		ctx.Reset(ctx.DisplaySize, 0.016)

		p1, h1, d1 := ctx.ButtonBehavior(box, id)
		p2, h2, d2 := ctx.ButtonBehavior(box, id)
		if p1 != p2 || h1 != h2 || d1 != d2 {
			t.Fatalf("step %d: (%v %v %v) then (%v %v %v)", step, p1, h1, d1, p2, h2, d2)
		}
	}
}

// The staged next-ids promote at frame boundaries: a hover registered
// this frame becomes HoveredID after the next Reset.
func TestHoveredIDPromotesAtFrameBoundary(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()
	ctx.Input = input

	box := Rect{X: 0, Y: 0, W: 50, H: 50}
	id := ctx.GetID("hoverme")

	input.SetMousePos(25, 25)
	ctx.Reset(ctx.DisplaySize, 0.016)
	ctx.ButtonBehavior(box, id)
	if ctx.HoveredID() == id {
		t.Fatal("hover must not be visible through HoveredID until the next frame")
	}

	ctx.Reset(ctx.DisplaySize, 0.016)
	if ctx.HoveredID() != id {
		t.Fatalf("HoveredID = %v, want %v after promotion", ctx.HoveredID(), id)
	}
}

// Contention within one frame resolves to the last claimant: a click
// staged by an earlier widget must not block a later widget evaluated
// the same frame from hovering and re-staging the active id.
func TestButtonBehaviorLastClickWins(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()
	ctx.Input = input

	box := Rect{X: 0, Y: 0, W: 60, H: 60}
	first := ctx.GetID("under")
	second := ctx.GetID("over")

	input.SetMousePos(30, 30)
	input.SetMouseButton(MouseButtonLeft, true)
	ctx.Reset(ctx.DisplaySize, 0.016)

	ctx.ButtonBehavior(box, first)
	_, hovered, _ := ctx.ButtonBehavior(box, second)
	if !hovered {
		t.Fatal("an earlier widget's staged click must not block a later widget's hover")
	}

	ctx.Reset(ctx.DisplaySize, 0.016)
	if ctx.ActiveID() != second {
		t.Fatalf("ActiveID = %v after settle, want the later claimant %v", ctx.ActiveID(), second)
	}
}

// A full press-release cycle over the box reports pressed exactly once,
// and holding ties the active id to the widget.
func TestButtonBehaviorPressReleaseCycle(t *testing.T) {
	ctx := newTestContext(800, 600)
	input := NewInputState()
	ctx.Input = input

	box := Rect{X: 0, Y: 0, W: 40, H: 40}
	id := ctx.GetID("cycle")

	input.SetMousePos(20, 20)
	input.SetMouseButton(MouseButtonLeft, true)
	ctx.Reset(ctx.DisplaySize, 0.016)
	pressed, _, held := ctx.ButtonBehavior(box, id)
	if pressed {
		t.Fatal("pressed must not fire on the down edge")
	}
	if !held {
		t.Fatal("expected held while the button is down over the box")
	}
	if !ctx.ActiveIDJustActivated() {
		t.Fatal("expected ActiveIDJustActivated on the claiming frame")
	}
	if ctx.ActiveID() != 0 {
		t.Fatalf("ActiveID = %v mid-frame, want 0 (claims stage until settle)", ctx.ActiveID())
	}

	input.Reset()
	input.SetMouseButton(MouseButtonLeft, false)
	ctx.Reset(ctx.DisplaySize, 0.016)
	if ctx.ActiveID() != id {
		t.Fatalf("ActiveID = %v after settle, want %v", ctx.ActiveID(), id)
	}
	pressed, _, held = ctx.ButtonBehavior(box, id)
	if !pressed {
		t.Fatal("expected pressed on release over the box")
	}
	if held {
		t.Fatal("release must clear held")
	}

	// The release clears only the staged id; the settle at the next
	// frame boundary retires the active id.
	ctx.Reset(ctx.DisplaySize, 0.016)
	if ctx.ActiveID() != 0 {
		t.Fatalf("ActiveID after settle = %v, want 0", ctx.ActiveID())
	}
}
