package ui

import "testing"

// Scenario E5: a held button is not "dragging" until the mouse has moved
// past the threshold from its press anchor.
func TestIsMouseDraggingThreshold(t *testing.T) {
	in := NewInputState()

	in.SetMousePos(100, 100)
	in.SetMouseButton(MouseButtonLeft, true)

	in.SetMousePos(100.9, 100)
	if in.IsMouseDragging(MouseButtonLeft, 1.0) {
		t.Fatal("0.9px of movement must not register as a drag at threshold 1.0")
	}

	in.SetMousePos(101.5, 100)
	if !in.IsMouseDragging(MouseButtonLeft, 1.0) {
		t.Fatal("1.5px of movement must register as a drag at threshold 1.0")
	}

	d := in.GetMouseDragDelta(MouseButtonLeft)
	if d.X != 1.5 || d.Y != 0 {
		t.Fatalf("drag delta = %+v, want (1.5, 0)", d)
	}

	in.SetMouseButton(MouseButtonLeft, false)
	if in.IsMouseDragging(MouseButtonLeft, 1.0) {
		t.Fatal("release must clear the drag")
	}
	if _, ok := in.DragAnchor(MouseButtonLeft); ok {
		t.Fatal("release must clear the drag anchor")
	}
}

// Click-count derivation: rapid clicks in place are double/triple clicks,
// clicks too far apart in time or space restart the count.
func TestMouseClickedCount(t *testing.T) {
	in := NewInputState()
	in.SetMousePos(50, 50)

	in.Advance(0.016)
	in.SetMouseButton(MouseButtonLeft, true)
	if got := in.MouseClickedCount(MouseButtonLeft); got != 1 {
		t.Fatalf("first click: count = %d, want 1", got)
	}
	in.SetMouseButton(MouseButtonLeft, false)

	in.Reset()
	in.Advance(0.1)
	in.SetMouseButton(MouseButtonLeft, true)
	if got := in.MouseClickedCount(MouseButtonLeft); got != 2 {
		t.Fatalf("second quick click: count = %d, want 2", got)
	}
	in.SetMouseButton(MouseButtonLeft, false)

	// Third click within time and distance makes a triple.
	in.Reset()
	in.Advance(0.1)
	in.SetMouseButton(MouseButtonLeft, true)
	if got := in.MouseClickedCount(MouseButtonLeft); got != 3 {
		t.Fatalf("third quick click: count = %d, want 3", got)
	}
	in.SetMouseButton(MouseButtonLeft, false)

	// Too slow: count restarts.
	in.Reset()
	in.Advance(1.0)
	in.SetMouseButton(MouseButtonLeft, true)
	if got := in.MouseClickedCount(MouseButtonLeft); got != 1 {
		t.Fatalf("slow click: count = %d, want 1", got)
	}
	in.SetMouseButton(MouseButtonLeft, false)

	// Too far: count restarts even when quick.
	in.Reset()
	in.Advance(0.05)
	in.SetMousePos(50+DefaultDoubleClickMaxDist+1, 50)
	in.SetMouseButton(MouseButtonLeft, true)
	if got := in.MouseClickedCount(MouseButtonLeft); got != 1 {
		t.Fatalf("distant click: count = %d, want 1", got)
	}
}

// Button ownership: the first widget to claim a button each frame wins;
// Reset releases it.
func TestClaimMouseFirstClaimantWins(t *testing.T) {
	in := NewInputState()

	if !in.ClaimMouse(MouseButtonLeft, 7) {
		t.Fatal("first claim must succeed")
	}
	if !in.ClaimMouse(MouseButtonLeft, 7) {
		t.Fatal("re-claim by the same id must succeed")
	}
	if in.ClaimMouse(MouseButtonLeft, 9) {
		t.Fatal("claim by a second id in the same frame must fail")
	}
	if got := in.MouseOwner(MouseButtonLeft); got != 7 {
		t.Fatalf("owner = %v, want 7", got)
	}

	in.Reset()
	if got := in.MouseOwner(MouseButtonLeft); got != 0 {
		t.Fatalf("owner after Reset = %v, want 0", got)
	}
	if !in.ClaimMouse(MouseButtonLeft, 9) {
		t.Fatal("next frame's first claim must succeed")
	}
}

func TestOutsideWindowSentinel(t *testing.T) {
	in := NewInputState()
	if in.IsOutsideWindow() {
		t.Fatal("fresh input state is not outside the window")
	}
	in.SetMousePos(OutsideWindowPos())
	if !in.IsOutsideWindow() {
		t.Fatal("sentinel position must report outside-window")
	}
}
