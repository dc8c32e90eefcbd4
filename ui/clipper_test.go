package ui

import "testing"

// StepClipper must walk its three phases in order and report a display
// range inside [0, N) regardless of scroll position (property 5).
func TestStepClipperPhaseOrder(t *testing.T) {
	c := NewStepClipper(100, 300, 0)

	if !c.Step() {
		t.Fatal("expected the measure phase to request a step")
	}
	if c.DisplayStart != 0 || c.DisplayEnd != 1 {
		t.Fatalf("measure phase should render only item 0, got [%d,%d)", c.DisplayStart, c.DisplayEnd)
	}

	c.MeasuredItemHeight = func() float32 { return 15 }
	var advances []float32
	c.AdvanceCursor = func(dy float32) { advances = append(advances, dy) }

	if !c.Step() {
		t.Fatal("expected the skip-to phase to request a step")
	}
	if c.DisplayStart < 0 || c.DisplayEnd > c.ItemCount {
		t.Fatalf("display range out of bounds: [%d,%d) for %d items", c.DisplayStart, c.DisplayEnd, c.ItemCount)
	}

	if c.Step() {
		t.Fatal("expected the final seek-to-end phase to return false")
	}
	if c.step != clipperStepDone {
		t.Fatalf("expected clipper to be done, got step %d", c.step)
	}

	total := float32(0)
	for _, dy := range advances {
		total += dy
	}
	total += float32(c.DisplayEnd-c.DisplayStart) * c.itemHeight
	want := float32(c.ItemCount) * c.itemHeight
	if total != want {
		t.Fatalf("sum of advances+visible-draw = %f, want %f (N*itemHeight)", total, want)
	}
}

// E3: a million-item list scrolled far down must still report a display
// range sized by viewport height, independent of N.
func TestStepClipperMillionItemsIndependentOfN(t *testing.T) {
	c := NewStepClipper(1_000_000, 300, 10_000)
	c.Step() // measure
	c.MeasuredItemHeight = func() float32 { return 15 }
	c.Step() // skip-to

	wantStart := int(10_000/15) - 1
	if c.DisplayStart < wantStart-1 || c.DisplayStart > wantStart+1 {
		t.Fatalf("DisplayStart = %d, want ~%d", c.DisplayStart, wantStart)
	}
	visible := c.DisplayEnd - c.DisplayStart
	if visible > int(300/15)+3 {
		t.Fatalf("clipper drew %d items, expected O(viewport/itemHeight) regardless of 1e6 total items", visible)
	}
	if c.DisplayEnd > c.ItemCount {
		t.Fatalf("DisplayEnd %d exceeds ItemCount %d", c.DisplayEnd, c.ItemCount)
	}
}

func TestStepClipperEmptyListDoneImmediately(t *testing.T) {
	c := NewStepClipper(0, 300, 0)
	if c.Step() {
		t.Fatal("expected an empty list to finish on the first step")
	}
	if c.DisplayStart != 0 || c.DisplayEnd != 0 {
		t.Fatalf("expected empty display range, got [%d,%d)", c.DisplayStart, c.DisplayEnd)
	}
}

func TestStepClipperZeroMeasuredHeightShowsEverything(t *testing.T) {
	c := NewStepClipper(5, 300, 0)
	c.Step()
	c.MeasuredItemHeight = func() float32 { return 0 }
	if c.Step() {
		t.Fatal("expected a zero measured height to finish immediately")
	}
	if c.DisplayStart != 0 || c.DisplayEnd != 5 {
		t.Fatalf("expected to fall back to showing every item, got [%d,%d)", c.DisplayStart, c.DisplayEnd)
	}
}
