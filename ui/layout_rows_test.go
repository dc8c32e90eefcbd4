package ui

import "testing"

func newTestContext(displayW, displayH float32) *Context {
	ctx := NewContext()
	ctx.SetStyle(DefaultStyle())
	ctx.DisplaySize = Vec2{X: displayW, Y: displayH}
	return ctx
}

func TestLayoutRowDynamicEqualWidths(t *testing.T) {
	ctx := newTestContext(400, 300)
	ctx.style.ItemSpacing = 10
	ctx.LayoutRowDynamic(20, 4)
	w, h := ctx.calculateItemSize(20)
	want := float32(400-10*3) / 4
	if w != want {
		t.Fatalf("width = %f, want %f", w, want)
	}
	if h != 20 {
		t.Fatalf("height = %f, want 20", h)
	}
}

func TestLayoutRowStaticFixedWidth(t *testing.T) {
	ctx := newTestContext(400, 300)
	ctx.LayoutRowStatic(24, 80, 3)
	w, h := ctx.calculateItemSize(20)
	if w != 80 || h != 24 {
		t.Fatalf("got (%f,%f), want (80,24)", w, h)
	}
}

func TestLayoutRowWrapsAfterColumns(t *testing.T) {
	ctx := newTestContext(400, 300)
	ctx.style.ItemSpacing = 0
	ctx.LayoutRowDynamic(20, 2)
	startY := ctx.cursor.Y
	for i := 0; i < 2; i++ {
		w, h := ctx.calculateItemSize(20)
		ctx.advanceRow(w, h)
	}
	if ctx.cursor.Y == startY {
		t.Fatal("expected cursor to wrap to a new row after 2 items in a 2-column row")
	}
	if ctx.cursor.X != ctx.currentRow_RowStartXForTest() {
		t.Fatalf("expected cursor.X reset to row start after wrap, got %f", ctx.cursor.X)
	}
}

// currentRow_RowStartXForTest exposes the private row's start X for the
// wrap assertion above without making RowStartX part of the public API.
func (ctx *Context) currentRow_RowStartXForTest() float32 {
	if r := ctx.currentRow(); r != nil {
		return r.RowStartX
	}
	return ctx.cursor.X
}

func TestLayoutRowXXXOverflowPanics(t *testing.T) {
	ctx := newTestContext(400, 300)
	ctx.LayoutRowBegin(20, 1)
	ctx.LayoutRowPush(50)
	ctx.calculateItemSize(20) // first item: fine
	ctx.advanceRow(50, 20)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic drawing past the pushed row-xxx widths")
		}
	}()
	ctx.calculateItemSize(20)
}

func TestLayoutArrayRatios(t *testing.T) {
	ctx := newTestContext(200, 100)
	ctx.LayoutRowArray(20, 2, []float32{0.25, 0.75}, true)
	w0, _ := ctx.calculateItemSize(20)
	if w0 != 50 {
		t.Fatalf("first column width = %f, want 50", w0)
	}
	ctx.advanceRow(w0, 20)
	w1, _ := ctx.calculateItemSize(20)
	if w1 != 150 {
		t.Fatalf("second column width = %f, want 150", w1)
	}
}

func TestLayoutTemplateInsufficientSpaceCollapsesDynamic(t *testing.T) {
	ctx := newTestContext(100, 100)
	ctx.style.ItemSpacing = 0
	ctx.LayoutTemplateBegin(20)
	ctx.LayoutTemplatePushDynamic()
	ctx.LayoutTemplatePushVariable(60)
	ctx.LayoutTemplatePushVariable(60)
	ctx.LayoutTemplateEnd()

	w0, _ := ctx.calculateItemSize(20)
	ctx.advanceRow(w0, 20)
	w1, _ := ctx.calculateItemSize(20)
	ctx.advanceRow(w1, 20)
	w2, _ := ctx.calculateItemSize(20)
	if w0 != 0 {
		t.Fatalf("dynamic entry width = %f, want 0 when minimums exceed available", w0)
	}
	if w1 != 60 || w2 != 60 {
		t.Fatalf("variable entries = (%f,%f), want (60,60)", w1, w2)
	}
}

func TestLayoutTemplateDistributesExtraByLevel(t *testing.T) {
	ctx := newTestContext(100, 100)
	ctx.style.ItemSpacing = 0
	ctx.LayoutTemplateBegin(20)
	ctx.LayoutTemplatePushDynamic()
	ctx.LayoutTemplatePushDynamic()
	ctx.LayoutTemplatePushVariable(10)
	ctx.LayoutTemplatePushVariable(30)
	ctx.LayoutTemplateEnd()

	w0, _ := ctx.calculateItemSize(20)
	ctx.advanceRow(w0, 20)
	w1, _ := ctx.calculateItemSize(20)
	ctx.advanceRow(w1, 20)
	w2, _ := ctx.calculateItemSize(20)
	ctx.advanceRow(w2, 20)
	w3, _ := ctx.calculateItemSize(20)

	if w3 != 30 {
		t.Fatalf("highest-minimum entry width = %f, want fixed at its own minimum 30", w3)
	}
	if w0 != w1 || w1 != w2 {
		t.Fatalf("the three lower-level entries should share equally: got (%f,%f,%f)", w0, w1, w2)
	}
	total := w0 + w1 + w2 + w3
	if total != 100 {
		t.Fatalf("total allocated width = %f, want 100", total)
	}
}
