package ui

import "testing"

// Monospace fallback measurement makes wrapped-line widths exact:
// width = len(line) * CharWidth * FontScale.
func textTestContext() *Context {
	ctx := newTestContext(800, 600)
	ctx.style.CharWidth = 10
	ctx.style.FontScale = 1
	return ctx
}

func TestWrapTextWordBoundaries(t *testing.T) {
	ctx := textTestContext()

	// 10px per char: "aaa bbb" is 70px, so a 50px budget breaks per word.
	lines := WrapText(ctx, "aaa bbb ccc", 50, WrapModeWord)
	want := []string{"aaa", "bbb", "ccc"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapTextExplicitNewlinesAlwaysBreak(t *testing.T) {
	ctx := textTestContext()
	lines := WrapText(ctx, "a\nb", 1000, WrapModeWord)
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Fatalf("lines = %q, want [a b]", lines)
	}
}

func TestWrapTextCharModePutsAtLeastOneRunePerLine(t *testing.T) {
	ctx := textTestContext()

	// 5px budget is narrower than a single 10px rune; every rune still
	// lands somewhere instead of looping.
	lines := WrapText(ctx, "abc", 5, WrapModeChar)
	if len(lines) != 3 {
		t.Fatalf("lines = %q, want one rune per line", lines)
	}
}

func TestWrapTextAutoDetectsCJK(t *testing.T) {
	ctx := textTestContext()

	// Char mode for CJK. The fallback measure is byte-based (10px per
	// byte, 3 bytes per rune), so a 65px budget fits two runes per line.
	lines := WrapText(ctx, "日本語テキスト", 65, WrapModeAuto)
	if len(lines) != 4 {
		t.Fatalf("got %d lines (%q), want 4 via char wrapping", len(lines), lines)
	}
}

func TestTruncateTextAppendsEllipsis(t *testing.T) {
	ctx := textTestContext()

	if got := TruncateText(ctx, "short", 200); got != "short" {
		t.Fatalf("fitting text must pass through, got %q", got)
	}

	got := TruncateText(ctx, "abcdefghij", 60)
	if got != "abcd.." {
		t.Fatalf("TruncateText = %q, want %q", got, "abcd..")
	}
}

func TestTextWidthEllipsisDegradesAtTinyWidths(t *testing.T) {
	ctx := textTestContext()

	if got := TextWidthEllipsis(ctx, "abcdef", 15); got != "." {
		t.Fatalf("15px budget: got %q, want single dot", got)
	}
	if got := TextWidthEllipsis(ctx, "abcdef", 0); got != "" {
		t.Fatalf("zero budget must yield empty, got %q", got)
	}
}

func TestMeasureWrappedTextSize(t *testing.T) {
	ctx := textTestContext()

	size := MeasureWrappedText(ctx, "aaa bbb ccc", 50, WrapModeWord)
	if size.X != 30 {
		t.Fatalf("width = %f, want 30 (widest line)", size.X)
	}
	if size.Y != 3*ctx.lineHeight() {
		t.Fatalf("height = %f, want 3 lines", size.Y)
	}
}
