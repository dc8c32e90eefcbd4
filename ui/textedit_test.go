package ui

import "testing"

func TestTextEditInsertAndNavigate(t *testing.T) {
	te := NewTextEditState()
	for _, r := range "hello world" {
		te.InsertFilteredRune(r)
	}
	if te.String() != "hello world" {
		t.Fatalf("String() = %q", te.String())
	}
	te.TextStart(false)
	if te.CursorPos != 0 {
		t.Fatalf("CursorPos after TextStart = %d", te.CursorPos)
	}
	te.MoveWordRight(false)
	if te.CursorPos != 6 {
		t.Fatalf("CursorPos after MoveWordRight = %d, want 6", te.CursorPos)
	}
	te.TextEnd(false)
	if te.CursorPos != len("hello world") {
		t.Fatalf("CursorPos after TextEnd = %d", te.CursorPos)
	}
}

func TestTextEditDeleteSelection(t *testing.T) {
	te := NewTextEditState()
	te.SetString("abcdef")
	te.CursorPos = 1
	te.SelectionStart = 1
	te.SelectionEnd = 4
	te.DeleteBack()
	if te.String() != "aef" {
		t.Fatalf("String() after deleting selection via DeleteBack = %q, want \"aef\"", te.String())
	}
}

func TestTextEditDecimalFilterRejectsLetters(t *testing.T) {
	te := NewTextEditState()
	te.Filter = CharFilterDecimal
	te.InsertFilteredRune('1')
	te.InsertFilteredRune('a')
	te.InsertFilteredRune('.')
	te.InsertFilteredRune('5')
	if te.String() != "1.5" {
		t.Fatalf("String() = %q, want \"1.5\" (letters rejected)", te.String())
	}
}

func TestTextEditUndoRedo(t *testing.T) {
	te := NewTextEditState()
	te.InsertFilteredRune('a')
	te.InsertFilteredRune('b')
	if !te.UndoEdit() {
		t.Fatal("expected UndoEdit to succeed")
	}
	if te.String() != "a" {
		t.Fatalf("String() after undo = %q, want \"a\"", te.String())
	}
	if !te.RedoEdit() {
		t.Fatal("expected RedoEdit to succeed")
	}
	if te.String() != "ab" {
		t.Fatalf("String() after redo = %q, want \"ab\"", te.String())
	}
}

func TestTextEditEscapeRevertsToSnapshot(t *testing.T) {
	te := NewTextEditState()
	te.SetString("original")
	te.BeginEdit()
	te.TextEnd(false)
	te.InsertFilteredRune('!')
	if te.String() != "original!" {
		t.Fatalf("String() before escape = %q", te.String())
	}
	te.Escape()
	if te.String() != "original" {
		t.Fatalf("String() after Escape = %q, want reverted to snapshot", te.String())
	}
}

func TestTextEditClipboardFallback(t *testing.T) {
	te := NewTextEditState()
	te.SetString("copy me")
	te.SelectionStart = 0
	te.SelectionEnd = 4
	te.Copy()
	te.ClearSelection()
	te.CursorPos = len(te.Text)
	te.Paste()
	if te.String() != "copy mecopy" {
		t.Fatalf("String() after copy+paste = %q", te.String())
	}
}

func TestTextEditMoveUpDownPreservesColumn(t *testing.T) {
	te := NewTextEditState()
	te.SetString("ab\nabcdef\na")
	te.CursorPos = 1 // "a|b" on line 0
	te.MoveDown(false)
	if te.CursorPos != 4 { // line 1 starts at index 3, column 1 -> index 4
		t.Fatalf("CursorPos after MoveDown = %d, want 4", te.CursorPos)
	}
	te.MoveDown(false)
	if te.CursorPos != len(te.Text) { // line 2 ("a") starts at index 10, column 1 -> index 11, its end
		t.Fatalf("CursorPos after second MoveDown = %d, want %d", te.CursorPos, len(te.Text))
	}
	te.MoveUp(false)
	if te.CursorPos != 4 {
		t.Fatalf("CursorPos after MoveUp = %d, want 4", te.CursorPos)
	}
}

func TestTextEditHomeEndPerLine(t *testing.T) {
	te := NewTextEditState()
	te.SetString("one\ntwo")
	te.CursorPos = 5 // inside "two"
	te.Home(false)
	if te.CursorPos != 4 {
		t.Fatalf("CursorPos after Home = %d, want 4", te.CursorPos)
	}
	te.End(false)
	if te.CursorPos != 7 {
		t.Fatalf("CursorPos after End = %d, want 7", te.CursorPos)
	}
}

// Scenario E4: a multi-byte codepoint grows the UTF-8 length by its
// encoded size but the wide length and cursor by exactly one.
func TestTextEditMultiByteRuneAdvancesOneWideUnit(t *testing.T) {
	te := NewTextEditState()
	te.SetString("ab")
	te.TextEnd(false)

	utf8Before := te.LengthUTF8()
	wideBefore := te.LengthWide()
	cursorBefore := te.CursorPos

	te.InsertFilteredRune('€') // 0xE2 0x82 0xAC on the wire

	if got := te.LengthUTF8() - utf8Before; got != 3 {
		t.Fatalf("utf8 length grew by %d, want 3", got)
	}
	if got := te.LengthWide() - wideBefore; got != 1 {
		t.Fatalf("wide length grew by %d, want 1", got)
	}
	if te.CursorPos != cursorBefore+1 {
		t.Fatalf("cursor = %d, want %d", te.CursorPos, cursorBefore+1)
	}
}

func TestFoldFullWidthDigit(t *testing.T) {
	// Full-width "1" is U+FF11; should fold to ASCII '1'.
	if got := foldFullWidth(0xFF11); got != '1' {
		t.Fatalf("foldFullWidth(0xFF11) = %q, want '1'", got)
	}
}
