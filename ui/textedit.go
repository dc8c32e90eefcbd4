package ui

import (
	"golang.org/x/text/width"
)

// CharFilter configures which characters InsertFilteredRune accepts,
// mirroring the original widget-level "chars_decimal"/"chars_hexadecimal"
// style flags so a numeric input can reject letters at the edit layer
// instead of validating the whole string after the fact.
type CharFilter uint8

const (
	CharFilterNone CharFilter = 0
	CharFilterDecimal CharFilter = 1 << iota
	CharFilterHexadecimal
	CharFilterScientific
	CharFilterUppercase
	CharFilterNoBlank
)

// WordNavStyle selects which platform convention governs word-left/
// word-right navigation; the two differ in whether the boundary is
// detected scanning from the left of the cursor or from the right.
type WordNavStyle int

const (
	WordNavWindows WordNavStyle = iota
	WordNavMac
)

// RevertPolicy controls what Escape does to a text-edit buffer.
type RevertPolicy int

const (
	// RevertToSnapshot restores the buffer captured when editing began.
	RevertToSnapshot RevertPolicy = iota
	// RevertClearsAll empties the buffer instead of restoring it.
	RevertClearsAll
)

// staticCharTables are built once at init rather than per keystroke.
var (
	hexDigits = func() [256]bool {
		var t [256]bool
		for _, r := range "0123456789abcdefABCDEF" {
			t[r] = true
		}
		return t
	}()
	decimalDigits = func() [256]bool {
		var t [256]bool
		for _, r := range "0123456789.-+" {
			t[r] = true
		}
		return t
	}()
	scientificChars = func() [256]bool {
		var t [256]bool
		for _, r := range "0123456789.-+eE" {
			t[r] = true
		}
		return t
	}()
)

// TextEditState is the full multi-line text-edit engine: navigation,
// selection, undo/redo, a character filter, word navigation (Mac or
// Windows convention), a revert-on-Escape snapshot, and clipboard
// cut/copy/paste. It generalizes InputTextState (state.go) with the
// richer editing model the original widget's processInputTextKeyboard
// only partially implemented inline.
type TextEditState struct {
	InputTextState

	Text []rune

	Filter       CharFilter
	WordNav      WordNavStyle
	Revert       RevertPolicy
	EnterReturns bool // ENTER_RETURNS_TRUE: Enter commits without reverting

	snapshot     []rune
	editedThis   bool
	clipboardGet func() string
	clipboardSet func(string)

	// scrollLine is the index of the first visible line, maintained by
	// InputTextMultiline (widget_textedit.go) to keep the cursor's line
	// inside the widget's fixed-height viewport.
	scrollLine int

	// internalClipboard backs cut/copy/paste when no ClipboardProvider is
	// registered (Open Question decision: in-process fallback buffer).
	internalClipboard string
}

// NewTextEditState returns an empty, ready-to-use text-edit state.
func NewTextEditState() *TextEditState {
	return &TextEditState{InputTextState: InputTextState{SelectionStart: -1, SelectionEnd: -1}}
}

// SetClipboardProvider wires host clipboard get/set callbacks; when nil,
// Cut/Copy/Paste fall back to the internal buffer.
func (t *TextEditState) SetClipboardProvider(get func() string, set func(string)) {
	t.clipboardGet = get
	t.clipboardSet = set
}

// BeginEdit snapshots the current buffer (for Escape-revert) and marks the
// widget as editing.
func (t *TextEditState) BeginEdit() {
	t.Editing = true
	t.snapshot = append([]rune(nil), t.Text...)
	t.editedThis = false
}

// EndEdit clears editing mode without reverting.
func (t *TextEditState) EndEdit() {
	t.Editing = false
}

// Escape applies the configured RevertPolicy and ends editing.
func (t *TextEditState) Escape() {
	switch t.Revert {
	case RevertClearsAll:
		t.Text = t.Text[:0]
	default:
		t.Text = append([]rune(nil), t.snapshot...)
	}
	t.CursorPos = len(t.Text)
	t.ClearSelection()
	t.Editing = false
}

// --- navigation ---

func (t *TextEditState) clampCursor() {
	if t.CursorPos < 0 {
		t.CursorPos = 0
	}
	if t.CursorPos > len(t.Text) {
		t.CursorPos = len(t.Text)
	}
}

func (t *TextEditState) moveTo(pos int, extend bool) {
	if extend {
		if t.SelectionStart < 0 {
			t.SelectionStart = t.CursorPos
		}
		t.SelectionEnd = pos
	} else {
		t.ClearSelection()
	}
	t.CursorPos = pos
	t.clampCursor()
}

// MoveLeft/MoveRight/Home/End/TextStart/TextEnd move the cursor by one
// unit, optionally extending the current selection.
func (t *TextEditState) MoveLeft(extend bool)  { t.moveTo(t.CursorPos-1, extend) }
func (t *TextEditState) MoveRight(extend bool) { t.moveTo(t.CursorPos+1, extend) }
func (t *TextEditState) TextStart(extend bool) { t.moveTo(0, extend) }
func (t *TextEditState) TextEnd(extend bool)   { t.moveTo(len(t.Text), extend) }

// Home moves to the start of the current line (the nearest preceding
// '\n', or 0).
func (t *TextEditState) Home(extend bool) {
	pos := t.CursorPos
	for pos > 0 && t.Text[pos-1] != '\n' {
		pos--
	}
	t.moveTo(pos, extend)
}

// End moves to the end of the current line (the nearest following '\n',
// or the buffer end).
func (t *TextEditState) End(extend bool) {
	pos := t.CursorPos
	for pos < len(t.Text) && t.Text[pos] != '\n' {
		pos++
	}
	t.moveTo(pos, extend)
}

// lineStart/lineEnd return the buffer indices bounding the line containing
// pos, matching Home/End's own backward/forward newline scans.
func (t *TextEditState) lineStart(pos int) int {
	for pos > 0 && t.Text[pos-1] != '\n' {
		pos--
	}
	return pos
}

func (t *TextEditState) lineEnd(pos int) int {
	for pos < len(t.Text) && t.Text[pos] != '\n' {
		pos++
	}
	return pos
}

// columnOf returns pos's offset from the start of its line, in runes.
func (t *TextEditState) columnOf(pos int) int {
	return pos - t.lineStart(pos)
}

// MoveUp/MoveDown move the cursor one line up/down, preserving the
// preferred column as closely as the target line's length allows (clamped,
// not wrapped, when the target line is shorter).
func (t *TextEditState) MoveUp(extend bool) {
	start := t.lineStart(t.CursorPos)
	if start == 0 {
		t.moveTo(0, extend)
		return
	}
	col := t.columnOf(t.CursorPos)
	prevLineEnd := start - 1
	prevLineStart := t.lineStart(prevLineEnd)
	target := prevLineStart + col
	if target > prevLineEnd {
		target = prevLineEnd
	}
	t.moveTo(target, extend)
}

func (t *TextEditState) MoveDown(extend bool) {
	end := t.lineEnd(t.CursorPos)
	if end >= len(t.Text) {
		t.moveTo(len(t.Text), extend)
		return
	}
	col := t.columnOf(t.CursorPos)
	nextLineStart := end + 1
	nextLineEnd := t.lineEnd(nextLineStart)
	target := nextLineStart + col
	if target > nextLineEnd {
		target = nextLineEnd
	}
	t.moveTo(target, extend)
}

// pageLines is how many MoveUp/MoveDown steps a PageUp/PageDown covers;
// the host widget may instead call MoveUp/MoveDown in a loop sized to its
// own visible line count, but a fixed default keeps the engine usable
// without a widget in the loop (e.g. from a test).
const pageLines = 10

// PageUp/PageDown move the cursor pageLines lines up/down.
func (t *TextEditState) PageUp(extend bool) {
	for i := 0; i < pageLines; i++ {
		t.MoveUp(extend)
	}
}

func (t *TextEditState) PageDown(extend bool) {
	for i := 0; i < pageLines; i++ {
		t.MoveDown(extend)
	}
}

func isWordBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// wordBoundaryLeft finds the start of the word to the left of pos,
// grounded on the original widget's findWordBoundaryLeft.
func wordBoundaryLeft(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	for pos > 0 && isWordBlank(runes[pos]) {
		pos--
	}
	for pos > 0 && !isWordBlank(runes[pos-1]) {
		pos--
	}
	return pos
}

// wordBoundaryRight finds the end of the word to the right of pos.
func wordBoundaryRight(runes []rune, pos int) int {
	n := len(runes)
	if pos >= n {
		return n
	}
	for pos < n && !isWordBlank(runes[pos]) {
		pos++
	}
	for pos < n && isWordBlank(runes[pos]) {
		pos++
	}
	return pos
}

// MoveWordLeft/MoveWordRight navigate by word. The Mac convention detects
// the boundary scanning from the right of the candidate stop (favoring
// landing just after a preceding separator run); Windows scans from the
// left (landing at the first non-separator after skipping whitespace).
// Both share the same underlying scan helpers; the difference is which
// edge of a separator run counts as "the" boundary when the cursor is
// already adjacent to one.
func (t *TextEditState) MoveWordLeft(extend bool) {
	pos := wordBoundaryLeft(t.Text, t.CursorPos)
	if t.WordNav == WordNavMac && pos > 0 {
		// Mac convention stops immediately after the separator run rather
		// than skipping an extra leading separator.
		for pos < t.CursorPos && pos > 0 && isWordBlank(t.Text[pos-1]) {
			pos++
		}
	}
	t.moveTo(pos, extend)
}

func (t *TextEditState) MoveWordRight(extend bool) {
	pos := wordBoundaryRight(t.Text, t.CursorPos)
	t.moveTo(pos, extend)
}

// --- editing ---

func (t *TextEditState) snapshotUndo() {
	t.PushUndo(string(t.Text))
}

func (t *TextEditState) deleteSelection() bool {
	start, end := t.GetSelectedRange()
	if start < 0 {
		return false
	}
	t.Text = append(t.Text[:start], t.Text[end:]...)
	t.CursorPos = start
	t.ClearSelection()
	return true
}

// InsertFilteredRune applies the character filter (after folding any
// full-width numeral to its half-width form) and, if accepted, inserts r
// at the cursor, replacing any active selection first.
func (t *TextEditState) InsertFilteredRune(r rune) bool {
	r = foldFullWidth(r)
	if !t.passesFilter(r) {
		return false
	}
	t.snapshotUndo()
	t.deleteSelection()
	t.Text = append(t.Text[:t.CursorPos], append([]rune{r}, t.Text[t.CursorPos:]...)...)
	t.CursorPos++
	t.editedThis = true
	return true
}

func (t *TextEditState) passesFilter(r rune) bool {
	if t.Filter == CharFilterNone {
		return true
	}
	if t.Filter&CharFilterNoBlank != 0 && isWordBlank(r) {
		return false
	}
	if r > 0xFF {
		// the static tables only cover ASCII; anything else passes
		// through NoBlank-style filters but fails numeric-only ones.
		return t.Filter&(CharFilterDecimal|CharFilterHexadecimal|CharFilterScientific) == 0
	}
	if t.Filter&CharFilterUppercase != 0 {
		r = toUpperASCII(r)
	}
	switch {
	case t.Filter&CharFilterHexadecimal != 0:
		return hexDigits[byte(r)]
	case t.Filter&CharFilterScientific != 0:
		return scientificChars[byte(r)]
	case t.Filter&CharFilterDecimal != 0:
		return decimalDigits[byte(r)]
	}
	return true
}

func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// foldFullWidth converts full-width numeral/ASCII-range codepoints
// (U+FF01..U+FF5E) to their half-width equivalents before filtering, so
// an IME that emits full-width digits still satisfies a numeric filter.
func foldFullWidth(r rune) rune {
	if r < 0xFF01 || r > 0xFF5E {
		return r
	}
	folded := width.Narrow.String(string(r))
	for _, fr := range folded {
		return fr
	}
	return r
}

// DeleteForward deletes the selection, or one rune to the right of the
// cursor if there's no selection.
func (t *TextEditState) DeleteForward() {
	t.snapshotUndo()
	if t.deleteSelection() {
		return
	}
	if t.CursorPos < len(t.Text) {
		t.Text = append(t.Text[:t.CursorPos], t.Text[t.CursorPos+1:]...)
		t.editedThis = true
	}
}

// DeleteBack deletes the selection, or one rune to the left of the cursor.
func (t *TextEditState) DeleteBack() {
	t.snapshotUndo()
	if t.deleteSelection() {
		return
	}
	if t.CursorPos > 0 {
		t.Text = append(t.Text[:t.CursorPos-1], t.Text[t.CursorPos:]...)
		t.CursorPos--
		t.editedThis = true
	}
}

// DeleteWordLeft/DeleteWordRight delete from the cursor to the previous/
// next word boundary.
func (t *TextEditState) DeleteWordLeft() {
	if t.HasSelection() {
		t.DeleteBack()
		return
	}
	t.snapshotUndo()
	start := wordBoundaryLeft(t.Text, t.CursorPos)
	t.Text = append(t.Text[:start], t.Text[t.CursorPos:]...)
	t.CursorPos = start
	t.editedThis = true
}

func (t *TextEditState) DeleteWordRight() {
	if t.HasSelection() {
		t.DeleteForward()
		return
	}
	t.snapshotUndo()
	end := wordBoundaryRight(t.Text, t.CursorPos)
	t.Text = append(t.Text[:t.CursorPos], t.Text[end:]...)
	t.editedThis = true
}

// SelectAllText selects the entire buffer.
func (t *TextEditState) SelectAllText() { t.SelectAll(len(t.Text)) }

// EditedThisFrame reports whether the buffer changed since the last
// ResetEditedFlag call; callers typically reset it once per frame.
func (t *TextEditState) EditedThisFrame() bool { return t.editedThis }

// ResetEditedFlag clears the edited-this-frame flag.
func (t *TextEditState) ResetEditedFlag() { t.editedThis = false }

// --- undo/redo over the rune buffer ---

// UndoEdit restores the previous buffer snapshot, if any.
func (t *TextEditState) UndoEdit() bool {
	prev, ok := t.Undo(string(t.Text))
	if !ok {
		return false
	}
	t.Text = []rune(prev)
	t.clampCursor()
	return true
}

// RedoEdit reapplies a previously undone snapshot, if any.
func (t *TextEditState) RedoEdit() bool {
	next, ok := t.Redo()
	if !ok {
		return false
	}
	t.Text = []rune(next)
	t.clampCursor()
	return true
}

// --- clipboard ---

func (t *TextEditState) setClipboard(s string) {
	if t.clipboardSet != nil {
		t.clipboardSet(s)
		return
	}
	t.internalClipboard = s
}

func (t *TextEditState) getClipboard() string {
	if t.clipboardGet != nil {
		return t.clipboardGet()
	}
	return t.internalClipboard
}

// Copy copies the current selection (or does nothing without one) to the
// clipboard.
func (t *TextEditState) Copy() {
	start, end := t.GetSelectedRange()
	if start < 0 {
		return
	}
	t.setClipboard(string(t.Text[start:end]))
}

// Cut copies the current selection to the clipboard and deletes it.
func (t *TextEditState) Cut() {
	start, end := t.GetSelectedRange()
	if start < 0 {
		return
	}
	t.setClipboard(string(t.Text[start:end]))
	t.snapshotUndo()
	t.deleteSelection()
	t.editedThis = true
}

// Paste replaces the current selection with the clipboard contents,
// filtering each pasted rune the same way a typed rune would be.
func (t *TextEditState) Paste() {
	s := t.getClipboard()
	if s == "" {
		return
	}
	t.snapshotUndo()
	t.deleteSelection()
	for _, r := range s {
		r = foldFullWidth(r)
		if !t.passesFilter(r) {
			continue
		}
		t.Text = append(t.Text[:t.CursorPos], append([]rune{r}, t.Text[t.CursorPos:]...)...)
		t.CursorPos++
	}
	t.editedThis = true
}

// String returns the buffer's contents as a string.
func (t *TextEditState) String() string { return string(t.Text) }

// LengthUTF8 returns the buffer's length in UTF-8 bytes; LengthWide
// returns its length in runes (len(t.Text)). Kept as two named accessors,
// matching the distinct length_utf8/length_wide fields tracked alongside
// the cursor so callers never need to re-derive one from the other.
func (t *TextEditState) LengthUTF8() int { return len(string(t.Text)) }
func (t *TextEditState) LengthWide() int { return len(t.Text) }

// ByteOffset returns the UTF-8 byte offset of the cursor, using
// byteOffsetOf — useful when a host needs to slice the string form of the
// buffer (e.g. for an external text-shaping call) at the cursor position.
func (t *TextEditState) ByteOffset() int { return byteOffsetOf(string(t.Text), t.CursorPos) }

// SetString replaces the buffer wholesale (used when the host mutates the
// bound value outside the edit widget).
func (t *TextEditState) SetString(s string) {
	t.Text = []rune(s)
	t.clampCursor()
}

// byteOffsetOf returns the UTF-8 byte offset corresponding to rune index n.
func byteOffsetOf(s string, n int) int {
	if n <= 0 {
		return 0
	}
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}
