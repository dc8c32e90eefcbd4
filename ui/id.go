package ui

import "strings"

// ID uniquely identifies a widget for state persistence across frames.
// IDs are a 32-bit FNV-1a hash of the widget's label seeded by the
// current id-stack top, so the same label nested under different parents
// (or pushed under a different loop index) yields different ids without
// needing a separate counter component.
type ID uint32

const (
	fnv32Offset = 2166136261
	fnv32Prime  = 16777619
)

// hashSeeded computes a 32-bit FNV-1a hash of s seeded by seed: the seed is
// folded in as the hash's initial state instead of the usual fixed offset
// basis, so pushing a parent id onto the stack changes every descendant's
// hash without concatenating strings.
func hashSeeded(seed uint32, s string) ID {
	h := seed
	if h == 0 {
		h = fnv32Offset
	}
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnv32Prime
	}
	return ID(h)
}

func hashSeededInt(seed uint32, n int) ID {
	h := seed
	if h == 0 {
		h = fnv32Offset
	}
	v := uint32(n)
	for i := 0; i < 4; i++ {
		h ^= (v >> (8 * uint(i))) & 0xFF
		h *= fnv32Prime
	}
	return ID(h)
}

// visibleLabel strips a "##suffix" disambiguator from a widget label: text
// after the first "##" contributes to the widget's id but must never be
// drawn, letting two widgets share a displayed label ("Save##top",
// "Save##bottom") while remaining individually addressable.
func visibleLabel(label string) string {
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i]
	}
	return label
}

// GetID generates a stable ID from a string label, seeded by the current
// top of the id stack. The full label (including any "##suffix") is
// hashed; callers that need a distinct display string use visibleLabel.
func (ctx *Context) GetID(label string) ID {
	return hashSeeded(uint32(ctx.CurrentID()), label)
}

// GetIDFromInt generates an ID from an integer, seeded by the current id
// stack top. Useful for items in arrays/slices where no natural label
// exists.
func (ctx *Context) GetIDFromInt(n int) ID {
	return hashSeededInt(uint32(ctx.CurrentID()), n)
}

// PushID pushes an ID onto the stack for nested widgets. All GetID calls
// will be seeded by this id until the matching PopID.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PushIDInt pushes an integer-based ID onto the stack.
func (ctx *Context) PushIDInt(n int) {
	ctx.idStack = append(ctx.idStack, ctx.GetIDFromInt(n))
}

// PopID removes the last ID from the stack. Popping past the bottom of
// the stack is a programming error: every PushID must be balanced by
// exactly one PopID within the same frame.
func (ctx *Context) PopID() {
	if len(ctx.idStack) == 0 {
		panic("ui: PopID called with an empty id stack")
	}
	ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
}

// CurrentID returns the current parent ID (top of stack), or 0 at the root.
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
