package ui

// ListClipper helps virtualize large lists by calculating the visible item range.
// This is critical for performance with large datasets (1000+ items) where
// rendering all items every frame would cause significant slowdown.
//
// Usage:
//
//	clipper := NewListClipper(totalItems, itemHeight, visibleHeight, scrollY)
//	for i := clipper.StartIdx; i < clipper.EndIdx; i++ {
//	    y := clipper.ItemY(i, baseY, scrollY)
//	    // Draw item at y position
//	}
type ListClipper struct {
	StartIdx   int     // First visible item index (inclusive)
	EndIdx     int     // Last visible item index (exclusive)
	ItemHeight float32 // Height of each item
	TotalItems int     // Total number of items in the list
}

// NewListClipper calculates the visible item range for a scrollable list.
//
// Parameters:
//   - totalItems: Total number of items in the list
//   - itemHeight: Height of each item in pixels
//   - visibleHeight: Height of the visible area in pixels
//   - scrollY: Current vertical scroll offset in pixels
//
// Returns a ListClipper with StartIdx and EndIdx set to the visible range.
func NewListClipper(totalItems int, itemHeight, visibleHeight, scrollY float32) *ListClipper {
	if totalItems == 0 || itemHeight <= 0 {
		return &ListClipper{
			StartIdx:   0,
			EndIdx:     0,
			ItemHeight: itemHeight,
			TotalItems: totalItems,
		}
	}

	// Calculate first visible item
	startIdx := int(scrollY / itemHeight)
	if startIdx < 0 {
		startIdx = 0
	}

	// Calculate how many items fit in the visible area (+2 for partial visibility at top/bottom)
	visibleCount := int(visibleHeight/itemHeight) + 2
	endIdx := startIdx + visibleCount

	// Clamp to valid range
	if startIdx > totalItems {
		startIdx = totalItems
	}
	if endIdx > totalItems {
		endIdx = totalItems
	}

	return &ListClipper{
		StartIdx:   startIdx,
		EndIdx:     endIdx,
		ItemHeight: itemHeight,
		TotalItems: totalItems,
	}
}

// ShouldRender returns true if the item at the given index should be rendered.
// Use this when iterating through all items to skip invisible ones.
func (c *ListClipper) ShouldRender(idx int) bool {
	return idx >= c.StartIdx && idx < c.EndIdx
}

// ItemY calculates the Y position for an item relative to the visible area.
//
// Parameters:
//   - idx: The item index
//   - baseY: The Y position of the list's top edge
//   - scrollY: Current scroll offset
//
// Returns the Y position where the item should be drawn.
func (c *ListClipper) ItemY(idx int, baseY, scrollY float32) float32 {
	return baseY + float32(idx)*c.ItemHeight - scrollY
}

// VisibleCount returns the number of items that should be rendered.
func (c *ListClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}

// ContentHeight returns the total content height (for scrollbar calculations).
func (c *ListClipper) ContentHeight() float32 {
	return float32(c.TotalItems) * c.ItemHeight
}

// MaxScroll returns the maximum valid scroll offset.
func (c *ListClipper) MaxScroll(visibleHeight float32) float32 {
	maxScroll := c.ContentHeight() - visibleHeight
	if maxScroll < 0 {
		return 0
	}
	return maxScroll
}

// clipperStep identifies which phase of the three-phase StepClipper loop
// is currently executing.
type clipperStep int

const (
	clipperStepMeasure clipperStep = iota
	clipperStepSkipTo
	clipperStepSeekEnd
	clipperStepDone
)

// StepClipper virtualizes a list whose item height is not known in
// advance: the caller draws item 0 to let the clipper measure it, then the
// clipper jumps the cursor to the first visible item, then after the
// caller finishes drawing the visible range the clipper advances the
// cursor past the remaining unseen items. This mirrors the way a
// measure-then-skip loop must work when items are arbitrary widgets
// rather than a fixed-height row.
//
// Usage:
//
//	c := NewStepClipper(itemCount, viewportHeight, scrollY)
//	for c.Step() {
//	    for i := c.DisplayStart; i < c.DisplayEnd; i++ {
//	        drawItem(i)
//	    }
//	}
type StepClipper struct {
	ItemCount      int
	ViewportHeight float32
	ScrollY        float32

	DisplayStart int
	DisplayEnd   int

	itemHeight float32
	step       clipperStep
	startPosY  float32

	// AdvanceCursor is called by Step with the vertical distance the
	// caller's cursor should move without drawing anything (used to skip
	// over items above/below the visible range). A nil func is a no-op,
	// useful in tests that only assert on DisplayStart/DisplayEnd.
	AdvanceCursor func(dy float32)

	// MeasuredItemHeight is called once, after the first item has been
	// drawn, so the caller can report how tall it turned out to be.
	MeasuredItemHeight func() float32
}

// NewStepClipper constructs a clipper over itemCount items given the
// current viewport height and vertical scroll offset.
func NewStepClipper(itemCount int, viewportHeight, scrollY float32) *StepClipper {
	return &StepClipper{
		ItemCount:      itemCount,
		ViewportHeight: viewportHeight,
		ScrollY:        scrollY,
		step:           clipperStepMeasure,
	}
}

// Step advances the clipper state machine. Call it in a loop; it returns
// false once all phases (including the final skip-to-end phase) complete.
func (c *StepClipper) Step() bool {
	switch c.step {
	case clipperStepMeasure:
		if c.ItemCount == 0 {
			c.DisplayStart, c.DisplayEnd = 0, 0
			c.step = clipperStepDone
			return false
		}
		// First pass: render only item 0 to measure its height.
		c.DisplayStart, c.DisplayEnd = 0, 1
		c.step = clipperStepSkipTo
		return true

	case clipperStepSkipTo:
		if c.MeasuredItemHeight != nil {
			c.itemHeight = c.MeasuredItemHeight()
		}
		if c.itemHeight <= 0 {
			c.DisplayStart, c.DisplayEnd = 0, c.ItemCount
			c.step = clipperStepDone
			return false
		}

		start := int(c.ScrollY / c.itemHeight)
		if start < 0 {
			start = 0
		}
		if start > 0 {
			start--
		}
		visible := int(c.ViewportHeight/c.itemHeight) + 2
		end := start + visible
		if end > c.ItemCount {
			end = c.ItemCount
		}
		if start > end {
			start = end
		}

		if c.AdvanceCursor != nil && start > 0 {
			c.startPosY = float32(start) * c.itemHeight
			c.AdvanceCursor(c.startPosY)
		}

		c.DisplayStart, c.DisplayEnd = start, end
		c.step = clipperStepSeekEnd
		return true

	case clipperStepSeekEnd:
		remaining := c.ItemCount - c.DisplayEnd
		if remaining > 0 && c.AdvanceCursor != nil {
			c.AdvanceCursor(float32(remaining) * c.itemHeight)
		}
		c.step = clipperStepDone
		return false

	default:
		return false
	}
}

// ScrollToItem returns the scroll offset needed to make an item visible.
// If the item is already visible, returns the current scroll unchanged.
func (c *ListClipper) ScrollToItem(idx int, currentScroll, visibleHeight float32) float32 {
	if idx < 0 || idx >= c.TotalItems {
		return currentScroll
	}

	itemTop := float32(idx) * c.ItemHeight
	itemBottom := itemTop + c.ItemHeight

	// If item is above visible area, scroll up to it
	if itemTop < currentScroll {
		return itemTop
	}

	// If item is below visible area, scroll down to show it
	if itemBottom > currentScroll+visibleHeight {
		return itemBottom - visibleHeight
	}

	// Item is already visible
	return currentScroll
}
