package ui

import "sort"

// RowSystem identifies which of the six layout systems produced a row.
type RowSystem int

const (
	RowDynamic RowSystem = iota
	RowStatic
	RowXXX
	RowArray
	RowTemplate
	RowSpace
)

type templateEntryKind int

const (
	templateDynamic templateEntryKind = iota
	templateVariable
	templateStatic
)

type templateEntry struct {
	kind  templateEntryKind
	min   float32 // variable: minimum width
	width float32 // static: fixed width set at push; others: resolved by LayoutTemplateEnd
}

// layoutRow is the per-row record shared by all six systems, pushed onto
// Context.rowStack for the duration of one row (or, for row-xxx/template/
// space, for the duration of the build-then-use sequence).
type layoutRow struct {
	System RowSystem

	SpecifiedHeight float32
	Columns         int
	CurrentColumn   int

	// Spacing overrides style.ItemSpacing for this row when non-zero;
	// the container veneers in layout.go feed their Gap option through
	// it.
	Spacing float32

	RowStartX        float32
	HorizontalOffset float32
	MaxHeight        float32

	// Static/dynamic shared state.
	itemWidth float32 // static: fixed width for every column

	// Array system.
	ratios    []float32
	arrayDyn  bool // true: ratios are fractions of available width; false: pixels

	// Row-XXX: explicit per-item widths, pushed one at a time; drawing
	// more items than widths were pushed is a programming error.
	pushed []float32

	// Template system.
	building  bool
	entries   []templateEntry
	resolved  bool

	// Space system.
	spaceDyn    bool
	spaceWidth  float32
	spaceHeight float32
	spaceBaseY  float32
}

// currentRow returns the active row, or nil if no LayoutRow* call has
// opened one.
func (ctx *Context) currentRow() *layoutRow {
	if n := len(ctx.rowStack); n > 0 {
		return ctx.rowStack[n-1]
	}
	return nil
}

// rowAvailableWidth returns the content width a row computes percentages
// and equal-division widths against: the current window's inner rect
// when inside one, else the display.
func (ctx *Context) rowAvailableWidth() float32 {
	return ctx.currentLayoutWidth()
}

func (ctx *Context) pushRow(r *layoutRow) {
	ctx.rowStack = append(ctx.rowStack, r)
	r.RowStartX = ctx.cursor.X
	r.spaceBaseY = ctx.cursor.Y
}

// rowSpacing returns row's item spacing: its own override, else the
// style's.
func (ctx *Context) rowSpacing(row *layoutRow) float32 {
	if row != nil && row.Spacing > 0 {
		return row.Spacing
	}
	return ctx.style.ItemSpacing
}

// advanceRow moves the cursor past a w×h item and wraps to a new line
// once CurrentColumn reaches Columns,
// per the shared advance_cursor rule, for every system except row-xxx and
// space (which never wrap).
func (ctx *Context) advanceRow(w, h float32) {
	row := ctx.currentRow()
	if row == nil {
		ctx.cursor.X += w
		return
	}
	if h > row.MaxHeight {
		row.MaxHeight = h
	}
	spacing := ctx.rowSpacing(row)
	row.CurrentColumn++

	// Space rows flow freely from wherever the item actually sat, so
	// manual cursor offsets (LayoutSpacePush, inline bullets in an
	// HStack) hold between items.
	if row.System == RowSpace {
		ctx.cursor.X += w + spacing
		return
	}

	row.HorizontalOffset += w + spacing
	ctx.cursor.X = row.RowStartX + row.HorizontalOffset

	if row.System == RowXXX {
		return
	}
	if row.Columns > 0 && row.CurrentColumn >= row.Columns {
		ctx.cursor.X = row.RowStartX
		ctx.cursor.Y += row.MaxHeight + spacing
		row.CurrentColumn = 0
		row.HorizontalOffset = 0
		row.MaxHeight = 0
	}
}

// calculateItemSize returns the width/height the current row assigns to
// the next item, using defaultH when the row has no specified height.
func (ctx *Context) calculateItemSize(defaultH float32) (width, height float32) {
	row := ctx.currentRow()
	if row == nil {
		return ctx.rowAvailableWidth(), defaultH
	}
	height = row.SpecifiedHeight
	if height == 0 {
		height = defaultH
	}

	switch row.System {
	case RowDynamic:
		avail := ctx.rowAvailableWidth()
		spacing := ctx.rowSpacing(row) * float32(row.Columns-1)
		width = (avail - spacing) / float32(row.Columns)
	case RowStatic:
		width = row.itemWidth
	case RowXXX:
		if row.CurrentColumn >= len(row.pushed) {
			panic("ui: LayoutRowPush overflow — more items drawn than pushed widths")
		}
		width = row.pushed[row.CurrentColumn]
	case RowArray:
		if row.CurrentColumn >= len(row.ratios) {
			panic("ui: layout array row overflow — more items drawn than columns")
		}
		v := row.ratios[row.CurrentColumn]
		if row.arrayDyn {
			width = v * ctx.rowAvailableWidth()
		} else {
			width = v
		}
	case RowTemplate:
		if !row.resolved {
			panic("ui: item drawn before LayoutTemplateEnd resolved widths")
		}
		if row.CurrentColumn >= len(row.entries) {
			panic("ui: template row overflow — more items drawn than template entries")
		}
		width = row.entries[row.CurrentColumn].width
	case RowSpace:
		if row.spaceDyn {
			width = row.spaceWidth * ctx.rowAvailableWidth()
			height = row.spaceHeight * height
		} else {
			width = row.spaceWidth
			height = row.spaceHeight
		}
	}
	return width, height
}

// LayoutRowDynamic opens a row of `columns` equal-width items sized
// against the available content width.
func (ctx *Context) LayoutRowDynamic(height float32, columns int) {
	ctx.popRowIfSameDepth()
	ctx.pushRow(&layoutRow{System: RowDynamic, SpecifiedHeight: height, Columns: columns})
}

// LayoutRowStatic opens a row of `columns` items each `itemWidth` wide.
func (ctx *Context) LayoutRowStatic(height, itemWidth float32, columns int) {
	ctx.popRowIfSameDepth()
	ctx.pushRow(&layoutRow{System: RowStatic, SpecifiedHeight: height, Columns: columns, itemWidth: itemWidth})
}

// LayoutRowBegin opens a row-xxx row: explicit per-item widths are pushed
// one at a time via LayoutRowPush between this call and LayoutRowEnd.
// A row-xxx row never wraps — drawing more items than were pushed is a
// programming error.
func (ctx *Context) LayoutRowBegin(height float32, columns int) {
	ctx.popRowIfSameDepth()
	ctx.pushRow(&layoutRow{System: RowXXX, SpecifiedHeight: height, Columns: columns})
}

// LayoutRowPush appends one explicit item width to the row-xxx row
// currently being built.
func (ctx *Context) LayoutRowPush(width float32) {
	row := ctx.currentRow()
	if row == nil || row.System != RowXXX {
		panic("ui: LayoutRowPush called without a matching LayoutRowBegin")
	}
	row.pushed = append(row.pushed, width)
}

// LayoutRowEnd closes a row-xxx row.
func (ctx *Context) LayoutRowEnd() {
	ctx.popRow(RowXXX)
}

// LayoutRowArray opens a row whose column widths (or ratios, when dynamic
// is true) are all supplied up front.
func (ctx *Context) LayoutRowArray(height float32, columns int, widthsOrRatios []float32, dynamic bool) {
	ctx.popRowIfSameDepth()
	ratios := make([]float32, len(widthsOrRatios))
	copy(ratios, widthsOrRatios)
	ctx.pushRow(&layoutRow{System: RowArray, SpecifiedHeight: height, Columns: columns, ratios: ratios, arrayDyn: dynamic})
}

// LayoutTemplateBegin opens a template-row build phase; entries are
// pushed via LayoutTemplatePushDynamic/Variable/Static and widths are
// resolved at LayoutTemplateEnd.
func (ctx *Context) LayoutTemplateBegin(height float32) {
	ctx.popRowIfSameDepth()
	ctx.pushRow(&layoutRow{System: RowTemplate, SpecifiedHeight: height, building: true})
}

// LayoutTemplatePushDynamic adds a flexible entry with no minimum width.
func (ctx *Context) LayoutTemplatePushDynamic() {
	ctx.templateRow().entries = append(ctx.templateRow().entries, templateEntry{kind: templateDynamic})
}

// LayoutTemplatePushVariable adds a flexible entry with a minimum width.
func (ctx *Context) LayoutTemplatePushVariable(minWidth float32) {
	ctx.templateRow().entries = append(ctx.templateRow().entries, templateEntry{kind: templateVariable, min: minWidth})
}

// LayoutTemplatePushStatic adds a fixed-width entry.
func (ctx *Context) LayoutTemplatePushStatic(width float32) {
	ctx.templateRow().entries = append(ctx.templateRow().entries, templateEntry{kind: templateStatic, width: width})
}

func (ctx *Context) templateRow() *layoutRow {
	row := ctx.currentRow()
	if row == nil || row.System != RowTemplate || !row.building {
		panic("ui: template push called without a matching LayoutTemplateBegin")
	}
	return row
}

// LayoutTemplateEnd resolves every pushed entry's final width using the
// level-raising distribution rule: static entries keep their fixed
// width; if the remaining space can't cover every variable entry's
// minimum, dynamic entries collapse to zero and variable entries keep
// their minimum; otherwise the remaining space (after statics) is shared
// among variable and dynamic entries by raising the smallest floors
// first until all are equal, then split evenly.
func (ctx *Context) LayoutTemplateEnd() {
	row := ctx.templateRow()
	row.building = false
	row.Columns = len(row.entries)

	avail := ctx.rowAvailableWidth()
	spacing := ctx.rowSpacing(row) * float32(Max(row.Columns-1, 0))
	remaining := avail - spacing

	var flexIdx []int
	floors := make([]float32, 0, row.Columns)
	for i, e := range row.entries {
		switch e.kind {
		case templateStatic:
			remaining -= e.width
		case templateVariable:
			flexIdx = append(flexIdx, i)
			floors = append(floors, e.min)
		case templateDynamic:
			flexIdx = append(flexIdx, i)
			floors = append(floors, 0)
		}
	}

	alloc := distributeWithFloors(floors, remaining)
	for k, i := range flexIdx {
		row.entries[i].width = alloc[k]
	}
	row.resolved = true
}

// distributeWithFloors allocates budget across len(floors) entries, each
// constrained to at least its floor. Entries are sorted ascending by
// floor (ties keep push order — the stable-sort tiebreak). The smallest
// floors are folded into a growing group and raised to match the next
// distinct floor level as long as budget allows; once budget runs out
// mid-raise, or every entry has been folded in, the remaining budget
// splits evenly across the folded group while any untouched higher-floor
// entries keep exactly their own floor. This is the level-raising rule
// from the spec, read bottom-up.
func distributeWithFloors(floors []float32, budget float32) []float32 {
	n := len(floors)
	alloc := make([]float32, n)
	if n == 0 {
		return alloc
	}

	sum := float32(0)
	for _, f := range floors {
		sum += f
	}
	if budget <= sum {
		copy(alloc, floors)
		return alloc
	}
	extra := budget - sum

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return floors[order[a]] < floors[order[b]] })

	level := float32(0)
	count := 0
	i := 0
	for i < n {
		f := floors[order[i]]
		if f > level {
			cost := (f - level) * float32(count)
			if extra < cost {
				break
			}
			extra -= cost
			level = f
		}
		count++
		i++
	}

	share := float32(0)
	if count > 0 {
		share = level + extra/float32(count)
	}
	for k := 0; k < count; k++ {
		alloc[order[k]] = share
	}
	for k := count; k < n; k++ {
		alloc[order[k]] = floors[order[k]]
	}
	return alloc
}

// LayoutSpaceBegin opens a row where each item's rect is placed
// explicitly via LayoutSpacePush, with no implicit cursor advancement
// between items.
func (ctx *Context) LayoutSpaceBegin(height float32, dynamic bool, widgetCount int) {
	ctx.popRowIfSameDepth()
	ctx.pushRow(&layoutRow{System: RowSpace, SpecifiedHeight: height, Columns: widgetCount, spaceDyn: dynamic})
}

// LayoutSpacePush sets the rect (fractions of available space if the
// space row is dynamic, pixels otherwise) for the next item.
func (ctx *Context) LayoutSpacePush(x, y, w, h float32) {
	row := ctx.currentRow()
	if row == nil || row.System != RowSpace {
		panic("ui: LayoutSpacePush called without a matching LayoutSpaceBegin")
	}
	row.spaceWidth = w
	row.spaceHeight = h
	if row.spaceDyn {
		avail := ctx.rowAvailableWidth()
		ctx.cursor = Vec2{X: row.RowStartX + x*avail, Y: row.spaceBaseY + y*row.SpecifiedHeight}
	} else {
		ctx.cursor = Vec2{X: row.RowStartX + x, Y: row.spaceBaseY + y}
	}
}

// LayoutSpaceEnd closes a space row.
func (ctx *Context) LayoutSpaceEnd() {
	ctx.popRow(RowSpace)
}

func (ctx *Context) popRow(expect RowSystem) {
	row := ctx.currentRow()
	if row == nil || row.System != expect {
		panic("ui: layout row end called without a matching begin")
	}
	ctx.rowStack = ctx.rowStack[:len(ctx.rowStack)-1]
	ctx.cursor.Y += row.MaxHeight + ctx.rowSpacing(row)
	ctx.cursor.X = row.RowStartX
}

// popRowsTo closes every row above depth, used by the container veneers
// in layout.go so a body that left one-shot rows open doesn't unbalance
// the container's own row.
func (ctx *Context) popRowsTo(depth int) {
	for len(ctx.rowStack) > depth {
		row := ctx.rowStack[len(ctx.rowStack)-1]
		ctx.rowStack = ctx.rowStack[:len(ctx.rowStack)-1]
		ctx.cursor.Y += row.MaxHeight + ctx.rowSpacing(row)
		ctx.cursor.X = row.RowStartX
	}
}

// popRowIfSameDepth closes a still-open dynamic/static/array/template row
// before a new LayoutRow* call replaces it — only row-xxx and space rows
// require an explicit End call, the others are implicitly one-shot.
func (ctx *Context) popRowIfSameDepth() {
	row := ctx.currentRow()
	if row == nil {
		return
	}
	switch row.System {
	case RowXXX, RowSpace:
		return
	}
	ctx.rowStack = ctx.rowStack[:len(ctx.rowStack)-1]
	ctx.cursor.Y += row.MaxHeight + ctx.rowSpacing(row)
	ctx.cursor.X = row.RowStartX
}
