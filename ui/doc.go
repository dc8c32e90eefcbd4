/*
Package ui provides an immediate-mode GUI library inspired by Dear ImGui,
designed as idiomatic Go with a dedicated Context type.

# Overview

This package implements an immediate-mode GUI where the UI is rebuilt every frame.
Unlike retained-mode GUIs, there's no need to manage widget state or handle callbacks.
The UI code is simply called each frame, and widgets return interaction results directly.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1920, 1080)
	g := ui.New(renderer, ui.WithStyle(ui.HighContrastStyle()))

	// Game loop
	for !window.ShouldClose() {
	    input := pollInput(window)

	    ctx := g.Begin(input, ui.Vec2{1920, 1080}, deltaTime)

	    ctx.Panel("Menu", ui.Gap(8), ui.Padding(12))(func() {
	        ctx.Text("Hello World")
	        if ctx.Button("Click Me") {
	            // Button was clicked
	        }
	    })

	    g.End()
	    window.SwapBuffers()
	}

# Keyboard Shortcuts Reference

This section documents all keyboard shortcuts available in the GUI system.

## InputText and InputTextMultiline Shortcuts

Navigation:

	Left Arrow       Move cursor one character left
	Right Arrow      Move cursor one character right
	Ctrl+Left        Move cursor one word left
	Ctrl+Right       Move cursor one word right
	Up / Down        Move cursor one line (InputTextMultiline only)
	Home             Jump to start of line (Ctrl+Home: start of text)
	End              Jump to end of line (Ctrl+End: end of text)
	Page Up/Down     Scroll one page (InputTextMultiline only)

Selection:

	Shift+Left       Extend selection one character left
	Shift+Right      Extend selection one character right
	Ctrl+Shift+Left  Extend selection one word left
	Ctrl+Shift+Right Extend selection one word right
	Shift+Home       Select from cursor to start
	Shift+End        Select from cursor to end
	Ctrl+A           Select all text

Clipboard Operations:

	Ctrl+C           Copy selected text to clipboard
	Ctrl+X           Cut selected text to clipboard
	Ctrl+V           Paste from clipboard

Undo/Redo:

	Ctrl+Z           Undo last change
	Ctrl+Y           Redo (alternative 1)
	Ctrl+Shift+Z     Redo (alternative 2)

Control:

	Enter            Confirm input and end editing (newline in InputTextMultiline
	                 unless WithEnterReturns is set)
	Escape           Cancel and end editing
	Backspace        Delete character before cursor (or delete selection)
	Delete           Delete character after cursor (or delete selection)

## ListBox

	Mouse Wheel      Scroll vertically

## Slider Widgets (SliderFloat, SliderInt)

	Click+Drag       Adjust value by dragging the grab handle
	Mouse Wheel      Increment/decrement value (when hovered)
	Left/Right       Decrement/increment value (while dragging)

## Collapsing Headers / Tree Nodes / Tab Bars

	Click            Toggle expanded/collapsed state, or switch active tab

# Complete Component List

## Text Components

	ctx.Text(text string)
	    Draws basic text at current cursor position.

	ctx.TextColored(text string, color uint32)
	    Draws text with a specific color.

	ctx.TextDisabled(text string)
	    Draws text with the disabled/grayed out color.

	ctx.TextWrapped(text string, maxWidth float32)
	    Draws text with automatic word wrapping.
	    Use maxWidth=0 for current layout width.

	ctx.LabelText(label, value string)
	    Draws a label and value side by side.

	ctx.BulletText(text string)
	    Draws a bullet point followed by text.

## Button Components

	ctx.Button(label string, opts ...Option) bool
	    Draws a clickable button. Returns true when clicked.
	    Options: WithID, WithDisabled, WithWidth, WithHeight

	ctx.SmallButton(label string, opts ...Option) bool
	    Draws a smaller button without extra padding.

## Input Components

	ctx.InputText(label string, value *string, opts ...Option) bool
	    Full-featured single-line text input with cursor, selection,
	    clipboard, undo/redo. Returns true when value changes.
	    Options: WithID, WithDisabled, WithWidth

	ctx.InputTextMultiline(label string, value *string, visibleLines int, opts ...TextEditOption) bool
	    Scrollable multi-line editor built on the same TextEditState engine,
	    with line-based navigation. Returns true when value changes.
	    Options: WithCharFilter, WithWordNavStyle, WithRevertPolicy, WithEnterReturns

	ctx.SliderFloat(label string, value *float32, min, max float32, opts ...Option) bool
	    Horizontal slider for float values. Returns true when value changes.
	    Options: WithID, WithWidth, WithFormat, WithStep

	ctx.SliderInt(label string, value *int, min, max int, opts ...Option) bool
	    Horizontal slider for integer values. Returns true when value changes.
	    Options: WithID, WithWidth, WithFormat, WithStep

	ctx.Checkbox(label string, value *bool, opts ...Option) bool
	    Checkbox with label. Returns true when toggled.
	    Options: WithID, WithDisabled

	ctx.RadioButton(label string, active bool, opts ...Option) bool
	    Radio button. Returns true when clicked.
	    Options: WithID, WithDisabled

	ctx.ProgressBar(fraction float32, opts ...Option)
	    Displays a progress bar. Fraction should be 0.0 to 1.0.
	    Options: WithWidth, WithHeight

	ctx.Image(textureID uint32, w, h float32)
	    Draws a textured quad sized w by h at the current cursor position.

	ctx.Dummy(w, h float32)
	    Reserves a w by h rectangle without drawing anything, useful for
	    fixed-size gaps inside a layout.

## Selection Components

	ctx.Selectable(label string, selected bool, opts ...Option) bool
	    Selectable list item. Returns true when clicked.
	    Options: WithID, WithDisabled

## Layout Components

	ctx.Panel(title string, opts ...LayoutOption) func(func())
	    Container with background and optional title. Backed by an
	    auto-sized window pinned to the cursor.
	    Options: Gap, GapX, GapY, Padding, PaddingXY, Width, Height

	ctx.CenteredPanel(id string, opts ...LayoutOption) func(func())
	    Panel centered on screen using the backing window's persisted
	    size from the previous frame.

	ctx.VStack(opts ...LayoutOption) func(func())
	    Vertical layout container: a one-column dynamic row, so every
	    child wraps to its own line.
	    Options: Gap, GapY

	ctx.HStack(opts ...LayoutOption) func(func())
	    Horizontal layout container: a non-wrapping space-system row.
	    Options: Gap, GapX

	ctx.Row(contents func())
	    Alias for HStack with default options.

	ctx.ListBox(id string, height float32, opts ...LayoutOption) func(func())
	    Scrollable list area backed by a child window, with smooth
	    scrolling.

	ctx.BeginTabBar(label string, opts ...Option)
	    Starts a tab bar. Call ctx.Tab(label) for each tab, then EndTabBar.

	ctx.Tab(label string) bool
	    Draws one tab in the current tab bar. Returns true while it is active.

	ctx.EndTabBar()
	    Finishes a tab bar started with BeginTabBar.

## Tree/Collapsing Components

	ctx.CollapsingHeader(label string, opts ...Option) bool
	    Collapsible header. Returns true if section is expanded.
	    Options: WithID

	ctx.TreeNode(label string, opts ...Option) bool
	    Tree node with indent. Call TreePop() after contents.
	    Returns true if expanded.

	ctx.TreePop()
	    End a tree node started with TreeNode().

## Misc Components

	ctx.Separator()
	    Draws a horizontal separator line.

	ctx.Spacing(pixels float32)
	    Adds vertical space.

	ctx.Bullet()
	    Draws a bullet point (inline element).

	ctx.Indent(pixels float32)
	    Increases cursor X position.

	ctx.Unindent(pixels float32)
	    Decreases cursor X position.

	ctx.SameLine()
	    Places next widget on same line as previous.

	ctx.Tooltip(text string)
	    Shows tooltip at mouse position.

## Selection Components

	ctx.ComboBox(label string, selected *int, items []string, opts ...Option) bool
	    Dropdown selection. The open dropdown renders on the foreground
	    draw list and virtualizes its items. Returns true on change.

	ctx.SelectableList(label string, selected *int, items []string, height float32, opts ...Option) bool
	    Scrollable single-selection list, virtualized; only the visible
	    slice of items is drawn. Returns true on change.

	ctx.DragFloat(label string, value *float32, speed, min, max float32, opts ...Option) bool
	ctx.DragInt(label string, value *int, speed float32, min, max int, opts ...Option) bool
	    Numeric field adjusted by horizontal mouse drag.

# Windows

Persistent, draggable, resizable windows with title bars, scrollbars,
collapse and close buttons:

	ctx.BeginWindow("Stats", 0)          // returns false while collapsed
	ctx.EndWindow()                      // always required

	ctx.BeginWindowOpen("Tools", &open, 0)  // adds a close button
	ctx.BeginChild("inner", ui.Vec2{X: 200, Y: 120})
	ctx.EndChild()

	ctx.SetNextWindowPos(ui.Vec2{X: 60, Y: 60}, ui.CondFirstUseEver)
	ctx.SetNextWindowSize(ui.Vec2{X: 320, Y: 240}, ui.CondOnce)

Windows submit their draw layers in focus order at the end of the frame;
clicking a window raises it. Flags: WindowNoTitleBar, WindowNoResize,
WindowNoMove, WindowNoCollapse, WindowNoScrollbar, WindowAutoSize,
WindowNoBackground.

# Widget Options Reference

Common options available for widgets:

	WithID(id string)              Explicit ID (use in loops)
	WithDisabled(disabled bool)    Disable widget interaction
	WithWidth(width float32)       Set widget width
	WithHeight(height float32)     Set widget height
	WithFormat(format string)      Printf-style format (e.g., "%.2f")
	WithStep(step float32)         Value increment step

# Layout Options Reference

Options for Panel, VStack, HStack, and other layout containers. Gap
values feed the underlying layout row's spacing; Width/Height become the
backing window's minimum size.

	Gap(pixels float32)            Space between all children
	GapX(pixels float32)           Horizontal spacing override
	GapY(pixels float32)           Vertical spacing override
	Padding(pixels float32)        Inner padding on all sides
	PaddingXY(x, y float32)        Separate X/Y padding
	Width(w float32)               Minimum width
	Height(h float32)              Minimum height
	WithHotkey(key string)         "[Key]" suffix in panel headers
	MaxHeight(h float32)           Height cap

# Spacing Constants

Use these instead of magic numbers:

	SpaceNone  = 0   // No spacing
	SpaceXS    = 2   // Extra small
	SpaceSM    = 4   // Small (default item spacing)
	SpaceMD    = 8   // Medium (default padding)
	SpaceLG    = 12  // Large
	SpaceXL    = 16  // Extra large
	Space2XL   = 24  // 2x extra large
	Space3XL   = 32  // 3x extra large
	Space4XL   = 48  // 4x extra large

# State Types

Widget state types for GetState/SetState, or their own dedicated stores:

	ScrollState           Scroll position for ListBox
	InputTextState        Cursor, selection, undo stack for InputText
	TextEditState         Cursor, selection, undo stack for InputTextMultiline
	CollapsingHeaderState Collapsed state for CollapsingHeader
	SliderState           Per-drag grab-offset correction for SliderFloat/SliderInt
	ResizeState           Active-resize bookkeeping for resizable panel edges

# Clipboard Integration

To enable clipboard support, implement ClipboardProvider:

	type ClipboardProvider interface {
	    GetText() string
	    SetText(text string)
	}

	// GLFW example:
	type GLFWClipboard struct {
	    window *glfw.Window
	}

	func (c *GLFWClipboard) GetText() string {
	    return c.window.GetClipboardString()
	}

	func (c *GLFWClipboard) SetText(text string) {
	    c.window.SetClipboardString(text)
	}

	// Register during init:
	ui.SetClipboardProvider(&GLFWClipboard{window: window})

# Text Utilities

The helpers behind TextWrapped, Tooltip, and the window title bar, also
usable directly:

	// Wrap text with mode selection (WrapModeAuto detects CJK)
	lines := ui.WrapText(ctx, text, maxWidth, ui.WrapModeAuto)

	// Truncate with ellipsis (TextWidthEllipsis degrades gracefully
	// at very small widths)
	truncated := ui.TruncateText(ctx, text, maxWidth)
	fitted := ui.TextWidthEllipsis(ctx, text, maxWidth)

	// Measure wrapped text
	size := ui.MeasureWrappedText(ctx, text, maxWidth, ui.WrapModeWord)

WrapMode values: WrapModeWord, WrapModeChar, WrapModeAuto

# Performance Optimizations

Built-in optimizations:

  - sync.Pool for DrawList buffer reuse
  - Batched rendering by texture
  - Pre-allocated glyph buffer for text
  - Per-frame text measurement cache
  - StepClipper for virtualizing lists whose item height isn't known up front
  - FrameStore for auto-expiring per-widget state that needs no explicit cleanup

For large, unevenly-sized lists, step a StepClipper across its measure/
skip-to/seek-end phases:

	c := ui.NewStepClipper(itemCount, viewportHeight, scrollY)
	c.MeasuredItemHeight = func() float32 { return lastDrawnItemHeight }
	c.AdvanceCursor = func(dy float32) { cursorY += dy }
	for c.Step() {
	    for i := c.DisplayStart; i < c.DisplayEnd; i++ {
	        drawItem(i)
	    }
	}

# Differences from Dear ImGui

This implementation addresses known ImGui issues:

  - Layout centering: CenteredPanel reuses the backing window's size
  - ID conflicts: IDs hash the label under the id stack; PushID and WithID keep repeated labels apart
  - Text wrapping: Built-in TextWrapped with CJK support
  - Hidden state: Explicit StateStore interface
  - Type safety: Go generics instead of void*
  - Memory: sync.Pool instead of manual management
  - InputText: Full cursor, selection, clipboard, undo/redo
  - Virtualization: Built-in StepClipper for unmeasured item heights
  - Smooth scrolling: Interpolated scroll positions
*/
package ui
