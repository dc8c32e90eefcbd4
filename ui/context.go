package ui

import (
	"log/slog"
	"os"
	"strconv"
)

// guiLogLevel controls the verbosity of guiLogger. Set to slog.LevelDebug
// (e.g. via an init in a debug build) to see hit-testing traces.
var guiLogLevel = new(slog.LevelVar)

// guiLogger is the logger for GUI context debugging.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
// Using a dedicated type avoids type assertions and map lookups,
// providing better performance and type safety.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // For popups, dropdowns, tooltips (drawn on top)

	// Styling
	style      Style
	styleStack []Style // For PushStyle/PopStyle

	// Layout: the cursor plus the row-system stack
	// (dynamic/static/row-xxx/array/template/space), see layout_rows.go.
	// The container veneers in layout.go push onto the same stack.
	cursor   Vec2
	rowStack []*layoutRow

	// Input (read-only during frame)
	Input *InputState

	// Widget state (persisted between frames)
	stateStore StateStore

	// IDs
	idStack   []ID
	idCounter uint32 // Zeroed by Reset; GetID does not read it (see id.go)

	// Screen
	DisplaySize Vec2
	DPIScale    float32

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Active/Hover tracking
	activeID  ID // Widget being interacted with (e.g., pressed button)
	hoveredID ID // Widget under mouse cursor

	// Staged next-frame versions of activeID/hoveredID, promoted by
	// settleWidgetState at frame end. See widgetstate.go.
	nextActiveID          ID
	nextHoveredID         ID
	activeIDJustActivated bool

	// Keyboard/mouse tracking for this frame
	hotID ID // Widget that will become active on next click

	// Font texture ID (set by renderer) - legacy field for built-in font
	FontTextureID uint32

	// FontProvider for advanced font support (optional, interface-based)
	fontProvider FontProvider

	// Input capture flags (output from GUI to application)
	// These tell the application whether GUI wants to consume input.
	WantCaptureMouse    bool // True if mouse is over any GUI element
	WantCaptureKeyboard bool // True if a text input has focus

	// NextMouseCursor is the cursor shape widgets requested this frame
	// (border drag, text input hover, ...); read by the platform layer
	// after End() and reset to CursorArrow on the next Reset().
	NextMouseCursor MouseCursor

	// Tab bar stack - tracks the tab bar currently being built between
	// BeginTabBar/EndTabBar. See panel_group.go.
	tabBarStack []*tabBarState

	// Performance optimization: pre-allocated glyph buffer for text rendering.
	// Reused between addText() calls to avoid per-call allocations.
	glyphBuffer []GlyphQuad

	// Performance optimization: text measurement cache.
	// Avoids redundant MeasureText calls for the same text within a frame.
	// Key format: "text\x00scale" to differentiate scales.
	textMeasureCache map[string]Vec2

	// Active popup tracking - persists across frames for input handling
	// When a popup (dropdown, menu) is open, navigation should stay within it
	activePopupID ID

	// Debug visualization
	DebugFocusHighlight bool // When true, draw red overlays on all focused elements

	// Persisted window manager state (position/size/scroll per window id,
	// focus order, tooltip). See window.go.
	windowManager
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		styleStack:          make([]Style, 0, 8),
		idStack:             make([]ID, 0, 32),
		glyphBuffer:         make([]GlyphQuad, 0, 256), // Pre-allocate for typical text
		textMeasureCache:    make(map[string]Vec2, 64), // Cache for text measurements
		DPIScale:            1.0,
		DebugFocusHighlight: true, // Debug: highlight focused elements in red
		windowManager:       *newWindowManager(),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// PushStyleColor temporarily overrides a single color.
func (ctx *Context) PushStyleColor(field StyleColorField, color uint32) {
	ctx.PushStyle(ctx.style)
	switch field {
	case StyleColorText:
		ctx.style.TextColor = color
	case StyleColorButton:
		ctx.style.ButtonColor = color
	case StyleColorButtonHovered:
		ctx.style.ButtonHoveredColor = color
	case StyleColorButtonActive:
		ctx.style.ButtonActiveColor = color
	case StyleColorPanel:
		ctx.style.PanelColor = color
	case StyleColorSelected:
		ctx.style.SelectedBgColor = color
	}
}

// StyleColorField identifies a color field in Style for PushStyleColor.
type StyleColorField int

const (
	StyleColorText StyleColorField = iota
	StyleColorButton
	StyleColorButtonHovered
	StyleColorButtonActive
	StyleColorPanel
	StyleColorSelected
)

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	// Advance frame counter and clean up stale FrameStore entries
	NextFrame()

	ctx.cursor = Vec2{0, 0}
	ctx.rowStack = ctx.rowStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	// Note: FrameCount is incremented in GUI.PrepareInputHandling() at the START
	// of the frame, not here. This ensures the same frame number is used for both
	// input handling and rendering phases.

	// Clear previous frame's hot/active state that wasn't renewed
	ctx.hotID = 0

	// Drop any windows left queued by a frame that never rendered; their
	// layers belong to a draw list that has already been released.
	ctx.frameRoots = ctx.frameRoots[:0]
	ctx.frameTooltip = nil

	// Promote last frame's staged hover/active ids before this frame's
	// widgets contest them again.
	ctx.settleWidgetState()

	// Reset input capture flags - widgets will set these during the frame
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false
	ctx.NextMouseCursor = CursorArrow

	// Clear text measurement cache (valid only for current frame)
	clear(ctx.textMeasureCache)

	// Clear activePopupID - widgets with active popups must reclaim it each frame.
	// This happens AFTER HandleInput (which already used the previous value),
	// so if a popup is orphaned (its widget no longer draws), navigation becomes unblocked.
	if ctx.activePopupID != 0 {
		guiLogger.Debug("Reset: clearing activePopupID", "id", ctx.activePopupID)
	}
	ctx.activePopupID = 0
}

// Helper methods for widget interaction

// isHovered returns true if the widget area is under the mouse cursor.
func (ctx *Context) isHovered(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
}

// IsHovered returns true if the widget area is under the mouse cursor (public API).
func (ctx *Context) IsHovered(id ID, rect Rect) bool {
	return ctx.isHovered(id, rect)
}

// isClicked returns true if the widget was clicked this frame.
func (ctx *Context) isClicked(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	hovered := ctx.isHovered(id, rect)
	clicked := ctx.Input.MouseClicked(MouseButtonLeft)

	// Debug logging for click detection issues
	if clicked && guiVerbose() {
		if hovered {
			guiLogger.Debug("click detected",
				"id", id,
				"rect", rect,
				"mouse", Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
		} else {
			guiLogger.Debug("click missed - not hovered",
				"id", id,
				"rect", rect,
				"mouse", Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
		}
	}

	return hovered && clicked
}

// IsClicked returns true if the widget was clicked this frame (public API).
func (ctx *Context) IsClicked(id ID, rect Rect) bool {
	return ctx.isClicked(id, rect)
}

// isPressed returns true if the widget is being held down.
func (ctx *Context) isPressed(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(id, rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// SetActivePopup marks a popup (dropdown, menu) as open.
// While a popup is active, focus navigation should stay within it.
// Call with id=0 to close the popup.
func (ctx *Context) SetActivePopup(id ID) {
	ctx.activePopupID = id
	if id != 0 {
		ctx.WantCaptureKeyboard = true
	}
}

// HasActivePopup returns true if a popup is currently open.
func (ctx *Context) HasActivePopup() bool {
	return ctx.activePopupID != 0
}

// ActivePopupID returns the ID of the currently active popup, or 0 if none.
func (ctx *Context) ActivePopupID() ID {
	return ctx.activePopupID
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// lineHeight returns the height of a single line of text.
// Uses the font provider if available, otherwise falls back to CharHeight * FontScale.
func (ctx *Context) lineHeight() float32 {
	if f := ctx.activeFont(); f != nil {
		return f.LineHeight(ctx.style.FontScale)
	}
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text (public API).
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// MeasureText returns the size of rendered text.
// Uses the font provider if available, otherwise falls back to monospace calculation.
// Results are cached per-frame to avoid redundant measurements.
func (ctx *Context) MeasureText(text string) Vec2 {
	// Check cache first (includes scale in key for differentiation)
	key := text + "\x00" + strconv.FormatFloat(float64(ctx.style.FontScale), 'g', -1, 32)
	if ctx.textMeasureCache != nil {
		if cached, ok := ctx.textMeasureCache[key]; ok {
			return cached
		}
	}

	var result Vec2
	if f := ctx.activeFont(); f != nil {
		size := f.MeasureText(text, ctx.style.FontScale)
		result = Vec2{X: size.X, Y: size.Y}
	} else {
		// Fallback to monospace calculation
		charW := ctx.style.CharWidth * ctx.style.FontScale
		charH := ctx.style.CharHeight * ctx.style.FontScale
		result = Vec2{X: float32(len(text)) * charW, Y: charH}
	}

	// Cache the result
	if ctx.textMeasureCache != nil {
		ctx.textMeasureCache[key] = result
	}

	return result
}

// activeFont returns the current active font, or nil if no font provider is set.
// This is a helper to reduce repetitive null checks.
func (ctx *Context) activeFont() Font {
	if ctx.fontProvider != nil {
		return ctx.fontProvider.ActiveFont()
	}
	return nil
}

// SetFontProvider sets the font provider for advanced font support.
// The provider must implement the FontProvider interface.
// Pass nil to disable font provider and use built-in monospace font.
func (ctx *Context) SetFontProvider(fp FontProvider) {
	ctx.fontProvider = fp
}

// FontProvider returns the current font provider, or nil if not set.
func (ctx *Context) FontProvider() FontProvider {
	return ctx.fontProvider
}

// SetFont sets the active font by name.
// Returns an error if the font is not found.
// Does nothing if no font provider is set.
func (ctx *Context) SetFont(name string) error {
	if ctx.fontProvider == nil {
		return nil
	}
	return ctx.fontProvider.SetActiveFont(name)
}

// currentLayoutWidth returns the width available to the next item: the
// current window's content width when inside one, else the display's.
func (ctx *Context) currentLayoutWidth() float32 {
	if w := ctx.currentWindow(); w != nil && w.InnerRect.W > 0 {
		return w.InnerRect.W
	}
	return ctx.DisplaySize.X
}

// CurrentLayoutWidth returns the available width in the current layout (public API).
func (ctx *Context) CurrentLayoutWidth() float32 {
	return ctx.currentLayoutWidth()
}

// addText is a helper to draw text with current style.
// Uses the font provider if available, otherwise falls back to built-in monospace font.
// Performance: reuses pre-allocated glyph buffer to avoid allocations in hot paths.
func (ctx *Context) addText(x, y float32, text string, color uint32) {
	ctx.AddText(x, y, text, color)
}

// addTextTo draws text to a specific DrawList (for foreground/overlay rendering).
func (ctx *Context) addTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	ctx.AddTextTo(dl, x, y, text, color)
}

// AddTextTo draws text to a specific DrawList (public API).
// This is useful for drawing to foreground/overlay layers.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	if f := ctx.activeFont(); f != nil {
		dl.SetTexture(f.TextureID())
		sdf := fontIsSDF(f)
		dl.SetSDF(sdf)
		fontQuads := f.GetGlyphQuads(text, x, y, ctx.style.FontScale)

		if cap(ctx.glyphBuffer) < len(fontQuads) {
			ctx.glyphBuffer = make([]GlyphQuad, 0, len(fontQuads)*2)
		}
		ctx.glyphBuffer = ctx.glyphBuffer[:len(fontQuads)]

		for i, q := range fontQuads {
			ctx.glyphBuffer[i] = GlyphQuad{
				X0: q.X0, Y0: q.Y0,
				X1: q.X1, Y1: q.Y1,
				U0: q.U0, V0: q.V0,
				U1: q.U1, V1: q.V1,
			}
		}
		dl.AddGlyphQuads(ctx.glyphBuffer, color)
		if sdf {
			dl.SetSDF(false)
		}
		dl.SetTexture(0)
		return
	}

	// Fallback to built-in monospace font (legacy renderer)
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}

// fontIsSDF reports whether f implements the optional SDFFont capability
// and was baked as a distance field.
func fontIsSDF(f Font) bool {
	sf, ok := f.(SDFFont)
	return ok && sf.SDF()
}

// AddText draws text with current style (public API).
// Uses the font provider if available, otherwise falls back to built-in monospace font.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	if f := ctx.activeFont(); f != nil {
		ctx.DrawList.SetTexture(f.TextureID())
		sdf := fontIsSDF(f)
		ctx.DrawList.SetSDF(sdf)
		// Get glyph quads from font and convert to GUI format
		fontQuads := f.GetGlyphQuads(text, x, y, ctx.style.FontScale)

		// Reuse pre-allocated buffer instead of allocating each call
		if cap(ctx.glyphBuffer) < len(fontQuads) {
			// Grow buffer with some headroom to reduce future allocations
			ctx.glyphBuffer = make([]GlyphQuad, 0, len(fontQuads)*2)
		}
		ctx.glyphBuffer = ctx.glyphBuffer[:len(fontQuads)]

		for i, q := range fontQuads {
			ctx.glyphBuffer[i] = GlyphQuad{
				X0: q.X0, Y0: q.Y0,
				X1: q.X1, Y1: q.Y1,
				U0: q.U0, V0: q.V0,
				U1: q.U1, V1: q.V1,
			}
		}
		ctx.DrawList.AddGlyphQuads(ctx.glyphBuffer, color)
		if sdf {
			ctx.DrawList.SetSDF(false)
		}
		ctx.DrawList.SetTexture(0)
		return
	}

	// Fallback to built-in monospace font (legacy renderer)
	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	ctx.DrawList.SetTexture(0)
}

// AddTextClipped draws text restricted to a clip rectangle; glyphs
// falling outside clip are scissored by the backend.
func (ctx *Context) AddTextClipped(x, y float32, text string, color uint32, clip Rect) {
	ctx.DrawList.PushClipRect(clip.X, clip.Y, clip.X+clip.W, clip.Y+clip.H)
	ctx.AddText(x, y, text, color)
	ctx.DrawList.PopClipRect()
}

// ItemPos returns the position for the next widget: the cursor, which an
// active layout row keeps positioned at the current column.
func (ctx *Context) ItemPos() Vec2 {
	return ctx.cursor
}

// advanceCursor moves the cursor after drawing an item.
func (ctx *Context) advanceCursor(size Vec2) {
	ctx.AdvanceCursor(size)
}

// AdvanceCursor moves the cursor after drawing an item (public API).
// With a layout row open it advances that row (column step, wrap);
// otherwise items flow vertically.
func (ctx *Context) AdvanceCursor(size Vec2) {
	// Grow the current window's content extent so EndWindow can derive
	// ContentSize and scroll bounds from what was actually drawn.
	if cw := ctx.currentWindow(); cw != nil {
		cw.cursorMax.X = maxf(cw.cursorMax.X, ctx.cursor.X+size.X)
		cw.cursorMax.Y = maxf(cw.cursorMax.Y, ctx.cursor.Y+size.Y)
	}

	if ctx.currentRow() != nil {
		ctx.advanceRow(size.X, size.Y)
		return
	}
	ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
}


// DebugFocusColor is the color used for debug highlight overlays (bright red).
var DebugFocusColor = RGBA(255, 0, 0, 180)

// DebugFocusBorderColor is the border color for debug highlight overlays.
var DebugFocusBorderColor = RGBA(255, 50, 50, 255)

// DrawDebugFocusRect draws a debug highlight on the given rectangle, gated
// on DebugFocusHighlight. Widgets call this to visualize their active/held
// state during debugging.
func (ctx *Context) DrawDebugFocusRect(x, y, w, h float32) {
	if !ctx.DebugFocusHighlight {
		return
	}
	ctx.DrawList.AddRect(x, y, w, h, DebugFocusColor)
	ctx.DrawList.AddRectOutline(x, y, w, h, DebugFocusBorderColor, 3)
}

// DrawDebugFocusRectIf draws a debug highlight if the condition is true.
func (ctx *Context) DrawDebugFocusRectIf(focused bool, x, y, w, h float32) {
	if focused {
		ctx.DrawDebugFocusRect(x, y, w, h)
	}
}
